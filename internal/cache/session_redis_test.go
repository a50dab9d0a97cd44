package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type SessionCacheTestSuite struct {
	suite.Suite
	server *miniredis.Miniredis
	cache  *RedisSessionCache
}

func (s *SessionCacheTestSuite) SetupTest() {
	s.server = miniredis.RunT(s.T())
	client := redis.NewClient(&redis.Options{Addr: s.server.Addr()})
	s.cache = NewRedisSessionCacheWithClient(client, time.Minute)
}

func (s *SessionCacheTestSuite) TearDownTest() {
	s.cache.Close()
}

func (s *SessionCacheTestSuite) TestSetThenGet() {
	ctx := context.Background()
	user := &CachedUser{ID: 3, Username: "alice", CreatedAt: time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)}

	require.NoError(s.T(), s.cache.Set(ctx, "alice-mrpToken-x", user))

	got, ok, err := s.cache.Get(ctx, "alice-mrpToken-x")
	require.NoError(s.T(), err)
	require.True(s.T(), ok)
	assert.Equal(s.T(), user.ID, got.ID)
	assert.Equal(s.T(), "alice", got.Username)
	assert.True(s.T(), user.CreatedAt.Equal(got.CreatedAt))
}

func (s *SessionCacheTestSuite) TestMissAndDelete() {
	ctx := context.Background()

	_, ok, err := s.cache.Get(ctx, "nope")
	require.NoError(s.T(), err)
	assert.False(s.T(), ok)

	require.NoError(s.T(), s.cache.Set(ctx, "t", &CachedUser{ID: 1}))
	require.NoError(s.T(), s.cache.Delete(ctx, "t"))
	_, ok, err = s.cache.Get(ctx, "t")
	require.NoError(s.T(), err)
	assert.False(s.T(), ok)
}

func (s *SessionCacheTestSuite) TestEntriesExpire() {
	ctx := context.Background()
	require.NoError(s.T(), s.cache.Set(ctx, "t", &CachedUser{ID: 1}))

	assert.Equal(s.T(), time.Minute, s.server.TTL(keyPrefix+"t"))
	s.server.FastForward(2 * time.Minute)

	_, ok, err := s.cache.Get(ctx, "t")
	require.NoError(s.T(), err)
	assert.False(s.T(), ok)
}

func (s *SessionCacheTestSuite) TestCorruptEntryIsAMiss() {
	ctx := context.Background()
	require.NoError(s.T(), s.server.Set(keyPrefix+"bad", "{not json"))

	_, ok, err := s.cache.Get(ctx, "bad")
	require.NoError(s.T(), err)
	assert.False(s.T(), ok)
	assert.False(s.T(), s.server.Exists(keyPrefix+"bad"))
}

func (s *SessionCacheTestSuite) TestSupersededTokenIsAMiss() {
	ctx := context.Background()
	require.NoError(s.T(), s.cache.Activate(ctx, 3, "old"))
	require.NoError(s.T(), s.cache.Set(ctx, "old", &CachedUser{ID: 3}))

	require.NoError(s.T(), s.cache.Activate(ctx, 3, "new"))

	_, ok, err := s.cache.Get(ctx, "old")
	require.NoError(s.T(), err)
	assert.False(s.T(), ok)
	assert.False(s.T(), s.server.Exists(keyPrefix+"old"))
}

func (s *SessionCacheTestSuite) TestLateSetCannotReplaceActiveToken() {
	ctx := context.Background()
	require.NoError(s.T(), s.cache.Activate(ctx, 3, "new"))

	// a lookup that started before the login caches the old token afterwards
	require.NoError(s.T(), s.cache.Set(ctx, "old", &CachedUser{ID: 3}))

	_, ok, err := s.cache.Get(ctx, "old")
	require.NoError(s.T(), err)
	assert.False(s.T(), ok)

	require.NoError(s.T(), s.cache.Set(ctx, "new", &CachedUser{ID: 3}))
	got, ok, err := s.cache.Get(ctx, "new")
	require.NoError(s.T(), err)
	require.True(s.T(), ok)
	assert.Equal(s.T(), int64(3), got.ID)
}

func (s *SessionCacheTestSuite) TestServerDownSurfacesError() {
	s.server.Close()

	_, _, err := s.cache.Get(context.Background(), "t")
	assert.Error(s.T(), err)
}

func TestSessionCacheTestSuite(t *testing.T) {
	suite.Run(t, new(SessionCacheTestSuite))
}

func TestNewRedisSessionCache(t *testing.T) {
	server := miniredis.RunT(t)

	c, err := NewRedisSessionCache(context.Background(), "redis://"+server.Addr()+"/0", "", time.Minute)
	require.NoError(t, err)
	defer c.Close()

	_, err = NewRedisSessionCache(context.Background(), "not a url", "", time.Minute)
	assert.Error(t, err)
}

func TestNoopSessionCache(t *testing.T) {
	var c SessionCache = NoopSessionCache{}
	ctx := context.Background()

	assert.NoError(t, c.Set(ctx, "t", &CachedUser{ID: 1}))
	_, ok, err := c.Get(ctx, "t")
	assert.NoError(t, err)
	assert.False(t, ok)
	assert.NoError(t, c.Delete(ctx, "t"))
	assert.NoError(t, c.Activate(ctx, 1, "t"))
}
