package service

import (
	"context"
	"testing"

	"mrp/internal/apperror"
	"mrp/internal/microservices/http-api/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

type RatingServiceSuite struct {
	suite.Suite
	ratings *MockRatingRepository
	media   *MockMediaRepository
	svc     RatingService
	ctx     context.Context
}

func (s *RatingServiceSuite) SetupTest() {
	s.ratings = new(MockRatingRepository)
	s.media = new(MockMediaRepository)
	s.svc = NewRatingService(s.ratings, s.media, nil)
	s.ctx = context.Background()
}

func TestRatingServiceSuite(t *testing.T) {
	suite.Run(t, new(RatingServiceSuite))
}

func (s *RatingServiceSuite) TestRateCreates() {
	comment := "great"
	s.media.On("GetByID", mock.Anything, int64(3)).Return(&models.MediaEntry{ID: 3, CreatorID: 1}, nil)
	s.ratings.On("Upsert", mock.Anything, mock.MatchedBy(func(r *models.Rating) bool {
		return r.UserID == 2 && r.MediaID == 3 && r.Stars == 5 && *r.Comment == "great"
	})).Return(true, nil)

	rating, created, err := s.svc.Rate(s.ctx, 3, 2, 5, &comment)

	s.Require().NoError(err)
	s.True(created)
	s.Equal(5, rating.Stars)
	s.ratings.AssertExpectations(s.T())
}

func (s *RatingServiceSuite) TestRateRejectsStarsOutOfRange() {
	for _, stars := range []int{0, 6, -1} {
		_, _, err := s.svc.Rate(s.ctx, 3, 2, stars, nil)
		s.True(apperror.Is(err, apperror.KindValidation), "stars=%d", stars)
	}
	s.ratings.AssertNotCalled(s.T(), "Upsert", mock.Anything, mock.Anything)
}

func (s *RatingServiceSuite) TestRateMissingMedia() {
	s.media.On("GetByID", mock.Anything, int64(9999)).Return(nil, gorm.ErrRecordNotFound)

	_, _, err := s.svc.Rate(s.ctx, 9999, 2, 4, nil)

	s.True(apperror.Is(err, apperror.KindNotFound))
}

func (s *RatingServiceSuite) TestRateConcurrentDuplicateIsConflict() {
	s.media.On("GetByID", mock.Anything, int64(3)).Return(&models.MediaEntry{ID: 3}, nil)
	s.ratings.On("Upsert", mock.Anything, mock.Anything).Return(false, gorm.ErrDuplicatedKey)

	_, _, err := s.svc.Rate(s.ctx, 3, 2, 4, nil)

	s.True(apperror.Is(err, apperror.KindConflict))
}

func (s *RatingServiceSuite) TestConfirmByMediaCreator() {
	s.ratings.On("GetByID", mock.Anything, int64(10)).Return(&models.Rating{ID: 10, UserID: 2, MediaID: 3}, nil)
	s.media.On("GetByID", mock.Anything, int64(3)).Return(&models.MediaEntry{ID: 3, CreatorID: 1}, nil)
	s.ratings.On("Confirm", mock.Anything, int64(10)).Return(nil)

	rating, err := s.svc.ConfirmComment(s.ctx, 10, 1)

	s.Require().NoError(err)
	s.True(rating.Confirmed)
}

func (s *RatingServiceSuite) TestConfirmByOtherUserIsForbidden() {
	s.ratings.On("GetByID", mock.Anything, int64(10)).Return(&models.Rating{ID: 10, UserID: 2, MediaID: 3}, nil)
	s.media.On("GetByID", mock.Anything, int64(3)).Return(&models.MediaEntry{ID: 3, CreatorID: 1}, nil)

	_, err := s.svc.ConfirmComment(s.ctx, 10, 2)

	s.True(apperror.Is(err, apperror.KindAuthorization))
	s.ratings.AssertNotCalled(s.T(), "Confirm", mock.Anything, mock.Anything)
}

func (s *RatingServiceSuite) TestLikeMissingRating() {
	s.ratings.On("GetByID", mock.Anything, int64(77)).Return(nil, gorm.ErrRecordNotFound)

	_, err := s.svc.LikeRating(s.ctx, 77, 2)

	s.True(apperror.Is(err, apperror.KindNotFound))
	s.Equal("Rating with ID 77 not found.", apperror.PublicMessage(err))
}

func (s *RatingServiceSuite) TestLikeReturnsCount() {
	s.ratings.On("GetByID", mock.Anything, int64(10)).Return(&models.Rating{ID: 10}, nil)
	s.ratings.On("AddLike", mock.Anything, int64(10), int64(2)).Return(1, nil)

	likes, err := s.svc.LikeRating(s.ctx, 10, 2)

	s.Require().NoError(err)
	s.Equal(1, likes)
}

func (s *RatingServiceSuite) TestDeleteOnlyByAuthor() {
	s.ratings.On("GetByID", mock.Anything, int64(10)).Return(&models.Rating{ID: 10, UserID: 2, MediaID: 3}, nil)
	s.ratings.On("Delete", mock.Anything, int64(10)).Return(nil)

	err := s.svc.DeleteRating(s.ctx, 10, 1)
	s.True(apperror.Is(err, apperror.KindAuthorization))

	err = s.svc.DeleteRating(s.ctx, 10, 2)
	s.NoError(err)
	s.ratings.AssertNumberOfCalls(s.T(), "Delete", 1)
}

func TestRatingService_GetMediaRatingsRequiresMedia(t *testing.T) {
	ratings := new(MockRatingRepository)
	media := new(MockMediaRepository)
	svc := NewRatingService(ratings, media, nil)

	media.On("GetByID", mock.Anything, int64(4)).Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.GetMediaRatings(context.Background(), 4)

	require.Error(t, err)
	assert.True(t, apperror.Is(err, apperror.KindNotFound))
	ratings.AssertNotCalled(t, "ListByMedia", mock.Anything, mock.Anything)
}
