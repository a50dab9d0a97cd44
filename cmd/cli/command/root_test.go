package command

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseIDArg(t *testing.T) {
	id, err := parseIDArg("42")
	require.NoError(t, err)
	assert.Equal(t, int64(42), id)

	for _, bad := range []string{"", "abc", "0", "-3"} {
		_, err := parseIDArg(bad)
		assert.Error(t, err, bad)
	}
}

func TestMediaRequestFromFlags(t *testing.T) {
	require.NoError(t, mediaCreateCmd.ParseFlags([]string{"--title", "Dune", "--year", "2021", "--genres", "sci-fi,drama"}))

	req := mediaRequestFromFlags(mediaCreateCmd)

	assert.Equal(t, "Dune", req.Title)
	require.NotNil(t, req.ReleaseYear)
	assert.Equal(t, 2021, *req.ReleaseYear)
	assert.Nil(t, req.AgeRestriction)
	assert.Equal(t, []string{"sci-fi", "drama"}, req.Genres)
}

func TestCommandTree(t *testing.T) {
	for _, path := range [][]string{
		{"auth", "login"},
		{"media", "create"},
		{"rating", "rate"},
		{"rating", "confirm"},
		{"favorite", "list"},
	} {
		cmd, _, err := rootCmd.Find(path)
		require.NoError(t, err, path)
		assert.Equal(t, path[len(path)-1], cmd.Name())
	}
}
