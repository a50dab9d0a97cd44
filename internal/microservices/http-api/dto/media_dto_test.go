package dto

import (
	"testing"

	"mrp/internal/apperror"

	"github.com/stretchr/testify/assert"
)

func TestMediaRequestValidate(t *testing.T) {
	zero, year, negative := 0, 2021, -1

	tests := []struct {
		name    string
		req     MediaRequest
		wantErr string
	}{
		{name: "minimal", req: MediaRequest{Title: "Dune"}},
		{name: "zero values allowed", req: MediaRequest{Title: "Dune", ReleaseYear: &zero, AgeRestriction: &zero}},
		{name: "full", req: MediaRequest{Title: "Dune", ReleaseYear: &year, Genres: []string{"sci-fi"}}},
		{name: "blank title", req: MediaRequest{Title: "   "}, wantErr: "Title is required"},
		{name: "negative year", req: MediaRequest{Title: "Dune", ReleaseYear: &negative}, wantErr: "Release year cannot be negative"},
		{name: "negative age", req: MediaRequest{Title: "Dune", AgeRestriction: &negative}, wantErr: "Age restriction cannot be negative"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.True(t, apperror.Is(err, apperror.KindValidation))
			assert.Equal(t, tt.wantErr, apperror.PublicMessage(err))
		})
	}
}
