package errs_test

import (
	"errors"
	"fmt"
	"testing"

	"tronefilms/errs"

	"github.com/stretchr/testify/assert"
)

func TestError_Error(t *testing.T) {
	err := &errs.Error{Code: errs.ENOTFOUND, Message: "Movie Alien not found"}

	assert.Equal(t, "application error: code=not_found message=Movie Alien not found", err.Error())
}

func TestErrorCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{name: "nil error", err: nil, expected: ""},
		{name: "invalid", err: errs.Errorf(errs.EINVALID, "title is required"), expected: errs.EINVALID},
		{name: "not found", err: errs.Errorf(errs.ENOTFOUND, "movie not found"), expected: errs.ENOTFOUND},
		{name: "plain error is internal", err: errors.New("connection reset"), expected: errs.EINTERNAL},
		{
			name:     "wrapped application error",
			err:      fmt.Errorf("delete: %w", errs.Errorf(errs.ENOTFOUND, "movie not found")),
			expected: errs.ENOTFOUND,
		},
		{
			name:     "joined application error",
			err:      errors.Join(errs.Errorf(errs.EINVALID, "bad request")),
			expected: errs.EINVALID,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, errs.ErrorCode(tt.err))
		})
	}
}

func TestErrorMessage(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{name: "nil error", err: nil, expected: ""},
		{name: "application error", err: errs.Errorf(errs.EINVALID, "year failed on required"), expected: "year failed on required"},
		{name: "empty message", err: &errs.Error{Code: errs.EINTERNAL}, expected: ""},
		{name: "plain error is hidden", err: errors.New("server selection timeout"), expected: "Internal error."},
		{
			name:     "wrapped application error",
			err:      fmt.Errorf("mongodb: %w", errs.Errorf(errs.ENOTFOUND, "movie not found")),
			expected: "movie not found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, errs.ErrorMessage(tt.err))
		})
	}
}

func TestErrorf(t *testing.T) {
	err := errs.Errorf(errs.ENOTFOUND, "Movie %s not found", "Test Film")

	assert.Equal(t, errs.ENOTFOUND, err.Code)
	assert.Equal(t, "Movie Test Film not found", err.Message)
	assert.Equal(t, "application error: code=not_found message=Movie Test Film not found", err.Error())
}
