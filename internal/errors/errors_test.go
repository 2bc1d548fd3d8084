package errors_test

import (
	"errors"
	"fmt"
	"testing"

	apperrors "netlist-visualizer-backend/internal/errors"

	"github.com/stretchr/testify/assert"
)

func TestNotFoundError(t *testing.T) {
	err := apperrors.NewNotFoundError("submission")
	assert.Equal(t, "submission not found", err.Error())
	assert.True(t, apperrors.IsNotFound(err))
	assert.True(t, errors.Is(err, apperrors.ErrSubmissionNotFound))

	other := apperrors.NewNotFoundError("widget")
	assert.False(t, errors.Is(other, apperrors.ErrSubmissionNotFound))
}

func TestMalformedInputError(t *testing.T) {
	err := apperrors.NewMalformedInputError("request body is not valid JSON")
	assert.Equal(t, "request body is not valid JSON", err.Error())
	assert.True(t, apperrors.IsMalformedInput(err))
	assert.False(t, apperrors.IsNotFound(err))
}

func TestStorageUnavailableError(t *testing.T) {
	cause := errors.New("connection refused")
	err := apperrors.NewStorageUnavailableError("create submission", cause)

	assert.True(t, apperrors.IsStorageUnavailable(err))
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "storage unavailable")
	assert.Contains(t, err.Error(), "connection refused")
}

func TestHelpersSeeThroughWrapping(t *testing.T) {
	wrapped := fmt.Errorf("handler: %w", apperrors.ErrSubmissionNotFound)
	assert.True(t, apperrors.IsNotFound(wrapped))

	wrapped = fmt.Errorf("pipeline: %w", apperrors.NewMalformedInputError("bad"))
	assert.True(t, apperrors.IsMalformedInput(wrapped))
}

func TestSentinelErrors(t *testing.T) {
	assert.EqualError(t, apperrors.ErrInvalidPaginationParams, "invalid pagination parameters")
	assert.EqualError(t, apperrors.ErrGraphUnavailable, "graph unavailable: netlist is structurally invalid")
	assert.EqualError(t, apperrors.ErrInvalidToken, "invalid or expired token")
}
