package errors

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppErrorClassification(t *testing.T) {
	cause := stderrors.New("connection refused")

	t.Run("unavailable wraps cause", func(t *testing.T) {
		err := Unavailable("failed to load catalog", cause)
		assert.True(t, IsUnavailable(err))
		assert.False(t, IsNotFound(err))
		assert.ErrorIs(t, err, cause)
		assert.Contains(t, err.Error(), "UNAVAILABLE")
		assert.Contains(t, err.Error(), "connection refused")
	})

	t.Run("type survives fmt wrapping", func(t *testing.T) {
		err := fmt.Errorf("detail: %w", NotFound("movie 42"))
		assert.True(t, IsNotFound(err))
		assert.Equal(t, ErrorTypeNotFound, TypeOf(err))
	})

	t.Run("plain errors have no type", func(t *testing.T) {
		assert.Equal(t, ErrorType(""), TypeOf(cause))
		assert.False(t, IsInternal(cause))
	})

	t.Run("message without cause", func(t *testing.T) {
		assert.Equal(t, "BAD_REQUEST: bad sort", BadRequest("bad sort").Error())
	})
}
