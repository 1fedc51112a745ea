package errors

import (
	"net/http"
	"testing"

	"fitsaga/internal/errors"

	"github.com/stretchr/testify/assert"
)

func TestBaseError_WithDetailsStillMatches(t *testing.T) {
	err := ErrClientNotFound.WithDetails("client c1")

	assert.True(t, errors.Is(err, ErrClientNotFound))
	assert.False(t, errors.Is(err, ErrUserNotFound))
	assert.Equal(t, "Client not found: client c1", err.Error())
	assert.Equal(t, http.StatusNotFound, err.HTTPCode())
}

func TestNewConflictWithIDs_Payload(t *testing.T) {
	err := NewConflictWithIDs(ErrSessionHasBookings, "sessionsWithBookings", []string{"s1", "s2"})

	assert.Equal(t, http.StatusConflict, err.HTTPCode())
	assert.Equal(t, "SESSION_HAS_BOOKINGS", err.ErrorCode())
	assert.Equal(t, map[string][]string{"sessionsWithBookings": {"s1", "s2"}}, err.Payload())
	assert.True(t, errors.Is(err, ErrSessionHasBookings))

	var appErr AppError
	assert.True(t, errors.As(errors.Wrap(err, "delete sessions"), &appErr))
}
