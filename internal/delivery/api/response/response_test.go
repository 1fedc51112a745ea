package response

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	deliverycontext "fitsaga/internal/delivery/context"
	domainerrors "fitsaga/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newContext() (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
	deliverycontext.SetRequestID(c, "req-7")

	return c, rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) ErrorResponse {
	t.Helper()

	var body ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return body
}

func TestSuccess(t *testing.T) {
	c, rec := newContext()

	require.NoError(t, Success(c, http.StatusCreated, map[string]string{"id": "p1"}))

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t, `{"data":{"id":"p1"},"meta":{"request_id":"req-7"}}`, rec.Body.String())
}

func TestError_DetailsVisibility(t *testing.T) {
	tests := []struct {
		name        string
		status      int
		wantDetails bool
	}{
		{name: "bad request keeps details", status: http.StatusBadRequest, wantDetails: true},
		{name: "conflict keeps details", status: http.StatusConflict, wantDetails: true},
		{name: "unauthorized hides details", status: http.StatusUnauthorized},
		{name: "forbidden hides details", status: http.StatusForbidden},
		{name: "server error hides details", status: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, rec := newContext()

			require.NoError(t, Error(c, tt.status, "CODE", "message", "secret"))

			body := decodeError(t, rec)
			assert.Equal(t, tt.status, rec.Code)
			if tt.wantDetails {
				assert.Equal(t, "secret", body.Error.Details)
			} else {
				assert.Nil(t, body.Error.Details)
			}
		})
	}
}

func TestHandleAppError(t *testing.T) {
	t.Run("conflict payload becomes details", func(t *testing.T) {
		c, rec := newContext()
		err := domainerrors.NewConflictWithIDs(domainerrors.ErrClientsHaveBookings, "clientsWithBookings", []string{"c2"})

		require.NoError(t, HandleAppError(c, errors.Wrap(err, "batch delete")))

		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.JSONEq(t,
			`{"error":{"code":"CLIENTS_HAVE_BOOKINGS","message":"Some clients have active bookings","details":{"clientsWithBookings":["c2"]}},"meta":{"request_id":"req-7"}}`,
			rec.Body.String())
	})

	t.Run("plain domain error has no details", func(t *testing.T) {
		c, rec := newContext()

		require.NoError(t, HandleAppError(c, domainerrors.ErrPlanNotFound))

		body := decodeError(t, rec)
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "PLAN_NOT_FOUND", body.Error.Code)
		assert.Nil(t, body.Error.Details)
	})

	t.Run("other errors are returned for the error handler", func(t *testing.T) {
		c, rec := newContext()
		cause := errors.New("firestore unavailable")

		err := HandleAppError(c, cause)

		assert.ErrorIs(t, err, cause)
		assert.Zero(t, rec.Body.Len())
	})
}
