package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"fitsaga/config"
	deliverycontext "fitsaga/internal/delivery/context"
	"fitsaga/internal/domain/constants"
	"fitsaga/internal/domain/service"
	"fitsaga/internal/errors"
	"fitsaga/internal/infra/pubsub"
	mockUC "fitsaga/internal/mocks/usecase"
	"fitsaga/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type pushHandlerFixtures struct {
	handler  *PushHandler
	notifyUC *mockUC.MockMemberNotificationUsecase
}

func createTestPushHandler(t *testing.T, cfg *config.Config) *pushHandlerFixtures {
	t.Helper()

	if cfg == nil {
		cfg = &config.Config{}
	}

	notifyUC := mockUC.NewMockMemberNotificationUsecase(t)
	h := NewPushHandler(PushHandlerParams{
		Config:   cfg,
		Logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		NotifyUC: notifyUC,
	})

	return &pushHandlerFixtures{handler: h, notifyUC: notifyUC}
}

func pushBody(t *testing.T, event *service.MemberEvent, attributes map[string]string) string {
	t.Helper()

	env, err := pubsub.NewPushEnvelope(event, "projects/p/subscriptions/member-events", time.Now())
	require.NoError(t, err)
	env.Message.Attributes = attributes

	body, err := json.Marshal(env)
	require.NoError(t, err)

	return string(body)
}

func servePush(h *PushHandler, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/push", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := echo.New().NewContext(req, rec)
	_ = h.HandlePush(c)

	return rec
}

func TestPushHandler_HandlePush_Delivers(t *testing.T) {
	f := createTestPushHandler(t, nil)
	event := &service.MemberEvent{ID: "e1", Type: service.EventCreditsReset, UserID: "u1", RequestID: "req-from-event"}

	f.notifyUC.EXPECT().
		NotifyMember(mock.MatchedBy(func(ctx context.Context) bool {
			return deliverycontext.GetRequestIDFromContext(ctx) == "req-from-attrs"
		}), mock.MatchedBy(func(e *service.MemberEvent) bool {
			return e.ID == "e1" && e.UserID == "u1"
		})).
		Return(&usecase.NotifyResult{Sent: 2}, nil)

	rec := servePush(f.handler, pushBody(t, event, map[string]string{"request_id": "req-from-attrs"}))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPushHandler_HandlePush_Failures(t *testing.T) {
	event := &service.MemberEvent{ID: "e1", Type: service.EventAccessChanged, UserID: "u1"}

	t.Run("retryable answers 503", func(t *testing.T) {
		f := createTestPushHandler(t, nil)
		f.notifyUC.EXPECT().NotifyMember(mock.Anything, mock.Anything).
			Return(nil, usecase.NewRetryableError(errors.New("fcm unavailable")))

		rec := servePush(f.handler, pushBody(t, event, nil))

		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	})

	t.Run("permanent failure is acknowledged", func(t *testing.T) {
		f := createTestPushHandler(t, nil)
		f.notifyUC.EXPECT().NotifyMember(mock.Anything, mock.Anything).
			Return(nil, errors.New("unknown event type"))

		rec := servePush(f.handler, pushBody(t, event, nil))

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("undecodable data", func(t *testing.T) {
		f := createTestPushHandler(t, nil)

		rec := servePush(f.handler, `{"message":{"data":"%%%not-base64"}}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("data is not an event", func(t *testing.T) {
		f := createTestPushHandler(t, nil)
		data := base64.StdEncoding.EncodeToString([]byte("not json"))

		rec := servePush(f.handler, `{"message":{"data":"`+data+`"}}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestPushHandler_VerifiesOutsideDevelop(t *testing.T) {
	cfg := &config.Config{PubSub: &config.PubSubConfig{Provider: constants.PubSubProviderGoogle}}
	cfg.Env.Env = constants.EnvProduction

	f := createTestPushHandler(t, cfg)
	require.NotNil(t, f.handler.verify)

	rec := servePush(f.handler, pushBody(t, &service.MemberEvent{ID: "e1"}, nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	cfg.Env.Env = constants.EnvDevelop
	assert.Nil(t, createTestPushHandler(t, cfg).handler.verify)
}
