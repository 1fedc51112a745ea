// Package handler contains the worker's Pub/Sub push endpoint.
package handler

import (
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"fitsaga/config"
	deliverycontext "fitsaga/internal/delivery/context"
	"fitsaga/internal/domain/constants"
	"fitsaga/internal/errors"
	"fitsaga/internal/infra/pubsub"
	"fitsaga/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
	"google.golang.org/api/idtoken"
)

// pushVerifier authenticates a push request
type pushVerifier func(req *http.Request) error

// PushHandler delivers member events pushed by Pub/Sub
type PushHandler struct {
	verify   pushVerifier // nil when push auth is off
	logger   *slog.Logger
	notifyUC usecase.MemberNotificationUsecase
}

// PushHandlerParams holds dependencies for the PushHandler
type PushHandlerParams struct {
	fx.In

	Config   *config.Config
	Logger   *slog.Logger
	NotifyUC usecase.MemberNotificationUsecase
}

// NewPushHandler creates a new Pub/Sub push handler. Google push JWTs are
// verified outside the develop environment.
func NewPushHandler(params PushHandlerParams) *PushHandler {
	h := &PushHandler{
		logger:   params.Logger,
		notifyUC: params.NotifyUC,
	}

	if params.Config.PubSub != nil &&
		params.Config.PubSub.Provider == constants.PubSubProviderGoogle &&
		params.Config.Env.Env != constants.EnvDevelop {
		h.verify = verifyPubSubToken
	}

	return h
}

// HandlePush handles incoming Pub/Sub push messages.
// Retryable failures answer 503 so Pub/Sub redelivers; everything else answers 200.
func (h *PushHandler) HandlePush(c echo.Context) error {
	ctx := c.Request().Context()

	if h.verify != nil {
		if err := h.verify(c.Request()); err != nil {
			h.logger.Warn("[Worker] Invalid Pub/Sub token", slog.Any("error", err))

			return c.NoContent(http.StatusUnauthorized)
		}
	}

	var env pubsub.PushEnvelope
	if err := c.Bind(&env); err != nil {
		h.logger.Error("[Worker] Failed to parse push message", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	event, err := env.Event()
	if err != nil {
		// Redelivery cannot fix a malformed message.
		h.logger.Error("[Worker] Dropping undecodable message",
			slog.String("message_id", env.Message.MessageID),
			slog.Any("error", err),
		)

		return c.NoContent(http.StatusBadRequest)
	}

	requestID := env.RequestID(event)
	if requestID == "" {
		requestID = deliverycontext.GetRequestIDFromContext(ctx)
	}
	if requestID == "" {
		requestID = uuid.NewString()
	}
	reqLogger := h.logger.With(slog.String("request_id", requestID))
	ctx = deliverycontext.WithLogger(deliverycontext.WithRequestID(ctx, requestID), reqLogger)

	reqLogger.Info("[Worker] Processing member event",
		slog.String("event_id", event.ID),
		slog.String("event_type", event.Type),
		slog.String("user_id", event.UserID),
	)

	result, err := h.notifyUC.NotifyMember(ctx, event)
	if err != nil {
		retryable := usecase.IsRetryable(err)
		reqLogger.Error("[Worker] Failed to process member event",
			slog.String("event_id", event.ID),
			slog.Any("error", err),
			slog.Bool("retryable", retryable),
		)
		if retryable {
			return c.NoContent(http.StatusServiceUnavailable)
		}

		return c.NoContent(http.StatusOK)
	}

	reqLogger.Info("[Worker] Member event processed",
		slog.String("event_id", event.ID),
		slog.Int("sent", result.Sent),
		slog.Int("failed", result.Failed),
		slog.Int("invalid_tokens", result.InvalidTokens),
		slog.Bool("skipped", result.Skipped),
	)

	return c.NoContent(http.StatusOK)
}

// verifyPubSubToken verifies the JWT token from Google Pub/Sub push requests
// Reference: https://cloud.google.com/pubsub/docs/push#authenticating_standard_push_requests
func verifyPubSubToken(req *http.Request) error {
	authHeader := req.Header.Get(echo.HeaderAuthorization)
	if authHeader == "" {
		return errors.New("missing authorization header")
	}

	token, found := strings.CutPrefix(authHeader, "Bearer ")
	if !found {
		return errors.New("invalid authorization header format")
	}

	// The audience is the URL of this endpoint
	scheme := "https"
	if req.TLS == nil {
		scheme = "http"
	}
	audience := fmt.Sprintf("%s://%s%s", scheme, req.Host, req.URL.Path)

	payload, err := idtoken.Validate(req.Context(), token, audience)
	if err != nil {
		return errors.Wrap(err, "failed to validate token")
	}

	if payload.Issuer != "accounts.google.com" && payload.Issuer != "https://accounts.google.com" {
		return errors.Errorf("invalid issuer: %s", payload.Issuer)
	}

	if emailVerified, ok := payload.Claims["email_verified"].(bool); ok && !emailVerified {
		return errors.New("email not verified")
	}

	return nil
}
