package pubsub

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	deliverycontext "fitsaga/internal/delivery/context"
	"fitsaga/internal/domain/service"
	"fitsaga/internal/errors"
)

const localSubscription = "projects/local/subscriptions/member-events"

// localHTTPPublisher stands in for a push subscription in development by POSTing
// envelopes straight to the worker.
type localHTTPPublisher struct {
	endpoint string
	client   *http.Client
	logger   *slog.Logger
	now      func() time.Time
}

func NewLocalHTTPPublisher(endpoint string, logger *slog.Logger) service.EventPublisher {
	return &localHTTPPublisher{
		endpoint: endpoint,
		client:   &http.Client{Timeout: 30 * time.Second},
		logger:   logger,
		now:      time.Now,
	}
}

func (p *localHTTPPublisher) PublishMemberEvent(ctx context.Context, event *service.MemberEvent) error {
	env, err := NewPushEnvelope(event, localSubscription, p.now())
	if err != nil {
		return err
	}

	body, err := json.Marshal(env)
	if err != nil {
		return errors.WithStack(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.endpoint, bytes.NewReader(body))
	if err != nil {
		return errors.WithStack(err)
	}
	req.Header.Set("Content-Type", "application/json")
	if event.RequestID != "" {
		req.Header.Set(deliverycontext.HeaderXRequestID, event.RequestID)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return errors.Wrap(err, "failed to reach local push endpoint")
	}
	defer resp.Body.Close()

	// Mirror Pub/Sub: only 2xx acknowledges the message.
	if resp.StatusCode/100 != 2 {
		return errors.Errorf("worker rejected %s with status %d", event.ID, resp.StatusCode)
	}

	p.logger.Debug("[LocalPubSub] Member event delivered",
		slog.String("event_id", event.ID),
		slog.String("event_type", event.Type),
	)

	return nil
}

func (p *localHTTPPublisher) Close() error {
	return nil
}
