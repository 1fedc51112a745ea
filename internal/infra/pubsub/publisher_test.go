package pubsub

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"fitsaga/config"
	"fitsaga/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestLocalHTTPPublisher_PublishMemberEvent(t *testing.T) {
	var received PushEnvelope
	var requestID string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID = r.Header.Get("X-Request-Id")
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, testLogger())
	event := &service.MemberEvent{
		ID:         "evt-1",
		Type:       service.EventCreditsReset,
		UserID:     "client-1",
		RequestID:  "req-1",
		OccurredAt: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		Data:       map[string]string{"credits": "8"},
	}

	require.NoError(t, publisher.PublishMemberEvent(context.Background(), event))

	assert.Equal(t, "req-1", requestID)
	assert.Equal(t, "evt-1", received.Message.MessageID)
	assert.Equal(t, service.EventCreditsReset, received.Message.Attributes["event_type"])

	decoded, err := received.Event()
	require.NoError(t, err)
	assert.Equal(t, *event, *decoded)
	assert.Equal(t, "req-1", received.RequestID(decoded))
}

func TestPushEnvelope_Event(t *testing.T) {
	t.Run("bad base64", func(t *testing.T) {
		var env PushEnvelope
		env.Message.Data = "%%%"

		_, err := env.Event()

		assert.ErrorContains(t, err, "not base64")
	})

	t.Run("not an event", func(t *testing.T) {
		var env PushEnvelope
		env.Message.Data = base64.StdEncoding.EncodeToString([]byte("plain text"))

		_, err := env.Event()

		assert.ErrorContains(t, err, "not a member event")
	})
}

func TestPushEnvelope_RequestID(t *testing.T) {
	event := &service.MemberEvent{ID: "evt-3", RequestID: "from-event"}
	env, err := NewPushEnvelope(event, localSubscription, time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	assert.Equal(t, "2025-03-01T09:00:00Z", env.Message.PublishTime)
	assert.Equal(t, "from-event", env.RequestID(event))

	env.Message.Attributes[AttrRequestID] = "from-attrs"
	assert.Equal(t, "from-attrs", env.RequestID(event))

	delete(env.Message.Attributes, AttrRequestID)
	assert.Empty(t, env.RequestID(&service.MemberEvent{}))
}

func TestLocalHTTPPublisher_PublishMemberEvent_WorkerFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, testLogger())
	err := publisher.PublishMemberEvent(context.Background(), &service.MemberEvent{ID: "evt-2", Type: service.EventAccessChanged})

	require.Error(t, err)
	assert.ErrorContains(t, err, "status 503")
}

func TestNewEventPublisher(t *testing.T) {
	tests := []struct {
		name    string
		pubsub  *config.PubSubConfig
		wantErr bool
		noop    bool
	}{
		{name: "not configured", pubsub: nil, noop: true},
		{name: "local", pubsub: &config.PubSubConfig{Provider: "local", LocalEndpoint: "http://localhost:8081/push"}},
		{name: "local without endpoint", pubsub: &config.PubSubConfig{Provider: "local"}, wantErr: true},
		{name: "google without topic", pubsub: &config.PubSubConfig{Provider: "google", ProjectID: "p"}, wantErr: true},
		{name: "unknown provider", pubsub: &config.PubSubConfig{Provider: "kafka"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			publisher, err := NewEventPublisher(PublisherParams{
				Lc:     fxtest.NewLifecycle(t),
				Ctx:    context.Background(),
				Config: &config.Config{PubSub: tt.pubsub},
				Logger: testLogger(),
			})
			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			require.NoError(t, err)
			_, isNoop := publisher.(*noopPublisher)
			assert.Equal(t, tt.noop, isNoop)
		})
	}
}
