package pubsub

import (
	"encoding/base64"
	"encoding/json"
	"time"

	"fitsaga/internal/domain/service"
	"fitsaga/internal/errors"
)

// Attribute keys set on every published member event.
const (
	AttrEventID   = "event_id"
	AttrEventType = "event_type"
	AttrUserID    = "user_id"
	AttrRequestID = "request_id"
)

// PushEnvelope is the body Pub/Sub POSTs to a push subscription endpoint.
type PushEnvelope struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// encodeEvent returns the message payload and attributes for event.
func encodeEvent(event *service.MemberEvent) ([]byte, map[string]string, error) {
	data, err := json.Marshal(event)
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to encode member event")
	}

	attrs := map[string]string{
		AttrEventID:   event.ID,
		AttrEventType: event.Type,
		AttrUserID:    event.UserID,
	}
	if event.RequestID != "" {
		attrs[AttrRequestID] = event.RequestID
	}

	return data, attrs, nil
}

// NewPushEnvelope wraps event the way a push subscription would deliver it.
func NewPushEnvelope(event *service.MemberEvent, subscription string, publishedAt time.Time) (*PushEnvelope, error) {
	data, attrs, err := encodeEvent(event)
	if err != nil {
		return nil, err
	}

	env := &PushEnvelope{Subscription: subscription}
	env.Message.Data = base64.StdEncoding.EncodeToString(data)
	env.Message.Attributes = attrs
	env.Message.MessageID = event.ID
	env.Message.PublishTime = publishedAt.UTC().Format(time.RFC3339)

	return env, nil
}

// Event decodes the member event carried by the envelope.
func (e *PushEnvelope) Event() (*service.MemberEvent, error) {
	data, err := base64.StdEncoding.DecodeString(e.Message.Data)
	if err != nil {
		return nil, errors.Wrap(err, "message data is not base64")
	}

	var event service.MemberEvent
	if err := json.Unmarshal(data, &event); err != nil {
		return nil, errors.Wrap(err, "message data is not a member event")
	}

	return &event, nil
}

// RequestID returns the tracing ID from the attributes, falling back to the event.
func (e *PushEnvelope) RequestID(event *service.MemberEvent) string {
	if id := e.Message.Attributes[AttrRequestID]; id != "" {
		return id
	}

	return event.RequestID
}
