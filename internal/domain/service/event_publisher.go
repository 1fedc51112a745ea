package service

import (
	"context"
	"time"
)

// Member event types
const (
	EventCreditsReset   = "credits.reset"
	EventContractSigned = "contract.signed"
	EventAccessChanged  = "access.changed"
)

// MemberEvent is published when something a member should hear about happens.
type MemberEvent struct {
	ID         string            `json:"id"`
	Type       string            `json:"type"`
	UserID     string            `json:"user_id"`
	RequestID  string            `json:"request_id,omitempty"` // For distributed tracing
	OccurredAt time.Time         `json:"occurred_at"`
	Data       map[string]string `json:"data,omitempty"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishMemberEvent publishes a member event for async processing
	PublishMemberEvent(ctx context.Context, event *MemberEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
