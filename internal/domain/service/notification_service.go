package service

import (
	"context"
)

// PushMessage is one notification addressed to all devices of a member.
type PushMessage struct {
	Tokens []string
	Title  string
	Body   string
	Data   map[string]string
}

// PushReport summarizes a push delivery. InvalidTokens lists devices that should be forgotten.
type PushReport struct {
	Sent          int
	Failed        int
	InvalidTokens []string
}

// NotificationService delivers push notifications to member devices.
type NotificationService interface {
	Push(ctx context.Context, msg *PushMessage) (*PushReport, error)
}
