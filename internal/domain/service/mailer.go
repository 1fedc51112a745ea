package service

import (
	"context"

	"fitsaga/internal/errors"
)

// ErrMailExhausted is returned when no mail sender delivered the message.
var ErrMailExhausted = errors.New("all mail senders failed")

// Attachment is a file attached to an email.
type Attachment struct {
	Filename    string
	ContentType string
	Data        []byte
}

// EmailMessage is a single outgoing email.
type EmailMessage struct {
	To          string
	Subject     string
	HTML        string
	Text        string
	Attachments []Attachment
}

// DeliveryResult tells which sender accepted a message.
type DeliveryResult struct {
	Provider  string
	MessageID string
}

// MailSender is one backend in the ranked mail chain.
type MailSender interface {
	// Name identifies the sender in logs and results.
	Name() string

	// Send delivers the message and returns a message ID.
	Send(ctx context.Context, msg *EmailMessage) (string, error)
}

// Mailer delivers email through a ranked list of senders.
type Mailer interface {
	// SendEmail tries each sender in rank order and reports the first that succeeded.
	SendEmail(ctx context.Context, msg *EmailMessage) (*DeliveryResult, error)
}
