package mail

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"fitsaga/config"
	"fitsaga/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubSender struct {
	name  string
	id    string
	err   error
	calls int
}

func (s *stubSender) Name() string { return s.name }

func (s *stubSender) Send(context.Context, *service.EmailMessage) (string, error) {
	s.calls++

	return s.id, s.err
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testMessage() *service.EmailMessage {
	return &service.EmailMessage{
		To:      "jane@example.com",
		Subject: "Your FitSAGA Membership Contract",
		HTML:    "<h1>FitSAGA Membership Contract</h1>",
		Attachments: []service.Attachment{
			{Filename: "FitSAGA_Contract.pdf", ContentType: "application/pdf", Data: []byte("%PDF")},
		},
	}
}

func TestRankedMailer_SendEmail_FirstSuccessWins(t *testing.T) {
	primary := &stubSender{name: "smtp", id: "<abc@fitsaga>"}
	fallback := &stubSender{name: "log", id: "fallback-1"}
	mailer := NewRankedMailer(discardLogger(), primary, fallback)

	result, err := mailer.SendEmail(context.Background(), testMessage())

	require.NoError(t, err)
	assert.Equal(t, &service.DeliveryResult{Provider: "smtp", MessageID: "<abc@fitsaga>"}, result)
	assert.Zero(t, fallback.calls)
}

func TestRankedMailer_SendEmail_FallsBack(t *testing.T) {
	primary := &stubSender{name: "smtp", err: errors.New("connection refused")}
	fallback := &stubSender{name: "log", id: "fallback-1"}
	mailer := NewRankedMailer(discardLogger(), primary, fallback)

	result, err := mailer.SendEmail(context.Background(), testMessage())

	require.NoError(t, err)
	assert.Equal(t, "log", result.Provider)
	assert.Equal(t, 1, primary.calls)
}

func TestRankedMailer_SendEmail_Exhausted(t *testing.T) {
	mailer := NewRankedMailer(discardLogger(), &stubSender{name: "smtp", err: errors.New("boom")})

	_, err := mailer.SendEmail(context.Background(), testMessage())

	assert.ErrorIs(t, err, service.ErrMailExhausted)
}

func TestLogSender_Send_ReturnsFallbackID(t *testing.T) {
	sender := &logSender{
		logger: discardLogger(),
		now:    func() time.Time { return time.UnixMilli(1700000000123) },
	}

	id, err := sender.Send(context.Background(), testMessage())

	require.NoError(t, err)
	assert.Equal(t, "fallback-1700000000123", id)
}

func TestNewMailer_WithoutSMTPUsesLogOnly(t *testing.T) {
	mailer := NewMailer(&config.Config{Email: &config.EmailConfig{Host: "smtp.gmail.com"}}, discardLogger())

	result, err := mailer.SendEmail(context.Background(), testMessage())

	require.NoError(t, err)
	assert.Equal(t, "log", result.Provider)
}

func TestBuildMessage(t *testing.T) {
	m, err := buildMessage(`"FitSAGA" <noreply@fitsaga.com>`, testMessage())
	require.NoError(t, err)

	assert.NotEmpty(t, m.GetMessageID())
	assert.Len(t, m.GetAttachments(), 1)
	assert.Equal(t, []string{"Your FitSAGA Membership Contract"}, m.GetGenHeader("Subject"))
}

func TestBuildMessage_InvalidRecipient(t *testing.T) {
	msg := testMessage()
	msg.To = "not an address"

	_, err := buildMessage(`"FitSAGA" <noreply@fitsaga.com>`, msg)

	assert.Error(t, err)
}
