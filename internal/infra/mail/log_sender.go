package mail

import (
	"context"
	"log/slog"
	"strconv"
	"time"

	deliverycontext "fitsaga/internal/delivery/context"
	"fitsaga/internal/domain/service"
)

// logSender records the message instead of sending it. It always succeeds, so it ranks last.
type logSender struct {
	logger *slog.Logger
	now    func() time.Time
}

// NewLogSender is the constructor for logSender.
func NewLogSender(logger *slog.Logger) service.MailSender {
	return &logSender{
		logger: logger,
		now:    time.Now,
	}
}

func (s *logSender) Name() string {
	return "log"
}

func (s *logSender) Send(ctx context.Context, msg *service.EmailMessage) (string, error) {
	attachments := make([]string, 0, len(msg.Attachments))
	for _, attachment := range msg.Attachments {
		attachments = append(attachments, attachment.Filename)
	}

	deliverycontext.GetLoggerOrDefault(ctx, s.logger).Info("Email not sent, logged instead",
		slog.String("to", msg.To),
		slog.String("subject", msg.Subject),
		slog.Any("attachments", attachments),
		slog.String("html", msg.HTML),
	)

	return "fallback-" + strconv.FormatInt(s.now().UnixMilli(), 10), nil
}
