// Package mail sends transactional email through a ranked list of senders.
package mail

import (
	"context"
	"log/slog"

	"fitsaga/config"
	deliverycontext "fitsaga/internal/delivery/context"
	"fitsaga/internal/domain/service"
	"fitsaga/internal/errors"
)

type rankedMailer struct {
	senders []service.MailSender
	logger  *slog.Logger
}

// NewRankedMailer tries senders in the given order.
func NewRankedMailer(logger *slog.Logger, senders ...service.MailSender) service.Mailer {
	return &rankedMailer{
		senders: senders,
		logger:  logger,
	}
}

// NewMailer ranks SMTP first when a host and user are configured, and the log sender last.
func NewMailer(cfg *config.Config, logger *slog.Logger) service.Mailer {
	var senders []service.MailSender
	if email := cfg.Email; email != nil && email.Host != "" && email.User != "" {
		senders = append(senders, NewSMTPSender(email))
	} else {
		logger.Info("SMTP not configured, emails will be logged")
	}
	senders = append(senders, NewLogSender(logger))

	return NewRankedMailer(logger, senders...)
}

func (m *rankedMailer) SendEmail(ctx context.Context, msg *service.EmailMessage) (*service.DeliveryResult, error) {
	logger := deliverycontext.GetLoggerOrDefault(ctx, m.logger)

	var failures []error
	for _, sender := range m.senders {
		messageID, err := sender.Send(ctx, msg)
		if err != nil {
			logger.Warn("Mail sender failed, trying next",
				slog.String("sender", sender.Name()),
				slog.String("to", msg.To),
				slog.Any("error", err),
			)
			failures = append(failures, err)

			continue
		}

		return &service.DeliveryResult{
			Provider:  sender.Name(),
			MessageID: messageID,
		}, nil
	}

	return nil, errors.Join(append([]error{service.ErrMailExhausted}, failures...)...)
}
