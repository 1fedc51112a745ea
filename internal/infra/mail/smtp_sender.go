package mail

import (
	"bytes"
	"context"
	"time"

	"fitsaga/config"
	"fitsaga/internal/domain/service"
	"fitsaga/internal/errors"

	gomail "github.com/wneessen/go-mail"
)

const smtpTimeout = 30 * time.Second

// smtpSender delivers mail through the configured SMTP relay.
type smtpSender struct {
	cfg *config.EmailConfig
}

// NewSMTPSender is the constructor for smtpSender.
func NewSMTPSender(cfg *config.EmailConfig) service.MailSender {
	return &smtpSender{cfg: cfg}
}

func (s *smtpSender) Name() string {
	return "smtp"
}

func (s *smtpSender) Send(ctx context.Context, msg *service.EmailMessage) (string, error) {
	m, err := buildMessage(s.cfg.From, msg)
	if err != nil {
		return "", err
	}

	opts := []gomail.Option{
		gomail.WithPort(s.cfg.Port),
		gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
		gomail.WithUsername(s.cfg.User),
		gomail.WithPassword(s.cfg.Password),
		gomail.WithTimeout(smtpTimeout),
	}
	if s.cfg.Secure {
		opts = append(opts, gomail.WithSSLPort(false))
	} else {
		opts = append(opts, gomail.WithTLSPolicy(gomail.TLSOpportunistic))
	}

	client, err := gomail.NewClient(s.cfg.Host, opts...)
	if err != nil {
		return "", errors.Wrap(err, "failed to create SMTP client")
	}

	if err := client.DialAndSendWithContext(ctx, m); err != nil {
		return "", errors.Wrapf(err, "failed to send mail via %s", s.cfg.Host)
	}

	return m.GetMessageID(), nil
}

func buildMessage(from string, msg *service.EmailMessage) (*gomail.Msg, error) {
	m := gomail.NewMsg()
	if err := m.From(from); err != nil {
		return nil, errors.Wrap(err, "invalid sender address")
	}
	if err := m.To(msg.To); err != nil {
		return nil, errors.Wrap(err, "invalid recipient address")
	}
	m.Subject(msg.Subject)
	m.SetMessageID()
	m.SetDate()

	m.SetBodyString(gomail.TypeTextHTML, msg.HTML)
	if msg.Text != "" {
		m.AddAlternativeString(gomail.TypeTextPlain, msg.Text)
	}

	for _, attachment := range msg.Attachments {
		err := m.AttachReader(attachment.Filename, bytes.NewReader(attachment.Data),
			gomail.WithFileContentType(gomail.ContentType(attachment.ContentType)))
		if err != nil {
			return nil, errors.Wrapf(err, "failed to attach %s", attachment.Filename)
		}
	}

	return m, nil
}
