// Package mail implements the outbound mail collaborator over SMTP.
package mail

import (
	"context"
	"log/slog"

	"placement/config"
	"placement/internal/domain/service"

	"github.com/pkg/errors"
	gomail "github.com/wneessen/go-mail"
)

// smtpSender delivers mail through a configured SMTP relay.
type smtpSender struct {
	client *gomail.Client
	from   string
	logger *slog.Logger
}

// unconfiguredSender is returned when no usable mail section is present.
// Send succeeds without doing anything; callers check Configured to decide
// whether delivery actually happens.
type unconfiguredSender struct{}

func (unconfiguredSender) Send(context.Context, service.MailMessage) error { return nil }
func (unconfiguredSender) Configured() bool                                { return false }

// NewSMTPSender builds the MailSender from config. Missing host or
// credentials yield an unconfigured sender rather than an error so that
// development environments run without a relay.
func NewSMTPSender(cfg *config.Config, logger *slog.Logger) (service.MailSender, error) {
	mc := cfg.Mail
	if mc == nil || mc.Host == "" || mc.Username == "" || mc.Password == "" {
		return unconfiguredSender{}, nil
	}

	opts := []gomail.Option{
		gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
		gomail.WithUsername(mc.Username),
		gomail.WithPassword(mc.Password),
	}
	if mc.Port > 0 {
		opts = append(opts, gomail.WithPort(mc.Port))
	}

	client, err := gomail.NewClient(mc.Host, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create SMTP client")
	}

	from := mc.From
	if from == "" {
		from = mc.Username
	}

	return &smtpSender{
		client: client,
		from:   from,
		logger: logger,
	}, nil
}

// Send dispatches a plain-text message.
func (s *smtpSender) Send(ctx context.Context, msg service.MailMessage) error {
	m := gomail.NewMsg()
	if err := m.From(s.from); err != nil {
		return errors.Wrap(err, "invalid sender address")
	}
	if err := m.To(msg.To); err != nil {
		return errors.Wrap(err, "invalid recipient address")
	}
	m.Subject(msg.Subject)
	m.SetBodyString(gomail.TypeTextPlain, msg.Text)

	if err := s.client.DialAndSendWithContext(ctx, m); err != nil {
		s.logger.Warn("Mail dispatch failed", slog.String("to", msg.To), slog.Any("error", err))

		return errors.Wrap(err, "failed to dispatch mail")
	}

	return nil
}

// Configured reports that a real relay is wired in.
func (s *smtpSender) Configured() bool {
	return true
}
