package email

import (
	"context"
	"errors"
	"fmt"

	"aimlaw-web/internal/domain"

	"gopkg.in/gomail.v2"
)

var ErrNotConfigured = errors.New("email provider is not configured")

type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
}

type dialer interface {
	DialAndSend(m ...*gomail.Message) error
}

// SMTPSender handles sending emails via SMTP
type SMTPSender struct {
	config SMTPConfig
	dialer dialer
}

func NewSMTPSender(config SMTPConfig) *SMTPSender {
	return &SMTPSender{
		config: config,
		dialer: gomail.NewDialer(config.Host, config.Port, config.Username, config.Password),
	}
}

// IsConfigured checks if the email service has valid SMTP configuration
func (s *SMTPSender) IsConfigured() bool {
	return s.config.Host != "" && s.config.Username != "" && s.config.Password != ""
}

func (s *SMTPSender) Send(ctx context.Context, msg *domain.EmailMessage) error {
	if !s.IsConfigured() {
		return ErrNotConfigured
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	m := gomail.NewMessage()
	m.SetHeader("From", msg.From)
	m.SetHeader("To", msg.To...)
	if msg.ReplyTo != "" {
		m.SetHeader("Reply-To", msg.ReplyTo)
	}
	m.SetHeader("Subject", msg.Subject)
	m.SetBody("text/html", msg.HTML)

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}
