package email

import (
	"context"
	"fmt"

	"aimlaw-web/internal/domain"

	"github.com/resend/resend-go/v2"
)

// resendEmails is the part of the Resend client used here
type resendEmails interface {
	SendWithContext(ctx context.Context, params *resend.SendEmailRequest) (*resend.SendEmailResponse, error)
}

// ResendSender delivers email through the Resend HTTP API
type ResendSender struct {
	apiKey string
	emails resendEmails
}

// NewResendSender creates a sender for apiKey. An empty key yields an unconfigured sender.
func NewResendSender(apiKey string) *ResendSender {
	s := &ResendSender{apiKey: apiKey}
	if apiKey != "" {
		s.emails = resend.NewClient(apiKey).Emails
	}
	return s
}

// IsConfigured checks if the Resend API key is present
func (s *ResendSender) IsConfigured() bool {
	return s.apiKey != "" && s.emails != nil
}

func (s *ResendSender) Send(ctx context.Context, msg *domain.EmailMessage) error {
	if !s.IsConfigured() {
		return ErrNotConfigured
	}

	params := &resend.SendEmailRequest{
		From:    msg.From,
		To:      msg.To,
		ReplyTo: msg.ReplyTo,
		Subject: msg.Subject,
		Html:    msg.HTML,
	}

	sent, err := s.emails.SendWithContext(ctx, params)
	if err != nil {
		return fmt.Errorf("resend: failed to send email: %w", err)
	}
	if sent == nil || sent.Id == "" {
		return fmt.Errorf("resend: empty response for %q", msg.Subject)
	}
	return nil
}
