package domain

import (
	"context"

	"aimlaw-web/pkg/validation"
)

// ContactSubmission represents a contact form submission.
// The validate tags are the only copy of the form rules: the server check and
// the rendered form constraints are both derived from them.
type ContactSubmission struct {
	FirstName   string `json:"firstName" form:"firstName" validate:"required,min=1,max=50"`
	LastName    string `json:"lastName" form:"lastName" validate:"required,min=1,max=50"`
	Email       string `json:"email" form:"email" validate:"required,email"`
	Phone       string `json:"phone" form:"phone" validate:"required,min=10,max=20"`
	Service     string `json:"service" form:"service" validate:"required"`
	Message     string `json:"message" form:"message" validate:"required,min=10,max=1000"`
	CASLConsent bool   `json:"caslConsent" form:"caslConsent" validate:"consent"`

	// Locale the form was submitted from; selects the confirmation email language.
	Locale Locale `json:"-" form:"-"`
}

// FullName joins first and last name.
func (s *ContactSubmission) FullName() string {
	return s.FirstName + " " + s.LastName
}

// SubmissionResult is the outcome reported back to the visitor.
type SubmissionResult struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

// User-facing failure messages
const (
	ErrMsgInvalidForm = "Invalid form data. Please check your inputs."
	ErrMsgSendFailed  = "Failed to send email. Please try again later."
	ErrMsgUnexpected  = "An unexpected error occurred. Please try again later."
)

// EmailMessage is a single outbound HTML email.
type EmailMessage struct {
	From    string
	To      []string
	ReplyTo string
	Subject string
	HTML    string
}

// EmailSender delivers email through a transactional provider
type EmailSender interface {
	// IsConfigured reports whether the provider credential is present
	IsConfigured() bool
	Send(ctx context.Context, msg *EmailMessage) error
}

// ContactUsecase defines the interface for contact form operations
type ContactUsecase interface {
	// Validate checks a submission against the form schema and returns every violation,
	// with messages in the bundle's language.
	Validate(ctx context.Context, sub *ContactSubmission, bundle *Bundle) validation.FieldErrors
	// Submit re-validates and dispatches the submission. It never returns an error;
	// every failure is reported through the result.
	Submit(ctx context.Context, sub *ContactSubmission) SubmissionResult
}
