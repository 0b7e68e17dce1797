package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"aimlaw-web/internal/domain"
	"aimlaw-web/pkg/email"
	"aimlaw-web/pkg/logger"
	"aimlaw-web/pkg/validation"

	"github.com/go-playground/validator/v10"
)

// consentTimeLayout matches JavaScript's toISOString, e.g. 2026-10-17T14:03:07.512Z
const consentTimeLayout = "2006-01-02T15:04:05.000Z07:00"

// ContactConfig holds the addresses used for outbound mail.
// Empty fields fall back to the catalog's site info.
type ContactConfig struct {
	From     string
	IntakeTo string
	SiteURL  string
}

type contactUsecase struct {
	catalog  domain.ServiceCatalog
	locales  domain.LocaleUsecase
	sender   domain.EmailSender
	validate *validator.Validate
	cfg      ContactConfig
	now      func() time.Time
}

// NewContactUsecase creates a new contact usecase.
// A nil or unconfigured sender puts the usecase in log-only mode.
func NewContactUsecase(
	catalog domain.ServiceCatalog,
	locales domain.LocaleUsecase,
	sender domain.EmailSender,
	validate *validator.Validate,
	cfg ContactConfig,
) domain.ContactUsecase {
	site := catalog.Site()
	if cfg.From == "" {
		cfg.From = site.NoReplyAddress()
	}
	if cfg.IntakeTo == "" {
		cfg.IntakeTo = site.Email
	}
	if cfg.SiteURL == "" {
		cfg.SiteURL = site.URL
	}

	return &contactUsecase{
		catalog:  catalog,
		locales:  locales,
		sender:   sender,
		validate: validate,
		cfg:      cfg,
		now:      time.Now,
	}
}

func (uc *contactUsecase) Validate(ctx context.Context, sub *domain.ContactSubmission, bundle *domain.Bundle) validation.FieldErrors {
	if bundle == nil {
		bundle = uc.locales.Default()
	}
	if sub == nil {
		sub = &domain.ContactSubmission{}
	}
	return validation.FormatValidationErrors(uc.validate.StructCtx(ctx, sub), bundle)
}

// Submit sends the intake notification and then a best-effort confirmation.
// Only the notification decides the result.
func (uc *contactUsecase) Submit(ctx context.Context, sub *domain.ContactSubmission) (result domain.SubmissionResult) {
	log := logger.Log.With("request_id", requestID(ctx))

	defer func() {
		if r := recover(); r != nil {
			log.Error("Contact form error", "panic", fmt.Sprint(r), "service", serviceOf(sub))
			result = failure(domain.ErrMsgUnexpected)
		}
	}()

	if sub == nil {
		return failure(domain.ErrMsgInvalidForm)
	}

	if err := uc.validate.StructCtx(ctx, sub); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			log.Warn("Contact form rejected by server-side validation", "fields", fieldNames(verrs))
			return failure(domain.ErrMsgInvalidForm)
		}
		log.Error("Contact form validation error", "error", err)
		return failure(domain.ErrMsgUnexpected)
	}

	label := uc.serviceLabel(sub.Service)

	if uc.sender == nil || !uc.sender.IsConfigured() {
		log.Info("Contact form submission (no email sent - provider not configured)",
			"name", sub.FullName(),
			"email", sub.Email,
			"phone", sub.Phone,
			"service", label,
			"message", sub.Message,
			"caslConsent", sub.CASLConsent,
			"timestamp", uc.now().UTC().Format(consentTimeLayout),
		)
		return domain.SubmissionResult{Success: true}
	}

	notification, err := uc.notification(sub, label)
	if err != nil {
		log.Error("Failed to build contact notification", "error", err, "service", sub.Service)
		return failure(domain.ErrMsgUnexpected)
	}

	if err := uc.sender.Send(ctx, notification); err != nil {
		log.Error("Failed to send contact notification", "error", err, "service", sub.Service, "locale", sub.Locale)
		return failure(domain.ErrMsgSendFailed)
	}
	log.Info("Contact notification sent", "service", sub.Service, "locale", sub.Locale)

	// The firm has the lead at this point; the receipt is a courtesy.
	if err := uc.sendConfirmation(ctx, sub, label); err != nil {
		log.Warn("Failed to send contact confirmation", "error", err, "service", sub.Service, "locale", sub.Locale)
	}

	return domain.SubmissionResult{Success: true}
}

// serviceLabel returns the catalog title for id, or id itself when the catalog has no such service
func (uc *contactUsecase) serviceLabel(id string) string {
	if s, ok := uc.catalog.FindByID(id); ok && s.Title != "" {
		return s.Title
	}
	return id
}

func (uc *contactUsecase) notification(sub *domain.ContactSubmission, label string) (*domain.EmailMessage, error) {
	html, err := email.RenderNotification(email.NotificationData{
		FullName:     sub.FullName(),
		Email:        sub.Email,
		Phone:        sub.Phone,
		ServiceLabel: label,
		Message:      sub.Message,
		ConsentAt:    uc.now().UTC().Format(consentTimeLayout),
		SiteURL:      uc.cfg.SiteURL,
	})
	if err != nil {
		return nil, err
	}

	return &domain.EmailMessage{
		From:    uc.cfg.From,
		To:      []string{uc.cfg.IntakeTo},
		ReplyTo: sub.Email,
		Subject: "New Contact Form Submission - " + label,
		HTML:    html,
	}, nil
}

func (uc *contactUsecase) sendConfirmation(ctx context.Context, sub *domain.ContactSubmission, label string) error {
	bundle, err := uc.locales.Resolve(string(sub.Locale))
	if err != nil {
		bundle = uc.locales.Default()
	}

	if s, ok := uc.catalog.FindByID(sub.Service); ok {
		label = bundle.TOr("services."+s.Key+".title", label)
	}

	site := uc.catalog.Site()
	t := func(key string) string {
		return bundle.T("email.confirmation."+key,
			"site", site.Name,
			"name", sub.FirstName,
			"service", label,
			"phone", site.Phone,
			"email", site.Email,
		)
	}

	html, err := email.RenderConfirmation(email.ConfirmationData{
		Lang:       string(bundle.Locale),
		Heading:    t("heading"),
		Greeting:   t("greeting"),
		Body:       t("body"),
		Assistance: t("assistance"),
		SignOff:    t("signOff"),
		Team:       t("team"),
		Footer:     t("footer"),
	})
	if err != nil {
		return err
	}

	return uc.sender.Send(ctx, &domain.EmailMessage{
		From:    uc.cfg.From,
		To:      []string{sub.Email},
		Subject: t("subject"),
		HTML:    html,
	})
}

func failure(msg string) domain.SubmissionResult {
	return domain.SubmissionResult{Success: false, Error: msg}
}

func requestID(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	id, _ := ctx.Value(domain.KeyRequestID).(string)
	return id
}

func serviceOf(sub *domain.ContactSubmission) string {
	if sub == nil {
		return ""
	}
	return sub.Service
}

func fieldNames(errs validator.ValidationErrors) string {
	names := make([]string, len(errs))
	for i, e := range errs {
		names[i] = e.Field()
	}
	return strings.Join(names, ",")
}
