package usecase

import (
	"context"
	"strings"

	"aimlaw-web/internal/domain"
)

type HealthUsecase interface {
	Check(ctx context.Context) map[string]string
}

type healthUsecase struct {
	sender  domain.EmailSender
	locales domain.LocaleUsecase
}

func NewHealthUsecase(sender domain.EmailSender, locales domain.LocaleUsecase) HealthUsecase {
	return &healthUsecase{
		sender:  sender,
		locales: locales,
	}
}

// Check reports whether contact mail is delivered or only logged
func (u *healthUsecase) Check(ctx context.Context) map[string]string {
	email := "log-only"
	if u.sender != nil && u.sender.IsConfigured() {
		email = "configured"
	}

	supported := u.locales.Supported()
	names := make([]string, len(supported))
	for i, loc := range supported {
		names[i] = string(loc)
	}

	return map[string]string{
		"status":  "ok",
		"email":   email,
		"locales": strings.Join(names, ","),
	}
}
