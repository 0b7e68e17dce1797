package usecase

import (
	"fmt"

	"aimlaw-web/internal/domain"
)

type localeUsecase struct {
	bundles   map[domain.Locale]*domain.Bundle
	supported []domain.Locale
	def       *domain.Bundle
}

// NewLocaleUsecase creates the resolver over a fixed set of bundles.
// The bundle for domain.DefaultLocale must be present.
func NewLocaleUsecase(bundles []*domain.Bundle) (domain.LocaleUsecase, error) {
	uc := &localeUsecase{
		bundles: make(map[domain.Locale]*domain.Bundle, len(bundles)),
	}
	for _, b := range bundles {
		if _, dup := uc.bundles[b.Locale]; dup {
			return nil, fmt.Errorf("duplicate bundle for locale %q", b.Locale)
		}
		uc.bundles[b.Locale] = b
		uc.supported = append(uc.supported, b.Locale)
	}

	def, ok := uc.bundles[domain.DefaultLocale]
	if !ok {
		return nil, fmt.Errorf("no bundle for default locale %q", domain.DefaultLocale)
	}
	uc.def = def
	return uc, nil
}

// Resolve matches the segment exactly; "EN", "en-US" and "" are all unknown.
func (uc *localeUsecase) Resolve(segment string) (*domain.Bundle, error) {
	b, ok := uc.bundles[domain.Locale(segment)]
	if !ok {
		return nil, fmt.Errorf("%w: %q", domain.ErrLocaleNotFound, segment)
	}
	return b, nil
}

func (uc *localeUsecase) Default() *domain.Bundle {
	return uc.def
}

func (uc *localeUsecase) Supported() []domain.Locale {
	out := make([]domain.Locale, len(uc.supported))
	copy(out, uc.supported)
	return out
}
