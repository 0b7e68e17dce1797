package domain

import (
	"errors"
	"maps"
	"strings"

	"golang.org/x/text/language"
)

// Locale is a URL path segment identifying a site language
type Locale string

const (
	LocaleEN Locale = "en"
	LocaleZH Locale = "zh"

	DefaultLocale = LocaleEN
)

var ErrLocaleNotFound = errors.New("locale not found")

// Bundle is the immutable set of translated strings for one locale.
// Keys are dot paths such as "contact.headline".
type Bundle struct {
	Locale   Locale
	Tag      language.Tag
	OGLocale string

	messages map[string]string
}

// NewBundle copies messages so later changes by the caller are not visible.
func NewBundle(locale Locale, tag language.Tag, ogLocale string, messages map[string]string) *Bundle {
	return &Bundle{
		Locale:   locale,
		Tag:      tag,
		OGLocale: ogLocale,
		messages: maps.Clone(messages),
	}
}

// Lookup returns the raw string stored under key
func (b *Bundle) Lookup(key string) (string, bool) {
	v, ok := b.messages[key]
	return v, ok
}

// T returns the translation for key with {name} placeholders replaced.
// vars are name/value pairs. A missing key yields the key itself.
func (b *Bundle) T(key string, vars ...string) string {
	v, ok := b.messages[key]
	if !ok {
		return key
	}
	if len(vars) < 2 {
		return v
	}
	pairs := make([]string, 0, len(vars))
	for i := 0; i+1 < len(vars); i += 2 {
		pairs = append(pairs, "{"+vars[i]+"}", vars[i+1])
	}
	return strings.NewReplacer(pairs...).Replace(v)
}

// TOr is T with an explicit fallback for missing keys.
func (b *Bundle) TOr(key, fallback string) string {
	if _, ok := b.messages[key]; !ok {
		return fallback
	}
	return b.T(key)
}

// Messages returns a copy of every key/value pair in the bundle
func (b *Bundle) Messages() map[string]string {
	return maps.Clone(b.messages)
}

func (b *Bundle) Len() int {
	return len(b.messages)
}

// LocaleUsecase resolves path segments to translation bundles
type LocaleUsecase interface {
	// Resolve returns the bundle for segment or ErrLocaleNotFound.
	Resolve(segment string) (*Bundle, error)
	Default() *Bundle
	Supported() []Locale
}
