package web

import (
	"fmt"
	"html/template"
	"strings"

	"aimlaw-web/internal/domain"
	"aimlaw-web/pkg/validation"
)

// alternate is a hreflang link to the same page in another locale
type alternate struct {
	Lang  string
	Label string
	Href  string
}

type legalSection struct {
	Title string
	Body  template.HTML
}

type legalPage struct {
	Namespace string
	Sections  []legalSection
}

// contactForm is the state of the contact form on one render
type contactForm struct {
	Values domain.ContactSubmission
	Errors map[string][]string
	Sent   bool
	Failed bool

	schema []validation.FieldSchema
}

// Attrs renders the browser-side constraints for a field from the same
// validate tags the server enforces.
func (f *contactForm) Attrs(name string) template.HTMLAttr {
	fs, ok := validation.Lookup(f.schema, name)
	if !ok {
		return ""
	}
	var parts []string
	if fs.Required || fs.MustBeTrue {
		parts = append(parts, "required")
	}
	if fs.Type == "string" && fs.Format == "" {
		if fs.Min != nil {
			parts = append(parts, fmt.Sprintf(`minlength="%d"`, *fs.Min))
		}
		if fs.Max != nil {
			parts = append(parts, fmt.Sprintf(`maxlength="%d"`, *fs.Max))
		}
	}
	if len(f.Errors[name]) > 0 {
		parts = append(parts, `aria-invalid="true"`)
	}
	return template.HTMLAttr(strings.Join(parts, " "))
}

// page is the data every template receives
type page struct {
	Locale      domain.Locale
	Lang        string
	OGLocale    string
	Title       string
	Description string
	Canonical   string
	Alternates  []alternate
	Year        string
	CSRFToken   string

	Site     domain.SiteInfo
	Services []domain.Service

	// page specific
	Keys    []string
	Service domain.Service
	Legal   *legalPage
	Form    *contactForm

	bundle *domain.Bundle
}

func (p *page) T(key string, vars ...string) string {
	return p.bundle.T(key, vars...)
}

// ServiceTitle prefers the localized title and falls back to the catalog copy.
func (p *page) ServiceTitle(s domain.Service) string {
	return p.bundle.TOr("services."+s.Key+".title", s.Title)
}

func (p *page) ServiceText(s domain.Service, field string) string {
	fallback := s.Description
	if field == "shortDescription" {
		fallback = s.ShortDescription
	}
	return p.bundle.TOr("services."+s.Key+"."+field, fallback)
}

func (p *page) AreaTitle(s domain.Service, a domain.ServiceArea) string {
	return p.bundle.TOr("services."+s.Key+".areas."+a.Key+".title", a.Title)
}

func (p *page) AreaDescription(s domain.Service, a domain.ServiceArea) string {
	return p.bundle.TOr("services."+s.Key+".areas."+a.Key+".description", a.Description)
}
