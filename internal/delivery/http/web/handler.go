package web

import (
	"errors"
	"fmt"
	"html/template"
	"net/http"
	"strconv"
	"strings"
	"time"

	"aimlaw-web/internal/delivery/http/middleware"
	"aimlaw-web/internal/delivery/http/response"
	"aimlaw-web/internal/domain"
	"aimlaw-web/pkg/logger"
	"aimlaw-web/pkg/markdown"
	"aimlaw-web/pkg/validation"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/render"
	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

var (
	whyChooseUs = []string{"experience", "bilingual", "personalized", "transparent"}
	aboutValues = []string{"integrity", "excellence", "accessibility", "clientFocused"}

	legalSections = map[string][]string{
		"privacy": {"informationWeCollect", "howWeUse", "dataSecurity", "yourRights", "contactUs"},
		"terms":   {"generalUse", "noLegalAdvice", "noLawyerClient", "privacyPolicy", "governingLaw"},
	}
)

type Deps struct {
	Catalog   domain.ServiceCatalog
	LocaleUC  domain.LocaleUsecase
	ContactUC domain.ContactUsecase
	SiteURL   string
	// SecureCookies marks the CSRF cookie Secure; off for plain-http development
	SecureCookies bool
}

type Handler struct {
	catalog   domain.ServiceCatalog
	localeUC  domain.LocaleUsecase
	contactUC domain.ContactUsecase
	siteURL   string
	templates map[string]*template.Template
	schema    []validation.FieldSchema
	legal     map[domain.Locale]map[string]*legalPage
	now       func() time.Time
}

func NewHandler(deps Deps) (*Handler, error) {
	templates, err := parseTemplates()
	if err != nil {
		return nil, err
	}

	h := &Handler{
		catalog:   deps.Catalog,
		localeUC:  deps.LocaleUC,
		contactUC: deps.ContactUC,
		siteURL:   strings.TrimRight(deps.SiteURL, "/"),
		templates: templates,
		schema:    validation.Describe(domain.ContactSubmission{}),
		now:       time.Now,
	}
	if h.siteURL == "" {
		h.siteURL = deps.Catalog.Site().URL
	}

	h.legal, err = renderLegalPages(markdown.NewRenderer(), deps.LocaleUC)
	if err != nil {
		return nil, err
	}
	return h, nil
}

// Register mounts the site pages. Every supported locale gets its own route
// group; any other first path segment falls through to the 404 handler.
func Register(r *gin.Engine, deps Deps) error {
	h, err := NewHandler(deps)
	if err != nil {
		return err
	}

	r.GET("/", h.Root)
	r.GET("/robots.txt", h.Robots)
	r.GET("/sitemap.xml", h.Sitemap)

	for _, loc := range deps.LocaleUC.Supported() {
		g := r.Group("/"+string(loc), h.withLocale(loc), middleware.CSRFMiddleware(deps.SecureCookies, h.Forbidden))
		g.GET("", h.Home)
		g.GET("/about", h.About)
		g.GET("/services", h.Services)
		g.GET("/services/:slug", h.ServiceDetail)
		g.GET("/contact", h.Contact)
		g.POST("/contact", h.SubmitContact)
		g.GET("/privacy", h.Legal("privacy"))
		g.GET("/terms", h.Legal("terms"))
	}

	r.NoRoute(h.NotFound)
	return nil
}

func renderLegalPages(md *markdown.Renderer, localeUC domain.LocaleUsecase) (map[domain.Locale]map[string]*legalPage, error) {
	out := make(map[domain.Locale]map[string]*legalPage)
	for _, loc := range localeUC.Supported() {
		bundle, err := localeUC.Resolve(string(loc))
		if err != nil {
			return nil, err
		}
		out[loc] = make(map[string]*legalPage, len(legalSections))
		for ns, keys := range legalSections {
			lp := &legalPage{Namespace: ns}
			for _, key := range keys {
				body, err := md.Render(bundle.T(ns + "." + key + ".content"))
				if err != nil {
					return nil, fmt.Errorf("render %s %s.%s: %w", loc, ns, key, err)
				}
				lp.Sections = append(lp.Sections, legalSection{
					Title: bundle.T(ns + "." + key + ".title"),
					Body:  body,
				})
			}
			out[loc][ns] = lp
		}
	}
	return out, nil
}

// withLocale resolves the locale of the route group once per request
func (h *Handler) withLocale(loc domain.Locale) gin.HandlerFunc {
	return func(c *gin.Context) {
		bundle, err := h.localeUC.Resolve(string(loc))
		if err != nil {
			h.NotFound(c)
			c.Abort()
			return
		}
		c.Set(string(domain.KeyLocale), bundle)
		c.Next()
	}
}

func (h *Handler) bundle(c *gin.Context) *domain.Bundle {
	if b, ok := h.bundleFromContext(c); ok {
		return b
	}
	return h.localeUC.Default()
}

// newPage fills the data shared by every page; path is relative to the locale root.
func (h *Handler) newPage(c *gin.Context, b *domain.Bundle, path, title string) *page {
	p := &page{
		Locale:      b.Locale,
		Lang:        b.Tag.String(),
		OGLocale:    b.OGLocale,
		Title:       title,
		Description: b.T("meta.description"),
		Canonical:   h.siteURL + "/" + string(b.Locale) + path,
		Year:        strconv.Itoa(h.now().Year()),
		CSRFToken:   middleware.CSRFToken(c),
		Site:        h.catalog.Site(),
		Services:    h.catalog.List(),
		bundle:      b,
	}
	for _, loc := range h.localeUC.Supported() {
		other, err := h.localeUC.Resolve(string(loc))
		if err != nil {
			continue
		}
		p.Alternates = append(p.Alternates, alternate{
			Lang:  string(loc),
			Label: languageName(other.Tag),
			Href:  h.siteURL + "/" + string(loc) + path,
		})
	}
	return p
}

// languageName is the language's own name, e.g. "English" or "中文"
func languageName(tag language.Tag) string {
	base, _ := tag.Base()
	if name := display.Self.Name(base); name != "" {
		return name
	}
	return base.String()
}

func (h *Handler) render(c *gin.Context, status int, name string, p *page) {
	c.Render(status, render.HTML{
		Template: h.templates[name],
		Name:     layoutName,
		Data:     p,
	})
}

// Root sends visitors without a locale prefix to the default locale
func (h *Handler) Root(c *gin.Context) {
	c.Redirect(http.StatusFound, "/"+string(h.localeUC.Default().Locale))
}

func (h *Handler) Home(c *gin.Context) {
	b := h.bundle(c)
	p := h.newPage(c, b, "", "")
	p.Keys = whyChooseUs
	h.render(c, http.StatusOK, pageHome, p)
}

func (h *Handler) About(c *gin.Context) {
	b := h.bundle(c)
	p := h.newPage(c, b, "/about", b.T("about.title"))
	p.Description = b.T("about.description")
	p.Keys = aboutValues
	h.render(c, http.StatusOK, pageAbout, p)
}

func (h *Handler) Services(c *gin.Context) {
	b := h.bundle(c)
	p := h.newPage(c, b, "/services", b.T("services.title"))
	p.Description = b.T("services.description")
	h.render(c, http.StatusOK, pageServices, p)
}

func (h *Handler) ServiceDetail(c *gin.Context) {
	slug := c.Param("slug")
	svc, ok := h.catalog.FindByID(slug)
	if !ok {
		h.NotFound(c)
		return
	}

	b := h.bundle(c)
	p := h.newPage(c, b, "/services/"+svc.ID, "")
	p.Service = *svc
	p.Title = p.ServiceTitle(*svc)
	p.Description = p.ServiceText(*svc, "shortDescription")
	h.render(c, http.StatusOK, pageService, p)
}

func (h *Handler) Legal(namespace string) gin.HandlerFunc {
	return func(c *gin.Context) {
		b := h.bundle(c)
		lp, ok := h.legal[b.Locale][namespace]
		if !ok {
			h.NotFound(c)
			return
		}
		p := h.newPage(c, b, "/"+namespace, b.T(namespace+".title"))
		p.Description = b.T(namespace + ".subtitle")
		p.Legal = lp
		h.render(c, http.StatusOK, pageLegal, p)
	}
}

// NotFound renders the 404 page in the locale named by the first path
// segment when it is supported, otherwise in the default locale.
// Unknown API paths get the JSON envelope instead.
func (h *Handler) NotFound(c *gin.Context) {
	path := c.Request.URL.Path
	if path == "/v1" || strings.HasPrefix(path, "/v1/") {
		response.Error(c, http.StatusNotFound, "Resource not found", nil)
		return
	}

	b, ok := h.bundleFromContext(c)
	if !ok {
		segment, _, _ := strings.Cut(strings.TrimPrefix(path, "/"), "/")
		var err error
		b, err = h.localeUC.Resolve(segment)
		if err != nil {
			if !errors.Is(err, domain.ErrLocaleNotFound) {
				logger.Log.Error("Failed to resolve locale", "segment", segment, "error", err)
			}
			b = h.localeUC.Default()
		}
	}

	p := h.newPage(c, b, "", b.T("notFound.title"))
	p.Canonical = ""
	h.render(c, http.StatusNotFound, pageNotFound, p)
}

// Forbidden answers a rejected form post
func (h *Handler) Forbidden(c *gin.Context, status int) {
	b := h.bundle(c)
	logger.Log.Warn("Rejected form post",
		"request_id", c.GetString(string(domain.KeyRequestID)),
		"path", c.Request.URL.Path,
	)
	p := h.newPage(c, b, "/contact", b.T("contact.title"))
	h.render(c, status, pageForbidden, p)
}

func (h *Handler) bundleFromContext(c *gin.Context) (*domain.Bundle, bool) {
	v, ok := c.Get(string(domain.KeyLocale))
	if !ok {
		return nil, false
	}
	b, ok := v.(*domain.Bundle)
	return b, ok
}
