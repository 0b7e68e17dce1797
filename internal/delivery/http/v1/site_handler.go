package v1

import (
	"errors"
	"net/http"

	"aimlaw-web/internal/delivery/http/response"
	"aimlaw-web/internal/domain"
	"aimlaw-web/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type SiteHandler struct {
	catalog  domain.ServiceCatalog
	localeUC domain.LocaleUsecase
}

// LocaleSummary describes one supported site language
type LocaleSummary struct {
	Locale   domain.Locale `json:"locale"`
	Tag      string        `json:"tag"`
	OGLocale string        `json:"og_locale"`
	Default  bool          `json:"default"`
}

// LocaleDetail is a LocaleSummary with its full message bundle
type LocaleDetail struct {
	LocaleSummary
	Messages map[string]string `json:"messages"`
}

// SiteOverview is the firm information plus the practice areas it offers
type SiteOverview struct {
	Site     domain.SiteInfo  `json:"site"`
	Services []domain.Service `json:"services"`
}

func NewSiteHandler(public *gin.RouterGroup, catalog domain.ServiceCatalog, localeUC domain.LocaleUsecase) {
	handler := &SiteHandler{
		catalog:  catalog,
		localeUC: localeUC,
	}

	public.GET("/services", handler.ListServices)
	public.GET("/locales", handler.ListLocales)
	public.GET("/locales/:locale", handler.GetLocale)
}

// ListServices godoc
// @Summary      List practice areas
// @Tags         site
// @Produce      json
// @Success      200  {object}  response.Response{data=SiteOverview}
// @Router       /services [get]
func (h *SiteHandler) ListServices(c *gin.Context) {
	response.Success(c, http.StatusOK, "Services retrieved", SiteOverview{
		Site:     h.catalog.Site(),
		Services: h.catalog.List(),
	})
}

// ListLocales godoc
// @Summary      Supported locales
// @Tags         site
// @Produce      json
// @Success      200  {object}  response.Response{data=[]LocaleSummary}
// @Router       /locales [get]
func (h *SiteHandler) ListLocales(c *gin.Context) {
	supported := h.localeUC.Supported()
	out := make([]LocaleSummary, 0, len(supported))
	for _, loc := range supported {
		bundle, err := h.localeUC.Resolve(string(loc))
		if err != nil {
			continue
		}
		out = append(out, h.summary(bundle))
	}
	response.Success(c, http.StatusOK, "Locales retrieved", out)
}

// GetLocale godoc
// @Summary      Locale bundle
// @Description  All translated strings for one locale
// @Tags         site
// @Produce      json
// @Param        locale  path      string  true  "Locale (en, zh)"
// @Success      200     {object}  response.Response{data=LocaleDetail}
// @Failure      404     {object}  response.Response
// @Router       /locales/{locale} [get]
func (h *SiteHandler) GetLocale(c *gin.Context) {
	bundle, err := h.localeUC.Resolve(c.Param("locale"))
	if err != nil {
		if errors.Is(err, domain.ErrLocaleNotFound) {
			_ = c.Error(apperror.NotFound("Locale not found"))
			return
		}
		_ = c.Error(apperror.Internal(err))
		return
	}

	response.Success(c, http.StatusOK, "Locale retrieved", LocaleDetail{
		LocaleSummary: h.summary(bundle),
		Messages:      bundle.Messages(),
	})
}

func (h *SiteHandler) summary(b *domain.Bundle) LocaleSummary {
	return LocaleSummary{
		Locale:   b.Locale,
		Tag:      b.Tag.String(),
		OGLocale: b.OGLocale,
		Default:  b.Locale == h.localeUC.Default().Locale,
	}
}
