package web

import (
	"encoding/xml"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// Robots serves robots.txt pointing crawlers at the sitemap
func (h *Handler) Robots(c *gin.Context) {
	var sb strings.Builder
	sb.WriteString("User-agent: *\n")
	sb.WriteString("Allow: /\n")
	sb.WriteString("Disallow: /api/\n")
	sb.WriteString("Disallow: /admin/\n")
	sb.WriteString("\nSitemap: " + h.siteURL + "/sitemap.xml\n")
	c.String(http.StatusOK, sb.String())
}

type sitemapLink struct {
	Rel      string `xml:"rel,attr"`
	Hreflang string `xml:"hreflang,attr"`
	Href     string `xml:"href,attr"`
}

type sitemapURL struct {
	Loc   string        `xml:"loc"`
	Links []sitemapLink `xml:"xhtml:link"`
}

type sitemapURLSet struct {
	XMLName xml.Name     `xml:"urlset"`
	XMLNS   string       `xml:"xmlns,attr"`
	XHTML   string       `xml:"xmlns:xhtml,attr"`
	URLs    []sitemapURL `xml:"url"`
}

// Sitemap lists every page in every locale with its hreflang alternates
func (h *Handler) Sitemap(c *gin.Context) {
	paths := []string{"", "/about", "/services", "/contact", "/privacy", "/terms"}
	for _, svc := range h.catalog.List() {
		paths = append(paths, "/services/"+svc.ID)
	}

	locales := h.localeUC.Supported()
	set := sitemapURLSet{
		XMLNS: "http://www.sitemaps.org/schemas/sitemap/0.9",
		XHTML: "http://www.w3.org/1999/xhtml",
	}
	for _, path := range paths {
		links := make([]sitemapLink, 0, len(locales))
		for _, loc := range locales {
			links = append(links, sitemapLink{Rel: "alternate", Hreflang: string(loc), Href: h.siteURL + "/" + string(loc) + path})
		}
		for _, loc := range locales {
			set.URLs = append(set.URLs, sitemapURL{Loc: h.siteURL + "/" + string(loc) + path, Links: links})
		}
	}
	c.XML(http.StatusOK, set)
}
