package web

import (
	"embed"
	"fmt"
	"html/template"
)

//go:embed templates/*.html
var templateFS embed.FS

const layoutName = "layout"

// Page template names
const (
	pageHome      = "home"
	pageAbout     = "about"
	pageServices  = "services"
	pageService   = "service"
	pageContact   = "contact"
	pageLegal     = "legal"
	pageNotFound  = "notfound"
	pageForbidden = "forbidden"
)

// parseTemplates builds one template set per page, each sharing the layout.
// Every page defines "content", so they cannot live in a single set.
func parseTemplates() (map[string]*template.Template, error) {
	layout, err := template.ParseFS(templateFS, "templates/layout.html")
	if err != nil {
		return nil, fmt.Errorf("parse layout: %w", err)
	}

	pages := []string{pageHome, pageAbout, pageServices, pageService, pageContact, pageLegal, pageNotFound, pageForbidden}
	out := make(map[string]*template.Template, len(pages))
	for _, name := range pages {
		base, err := layout.Clone()
		if err != nil {
			return nil, fmt.Errorf("clone layout: %w", err)
		}
		t, err := base.ParseFS(templateFS, "templates/"+name+".html")
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", name, err)
		}
		out[name] = t
	}
	return out, nil
}
