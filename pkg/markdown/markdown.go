package markdown

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

// Renderer converts trusted-but-edited Markdown (legal page copy) into sanitized HTML
type Renderer struct {
	md     goldmark.Markdown
	policy *bluemonday.Policy
}

func NewRenderer() *Renderer {
	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
			extension.Linkify,
		),
		goldmark.WithRendererOptions(
			html.WithHardWraps(),
		),
	)

	policy := bluemonday.UGCPolicy()
	policy.RequireNoFollowOnLinks(false)

	return &Renderer{
		md:     md,
		policy: policy,
	}
}

func (r *Renderer) ToHTML(source string) (string, error) {
	var buf bytes.Buffer
	if err := r.md.Convert([]byte(source), &buf); err != nil {
		return "", fmt.Errorf("failed to convert markdown to HTML: %w", err)
	}
	return buf.String(), nil
}

// Render converts and sanitizes source for direct use in a template
func (r *Renderer) Render(source string) (template.HTML, error) {
	out, err := r.ToHTML(source)
	if err != nil {
		return "", err
	}
	return template.HTML(r.policy.Sanitize(out)), nil
}
