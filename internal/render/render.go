package render

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
)

//go:embed templates/*.html
var templateFS embed.FS

// Renderer turns a template identifier plus a data object into markup.
type Renderer interface {
	Render(name string, data any) (string, error)
}

type htmlRenderer struct {
	tpl *template.Template
}

// NewHTMLRenderer builds a renderer backed by the embedded html templates.
func NewHTMLRenderer() (Renderer, error) {
	tpl, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse embedded templates: %w", err)
	}
	return &htmlRenderer{tpl: tpl}, nil
}

func (r *htmlRenderer) Render(name string, data any) (string, error) {
	var buf bytes.Buffer
	if err := r.tpl.ExecuteTemplate(&buf, name+".html", data); err != nil {
		return "", fmt.Errorf("render template %s: %w", name, err)
	}
	return buf.String(), nil
}
