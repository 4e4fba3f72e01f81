package web

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"

	"guestlist/internal/domain"
)

//go:embed templates/*
var templateFS embed.FS

// pageRenderer implements domain.PageRenderer using embedded template files.
type pageRenderer struct {
	templates *template.Template
}

// NewPageRenderer parses the embedded templates folder once up front, so a
// broken template fails at startup rather than on the first request.
func NewPageRenderer() (domain.PageRenderer, error) {
	t, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	return &pageRenderer{templates: t}, nil
}

// Render executes the named template (e.g. "register.html") with data.
// Contextual auto-escaping inserts every data value as literal text, so
// visitor-supplied names and phones can never become markup.
func (r *pageRenderer) Render(name string, data any) ([]byte, error) {
	var buf bytes.Buffer
	if err := r.templates.ExecuteTemplate(&buf, name, data); err != nil {
		return nil, fmt.Errorf("render %s: %w", name, err)
	}
	return buf.Bytes(), nil
}
