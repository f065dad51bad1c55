// internal/web/web.go
// Package web renders the embedded dashboard templates.
package web

import (
	"fmt"
	"html/template"
	"io"
	"io/fs"
)

// Renderer holds the parsed dashboard templates. Templates are embedded at
// build time and parsed once at startup, so a render call can only fail on
// template execution.
type Renderer struct {
	tmpl *template.Template
}

// NewRenderer parses all templates below templates/ in the given filesystem.
func NewRenderer(content fs.FS) (*Renderer, error) {
	tmpl, err := template.ParseFS(content, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	return &Renderer{tmpl: tmpl}, nil
}

// Render executes the named template into w.
func (r *Renderer) Render(w io.Writer, name string, data interface{}) error {
	return r.tmpl.ExecuteTemplate(w, name, data)
}

// DashboardData is the context for the index template.
type DashboardData struct {
	ServiceName   string
	Hostname      string
	Env           map[string]string
	Args          []string
	Count         int
	Ready         bool
	ReadyAfterSec int
}
