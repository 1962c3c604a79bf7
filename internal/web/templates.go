package web

import (
	"database/sql"
	"fmt"
	"html/template"
	"io/fs"
	"log/slog"
	"net/http"

	webembed "github.com/g-s-k/wear/web"
)

// Templates holds parsed HTML templates.
type Templates struct {
	templates map[string]*template.Template
}

// pages lists the page templates. Each is parsed together with the layout;
// the item form pages additionally share the form partial.
var pages = map[string][]string{
	"index.html":     nil,
	"item_new.html":  {"form.html"},
	"item_edit.html": {"form.html"},
}

// LoadTemplates parses all page templates with the layout.
func LoadTemplates() (*Templates, error) {
	tfs := webembed.TemplatesFS()

	layoutBytes, err := fs.ReadFile(tfs, "layout.html")
	if err != nil {
		return nil, fmt.Errorf("reading layout template: %w", err)
	}

	ts := &Templates{templates: make(map[string]*template.Template)}

	for page, partials := range pages {
		tmpl := template.New(page)
		tmpl, err = tmpl.Parse(string(layoutBytes))
		if err != nil {
			return nil, fmt.Errorf("parsing layout for %s: %w", page, err)
		}

		for _, partial := range append(partials, page) {
			partialBytes, err := fs.ReadFile(tfs, partial)
			if err != nil {
				return nil, fmt.Errorf("reading template %s: %w", partial, err)
			}
			tmpl, err = tmpl.Parse(string(partialBytes))
			if err != nil {
				return nil, fmt.Errorf("parsing template %s: %w", partial, err)
			}
		}

		ts.templates[page] = tmpl
	}

	return ts, nil
}

// Render renders a template with the given data.
func (ts *Templates) Render(w http.ResponseWriter, name string, data any) {
	tmpl, ok := ts.templates[name]
	if !ok {
		http.Error(w, "template not found", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := tmpl.ExecuteTemplate(w, "layout", data); err != nil {
		slog.Error("failed to render template", "template", name, "error", err)
	}
}

// PageData is the base data passed to all templates.
type PageData struct {
	Title string
}

// Server holds all dependencies for page handlers.
type Server struct {
	DB        *sql.DB
	Templates *Templates
}
