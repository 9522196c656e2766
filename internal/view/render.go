// Package view renders the dashboard markup.
package view

import (
	"embed"
	"errors"
	"html/template"
	"io"
	"io/fs"
)

//go:embed templates
var templatesFS embed.FS

var pageTmpl *template.Template

// ErrTemplatesNotLoaded is returned when rendering before LoadTemplates.
var ErrTemplatesNotLoaded = errors.New("templates not loaded: call view.LoadTemplates during startup")

func loadTemplatesFromFS(fsys fs.FS, dir string) error {
	sub, err := fs.Sub(fsys, dir)
	if err != nil {
		return err
	}

	tmpl, err := template.ParseFS(sub, "*.html", "partials/*.html")
	if err != nil {
		return err
	}

	pageTmpl = tmpl
	return nil
}

// LoadTemplates parses embedded templates. Call it once before serving requests.
func LoadTemplates() error {
	return loadTemplatesFromFS(templatesFS, "templates")
}

// RenderPage writes full dashboard page.
func RenderPage(w io.Writer, p *Page) error {
	if pageTmpl == nil {
		return ErrTemplatesNotLoaded
	}

	return pageTmpl.ExecuteTemplate(w, "page.html", p)
}

// RenderDashboard writes only the dashboard fragment, used to refresh the page in place.
func RenderDashboard(w io.Writer, p *Page) error {
	if pageTmpl == nil {
		return ErrTemplatesNotLoaded
	}

	return pageTmpl.ExecuteTemplate(w, "dashboard", p)
}
