// Package render applies the site templates to post bodies and the listing page.
package render

import (
	"bytes"
	"html/template"
	"os"
	"path/filepath"

	"git.home.luguber.info/inful/sissigen/internal/foundation/errors"
)

// Template file names looked up in the template directory.
const (
	MainTemplate     = "main.html"
	ContentsTemplate = "contents.html"
)

// Renderer holds the parsed page and listing templates.
type Renderer struct {
	main     *template.Template
	contents *template.Template
}

// Load parses MainTemplate and ContentsTemplate from dir. A missing directory
// or template file is a fatal setup error.
func Load(dir string) (*Renderer, error) {
	st, err := os.Stat(dir)
	if err != nil {
		return nil, errors.WrapError(err, errors.CategoryTemplate, "template directory not found").
			Fatal().
			WithContext("path", dir).
			Build()
	}
	if !st.IsDir() {
		return nil, errors.TemplateError("template path is not a directory").WithContext("path", dir).Build()
	}
	main, err := parse(dir, MainTemplate)
	if err != nil {
		return nil, err
	}
	contents, err := parse(dir, ContentsTemplate)
	if err != nil {
		return nil, err
	}
	return &Renderer{main: main, contents: contents}, nil
}

func parse(dir, name string) (*template.Template, error) {
	path := filepath.Join(dir, name)
	// #nosec G304 -- template names are fixed constants.
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.WrapError(err, errors.CategoryTemplate, "template not found").
			Fatal().
			WithContext("path", path).
			Build()
	}
	tpl, err := New(name, string(src))
	if err != nil {
		return nil, errors.WrapError(err, errors.CategoryTemplate, "failed to parse template").
			WithContext("path", path).
			Build()
	}
	return tpl, nil
}

// New parses a single template from source. Undefined keys render as empty.
func New(name, src string) (*template.Template, error) {
	return template.New(name).Option("missingkey=zero").Parse(src)
}

// RenderPost wraps a post body in the main template.
func (r *Renderer) RenderPost(body string) (string, error) {
	return execute(r.main, map[string]any{
		"html": template.HTML(body), // #nosec G203 -- converted Markdown
	})
}

// RenderContents renders the listing template body with the lead block and
// ordered items, without the main wrapper.
func (r *Renderer) RenderContents(lead string, items []map[string]any) (string, error) {
	return execute(r.contents, map[string]any{
		"lead":  template.HTML(lead), // #nosec G203 -- converted Markdown
		"items": items,
	})
}

// RenderListing renders the listing page and wraps it in the main template.
func (r *Renderer) RenderListing(lead string, items []map[string]any) (string, error) {
	body, err := r.RenderContents(lead, items)
	if err != nil {
		return "", err
	}
	return r.RenderPost(body)
}

func execute(tpl *template.Template, data map[string]any) (string, error) {
	var buf bytes.Buffer
	if err := tpl.Execute(&buf, data); err != nil {
		return "", errors.WrapError(err, errors.CategoryTemplate, "failed to render template").
			WithContext("template", tpl.Name()).
			Build()
	}
	return buf.String(), nil
}
