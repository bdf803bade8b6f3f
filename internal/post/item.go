// Package post builds the per-file records that make up a site build.
package post

import "html/template"

// Canonical field names shared by extractors and templates.
const (
	FieldTitle    = "title"
	FieldSubtitle = "subtitle"
	FieldHref     = "href"
	FieldFilename = "filename"
	FieldPath     = "path"
	FieldHTML     = "html"
)

// Item is one Markdown source file and everything derived from it during a build.
type Item struct {
	Path     string // source file location
	Content  string // raw Markdown
	HTML     string // converted fragment
	Filename string // path stem
	Title    string
	Subtitle string
	Output   string // <output_dir>/<filename>.html
	Href     string // link target used by the listing page

	// Fields holds every extractor result by name, including title and subtitle.
	Fields map[string]string
}

// View returns the template-facing representation of the item. Keys match the
// field constants so templates can use {{ .title }}, {{ .href }} and so on.
// Values produced by extractors are HTML fragments and are not re-escaped.
func (it *Item) View() map[string]any {
	v := make(map[string]any, len(it.Fields)+6)
	for k, val := range it.Fields {
		v[k] = template.HTML(val) // #nosec G203 -- extractor output is trusted post HTML
	}
	v[FieldTitle] = template.HTML(it.Title)       // #nosec G203
	v[FieldSubtitle] = template.HTML(it.Subtitle) // #nosec G203
	v[FieldHTML] = template.HTML(it.HTML)         // #nosec G203
	v[FieldHref] = it.Href
	v[FieldFilename] = it.Filename
	v[FieldPath] = it.Path
	return v
}
