// Package markdown converts Markdown source into HTML fragments with goldmark.
package markdown

import (
	"bytes"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/renderer/html"

	"git.home.luguber.info/inful/sissigen/internal/foundation/errors"
)

// Options controls how Markdown is rendered.
//
// The zero value renders plain CommonMark and passes raw HTML through, which is
// what existing sites written for the tool expect.
type Options struct {
	// Escape raw HTML blocks instead of passing them through.
	SafeMode bool
	// Render soft line breaks as <br>.
	HardWraps bool
}

// Converter turns Markdown text into an HTML fragment. A Converter is stateless
// after construction and may be reused for every post of a build.
type Converter struct {
	md goldmark.Markdown
}

// NewConverter builds a goldmark engine for opts.
func NewConverter(opts Options) *Converter {
	var rendererOptions []goldmark.Option
	var htmlOpts []renderer.Option
	if !opts.SafeMode {
		htmlOpts = append(htmlOpts, html.WithUnsafe())
	}
	if opts.HardWraps {
		htmlOpts = append(htmlOpts, html.WithHardWraps())
	}
	if len(htmlOpts) > 0 {
		rendererOptions = append(rendererOptions, goldmark.WithRendererOptions(htmlOpts...))
	}
	return &Converter{md: goldmark.New(rendererOptions...)}
}

// Convert renders source to HTML.
func (c *Converter) Convert(source []byte) (string, error) {
	var buf bytes.Buffer
	if err := c.md.Convert(source, &buf); err != nil {
		return "", errors.WrapError(err, errors.CategoryContent, "markdown conversion failed").Build()
	}
	return buf.String(), nil
}
