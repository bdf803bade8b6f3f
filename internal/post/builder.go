package post

import (
	"log/slog"
	"path"
	"path/filepath"

	"git.home.luguber.info/inful/sissigen/internal/content"
	"git.home.luguber.info/inful/sissigen/internal/foundation/errors"
	"git.home.luguber.info/inful/sissigen/internal/logfields"
)

// ExtractFunc derives one field from a partially built item. Extractors run
// after Path, Content, HTML, Filename, Output and Href are set.
type ExtractFunc func(it *Item) (string, error)

// Extractor pairs a field name with the function computing it.
type Extractor struct {
	Name string
	Fn   ExtractFunc
}

// Converter turns Markdown into HTML.
type Converter interface {
	Convert(source []byte) (string, error)
}

// Builder composes Items from source paths.
type Builder struct {
	outputDir  string
	hrefBase   string
	converter  Converter
	extractors []Extractor
	logger     *slog.Logger
}

// NewBuilder returns a Builder writing outputs under outputDir. The extractor
// list is applied in order to every item.
func NewBuilder(outputDir string, converter Converter, extractors []Extractor) *Builder {
	return &Builder{
		outputDir:  outputDir,
		hrefBase:   filepath.ToSlash(outputDir),
		converter:  converter,
		extractors: extractors,
		logger:     slog.Default(),
	}
}

// WithLogger overrides the logger used for progress messages.
func (b *Builder) WithLogger(l *slog.Logger) *Builder {
	if l != nil {
		b.logger = l
	}
	return b
}

// WithHrefBase sets the prefix used for Href when outputDir is not the path
// the listing page links through (e.g. an absolute build directory).
func (b *Builder) WithHrefBase(base string) *Builder {
	b.hrefBase = filepath.ToSlash(base)
	return b
}

// Extractors returns the configured extractor names in application order.
func (b *Builder) Extractors() []string {
	names := make([]string, 0, len(b.extractors))
	for _, e := range b.extractors {
		names = append(names, e.Name)
	}
	return names
}

// Build reads path, converts it and applies every extractor.
func (b *Builder) Build(srcPath string) (*Item, error) {
	b.logger.Info("Making post", logfields.Path(srcPath))

	raw, err := content.Read(srcPath)
	if err != nil {
		return nil, err
	}
	html, err := b.converter.Convert([]byte(raw))
	if err != nil {
		return nil, errors.WrapError(err, errors.CategoryContent, "failed to convert post").
			WithContext("path", srcPath).
			Build()
	}

	stem := content.Stem(srcPath)
	out := filepath.Join(b.outputDir, stem+".html")
	it := &Item{
		Path:     srcPath,
		Content:  raw,
		HTML:     html,
		Filename: stem,
		Title:    stem,
		Output:   out,
		Href:     path.Join(b.hrefBase, stem+".html"),
		Fields:   make(map[string]string, len(b.extractors)),
	}

	for _, ex := range b.extractors {
		val, err := ex.Fn(it)
		if err != nil {
			return nil, errors.WrapError(err, errors.CategoryContent, "failed to extract field").
				WithContext("path", srcPath).
				WithContext("field", ex.Name).
				Build()
		}
		it.Fields[ex.Name] = val
		switch ex.Name {
		case FieldTitle:
			it.Title = val
		case FieldSubtitle:
			it.Subtitle = val
		}
	}
	return it, nil
}
