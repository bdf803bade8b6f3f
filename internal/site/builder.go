package site

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"git.home.luguber.info/inful/sissigen/internal/config"
	"git.home.luguber.info/inful/sissigen/internal/extract"
	"git.home.luguber.info/inful/sissigen/internal/logfields"
	"git.home.luguber.info/inful/sissigen/internal/markdown"
	"git.home.luguber.info/inful/sissigen/internal/metrics"
	"git.home.luguber.info/inful/sissigen/internal/post"
)

// Builder runs full site builds for one project layout. A Builder holds no
// state between runs and may be reused.
type Builder struct {
	layout     config.Layout
	converter  *markdown.Converter
	extractors []post.Extractor
	stages     []StageDef
	recorder   metrics.Recorder
	logger     *slog.Logger
}

// NewBuilder returns a Builder with the default converter, extractors and stages.
func NewBuilder(layout config.Layout) *Builder {
	return &Builder{
		layout:     layout,
		converter:  markdown.NewConverter(markdown.Options{}),
		extractors: extract.Defaults(),
		stages:     DefaultStages(),
		recorder:   metrics.NoopRecorder{},
		logger:     slog.Default(),
	}
}

// WithRecorder sets the metrics recorder.
func (b *Builder) WithRecorder(r metrics.Recorder) *Builder {
	if r != nil {
		b.recorder = r
	}
	return b
}

// WithLogger sets the logger used for progress messages.
func (b *Builder) WithLogger(l *slog.Logger) *Builder {
	if l != nil {
		b.logger = l
	}
	return b
}

// WithExtractors replaces the ordered extractor list.
func (b *Builder) WithExtractors(ex []post.Extractor) *Builder {
	b.extractors = ex
	return b
}

// Layout returns the project layout the builder writes to.
func (b *Builder) Layout() config.Layout { return b.layout }

func (b *Builder) postBuilder() *post.Builder {
	return post.NewBuilder(b.layout.OutputDir(), b.converter, b.extractors).
		WithHrefBase(config.OutputDirName)
}

// Build runs every stage and returns the report. On failure the error is a
// *StageError wrapping the classified cause.
func (b *Builder) Build(ctx context.Context) (*BuildReport, error) {
	report := newBuildReport(uuid.NewString())
	log := b.logger.With(logfields.BuildID(report.BuildID))
	bs := &BuildState{Builder: b, Layout: b.layout, Report: report, log: log}

	err := runStages(ctx, bs, b.stages)
	report.finish()

	b.recorder.ObserveBuildDuration(report.Duration())
	b.recorder.IncBuildOutcome(string(report.Outcome))
	b.recorder.AddPagesRendered(report.RenderedPages)

	if err != nil {
		log.Debug("Build failed", logfields.Error(err))
		return report, err
	}
	log.Debug("Build complete", slog.String("summary", report.Summary()))
	return report, nil
}
