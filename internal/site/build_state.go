package site

import (
	"log/slog"

	"git.home.luguber.info/inful/sissigen/internal/config"
	"git.home.luguber.info/inful/sissigen/internal/metrics"
	"git.home.luguber.info/inful/sissigen/internal/post"
	"git.home.luguber.info/inful/sissigen/internal/render"
)

// BuildState carries the intermediate results of a build across stages.
type BuildState struct {
	Builder  *Builder
	Layout   config.Layout
	Report   *BuildReport
	Renderer *render.Renderer

	Sources []string     // post source paths, lexical order
	Items   []*post.Item // encounter order
	Listing []*post.Item // filename descending
	Lead    string       // converted index.md
	Pages   []Page
	Index   string // rendered listing page

	log *slog.Logger
}

func (bs *BuildState) logger() *slog.Logger {
	if bs.log != nil {
		return bs.log
	}
	return slog.Default()
}

func (bs *BuildState) recorder() metrics.Recorder {
	if bs.Builder == nil || bs.Builder.recorder == nil {
		return metrics.NoopRecorder{}
	}
	return bs.Builder.recorder
}
