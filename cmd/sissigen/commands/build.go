package commands

import (
	"context"
	"os/signal"
	"syscall"

	"git.home.luguber.info/inful/sissigen/internal/logfields"
	"git.home.luguber.info/inful/sissigen/internal/site"
)

// BuildCmd implements the 'build' command.
type BuildCmd struct{}

func (b *BuildCmd) Run(g *Global, _ *CLI) error {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	report, err := site.NewBuilder(g.Layout()).WithLogger(g.Logger).Build(ctx)
	if err != nil {
		return err
	}
	g.Logger.Info("Build complete",
		logfields.BuildID(report.BuildID),
		logfields.Count(report.RenderedPages),
		logfields.DurationMS(float64(report.Duration().Microseconds())/1000))
	return nil
}
