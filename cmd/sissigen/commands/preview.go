package commands

import (
	"context"
	"net/http"
	"os/signal"
	"syscall"

	prom "github.com/prometheus/client_golang/prometheus"

	"git.home.luguber.info/inful/sissigen/internal/logfields"
	"git.home.luguber.info/inful/sissigen/internal/metrics"
	"git.home.luguber.info/inful/sissigen/internal/preview"
	"git.home.luguber.info/inful/sissigen/internal/site"
)

// MetricsPath is where watch mode exposes build metrics.
const MetricsPath = "/_sissigen/metrics"

// PreviewCmd serves the working directory for local viewing.
type PreviewCmd struct {
	Watch bool `help:"Rebuild the site when posts, templates, static files or index.md change"`
}

func (p *PreviewCmd) Run(g *Global, _ *CLI) error {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	opts := preview.Options{Logger: g.Logger}
	if p.Watch || (g.Config != nil && g.Config.Preview.Watch) {
		routes, err := p.startWatch(ctx, g)
		if err != nil {
			return err
		}
		opts.Routes = routes
	}
	return preview.NewServer(g.WorkDir, opts).Run(ctx)
}

// startWatch runs an initial build and starts the rebuild watcher in the
// background. A failing initial build is logged and does not stop preview.
func (p *PreviewCmd) startWatch(ctx context.Context, g *Global) (map[string]http.Handler, error) {
	reg := prom.NewRegistry()
	recorder := metrics.NewPrometheusRecorder(reg)
	builder := site.NewBuilder(g.Layout()).WithLogger(g.Logger).WithRecorder(recorder)

	if _, err := builder.Build(ctx); err != nil {
		g.Logger.Error("initial build failed", logfields.Error(err))
	}

	w := preview.NewWatcher(g.Layout(), builder).WithLogger(g.Logger).WithRecorder(recorder)
	go func() {
		if err := w.Run(ctx); err != nil {
			g.Logger.Error("watcher stopped", logfields.Error(err))
		}
	}()
	g.Logger.Info("Watching for changes", logfields.Path(g.WorkDir))
	return map[string]http.Handler{MetricsPath: metrics.HTTPHandler(reg)}, nil
}
