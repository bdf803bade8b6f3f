// Package commands implements the sissigen subcommands.
package commands

import (
	"io"
	"log/slog"

	"github.com/alecthomas/kong"

	"git.home.luguber.info/inful/sissigen/internal/config"
	"git.home.luguber.info/inful/sissigen/internal/logfields"
)

// Global is shared state bound into every command.
type Global struct {
	WorkDir string
	Stdout  io.Writer
	Stderr  io.Writer
	Logger  *slog.Logger
	Config  *config.Config
}

// Layout returns the project layout rooted at the working directory.
func (g *Global) Layout() config.Layout { return config.NewLayout(g.WorkDir) }

// CLI definition & global flags.
type CLI struct {
	Verbose bool             `short:"v" help:"Enable verbose logging"`
	Version kong.VersionFlag `name:"version" help:"Show version and exit"`

	Init    InitCmd    `cmd:"" help:"Copy the starter project structure into the current directory"`
	Build   BuildCmd   `cmd:"" help:"Build site/ and index.html from posts/"`
	Preview PreviewCmd `cmd:"" help:"Serve the current directory on port 8000"`
}

// AfterApply runs after flag parsing; it loads ambient settings and sets up
// logging once.
func (c *CLI) AfterApply(g *Global) error {
	envFiles, envErr := config.LoadEnvFiles(g.WorkDir)

	cfg, warnings, err := config.Load(g.Layout().ConfigFile())
	if err != nil {
		return err
	}
	g.Config = cfg

	opts := &slog.HandlerOptions{Level: config.ResolveLogLevel(c.Verbose, cfg.Logging.Level).Slog()}
	var handler slog.Handler = slog.NewTextHandler(g.Stderr, opts)
	if cfg.Logging.Format == config.LogFormatJSON {
		handler = slog.NewJSONHandler(g.Stderr, opts)
	}
	g.Logger = slog.New(handler)
	slog.SetDefault(g.Logger)

	for _, f := range envFiles {
		g.Logger.Debug("Loaded environment file", logfields.File(f))
	}
	if envErr != nil {
		g.Logger.Warn("Failed to load environment file", logfields.Error(envErr))
	}
	for _, w := range warnings {
		g.Logger.Warn("config normalization", slog.String("detail", w))
	}
	return nil
}
