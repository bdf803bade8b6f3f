package commands

import (
	"fmt"

	"git.home.luguber.info/inful/sissigen/internal/logfields"
	"git.home.luguber.info/inful/sissigen/internal/scaffold"
)

// InitCmd implements the 'init' command.
type InitCmd struct{}

func (i *InitCmd) Run(g *Global, _ *CLI) error {
	written, err := scaffold.Init(g.WorkDir)
	if err != nil {
		return err
	}
	for _, f := range written {
		g.Logger.Debug("Wrote file", logfields.File(f))
	}
	_, _ = fmt.Fprintf(g.Stdout, "Initialized sissigen project in %s\n", g.WorkDir)
	return nil
}
