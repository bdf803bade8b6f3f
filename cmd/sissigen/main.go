package main

import (
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kong"

	"git.home.luguber.info/inful/sissigen/cmd/sissigen/commands"
	"git.home.luguber.info/inful/sissigen/internal/foundation/errors"
	"git.home.luguber.info/inful/sissigen/internal/version"
)

// exitUsage is returned for unknown or missing commands.
const exitUsage = 1

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run parses args and executes the selected command, returning the exit code.
func run(args []string, stdout, stderr io.Writer) int {
	wd, err := os.Getwd()
	if err != nil {
		_, _ = fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	cli := &commands.CLI{}
	global := &commands.Global{WorkDir: wd, Stdout: stdout, Stderr: stderr}
	exitCode := -1

	parser, err := kong.New(cli,
		kong.Name("sissigen"),
		kong.Description("A minimal static site generator."),
		kong.Vars{"version": version.String()},
		kong.Writers(stdout, stderr),
		kong.Exit(func(code int) {
			if exitCode < 0 {
				exitCode = code
			}
		}),
		kong.Bind(global),
	)
	if err != nil {
		_, _ = fmt.Fprintf(stderr, "Error: %v\n", err)
		return 10
	}

	kctx, err := parser.Parse(args)
	if exitCode >= 0 { // --help or --version
		return exitCode
	}
	if err != nil {
		if _, ok := errors.AsClassified(err); ok { // raised by AfterApply
			return handle(cli, global, err)
		}
		_, _ = fmt.Fprintf(stderr, "unrecognized command: %v\n", err)
		_, _ = fmt.Fprintln(stderr, "usage: sissigen [-v] <init|build|preview>")
		return exitUsage
	}

	if err := kctx.Run(cli); err != nil {
		return handle(cli, global, err)
	}
	return 0
}

func handle(cli *commands.CLI, g *commands.Global, err error) int {
	code := 1
	errors.NewCLIErrorAdapter(cli.Verbose, g.Logger).
		WithOutput(g.Stderr, func(c int) { code = c }).
		HandleError(err)
	return code
}
