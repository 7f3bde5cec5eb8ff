// Command sitegen builds a static site from a directory of Jinja templates
// and static assets into <source>/dist.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"

	serrors "git.home.luguber.info/inful/sitegen/internal/errors"
	"git.home.luguber.info/inful/sitegen/internal/version"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run parses args, generates the site and returns the process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	var cli CLI
	exited, exitCode := false, 0

	parser, err := kong.New(&cli,
		kong.Name("sitegen"),
		kong.Description("Render *.html.jinja pages and copy static assets into <source>/dist."),
		kong.Writers(stdout, stderr),
		kong.Vars{"version": version.String()},
		kong.Exit(func(code int) {
			exited, exitCode = true, code
		}),
	)
	if err != nil {
		_, _ = fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	kctx, err := parser.Parse(args)
	if exited {
		// --help and --version stop here.
		if exitCode != 0 {
			return 1
		}
		return 0
	}
	if err != nil {
		_, _ = fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	adapter := serrors.NewCLIErrorAdapter(cli.Verbose, cli.logger)
	return adapter.HandleError(kctx.Stderr, cli.Run(ctx, kctx.Stdout))
}
