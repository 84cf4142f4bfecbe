package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"

	"codeberg.org/snonux/vidshare/internal/app"
	"codeberg.org/snonux/vidshare/internal/cli"
	"codeberg.org/snonux/vidshare/internal/config"
	"codeberg.org/snonux/vidshare/internal/gui"
	"codeberg.org/snonux/vidshare/internal/meta"
)

var (
	runTUI     = app.Run
	runGUI     = gui.Run
	runCLI     = cli.Run
	exit       = os.Exit
	isTerminal = func() bool { return term.IsTerminal(int(os.Stdout.Fd())) }
)

func main() {
	exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	opts := config.FromEnv(os.Getenv)
	fs := flag.NewFlagSet("vidshare", flag.ContinueOnError)
	fs.SetOutput(stderr)
	opts.RegisterFlags(fs)
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if opts.Version {
		fmt.Fprintf(stdout, "vidshare version %s\n", meta.Version)
		return 0
	}
	if err := opts.Validate(); err != nil {
		fmt.Fprintf(stderr, "%v\n", err)
		return 2
	}

	switch {
	case opts.GUI:
		if err := runGUI(opts); err != nil {
			fmt.Fprintf(stderr, "error: %v\n", err)
			return 1
		}
	case opts.Upload != "" || !isTerminal():
		// The headless frontend has already printed its failure.
		if err := runCLI(context.Background(), opts, stdout, stderr); err != nil {
			return 1
		}
	default:
		if err := runTUI(opts); err != nil {
			fmt.Fprintf(stderr, "error: %v\n", err)
			return 1
		}
	}
	return 0
}
