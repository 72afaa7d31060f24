package main

import (
	"context"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/urfave/cli/v3"
)

// newLogger creates a [log.Logger] writing to w with timestamps enabled.
//
// The writer defaults to [os.Stderr]
func newLogger(w io.Writer) *log.Logger {
	if w == nil {
		w = os.Stderr
	}
	return log.NewWithOptions(w, log.Options{ReportTimestamp: true})
}

func newApp(r *Runner) *cli.Command {
	return &cli.Command{
		Name:     "lavasearch",
		Usage:    "Decode audio-search load/search responses",
		Version:  "0.1.0",
		Commands: r.register(),
	}
}

func main() {
	logger := newLogger(nil)
	runner := NewRunner(RunnerOpts{Logger: logger})

	if err := newApp(runner).Run(context.Background(), os.Args); err != nil {
		logger.Fatal("lavasearch failed", "err", err)
	}
}
