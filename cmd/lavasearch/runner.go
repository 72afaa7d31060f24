package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/urfave/cli/v3"

	"github.com/reoring/lavasearch"
	"github.com/reoring/lavasearch/internal/config"
	"github.com/reoring/lavasearch/internal/render"
)

// Runner holds the dependencies of the CLI actions.
type Runner struct {
	logger *log.Logger
	output io.Writer
	input  io.Reader
}

// RunnerOpts configures a Runner; nil fields fall back to stderr logging,
// stdout and stdin.
type RunnerOpts struct {
	Logger *log.Logger
	Output io.Writer
	Input  io.Reader
}

func NewRunner(opts RunnerOpts) *Runner {
	r := &Runner{logger: opts.Logger, output: opts.Output, input: opts.Input}
	if r.logger == nil {
		r.logger = newLogger(nil)
	}
	if r.output == nil {
		r.output = os.Stdout
	}
	if r.input == nil {
		r.input = os.Stdin
	}
	return r
}

// loadConfig reads the config file and applies flag overrides.
func (r *Runner) loadConfig(cmd *cli.Command) (*config.Config, error) {
	var paths []string
	if p := cmd.String("config"); p != "" {
		if _, err := os.Stat(p); err != nil {
			return nil, fmt.Errorf("config file: %w", err)
		}
		paths = append(paths, p)
	}
	cfg, err := config.Load(paths...)
	if err != nil {
		return nil, err
	}
	if cmd.IsSet("log-level") {
		cfg.Log.Level = cmd.String("log-level")
	}
	if cmd.IsSet("driver") {
		cfg.Driver = cmd.String("driver")
	}
	if cmd.IsSet("match") {
		cfg.Decode.Match = cmd.String("match")
	}
	if cmd.IsSet("strict-load-type") {
		cfg.Decode.StrictLoadType = cmd.Bool("strict-load-type")
	}
	if cmd.IsSet("duplicate-keys") {
		cfg.Decode.DuplicateKeys = cmd.String("duplicate-keys")
	}
	if cmd.IsSet("format") {
		cfg.Output.Format = cmd.String("format")
	}
	return cfg, nil
}

// decode runs the decoder over the path argument (stdin for "" or "-").
func (r *Runner) decode(cmd *cli.Command) (*lavasearch.SearchResult, *config.Config, error) {
	cfg, err := r.loadConfig(cmd)
	if err != nil {
		return nil, nil, err
	}
	if lvl, err := log.ParseLevel(cfg.Log.Level); err == nil {
		r.logger.SetLevel(lvl)
	} else {
		r.logger.Warn("ignoring log level", "level", cfg.Log.Level)
	}

	opt, err := cfg.Options()
	if err != nil {
		return nil, nil, err
	}
	drv, err := cfg.JSONDriver()
	if err != nil {
		return nil, nil, err
	}
	lavasearch.SetJSONDriver(drv)

	path := cmd.StringArg("path")
	logger := r.logger.With("input", displayPath(path))
	opt.OnIssue = func(is lavasearch.Issue) {
		logger.Warn(is.Message, "code", is.Code, "path", is.Path)
	}

	in := r.input
	if path != "" && path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, nil, err
		}
		defer f.Close()
		in = f
	}

	logger.Debug("decoding", "driver", drv.Name(), "match", opt.FieldMatch)
	res, err := lavasearch.DecodeReader(in, opt)
	if err != nil {
		if de, ok := lavasearch.AsDecodeError(err); ok {
			logger.Error("decode failed", "kind", de.Kind, "code", de.Code, "path", de.Path)
		}
		return nil, nil, fmt.Errorf("decoding %s: %w", displayPath(path), err)
	}
	return res, cfg, nil
}

// Decode prints the decoded result in the configured format.
func (r *Runner) Decode(ctx context.Context, cmd *cli.Command) error {
	res, cfg, err := r.decode(cmd)
	if err != nil {
		return err
	}
	format, err := render.ParseFormat(cfg.Output.Format)
	if err != nil {
		return err
	}
	return render.Write(r.output, res, format)
}

// Check prints a one-line summary of the decoded result.
func (r *Runner) Check(ctx context.Context, cmd *cli.Command) error {
	res, _, err := r.decode(cmd)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(r.output, render.Summary(res))
	return err
}

func displayPath(p string) string {
	if p == "" || p == "-" {
		return "stdin"
	}
	return p
}
