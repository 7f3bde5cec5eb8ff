package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"

	"github.com/alecthomas/kong"

	"git.home.luguber.info/inful/sitegen/internal/config"
	serrors "git.home.luguber.info/inful/sitegen/internal/errors"
	"git.home.luguber.info/inful/sitegen/internal/logfields"
	"git.home.luguber.info/inful/sitegen/internal/metrics"
	"git.home.luguber.info/inful/sitegen/internal/site"
)

// CLI holds the command line flags.
type CLI struct {
	Verbose     bool             `short:"v" help:"Enable verbose logging"`
	Config      string           `short:"c" type:"path" help:"Site configuration file (default: <source>/_site.yaml if present)"`
	MetricsFile string           `name:"metrics-file" type:"path" help:"Write build metrics in Prometheus text format to this file"`
	Version     kong.VersionFlag `name:"version" help:"Show version and exit"`

	Source string `arg:"" name:"source" type:"path" help:"Source directory of the site"`

	logger *slog.Logger `kong:"-"`
}

// AfterApply runs after flag parsing; setup logging once.
// nolint:unparam // AfterApply currently never returns an error.
func (c *CLI) AfterApply(kctx *kong.Context) error {
	level := slog.LevelInfo
	if c.Verbose {
		level = slog.LevelDebug
	}
	c.logger = slog.New(slog.NewTextHandler(kctx.Stderr, &slog.HandlerOptions{Level: level}))
	return nil
}

// Run loads the site configuration and generates the site.
func (c *CLI) Run(ctx context.Context, stdout io.Writer) error {
	logger := c.logger
	if logger == nil {
		logger = slog.Default()
	}

	cfgPath, required := c.Config, true
	if cfgPath == "" {
		cfgPath, required = filepath.Join(c.Source, config.DefaultFileName), false
	}
	cfg, err := config.Load(cfgPath, required)
	if err != nil {
		return err
	}
	skip, err := site.SkipPatterns(cfg.Exclude)
	if err != nil {
		return serrors.ConfigInvalid(cfgPath, err)
	}
	if len(cfg.Exclude) > 0 {
		logger.Debug("Loaded exclude patterns", logfields.Path(cfgPath), logfields.Count(len(cfg.Exclude)))
	}

	opts := []site.Option{site.WithSkip(skip), site.WithLogger(logger)}
	var recorder *metrics.PrometheusRecorder
	if c.MetricsFile != "" {
		recorder = metrics.NewPrometheusRecorder(nil)
		opts = append(opts, site.WithRecorder(recorder))
	}

	summary, genErr := site.NewGenerator(c.Source, opts...).Generate(ctx)

	if recorder != nil {
		if err := metrics.WriteTextfile(c.MetricsFile, recorder.Registry()); err != nil {
			if genErr != nil {
				logger.Warn("Failed to write metrics file", logfields.Path(c.MetricsFile), logfields.Error(err))
			} else {
				return serrors.IOFailed("write metrics file", c.MetricsFile, err)
			}
		}
	}
	if genErr != nil {
		return genErr
	}

	_, _ = fmt.Fprintf(stdout, "Site generated: %s (%d pages, %d files, %d dirs)\n",
		summary.Output, summary.Pages, summary.Files, summary.Dirs)
	return nil
}
