package site

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	serrors "git.home.luguber.info/inful/sitegen/internal/errors"
	"git.home.luguber.info/inful/sitegen/internal/logfields"
	"git.home.luguber.info/inful/sitegen/internal/metrics"
	"git.home.luguber.info/inful/sitegen/internal/templates"
)

// Summary reports what a generation run produced.
type Summary struct {
	BuildID  string
	Output   string
	Pages    int
	Files    int
	Dirs     int
	Duration time.Duration
}

// Generator builds the site found in a source directory into <source>/dist.
type Generator struct {
	source   string
	output   string
	skip     SkipFunc
	engine   templates.Engine
	recorder metrics.Recorder
	logger   *slog.Logger
}

// Option configures a Generator.
type Option func(*Generator)

// WithSkip replaces DefaultSkip.
func WithSkip(skip SkipFunc) Option {
	return func(g *Generator) { g.skip = skip }
}

// WithEngine sets the template engine. By default a Jinja engine rooted at
// the source directory is created on Generate.
func WithEngine(e templates.Engine) Option {
	return func(g *Generator) { g.engine = e }
}

// WithRecorder sets the metrics recorder.
func WithRecorder(r metrics.Recorder) Option {
	return func(g *Generator) { g.recorder = r }
}

// WithLogger sets the logger; slog.Default() otherwise.
func WithLogger(l *slog.Logger) Option {
	return func(g *Generator) { g.logger = l }
}

// NewGenerator creates a Generator for source.
func NewGenerator(source string, opts ...Option) *Generator {
	g := &Generator{
		source:   source,
		output:   filepath.Join(source, OutputDirName),
		skip:     DefaultSkip,
		recorder: metrics.NoopRecorder{},
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.skip == nil {
		g.skip = DefaultSkip
	}
	if g.recorder == nil {
		g.recorder = metrics.NoopRecorder{}
	}
	if g.logger == nil {
		g.logger = slog.Default()
	}
	return g
}

// OutputDir returns the directory the site is written to.
func (g *Generator) OutputDir() string {
	return g.output
}

// Generate classifies the source tree and materializes every entry in order.
// It stops at the first failure; whatever was written before stays on disk.
// ctx is only checked between entries.
func (g *Generator) Generate(ctx context.Context) (summary *Summary, err error) {
	start := time.Now()
	summary = &Summary{BuildID: uuid.NewString(), Output: g.output}
	logger := g.logger.With(logfields.BuildID(summary.BuildID))

	defer func() {
		summary.Duration = time.Since(start)
		g.recorder.ObserveBuildDuration(summary.Duration)
		if err != nil {
			g.recorder.IncBuildOutcome(metrics.OutcomeFailed)
			logger.Error("Site generation failed", logfields.Error(err), logfields.Duration(summary.Duration))
			return
		}
		g.recorder.IncBuildOutcome(metrics.OutcomeSuccess)
		logger.Info("Site generated",
			logfields.Output(g.output),
			slog.Int("pages", summary.Pages),
			slog.Int("files", summary.Files),
			slog.Int("dirs", summary.Dirs),
			logfields.Duration(summary.Duration))
	}()

	info, statErr := os.Stat(g.source)
	if statErr != nil {
		return summary, serrors.IOFailed("stat source directory", g.source, statErr)
	}
	if !info.IsDir() {
		return summary, serrors.ValidationFailed("source", "not a directory").WithContext("path", g.source)
	}

	// #nosec G301 -- published site directories are world-readable.
	if mkErr := os.MkdirAll(g.output, dirMode); mkErr != nil {
		return summary, serrors.IOFailed("create output directory", g.output, mkErr)
	}

	engine := g.engine
	if engine == nil {
		jinja, engErr := templates.NewJinjaEngine(g.source)
		if engErr != nil {
			return summary, serrors.IOFailed("create template engine", g.source, engErr)
		}
		engine = jinja
	}

	logger.Info("Starting site generation", logfields.Source(g.source), logfields.Output(g.output))

	entries, err := Classify(g.source, g.skip)
	if err != nil {
		return summary, err
	}
	logger.Debug("Classified source tree", logfields.Count(len(entries)))

	m := NewMaterializer(g.source, g.output, engine, logger)
	for _, e := range entries {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return summary, fmt.Errorf("site generation interrupted: %w", ctxErr)
		}

		actionStart := time.Now()
		if _, err := m.Materialize(e); err != nil {
			return summary, err
		}
		kind := e.Kind.String()
		g.recorder.IncEntry(kind)
		g.recorder.ObserveActionDuration(kind, time.Since(actionStart))

		switch e.Kind {
		case KindPage:
			summary.Pages++
		case KindFile:
			summary.Files++
		case KindDir:
			summary.Dirs++
		}
	}
	return summary, nil
}
