package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/specialistvlad/treehouse/internal/config"
	"github.com/specialistvlad/treehouse/internal/console"
	"github.com/specialistvlad/treehouse/internal/ctxlog"
	"github.com/specialistvlad/treehouse/internal/registry"
	"github.com/specialistvlad/treehouse/internal/visitor"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	in       *console.Reader
	outW     io.Writer
	logger   *slog.Logger
	registry *registry.Registry
}

// NewApp is the constructor for the main application. Logs go to logW and
// never mix with the console output written to outW. The registry is
// seeded from cfg.VisitorsPath through loader, or from the built-in list.
func NewApp(ctx context.Context, in io.Reader, outW, logW io.Writer, cfg *Config, loader config.Loader) (*App, error) {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, logW)
	ctx = ctxlog.WithLogger(ctx, logger)
	logger.Debug("Logger configured successfully.")

	seed, err := loadSeed(ctx, cfg, loader)
	if err != nil {
		return nil, err
	}

	return &App{
		in:       console.NewReader(in),
		outW:     outW,
		logger:   logger,
		registry: registry.New(seed...),
	}, nil
}

func loadSeed(ctx context.Context, cfg *Config, loader config.Loader) ([]visitor.Visitor, error) {
	logger := ctxlog.FromContext(ctx)

	if cfg.VisitorsPath == "" {
		seed := visitor.Seed()
		logger.Info("Using built-in visitor list.", "visitors", len(seed))
		return seed, nil
	}

	model, err := loader.Load(ctx, cfg.VisitorsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load visitors: %w", err)
	}
	seed, err := model.BuildVisitors()
	if err != nil {
		return nil, fmt.Errorf("failed to load visitors: %w", err)
	}
	if len(seed) == 0 {
		logger.Warn("Visitor list is empty.", "path", cfg.VisitorsPath)
	}
	logger.Info("Loaded visitor list.", "path", cfg.VisitorsPath, "visitors", len(seed))
	return seed, nil
}

// Registry returns the application's registry. This is primarily for testing.
func (a *App) Registry() *registry.Registry {
	return a.registry
}
