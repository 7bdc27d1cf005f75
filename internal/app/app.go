package app

import (
	"context"
	"io"
	"log/slog"
	"net/http"

	"github.com/specialistvlad/qmock/internal/ctxlog"
	"github.com/specialistvlad/qmock/internal/metrics"
	"github.com/specialistvlad/qmock/internal/publish"
	"github.com/specialistvlad/qmock/internal/registry"
	"github.com/specialistvlad/qmock/internal/report"
)

// reportPublisher is the part of publish.Publisher and publish.Webhook
// the app uses.
type reportPublisher interface {
	Publish(ctx context.Context, r *report.Report) error
	Close() error
}

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW       io.Writer
	logger     *slog.Logger
	config     *Config
	registry   *registry.Registry
	metrics    *metrics.Collectors
	httpServer *http.Server

	connect func(ctx context.Context, cfg publish.Config) (reportPublisher, error)
	webhook func(ctx context.Context, cfg publish.WebhookConfig) (reportPublisher, error)
}

// NewApp is the constructor for the main application. Reports are written
// to outW and logs to logW. It panics if the registered modules do not
// cover every supported operation, which is a programming error.
func NewApp(outW, logW io.Writer, cfg *Config, modules ...registry.Module) *App {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, logW)
	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("Logger configured successfully.")

	reg := registry.New()
	if len(modules) == 0 {
		modules = coreModules
	}
	reg.RegisterModules(modules...)
	logger.Debug("All operation modules registered.", "count", len(modules))

	if err := reg.Validate(ctx); err != nil {
		panic(err)
	}
	logger.Debug("Registry validation passed.")

	return &App{
		outW:     outW,
		logger:   logger,
		config:   cfg,
		registry: reg,
		metrics:  metrics.New(),
		connect: func(ctx context.Context, cfg publish.Config) (reportPublisher, error) {
			return publish.Connect(ctx, cfg)
		},
		webhook: func(ctx context.Context, cfg publish.WebhookConfig) (reportPublisher, error) {
			return publish.NewWebhook(ctx, cfg)
		},
	}
}

// Registry returns the application's registry. This is primarily for testing.
func (a *App) Registry() *registry.Registry {
	return a.registry
}

// Metrics returns the application's collectors.
func (a *App) Metrics() *metrics.Collectors {
	return a.metrics
}
