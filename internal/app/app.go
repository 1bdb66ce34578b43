package app

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/afero"
	"go.uber.org/zap"

	"protoreq/internal/config"
	domain "protoreq/internal/domain/request"
	"protoreq/pkg/logger"
)

// createUserPath is the server route the encoded payload is meant for. It is
// only ever printed; the tool never calls it.
const createUserPath = "/api/proto/user"

// App represents a fully wired command invocation.
type App struct {
	Config    *config.Config
	Logger    *zap.Logger
	Container *Container

	fs afero.Fs
}

// Option adjusts the application before dependencies are built, typically
// from command-line flags.
type Option func(*App) error

// WithDescriptorPath overrides the descriptor set location. An empty path
// keeps the configured one.
func WithDescriptorPath(path string) Option {
	return func(a *App) error {
		if path != "" {
			a.Config.Schema.DescriptorPath = path
		}
		return nil
	}
}

// WithLogLevel overrides the configured log level.
func WithLogLevel(level string) Option {
	return func(a *App) error {
		if level != "" {
			a.Config.Logger.Level = level
		}
		return nil
	}
}

// WithFs substitutes the filesystem everything is read from and written to.
func WithFs(fs afero.Fs) Option {
	return func(a *App) error {
		a.fs = fs
		return nil
	}
}

// New creates a new application instance. The schema registry is built
// eagerly: a missing descriptor set fails construction before any encoding
// or argument handling happens. A run ID carried by ctx is stamped on every
// log entry the instance emits.
func New(ctx context.Context, opts ...Option) (*App, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	a := &App{Config: cfg, fs: afero.NewOsFs()}
	for _, opt := range opts {
		if err := opt(a); err != nil {
			return nil, err
		}
	}

	l, err := initLogger(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	a.Logger = logger.WithContext(ctx, l)

	container, err := NewContainer(cfg, a.fs, a.Logger)
	if err != nil {
		return nil, err
	}
	a.Container = container

	return a, nil
}

// Defaults returns the request values used when no positional arguments are
// supplied.
func (a *App) Defaults() domain.CreateUserRequest {
	return domain.CreateUserRequest{
		Username: a.Config.Request.DefaultUsername,
		Email:    a.Config.Request.DefaultEmail,
		Age:      a.Config.Request.DefaultAge,
	}
}

// Endpoint returns the create-user endpoint URL advertised in the curl hint.
func (a *App) Endpoint() string {
	return strings.TrimRight(a.Config.API.BaseURL, "/") + createUserPath
}

// Close flushes buffered log entries.
func (a *App) Close() error {
	return logger.Sync(a.Logger)
}

// loadConfig loads application configuration
func loadConfig() (*config.Config, error) {
	return config.LoadConfig(getConfigPath())
}

// initLogger initializes the application logger
func initLogger(cfg *config.Config) (*zap.Logger, error) {
	return logger.NewWithConfig(logger.Config{
		Level:          cfg.Logger.Level,
		Format:         cfg.Logger.Format,
		OutputPath:     cfg.Logger.OutputPath,
		EnableSampling: cfg.Logger.EnableSampling,
		ServiceName:    cfg.Logger.ServiceName,
		ServiceVersion: cfg.Logger.ServiceVersion,
		Environment:    getEnvironment(),
	})
}

// getConfigPath returns the configuration path
func getConfigPath() string {
	if path := os.Getenv("CONFIG_PATH"); path != "" {
		return path
	}
	return "."
}

// getEnvironment returns the application environment
func getEnvironment() string {
	if env := os.Getenv("APP_ENV"); env != "" {
		return env
	}
	return "development"
}
