package app

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/afero"

	"vboxmanager/internal/config"
	"vboxmanager/pkg/logging"
)

// Application is the main application structure that bootstraps and runs vboxmanager
type Application struct {
	config   *Config
	services *Services
}

// NewApplication creates and initializes a new application instance
func NewApplication(ctx context.Context, cfg *Config) (*Application, error) {
	// Initialize logging for CLI output (will be replaced for TUI mode)
	logging.InitForCLI(cfg.LogLevel(), os.Stderr)

	if cfg.Settings == nil {
		settings, err := config.LoadConfig()
		if err != nil {
			logging.Error("Bootstrap", err, "Failed to load vboxmanager configuration")
			return nil, fmt.Errorf("failed to load vboxmanager configuration: %w", err)
		}
		cfg.Settings = &settings
		logging.InitForCLI(cfg.LogLevel(), os.Stderr)
	}

	services, err := InitializeServices(ctx, cfg, afero.NewOsFs())
	if err != nil {
		logging.Error("Bootstrap", err, "Failed to initialize services")
		return nil, fmt.Errorf("failed to initialize services: %w", err)
	}

	return &Application{
		config:   cfg,
		services: services,
	}, nil
}

// Run executes the application in the appropriate mode
func (a *Application) Run(ctx context.Context) error {
	defer a.services.Close()
	if a.config.NoTUI {
		return runCLIMode(ctx, a.config, a.services, os.Stdout)
	}
	return runTUIMode(ctx, a.config, a.services)
}
