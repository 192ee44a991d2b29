package client

import (
	"context"
	"errors"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/driver-records/internal/logger"
	"github.com/MKhiriev/driver-records/internal/tui"
)

// Runner is the part of [tui.TUI] the app drives.
type Runner interface {
	Run(ctx context.Context) error
}

var _ Client = (*App)(nil)

type App struct {
	ui     Runner
	logger *logger.Logger
}

func NewApp(ui Runner, logger *logger.Logger) (*App, error) {
	if ui == nil {
		return nil, errors.New("client: ui is required")
	}
	return &App{ui: ui, logger: logger}, nil
}

// Run blocks until the UI exits or the process receives SIGINT/SIGTERM.
// Leaving with Ctrl+C is a normal exit.
func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	a.logger.Info().Msg("client started")
	err := a.ui.Run(ctx)
	switch {
	case err == nil, errors.Is(err, tui.ErrUserQuit):
		a.logger.Info().Msg("client stopped")
		return nil
	case errors.Is(err, context.Canceled):
		a.logger.Info().Msg("client interrupted")
		return nil
	}

	return fmt.Errorf("ui run: %w", err)
}
