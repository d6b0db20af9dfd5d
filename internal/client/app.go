package client

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/char-archive/internal/config"
	"github.com/MKhiriev/char-archive/internal/logger"
	"github.com/MKhiriev/char-archive/internal/service"
	"github.com/MKhiriev/char-archive/internal/tui"
)

var errIncompleteServices = errors.New("client services are incomplete")

type App struct {
	services *service.ClientServices
	ui       UI
	workers  config.ClientWorkers
	logger   *logger.Logger
}

func NewApp(services *service.ClientServices, ui UI, workers config.ClientWorkers, logger *logger.Logger) (*App, error) {
	if services == nil || services.AuthService == nil || services.ArchiveService == nil || services.RefreshJob == nil {
		return nil, errIncompleteServices
	}
	if ui == nil {
		return nil, errors.New("ui is not provided")
	}

	return &App{services: services, ui: ui, workers: workers, logger: logger}, nil
}

// Run implements [Client].
func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return a.run(ctx)
}

func (a *App) run(ctx context.Context) error {
	if a.services.AuthService.Restore(ctx) {
		a.logger.Info().Msg("admin session restored")
	}

	a.services.RefreshJob.Start(ctx, a.workers.RefreshInterval)
	defer a.services.RefreshJob.Stop()

	err := a.ui.Run(ctx)

	// let background image cleanup finish before the process exits
	a.services.ArchiveService.Wait()

	if errors.Is(err, tui.ErrUserQuit) {
		return nil
	}
	return err
}
