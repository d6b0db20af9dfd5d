package tui

import (
	"context"
	"errors"

	"github.com/MKhiriev/char-archive/internal/logger"
	"github.com/MKhiriev/char-archive/internal/service"
	"github.com/MKhiriev/char-archive/models"
	tea "github.com/charmbracelet/bubbletea"
)

var errNoServices = errors.New("client services are not provided")

// TUI runs the interactive gallery and admin screens.
type TUI struct {
	services  *service.ClientServices
	notifier  *Notifier
	buildInfo models.AppBuildInfo
	logger    *logger.Logger
}

// New creates a TUI bound to services. notifier must be the same value the
// services were built with so that workflow alerts reach the screen.
func New(services *service.ClientServices, notifier *Notifier, buildInfo models.AppBuildInfo, logger *logger.Logger) (*TUI, error) {
	if services == nil {
		return nil, errNoServices
	}
	if notifier == nil {
		notifier = NewNotifier()
	}

	return &TUI{
		services:  services,
		notifier:  notifier,
		buildInfo: buildInfo,
		logger:    logger,
	}, nil
}

// Run blocks until the user quits or ctx is cancelled.
// It returns ErrUserQuit when the user closed the program.
func (t *TUI) Run(ctx context.Context) error {
	root := NewRootModel(ctx, t.services, t.buildInfo)
	p := tea.NewProgram(root, tea.WithAltScreen(), tea.WithContext(ctx))

	t.notifier.attach(p)
	defer t.notifier.detach()

	finalModel, err := p.Run()
	if err != nil {
		if ctx.Err() != nil {
			return nil
		}
		t.logger.Err(err).Str("func", "*TUI.Run").Msg("terminal program failed")
		return err
	}

	result, ok := finalModel.(RootModel)
	if !ok {
		return tea.ErrProgramKilled
	}
	if result.quitByUser {
		return ErrUserQuit
	}
	return nil
}
