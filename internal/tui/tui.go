package tui

import (
	"context"
	"errors"

	"github.com/MKhiriev/driver-records/internal/form"
	"github.com/MKhiriev/driver-records/internal/logger"
	"github.com/MKhiriev/driver-records/internal/service"
	"github.com/MKhiriev/driver-records/models"
	tea "github.com/charmbracelet/bubbletea"
)

var ErrUserQuit = errors.New("user quit the program")

type TUI struct {
	services  *service.ClientServices
	client    form.RecordClient
	buildInfo models.AppBuildInfo
	logger    *logger.Logger
}

func New(services *service.ClientServices, client form.RecordClient, buildInfo models.AppBuildInfo, logger *logger.Logger) (*TUI, error) {
	if services == nil || services.RecordService == nil {
		return nil, errors.New("tui: record service is required")
	}
	if client == nil {
		return nil, errors.New("tui: record client is required")
	}

	return &TUI{
		services:  services,
		client:    client,
		buildInfo: buildInfo,
		logger:    logger,
	}, nil
}

// Pages builds the page set the program runs with.
func (t *TUI) Pages(ctx context.Context) map[string]tea.Model {
	return map[string]tea.Model{
		PageList:   NewListModel(ctx, t.services.RecordService),
		PageRecord: NewRecordModel(ctx, t.client, t.logger),
	}
}

// Run blocks until the user leaves the program. Ctrl+C yields [ErrUserQuit].
func (t *TUI) Run(ctx context.Context) error {
	root := NewRootModel(t.Pages(ctx), PageList, t.buildInfo)

	finalModel, err := tea.NewProgram(root, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil {
		return err
	}

	result, ok := finalModel.(RootModel)
	if !ok {
		return tea.ErrProgramKilled
	}
	if result.QuitByUser() {
		return ErrUserQuit
	}
	return nil
}
