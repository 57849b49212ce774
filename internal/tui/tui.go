// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-factory-planner/internal/logger"
	"github.com/MKhiriev/go-factory-planner/internal/service"
	"github.com/MKhiriev/go-factory-planner/models"
	tea "github.com/charmbracelet/bubbletea"
)

// TUI is the terminal front end of the client.
type TUI struct {
	services  *service.ClientServices
	buildInfo models.AppBuildInfo
	logger    *logger.Logger
}

func New(services *service.ClientServices, buildInfo models.AppBuildInfo, logger *logger.Logger) *TUI {
	return &TUI{
		services:  services,
		buildInfo: buildInfo,
		logger:    logger,
	}
}

// Run blocks until the user quits. logout is true when the user signed out
// instead of quitting.
func (t *TUI) Run(ctx context.Context) (logout bool, err error) {
	// store listeners run on the event loop and must never block
	changes := make(chan struct{}, 1)
	unsubscribe := t.services.Store.OnChange(func() {
		select {
		case changes <- struct{}{}:
		default:
		}
	})
	defer unsubscribe()

	program := tea.NewProgram(newModel(ctx, t.services, t.buildInfo, changes),
		tea.WithAltScreen(), tea.WithContext(ctx))

	final, err := program.Run()
	if err != nil && errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return false, nil
	}
	if err != nil {
		t.logger.Err(err).Str("func", "*TUI.Run").Msg("tui program failed")
		return false, fmt.Errorf("run tui: %w", err)
	}

	if m, ok := final.(model); ok {
		if m.screen == screenDetail {
			m.leaveDetail(true)
		}
		return m.logout, nil
	}
	return false, nil
}
