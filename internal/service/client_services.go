// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-factory-planner/internal/adapter"
	"github.com/MKhiriev/go-factory-planner/internal/clock"
	"github.com/MKhiriev/go-factory-planner/internal/config"
	"github.com/MKhiriev/go-factory-planner/internal/eventloop"
	"github.com/MKhiriev/go-factory-planner/internal/logger"
	"github.com/MKhiriev/go-factory-planner/internal/state"
	"github.com/MKhiriev/go-factory-planner/internal/utils"
)

// ClientServices groups the client services around one store and one event
// loop.
type ClientServices struct {
	Store *state.Store
	Loop  *eventloop.Loop

	AuthService    ClientAuthService
	SessionService ClientSessionService
	SyncService    ClientSyncService
	GameService    ClientGameService
}

// NewClientServices wires the client services. Call Start before use and
// Close on shutdown, never from the event loop.
func NewClientServices(ctx context.Context, authority adapter.RemoteAuthority, cfg config.ClientSync,
	clk clock.Clock, log *logger.Logger) *ClientServices {
	store := state.New()
	loop := eventloop.New(ctx)

	sessions := NewClientSessionService(authority, store, loop, clk, cfg.RefreshMargin, log)
	sync := newClientSyncService(authority, store, loop, clk, cfg.DebounceInterval, log)
	games := newClientGameService(authority, store, loop, sync, clk, utils.NewUUIDGenerator(), log)

	return &ClientServices{
		Store:          store,
		Loop:           loop,
		AuthService:    NewClientAuthService(authority, sessions, sync, log),
		SessionService: sessions,
		SyncService:    sync,
		GameService:    games,
	}
}

// Start attaches the session scheduler to the authority.
func (s *ClientServices) Start() {
	s.SessionService.Start()
}

// Close stops every background component and waits for in-flight network
// completions.
func (s *ClientServices) Close() {
	s.SessionService.Close()
	s.SyncService.Close()
	s.Loop.Close()
}
