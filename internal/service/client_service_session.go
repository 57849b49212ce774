// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"fmt"
	"time"

	"github.com/MKhiriev/go-factory-planner/internal/adapter"
	"github.com/MKhiriev/go-factory-planner/internal/clock"
	"github.com/MKhiriev/go-factory-planner/internal/eventloop"
	"github.com/MKhiriev/go-factory-planner/internal/logger"
	"github.com/MKhiriev/go-factory-planner/internal/state"
	"github.com/MKhiriev/go-factory-planner/models"
)

// refreshState is the state of the refresh loop.
type refreshState int

const (
	refreshIdle refreshState = iota
	refreshScheduled
	refreshInFlight
)

func (s refreshState) String() string {
	switch s {
	case refreshScheduled:
		return "scheduled"
	case refreshInFlight:
		return "refreshing"
	default:
		return "idle"
	}
}

type clientSessionService struct {
	authority adapter.RemoteAuthority
	store     *state.Store
	loop      *eventloop.Loop
	clock     clock.Clock
	margin    time.Duration
	logger    *logger.Logger

	// loop-owned
	state    refreshState
	deadline time.Time
	timer    clock.Timer
	epoch    uint64
	closed   bool
	detach   func()
}

// NewClientSessionService creates the session scheduler. margin is how long
// before expiry the refresh runs.
func NewClientSessionService(authority adapter.RemoteAuthority, store *state.Store, loop *eventloop.Loop,
	clk clock.Clock, margin time.Duration, log *logger.Logger) ClientSessionService {
	return &clientSessionService{
		authority: authority,
		store:     store,
		loop:      loop,
		clock:     clk,
		margin:    margin,
		logger:    log,
	}
}

func (s *clientSessionService) Start() {
	detach := s.authority.OnAuthStateChange(s.HandleAuthEvent)

	s.loop.Dispatch(func() {
		if s.closed {
			return
		}
		s.detach = detach
		if session := s.authority.Session(); session != nil {
			s.observe(session)
		}
	})
}

func (s *clientSessionService) Observe(session *models.Session) {
	s.loop.Dispatch(func() { s.observe(session) })
}

func (s *clientSessionService) SignOut() {
	s.loop.Dispatch(s.signOut)
}

func (s *clientSessionService) HandleAuthEvent(event models.AuthEvent, session *models.Session) {
	s.logger.Debug().Str("func", "*clientSessionService.HandleAuthEvent").Str("event", string(event)).Msg("auth state changed")

	switch event {
	case models.AuthEventSignedIn, models.AuthEventTokenRefreshed:
		s.Observe(session)
	case models.AuthEventSignedOut:
		s.SignOut()
	}
}

func (s *clientSessionService) NextRefresh() (time.Time, bool) {
	var (
		deadline  time.Time
		scheduled bool
	)
	s.loop.Dispatch(func() {
		deadline, scheduled = s.deadline, s.state == refreshScheduled
	})
	return deadline, scheduled
}

func (s *clientSessionService) Close() {
	var detach func()
	s.loop.Dispatch(func() {
		s.epoch++
		s.stopTimer()
		s.state = refreshIdle
		s.closed = true
		detach, s.detach = s.detach, nil
	})

	if detach != nil {
		detach()
	}
}

// observe runs on the loop.
func (s *clientSessionService) observe(session *models.Session) {
	if s.closed {
		return
	}
	if session == nil {
		s.signOut()
		return
	}

	// The same token reaches us twice: once from the auth event, once from
	// whoever started the sign-in or refresh.
	if current := s.store.Session(); current != nil && s.state == refreshScheduled &&
		current.AccessToken == session.AccessToken {
		return
	}

	s.epoch++
	s.stopTimer()
	s.store.SetSession(session)

	expiry, known := session.Expiry()
	if !known {
		s.state = refreshIdle
		s.logger.Warn().Str("func", "*clientSessionService.observe").Msg("session expiry unknown, refresh not scheduled")
		return
	}

	delay := max(0, expiry.Sub(s.clock.Now())-s.margin)
	epoch := s.epoch

	s.state = refreshScheduled
	s.deadline = s.clock.Now().Add(delay)
	s.timer = s.clock.AfterFunc(delay, func() {
		s.loop.Dispatch(func() { s.onTimer(epoch) })
	})

	s.logger.Debug().Str("func", "*clientSessionService.observe").Dur("delay", delay).Msg("session refresh scheduled")
}

func (s *clientSessionService) onTimer(epoch uint64) {
	if epoch != s.epoch || s.state != refreshScheduled {
		return
	}

	s.timer = nil
	s.state = refreshInFlight
	s.deadline = time.Time{}

	eventloop.Go(s.loop, s.authority.RefreshSession, func(session models.Session, err error) {
		s.onRefreshed(epoch, session, err)
	})
}

func (s *clientSessionService) onRefreshed(epoch uint64, session models.Session, err error) {
	if epoch != s.epoch {
		s.logger.Debug().Str("func", "*clientSessionService.onRefreshed").Msg("refresh result of a superseded session discarded")
		return
	}

	if err != nil {
		s.state = refreshIdle
		s.logger.Err(err).Str("func", "*clientSessionService.onRefreshed").Msg("session refresh failed, sign in again")
		s.store.SetAlert(fmt.Sprintf("session refresh failed: %v", err))
		return
	}

	s.observe(&session)
}

func (s *clientSessionService) signOut() {
	s.epoch++
	s.stopTimer()
	s.state = refreshIdle
	s.deadline = time.Time{}
	if s.store.Session() != nil {
		s.store.SetSession(nil)
	}
}

func (s *clientSessionService) stopTimer() {
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
}
