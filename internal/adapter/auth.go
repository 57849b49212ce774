// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"maps"
	"slices"
	"sync"

	"github.com/MKhiriev/go-factory-planner/models"
)

// authState holds the current session and the auth listeners.
type authState struct {
	mu        sync.RWMutex
	session   *models.Session
	listeners map[int]func(models.AuthEvent, *models.Session)
	nextID    int
}

func newAuthState() *authState {
	return &authState{listeners: make(map[int]func(models.AuthEvent, *models.Session))}
}

func (a *authState) current() *models.Session {
	a.mu.RLock()
	defer a.mu.RUnlock()

	if a.session == nil {
		return nil
	}
	s := *a.session
	return &s
}

// set replaces the session and notifies listeners outside the lock.
func (a *authState) set(event models.AuthEvent, session *models.Session) {
	a.mu.Lock()
	if session == nil {
		a.session = nil
	} else {
		s := *session
		a.session = &s
	}
	fns := slices.Collect(maps.Values(a.listeners))
	a.mu.Unlock()

	for _, fn := range fns {
		var cp *models.Session
		if session != nil {
			s := *session
			cp = &s
		}
		fn(event, cp)
	}
}

func (a *authState) subscribe(fn func(models.AuthEvent, *models.Session)) func() {
	a.mu.Lock()
	defer a.mu.Unlock()

	id := a.nextID
	a.nextID++
	a.listeners[id] = fn

	return func() {
		a.mu.Lock()
		defer a.mu.Unlock()
		delete(a.listeners, id)
	}
}

func (h *httpRemoteAuthority) SignIn(ctx context.Context, credentials models.Credentials) (models.Session, error) {
	return h.authenticate(ctx, "/api/auth/login", credentials)
}

func (h *httpRemoteAuthority) SignUp(ctx context.Context, credentials models.Credentials) (models.Session, error) {
	return h.authenticate(ctx, "/api/auth/register", credentials)
}

// authenticate posts credentials to path and installs the returned session.
func (h *httpRemoteAuthority) authenticate(ctx context.Context, path string, credentials models.Credentials) (models.Session, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(credentials).
		Post(path)
	if err != nil {
		return models.Session{}, fmt.Errorf("sign in request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Session{}, err
	}

	session, err := decodeSession(resp.Body())
	if err != nil {
		return models.Session{}, err
	}

	h.auth.set(models.AuthEventSignedIn, &session)
	return session, nil
}

// SignOut revokes the refresh token on the authority. The local session is
// dropped and SIGNED_OUT emitted even when the revocation fails.
func (h *httpRemoteAuthority) SignOut(ctx context.Context) error {
	session := h.auth.current()
	if session == nil {
		return nil
	}

	resp, err := h.authedRequest(ctx).
		SetBody(models.RefreshRequest{RefreshToken: session.RefreshToken}).
		Post("/api/auth/logout")
	if err == nil {
		err = mapHTTPError(resp)
	}

	h.auth.set(models.AuthEventSignedOut, nil)

	if err != nil {
		return fmt.Errorf("sign out: %w", err)
	}
	return nil
}

func (h *httpRemoteAuthority) RefreshSession(ctx context.Context) (models.Session, error) {
	current := h.auth.current()
	if current == nil || current.RefreshToken == "" {
		return models.Session{}, ErrNoSession
	}

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.RefreshRequest{RefreshToken: current.RefreshToken}).
		Post("/api/auth/refresh")
	if err != nil {
		return models.Session{}, fmt.Errorf("refresh request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Session{}, err
	}

	session, err := decodeSession(resp.Body())
	if err != nil {
		return models.Session{}, err
	}

	h.auth.set(models.AuthEventTokenRefreshed, &session)
	return session, nil
}

func (h *httpRemoteAuthority) Session() *models.Session {
	return h.auth.current()
}

func (h *httpRemoteAuthority) OnAuthStateChange(fn func(event models.AuthEvent, session *models.Session)) func() {
	return h.auth.subscribe(fn)
}
