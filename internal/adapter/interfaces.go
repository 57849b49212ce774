// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter talks to the remote authority that stores one row per
// game and fans out row changes to collaborators.
//
// [RemoteAuthority] decouples the client services from the transport. The
// package ships an HTTP implementation built on resty, with realtime
// subscriptions over websockets. HTTP status codes are mapped to the
// sentinel errors of errors.go, so callers can use [errors.Is] (for example
// [ErrNotFound] for 404, [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-factory-planner/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/remote_authority_mock.go -package=mock

// RemoteAuthority is the client view of the remote authority.
type RemoteAuthority interface {
	// Persist overwrites the row with payload and version and returns the
	// version the authority stored. The authority performs no version
	// check: the last writer wins.
	Persist(ctx context.Context, remoteID string, payload []byte, version int64) (int64, error)

	// Create inserts a new row owned by the signed-in user at version 1.
	Create(ctx context.Context, name string, payload []byte) (models.GameRow, error)

	// Delete removes the row. Only the owner may delete.
	Delete(ctx context.Context, remoteID string) error

	// FetchOwn returns the rows authored by userID.
	FetchOwn(ctx context.Context, userID int64) ([]models.GameRow, error)

	// FetchShared returns the ids of rows userID joined through a share token.
	FetchShared(ctx context.Context, userID int64) ([]string, error)

	// FetchByIDs returns the rows with the given ids. Unknown ids are skipped.
	FetchByIDs(ctx context.Context, ids []string) ([]models.GameRow, error)

	// FetchByShareToken resolves a share token and records the caller as a
	// member of the game. Returns [ErrNotFound] for an unknown token.
	FetchByShareToken(ctx context.Context, token string) (models.GameRow, error)

	// Share returns the share token of the row, creating one if needed.
	Share(ctx context.Context, remoteID string) (string, error)

	// SignIn exchanges credentials for a session and emits
	// [models.AuthEventSignedIn].
	SignIn(ctx context.Context, credentials models.Credentials) (models.Session, error)

	// SignUp registers a new account and signs it in. It emits
	// [models.AuthEventSignedIn]; a taken login yields [ErrConflict].
	SignUp(ctx context.Context, credentials models.Credentials) (models.Session, error)

	// SignOut revokes the session and emits [models.AuthEventSignedOut].
	SignOut(ctx context.Context) error

	// RefreshSession exchanges the refresh token for a new session and emits
	// [models.AuthEventTokenRefreshed].
	RefreshSession(ctx context.Context) (models.Session, error)

	// Session returns the current session, nil when signed out.
	Session() *models.Session

	// OnAuthStateChange registers fn for auth transitions and returns a
	// function that removes it. fn runs on the goroutine that caused the
	// transition.
	OnAuthStateChange(fn func(event models.AuthEvent, session *models.Session)) func()

	// Subscribe opens a realtime channel for one row. It never blocks on the
	// network: connection state is reported through the events.
	Subscribe(ctx context.Context, remoteID string) (Subscription, error)
}

// Subscription is a live realtime channel for one row.
type Subscription interface {
	// Events delivers the typed events of the channel. It is closed after
	// Unsubscribe returns.
	Events() <-chan models.RowEvent

	// Unsubscribe tears the channel down. It is idempotent.
	Unsubscribe()
}
