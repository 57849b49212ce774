// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"strings"
	"testing"

	"github.com/MKhiriev/go-factory-planner/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validSnapshot() models.Snapshot {
	return models.Snapshot{
		Game: models.SnapshotGame{Name: "base", FactoryIDs: []string{"A", "B"}},
		Factories: map[string]models.Factory{
			"A": {ID: "A", Name: "smelter", Rate: 30},
			"B": {ID: "B", Name: "assembler", Rate: 10},
		},
		Solvers: map[string]models.Solver{
			"B": {ID: "B", TargetItem: "gear", TargetRate: 10},
		},
	}
}

func encode(t *testing.T, snap models.Snapshot) []byte {
	t.Helper()
	payload, err := models.EncodeSnapshot(snap)
	require.NoError(t, err)
	return payload
}

// ── Dispatch ────────────────────────────────────────────────────────────────

func TestGameValidator_UnsupportedType(t *testing.T) {
	err := NewGameValidator().Validate(context.Background(), 42)
	assert.ErrorIs(t, err, ErrUnsupportedType)
}

func TestGameValidator_UnknownField(t *testing.T) {
	err := NewGameValidator().Validate(context.Background(), models.Credentials{Login: "a", Password: "b"}, "nope")
	assert.ErrorIs(t, err, ErrUnknownField)
}

func TestGameValidator_AcceptsPointers(t *testing.T) {
	v := NewGameValidator()
	ctx := context.Background()

	assert.NoError(t, v.Validate(ctx, &models.Credentials{Login: "alice", Password: "pw"}))
	assert.NoError(t, v.Validate(ctx, &models.FetchByIDsRequest{IDs: []string{"r1"}}))
	snap := validSnapshot()
	assert.NoError(t, v.Validate(ctx, &snap))
}

// ── Credentials ─────────────────────────────────────────────────────────────

func TestGameValidator_Credentials(t *testing.T) {
	tests := []struct {
		name    string
		creds   models.Credentials
		fields  []string
		wantErr error
	}{
		{name: "valid", creds: models.Credentials{Login: "alice", Password: "pw"}},
		{name: "empty login", creds: models.Credentials{Password: "pw"}, wantErr: ErrEmptyLogin},
		{name: "login with space", creds: models.Credentials{Login: "al ice", Password: "pw"}, wantErr: ErrInvalidLogin},
		{name: "long login", creds: models.Credentials{Login: strings.Repeat("a", 65), Password: "pw"}, wantErr: ErrInvalidLogin},
		{name: "empty password", creds: models.Credentials{Login: "alice"}, wantErr: ErrEmptyPassword},
		{name: "login only", creds: models.Credentials{Login: "alice"}, fields: []string{FieldLogin}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewGameValidator().Validate(context.Background(), tt.creds, tt.fields...)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

// ── Requests ────────────────────────────────────────────────────────────────

func TestGameValidator_CreateRequest(t *testing.T) {
	v := NewGameValidator()
	ctx := context.Background()

	assert.NoError(t, v.Validate(ctx, models.CreateGameRequest{Name: "base", Data: encode(t, validSnapshot())}))
	assert.ErrorIs(t, v.Validate(ctx, models.CreateGameRequest{Name: " ", Data: encode(t, validSnapshot())}), ErrEmptyName)
	assert.ErrorIs(t, v.Validate(ctx, models.CreateGameRequest{Name: strings.Repeat("x", 201), Data: encode(t, validSnapshot())}), ErrNameTooLong)
	assert.ErrorIs(t, v.Validate(ctx, models.CreateGameRequest{Name: "base"}), ErrEmptyData)
	assert.ErrorIs(t, v.Validate(ctx, models.CreateGameRequest{Name: "base", Data: []byte("{")}), ErrMalformedData)
}

func TestGameValidator_PersistRequest(t *testing.T) {
	v := NewGameValidator()
	ctx := context.Background()
	payload := encode(t, validSnapshot())

	assert.NoError(t, v.Validate(ctx, models.PersistRequest{Data: payload, Version: 2}))
	assert.ErrorIs(t, v.Validate(ctx, models.PersistRequest{Data: payload, Version: 0}), ErrInvalidVersion)
	assert.NoError(t, v.Validate(ctx, models.PersistRequest{Version: 3}, FieldVersion))
}

func TestGameValidator_FetchByIDsRequest(t *testing.T) {
	v := NewGameValidator()
	ctx := context.Background()

	assert.ErrorIs(t, v.Validate(ctx, models.FetchByIDsRequest{}), ErrEmptyIDs)
	assert.ErrorIs(t, v.Validate(ctx, models.FetchByIDsRequest{IDs: make([]string, 501)}), ErrTooManyIDs)
}

// ── Snapshot ────────────────────────────────────────────────────────────────

func TestGameValidator_Snapshot(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*models.Snapshot)
		wantErr error
	}{
		{name: "valid", mutate: func(*models.Snapshot) {}},
		{
			name:    "duplicate id",
			mutate:  func(s *models.Snapshot) { s.Game.FactoryIDs = []string{"A", "A", "B"} },
			wantErr: ErrDuplicateID,
		},
		{
			name:    "listed but missing",
			mutate:  func(s *models.Snapshot) { delete(s.Factories, "A") },
			wantErr: ErrDanglingFactory,
		},
		{
			name:    "present but unlisted",
			mutate:  func(s *models.Snapshot) { s.Factories["C"] = models.Factory{ID: "C"} },
			wantErr: ErrDanglingFactory,
		},
		{
			name:    "orphan solver",
			mutate:  func(s *models.Snapshot) { s.Solvers["Z"] = models.Solver{ID: "Z"} },
			wantErr: ErrOrphanSolver,
		},
		{
			name:    "negative rate",
			mutate:  func(s *models.Snapshot) { s.Factories["A"] = models.Factory{ID: "A", Rate: -1} },
			wantErr: ErrNegativeRate,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			snap := validSnapshot()
			tt.mutate(&snap)

			err := NewGameValidator().Validate(context.Background(), snap)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
