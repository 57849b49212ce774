// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"time"
)

// GameRow is the authoritative shape of a game stored by the remote
// authority. Data is the opaque payload produced by [EncodeSnapshot].
type GameRow struct {
	ID         string          `json:"id"`
	AuthorID   int64           `json:"author_id"`
	Name       string          `json:"name"`
	Data       json.RawMessage `json:"data"`
	ShareToken *string         `json:"share_token"`
	Version    int64           `json:"version"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}

// TableName returns the name of the database table associated with GameRow.
func (g GameRow) TableName() string {
	return "games"
}

// PersistRequest overwrites the payload of an existing row. Version is the
// version the client expects the row to have after the write. The authority
// does not compare it with the stored version. The row name is taken from
// the payload.
type PersistRequest struct {
	Data    json.RawMessage `json:"data"`
	Version int64           `json:"version"`
}

// PersistResponse echoes the version stored by the authority.
type PersistResponse struct {
	Version int64 `json:"version"`
}

// CreateGameRequest creates a new remote row at version 1.
type CreateGameRequest struct {
	Name string          `json:"name"`
	Data json.RawMessage `json:"data"`
}

// FetchByIDsRequest asks for several rows at once.
type FetchByIDsRequest struct {
	IDs []string `json:"ids"`
}

// SharedGamesResponse lists the rows a user joined through share tokens.
type SharedGamesResponse struct {
	IDs []string `json:"ids"`
}

// ShareResponse carries the share token of a row.
type ShareResponse struct {
	ShareToken string `json:"share_token"`
}
