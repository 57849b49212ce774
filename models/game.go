// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Game is the unit of synchronization: a planning document that owns an
// ordered collection of factories.
//
// A Game without RemoteID has never been persisted. Such a game is never a
// target of an inbound merge, and its Version carries no meaning until the
// first successful persist.
type Game struct {
	// ID is the local identifier, stable for the lifetime of the client
	// session.
	ID string `json:"id"`

	// RemoteID is the identifier of the remote row. Empty until the game has
	// been persisted for the first time.
	RemoteID string `json:"remote_id,omitempty"`

	// Version starts at 1 and grows by one on every successful persist. It is
	// never lowered and never reused.
	Version int64 `json:"version"`

	// Name is the human-readable title of the game.
	Name string `json:"name"`

	// FactoryIDs is the ordered list of child factories.
	FactoryIDs []string `json:"factory_ids"`

	// AuthorID identifies the owner of the remote row.
	AuthorID int64 `json:"author_id"`

	// ShareToken lets other users join the game. Empty when the game is not
	// shared.
	ShareToken string `json:"share_token,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// IsPersisted reports whether the game has a remote row.
func (g Game) IsPersisted() bool {
	return g.RemoteID != ""
}

// Factory is a production line inside a game. Factories are replaced
// wholesale on merge, never merged field by field.
type Factory struct {
	ID     string  `json:"id"`
	Name   string  `json:"name"`
	Item   string  `json:"item"`
	Rate   float64 `json:"rate"`
	Notes  string  `json:"notes,omitempty"`
	Hidden bool    `json:"hidden,omitempty"`
}

// Solver is the production solver attached to a factory. It shares its ID
// with the factory it solves.
type Solver struct {
	ID         string             `json:"id"`
	TargetItem string             `json:"target_item"`
	TargetRate float64            `json:"target_rate"`
	Recipes    []string           `json:"recipes,omitempty"`
	Machines   map[string]float64 `json:"machines,omitempty"`
}
