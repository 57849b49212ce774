// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"fmt"
	"maps"
	"slices"
)

// SnapshotGame carries the portable scalar fields of a game.
//
// Local-authority fields (remote id, author, share token, creation time) are
// deliberately absent: they never travel inside a payload.
type SnapshotGame struct {
	Name       string   `json:"name"`
	FactoryIDs []string `json:"factory_ids"`
}

// Snapshot is a self-contained copy of one game and all of its children.
// Snapshots are values: producing, encoding or merging a snapshot never
// mutates another one.
type Snapshot struct {
	Game      SnapshotGame       `json:"game"`
	Factories map[string]Factory `json:"factories"`
	Solvers   map[string]Solver  `json:"solvers"`
}

// Clone returns a deep copy of s.
func (s Snapshot) Clone() Snapshot {
	out := Snapshot{
		Game: SnapshotGame{
			Name:       s.Game.Name,
			FactoryIDs: slices.Clone(s.Game.FactoryIDs),
		},
		Factories: make(map[string]Factory, len(s.Factories)),
		Solvers:   make(map[string]Solver, len(s.Solvers)),
	}
	if out.Game.FactoryIDs == nil {
		out.Game.FactoryIDs = []string{}
	}

	maps.Copy(out.Factories, s.Factories)
	for id, solver := range s.Solvers {
		out.Solvers[id] = solver.Clone()
	}

	return out
}

// Clone returns a deep copy of s.
func (s Solver) Clone() Solver {
	s.Recipes = slices.Clone(s.Recipes)
	if s.Machines != nil {
		s.Machines = maps.Clone(s.Machines)
	}
	return s
}

// EncodeSnapshot serializes s into the opaque payload stored in the remote
// row. Map keys are emitted in sorted order, so equal snapshots always
// produce identical payloads.
func EncodeSnapshot(s Snapshot) ([]byte, error) {
	payload, err := json.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("encode snapshot: %w", err)
	}
	return payload, nil
}

// DecodeSnapshot parses a payload produced by [EncodeSnapshot].
func DecodeSnapshot(payload []byte) (Snapshot, error) {
	var s Snapshot
	if err := json.Unmarshal(payload, &s); err != nil {
		return Snapshot{}, fmt.Errorf("decode snapshot: %w", err)
	}
	if s.Game.FactoryIDs == nil {
		s.Game.FactoryIDs = []string{}
	}
	if s.Factories == nil {
		s.Factories = map[string]Factory{}
	}
	if s.Solvers == nil {
		s.Solvers = map[string]Solver{}
	}
	return s, nil
}
