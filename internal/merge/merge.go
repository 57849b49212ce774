// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package merge reconciles a local and a remote snapshot of the same game.
//
// The strategy is a union with remote priority:
//   - every factory of the remote snapshot is kept as is;
//   - factories that exist only locally are appended after the remote ones,
//     in local order;
//   - a factory present on both sides takes the remote content, the local
//     content is discarded;
//   - scalar game fields come from the remote snapshot.
//
// Concurrent edits of the same factory therefore converge to the remote edit
// and the local edit is lost. Only factories created on one side and absent
// on the other are guaranteed to survive.
//
// The functions are pure: inputs are never modified and the result shares no
// memory with them.
package merge

import (
	"github.com/MKhiriev/go-factory-planner/models"
)

// Merge returns the reconciliation of local and remote.
//
// Solvers follow the factory whose id they share: shared ids take the remote
// solver (or none, if the remote side has none), local-only ids keep the
// local solver.
//
// Local-authority game fields are not part of a snapshot; callers re-apply
// them to the merged result.
func Merge(local, remote models.Snapshot) models.Snapshot {
	merged := remote.Clone()

	for _, id := range LocalOnlyIDs(local, remote) {
		merged.Game.FactoryIDs = append(merged.Game.FactoryIDs, id)

		if factory, ok := local.Factories[id]; ok {
			merged.Factories[id] = factory
		}
		if solver, ok := local.Solvers[id]; ok {
			merged.Solvers[id] = solver.Clone()
		}
	}

	return merged
}

// LocalOnlyIDs returns the factory ids of local that the remote snapshot does
// not know, in local order.
func LocalOnlyIDs(local, remote models.Snapshot) []string {
	known := remoteIDs(remote)

	ids := make([]string, 0)
	seen := make(map[string]struct{}, len(local.Game.FactoryIDs))
	for _, id := range local.Game.FactoryIDs {
		if _, ok := known[id]; ok {
			continue
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}

	return ids
}

// HasLocalChanges is a coarse divergence signal: it reports whether local
// holds factories the remote has not seen, or whether the factory counts
// differ. It does not detect edits inside shared factories.
func HasLocalChanges(local, remote models.Snapshot) bool {
	if len(LocalOnlyIDs(local, remote)) > 0 {
		return true
	}
	return len(local.Game.FactoryIDs) != len(remote.Game.FactoryIDs)
}

func remoteIDs(remote models.Snapshot) map[string]struct{} {
	ids := make(map[string]struct{}, len(remote.Game.FactoryIDs)+len(remote.Factories))
	for _, id := range remote.Game.FactoryIDs {
		ids[id] = struct{}{}
	}
	for id := range remote.Factories {
		ids[id] = struct{}{}
	}
	return ids
}
