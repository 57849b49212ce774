// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// SyncStatus is the observable synchronization state read by the UI.
type SyncStatus struct {
	// IsSyncing is true while at least one push is in flight.
	IsSyncing bool

	// IsSubscribed is true while the realtime channel of the focused game
	// is live.
	IsSubscribed bool

	// SyncErrors holds the last push error per game, keyed by local id.
	SyncErrors map[string]string

	// SavedID is the local id of the game persisted most recently.
	SavedID string

	// Alert is a terminal, user-visible error (failed join, remote
	// deletion, lost session).
	Alert string
}
