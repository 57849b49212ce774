// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// RowEventKind enumerates the events a realtime subscription delivers.
type RowEventKind int

const (
	// RowSubscribed is delivered when the channel becomes live.
	RowSubscribed RowEventKind = iota
	// RowUnsubscribed is delivered when a live channel drops.
	RowUnsubscribed
	// RowUpdated carries a new snapshot of the watched row.
	RowUpdated
	// RowDeleted reports that the watched row no longer exists.
	RowDeleted
)

func (k RowEventKind) String() string {
	switch k {
	case RowSubscribed:
		return "subscribed"
	case RowUnsubscribed:
		return "unsubscribed"
	case RowUpdated:
		return "updated"
	case RowDeleted:
		return "deleted"
	default:
		return "unknown"
	}
}

// RowEvent is a typed event of a realtime subscription. Snapshot and
// Version are set for RowUpdated only.
type RowEvent struct {
	Kind     RowEventKind
	RemoteID string
	Snapshot Snapshot
	Version  int64
}

// Realtime wire message types.
const (
	RealtimeUpdated = "updated"
	RealtimeDeleted = "deleted"
)

// RealtimeMessage is the wire format of a change notification.
type RealtimeMessage struct {
	Type string   `json:"type"`
	ID   string   `json:"id"`
	Row  *GameRow `json:"row,omitempty"`
}
