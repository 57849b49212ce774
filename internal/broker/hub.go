// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package broker fans row changes out to the realtime connections that
// watch the row.
//
// Publish never blocks: a subscriber whose buffer is full is evicted. Its
// channel is closed after the queued messages, so the connection ends and
// the client reconnects, receiving the current row again.
package broker

import (
	"sync"

	"github.com/MKhiriev/go-factory-planner/internal/logger"
	"github.com/MKhiriev/go-factory-planner/internal/metrics"
	"github.com/MKhiriev/go-factory-planner/models"
)

// DefaultBuffer is the per-subscriber queue length.
const DefaultBuffer = 16

type subscriber struct {
	ch chan models.RealtimeMessage
}

// Hub is an in-process per-row publish/subscribe registry.
type Hub struct {
	mu     sync.Mutex
	rows   map[string]map[*subscriber]struct{}
	buffer int
	closed bool

	metrics *metrics.Metrics
	logger  *logger.Logger
}

// NewHub creates a hub. m may be nil.
func NewHub(buffer int, m *metrics.Metrics, log *logger.Logger) *Hub {
	if buffer <= 0 {
		buffer = DefaultBuffer
	}
	return &Hub{
		rows:    make(map[string]map[*subscriber]struct{}),
		buffer:  buffer,
		metrics: m,
		logger:  log,
	}
}

// Subscribe registers interest in rowID. The returned cancel function
// unregisters and closes the channel; it is idempotent.
func (h *Hub) Subscribe(rowID string) (<-chan models.RealtimeMessage, func()) {
	sub := &subscriber{ch: make(chan models.RealtimeMessage, h.buffer)}

	h.mu.Lock()
	if h.closed {
		h.mu.Unlock()
		close(sub.ch)
		return sub.ch, func() {}
	}
	subs, ok := h.rows[rowID]
	if !ok {
		subs = make(map[*subscriber]struct{})
		h.rows[rowID] = subs
	}
	subs[sub] = struct{}{}
	h.mu.Unlock()

	if h.metrics != nil {
		h.metrics.RealtimeSubscribers.Inc()
	}

	var once sync.Once
	cancel := func() {
		once.Do(func() { h.unsubscribe(rowID, sub) })
	}

	return sub.ch, cancel
}

func (h *Hub) unsubscribe(rowID string, sub *subscriber) {
	h.mu.Lock()
	defer h.mu.Unlock()

	subs := h.rows[rowID]
	if _, ok := subs[sub]; !ok {
		return
	}
	h.evictLocked(rowID, subs, sub)
}

// Publish delivers message to every subscriber of message.ID.
func (h *Hub) Publish(message models.RealtimeMessage) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.metrics != nil {
		h.metrics.RealtimePublished.WithLabelValues(message.Type).Inc()
	}

	subs := h.rows[message.ID]
	for sub := range subs {
		select {
		case sub.ch <- message:
		default:
			h.logger.Warn().Str("func", "*Hub.Publish").Str("row_id", message.ID).Str("type", message.Type).
				Msg("subscriber is not keeping up, evicted")
			if h.metrics != nil {
				h.metrics.RealtimeDropped.Inc()
			}
			h.evictLocked(message.ID, subs, sub)
		}
	}
}

func (h *Hub) evictLocked(rowID string, subs map[*subscriber]struct{}, sub *subscriber) {
	delete(subs, sub)
	if len(subs) == 0 {
		delete(h.rows, rowID)
	}
	close(sub.ch)

	if h.metrics != nil {
		h.metrics.RealtimeSubscribers.Dec()
	}
}

// Subscribers returns the number of subscribers of rowID.
func (h *Hub) Subscribers(rowID string) int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.rows[rowID])
}

// Close closes every subscriber channel. Later subscriptions receive an
// already closed channel.
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.closed = true
	for rowID, subs := range h.rows {
		for sub := range subs {
			close(sub.ch)
			if h.metrics != nil {
				h.metrics.RealtimeSubscribers.Dec()
			}
		}
		delete(h.rows, rowID)
	}
}
