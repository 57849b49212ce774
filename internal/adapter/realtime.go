// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/MKhiriev/go-factory-planner/internal/logger"
	"github.com/MKhiriev/go-factory-planner/internal/utils"
	"github.com/MKhiriev/go-factory-planner/models"
	"github.com/coder/websocket"
)

const eventsBuffer = 16

// errRowGone marks a channel that must not be redialed.
var errRowGone = errors.New("realtime row is gone")

// wsSubscription keeps a websocket open to the realtime endpoint of one row,
// reconnecting after a drop, and translates wire messages into row events.
type wsSubscription struct {
	remoteID string
	url      string
	token    func() string

	reconnectDelay time.Duration
	logger         *logger.Logger

	events chan models.RowEvent
	cancel context.CancelFunc
	done   chan struct{}
	once   sync.Once
}

func (h *httpRemoteAuthority) Subscribe(ctx context.Context, remoteID string) (Subscription, error) {
	if remoteID == "" {
		return nil, fmt.Errorf("%w: empty remote id", ErrBadRequest)
	}

	wsURL, err := utils.WebsocketURL(h.client.BaseURL, "/api/realtime/games/"+remoteID)
	if err != nil {
		return nil, fmt.Errorf("realtime url: %w", err)
	}

	subCtx, cancel := context.WithCancel(ctx)
	sub := &wsSubscription{
		remoteID: remoteID,
		url:      wsURL,
		token: func() string {
			if s := h.auth.current(); s != nil {
				return s.AccessToken
			}
			return ""
		},
		reconnectDelay: h.reconnectDelay,
		logger:         h.logger,
		events:         make(chan models.RowEvent, eventsBuffer),
		cancel:         cancel,
		done:           make(chan struct{}),
	}

	go sub.run(subCtx)

	return sub, nil
}

func (s *wsSubscription) Events() <-chan models.RowEvent {
	return s.events
}

func (s *wsSubscription) Unsubscribe() {
	s.once.Do(func() {
		s.cancel()
		<-s.done
	})
}

func (s *wsSubscription) run(ctx context.Context) {
	defer close(s.done)
	defer close(s.events)

	for {
		conn, err := s.dial(ctx)
		gone := errors.Is(err, errRowGone)
		if err == nil {
			s.emit(ctx, models.RowEvent{Kind: models.RowSubscribed, RemoteID: s.remoteID})
			gone, err = s.readLoop(ctx, conn)
			_ = conn.Close(websocket.StatusNormalClosure, "")
			s.emit(ctx, models.RowEvent{Kind: models.RowUnsubscribed, RemoteID: s.remoteID})
		}

		if ctx.Err() != nil {
			return
		}

		if gone {
			// the row is deleted or no longer readable: redialing cannot succeed
			s.logger.Info().Err(err).
				Str("func", "wsSubscription.run").
				Str("remote_id", s.remoteID).
				Msg("realtime channel ended for good")
			<-ctx.Done()
			return
		}

		s.logger.Warn().Err(err).
			Str("func", "wsSubscription.run").
			Str("remote_id", s.remoteID).
			Dur("retry_in", s.reconnectDelay).
			Msg("realtime channel unavailable")

		select {
		case <-ctx.Done():
			return
		case <-time.After(s.reconnectDelay):
		}
	}
}

func (s *wsSubscription) dial(ctx context.Context) (*websocket.Conn, error) {
	header := http.Header{}
	if token := s.token(); token != "" {
		header.Set("Authorization", "Bearer "+token)
	}

	conn, resp, err := websocket.Dial(ctx, s.url, &websocket.DialOptions{HTTPHeader: header})
	if err != nil {
		if resp != nil && (resp.StatusCode == http.StatusNotFound || resp.StatusCode == http.StatusForbidden) {
			return nil, fmt.Errorf("%w: dial realtime channel: status %d", errRowGone, resp.StatusCode)
		}
		return nil, fmt.Errorf("dial realtime channel: %w", err)
	}
	return conn, nil
}

// readLoop pumps messages until the connection ends. gone reports that the
// row was deleted, in which case the server closes normally.
func (s *wsSubscription) readLoop(ctx context.Context, conn *websocket.Conn) (gone bool, err error) {
	for {
		_, data, readErr := conn.Read(ctx)
		if readErr != nil {
			if errors.Is(readErr, context.Canceled) {
				return false, nil
			}
			if websocket.CloseStatus(readErr) == websocket.StatusNormalClosure {
				return gone, nil
			}
			return gone, readErr
		}

		event, ok := s.decode(data)
		if !ok {
			continue
		}
		if event.Kind == models.RowDeleted {
			gone = true
		}
		s.emit(ctx, event)
	}
}

func (s *wsSubscription) decode(data []byte) (models.RowEvent, bool) {
	var msg models.RealtimeMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		s.logger.Err(err).Str("func", "wsSubscription.decode").Msg("malformed realtime message")
		return models.RowEvent{}, false
	}

	switch msg.Type {
	case models.RealtimeDeleted:
		return models.RowEvent{Kind: models.RowDeleted, RemoteID: s.remoteID}, true

	case models.RealtimeUpdated:
		if msg.Row == nil {
			s.logger.Warn().Str("func", "wsSubscription.decode").Msg("update without row")
			return models.RowEvent{}, false
		}
		snapshot, err := models.DecodeSnapshot(msg.Row.Data)
		if err != nil {
			s.logger.Err(err).Str("func", "wsSubscription.decode").
				Str("remote_id", s.remoteID).
				Msg("undecodable payload in update")
			return models.RowEvent{}, false
		}
		return models.RowEvent{
			Kind:     models.RowUpdated,
			RemoteID: s.remoteID,
			Snapshot: snapshot,
			Version:  msg.Row.Version,
		}, true

	default:
		s.logger.Debug().Str("func", "wsSubscription.decode").Str("type", msg.Type).Msg("ignoring realtime message")
		return models.RowEvent{}, false
	}
}

// emit delivers event unless the subscription is being torn down.
func (s *wsSubscription) emit(ctx context.Context, event models.RowEvent) {
	select {
	case s.events <- event:
	case <-ctx.Done():
	}
}
