// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/MKhiriev/go-factory-planner/internal/logger"
	"github.com/MKhiriev/go-factory-planner/models"
	"github.com/coder/websocket"
	"github.com/go-chi/chi/v5"
)

// realtimeWriteTimeout bounds a single websocket write.
const realtimeWriteTimeout = 10 * time.Second

// watchGame upgrades the request to a websocket that streams the changes of
// one row. The current row is sent as an "updated" message right after the
// upgrade. The socket is closed after a "deleted" message.
func (h *Handler) watchGame(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromRequest(r)
	if !ok {
		h.writeError(w, r, ErrNoUserInContext, "watch game")
		return
	}

	gameID := chi.URLParam(r, "id")

	// subscribe before reading the row so a change published in between is
	// queued; the client drops the duplicate by version
	messages, cancel := h.hub.Subscribe(gameID)
	defer cancel()

	row, err := h.services.GameService.Watch(r.Context(), userID, gameID)
	if err != nil {
		cancel()
		h.writeError(w, r, err, "watch game")
		return
	}

	log := logger.FromRequest(r)

	conn, err := websocket.Accept(w, r, nil)
	if err != nil {
		log.Err(err).Str("func", "*Handler.watchGame").Msg("websocket upgrade failed")
		return
	}
	defer conn.CloseNow()

	// the client never sends anything; CloseRead reports its disconnect
	ctx := conn.CloseRead(context.WithoutCancel(r.Context()))

	log.Debug().Str("game_id", gameID).Int64("user_id", userID).Msg("realtime watcher attached")

	if err = h.writeMessage(ctx, conn, models.RealtimeMessage{Type: models.RealtimeUpdated, ID: gameID, Row: &row}); err != nil {
		log.Err(err).Str("func", "*Handler.watchGame").Msg("writing initial row failed")
		return
	}

	for {
		select {
		case <-ctx.Done():
			log.Debug().Str("game_id", gameID).Msg("realtime watcher left")
			return

		case msg, open := <-messages:
			if !open {
				// hub closed or this watcher fell behind; the client
				// reconnects and receives the current row
				conn.Close(websocket.StatusGoingAway, "stream ended")
				return
			}
			if err = h.writeMessage(ctx, conn, msg); err != nil {
				log.Err(err).Str("func", "*Handler.watchGame").Str("game_id", gameID).Msg("writing realtime message failed")
				return
			}
			if msg.Type == models.RealtimeDeleted {
				conn.Close(websocket.StatusNormalClosure, "game deleted")
				return
			}
		}
	}
}

func (h *Handler) writeMessage(ctx context.Context, conn *websocket.Conn, msg models.RealtimeMessage) error {
	data, err := json.Marshal(msg)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, realtimeWriteTimeout)
	defer cancel()

	return conn.Write(ctx, websocket.MessageText, data)
}
