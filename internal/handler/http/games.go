package http

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-factory-planner/internal/logger"
	"github.com/MKhiriev/go-factory-planner/internal/utils"
	"github.com/MKhiriev/go-factory-planner/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) listOwnGames(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromRequest(r)
	if !ok {
		h.writeError(w, r, ErrNoUserInContext, "list own games")
		return
	}

	authorID, err := int64QueryParam(r, "author_id")
	if err != nil {
		h.writeError(w, r, err, "list own games")
		return
	}

	rows, err := h.services.GameService.ListOwn(r.Context(), userID, authorID)
	if err != nil {
		h.writeError(w, r, err, "list own games")
		return
	}

	utils.WriteJSON(w, nonNilRows(rows), http.StatusOK)
}

func (h *Handler) listSharedGames(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromRequest(r)
	if !ok {
		h.writeError(w, r, ErrNoUserInContext, "list shared games")
		return
	}

	memberID, err := int64QueryParam(r, "user_id")
	if err != nil {
		h.writeError(w, r, err, "list shared games")
		return
	}

	ids, err := h.services.GameService.ListShared(r.Context(), userID, memberID)
	if err != nil {
		h.writeError(w, r, err, "list shared games")
		return
	}
	if ids == nil {
		ids = []string{}
	}

	utils.WriteJSON(w, models.SharedGamesResponse{IDs: ids}, http.StatusOK)
}

func (h *Handler) fetchGamesByIDs(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromRequest(r)
	if !ok {
		h.writeError(w, r, ErrNoUserInContext, "fetch games by ids")
		return
	}

	var request models.FetchByIDsRequest
	if err := utils.DecodeJSON(r, &request); err != nil {
		logger.FromRequest(r).Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	rows, err := h.services.GameService.GetByIDs(r.Context(), userID, request.IDs)
	if err != nil {
		h.writeError(w, r, err, "fetch games by ids")
		return
	}

	utils.WriteJSON(w, nonNilRows(rows), http.StatusOK)
}

func (h *Handler) createGame(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromRequest(r)
	if !ok {
		h.writeError(w, r, ErrNoUserInContext, "create game")
		return
	}

	var request models.CreateGameRequest
	if err := utils.DecodeJSON(r, &request); err != nil {
		logger.FromRequest(r).Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	row, err := h.services.GameService.Create(r.Context(), userID, request)
	if err != nil {
		h.writeError(w, r, err, "create game")
		return
	}

	logger.FromRequest(r).Info().Str("game_id", row.ID).Int64("user_id", userID).Msg("game created")
	utils.WriteJSON(w, row, http.StatusCreated)
}

func (h *Handler) persistGame(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromRequest(r)
	if !ok {
		h.writeError(w, r, ErrNoUserInContext, "persist game")
		return
	}

	var request models.PersistRequest
	if err := utils.DecodeJSON(r, &request); err != nil {
		logger.FromRequest(r).Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	row, err := h.services.GameService.Persist(r.Context(), userID, chi.URLParam(r, "id"), request)
	if err != nil {
		h.writeError(w, r, err, "persist game")
		return
	}

	utils.WriteJSON(w, models.PersistResponse{Version: row.Version}, http.StatusOK)
}

func (h *Handler) deleteGame(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromRequest(r)
	if !ok {
		h.writeError(w, r, ErrNoUserInContext, "delete game")
		return
	}

	gameID := chi.URLParam(r, "id")
	if err := h.services.GameService.Delete(r.Context(), userID, gameID); err != nil {
		h.writeError(w, r, err, "delete game")
		return
	}

	logger.FromRequest(r).Info().Str("game_id", gameID).Int64("user_id", userID).Msg("game deleted")
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) shareGame(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromRequest(r)
	if !ok {
		h.writeError(w, r, ErrNoUserInContext, "share game")
		return
	}

	token, err := h.services.GameService.Share(r.Context(), userID, chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, r, err, "share game")
		return
	}

	utils.WriteJSON(w, models.ShareResponse{ShareToken: token}, http.StatusOK)
}

func (h *Handler) joinGame(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromRequest(r)
	if !ok {
		h.writeError(w, r, ErrNoUserInContext, "join game")
		return
	}

	row, err := h.services.GameService.Join(r.Context(), userID, chi.URLParam(r, "token"))
	if err != nil {
		h.writeError(w, r, err, "join game")
		return
	}

	utils.WriteJSON(w, row, http.StatusOK)
}

func int64QueryParam(r *http.Request, name string) (int64, error) {
	raw := r.URL.Query().Get(name)
	value, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || value <= 0 {
		return 0, fmt.Errorf("%w: %s=%q", ErrInvalidQueryParam, name, raw)
	}
	return value, nil
}

// nonNilRows keeps empty results encoded as [] instead of null.
func nonNilRows(rows []models.GameRow) []models.GameRow {
	if rows == nil {
		return []models.GameRow{}
	}
	return rows
}
