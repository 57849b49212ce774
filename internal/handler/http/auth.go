package http

import (
	"net/http"

	"github.com/MKhiriev/go-factory-planner/internal/logger"
	"github.com/MKhiriev/go-factory-planner/internal/utils"
	"github.com/MKhiriev/go-factory-planner/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var credentials models.Credentials
	if err := utils.DecodeJSON(r, &credentials); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	session, err := h.services.AuthService.Register(ctx, credentials)
	if err != nil {
		h.writeError(w, r, err, "user registration failed")
		return
	}

	log.Info().Int64("user_id", session.UserID).Msg("user registered")
	utils.WriteJSON(w, session, http.StatusOK)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var credentials models.Credentials
	if err := utils.DecodeJSON(r, &credentials); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	session, err := h.services.AuthService.Login(ctx, credentials)
	if err != nil {
		h.writeError(w, r, err, "user login failed")
		return
	}

	log.Debug().Int64("user_id", session.UserID).Msg("user successfully logged in")
	utils.WriteJSON(w, session, http.StatusOK)
}

func (h *Handler) refresh(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var request models.RefreshRequest
	if err := utils.DecodeJSON(r, &request); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	session, err := h.services.AuthService.Refresh(ctx, request.RefreshToken)
	if err != nil {
		h.writeError(w, r, err, "session refresh failed")
		return
	}

	utils.WriteJSON(w, session, http.StatusOK)
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var request models.RefreshRequest
	if err := utils.DecodeJSON(r, &request); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	if err := h.services.AuthService.Logout(ctx, request.RefreshToken); err != nil {
		h.writeError(w, r, err, "logout failed")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
