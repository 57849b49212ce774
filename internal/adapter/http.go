// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/MKhiriev/go-factory-planner/internal/config"
	"github.com/MKhiriev/go-factory-planner/internal/logger"
	"github.com/MKhiriev/go-factory-planner/internal/utils"
	"github.com/MKhiriev/go-factory-planner/models"
	"github.com/go-resty/resty/v2"
)

type httpRemoteAuthority struct {
	client *utils.HTTPClient

	auth *authState

	reconnectDelay time.Duration
	logger         *logger.Logger
}

// NewHTTPRemoteAuthority builds the HTTP implementation of [RemoteAuthority]
// for the authority at adapterCfg.ServerURL. reconnectDelay is the pause
// between realtime reconnect attempts.
func NewHTTPRemoteAuthority(adapterCfg config.ClientAdapter, reconnectDelay time.Duration, log *logger.Logger) (RemoteAuthority, error) {
	client, err := utils.NewHTTPClient(adapterCfg.ServerURL, adapterCfg.RequestTimeout)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter server url: %w", err)
	}

	if reconnectDelay <= 0 {
		reconnectDelay = config.DefaultReconnectDelay
	}

	return &httpRemoteAuthority{
		client:         client,
		auth:           newAuthState(),
		reconnectDelay: reconnectDelay,
		logger:         log,
	}, nil
}

func (h *httpRemoteAuthority) Persist(ctx context.Context, remoteID string, payload []byte, version int64) (int64, error) {
	var out models.PersistResponse

	resp, err := h.authedRequest(ctx).
		SetBody(models.PersistRequest{Data: payload, Version: version}).
		SetResult(&out).
		SetPathParam("id", remoteID).
		Put("/api/games/{id}")
	if err != nil {
		return 0, fmt.Errorf("persist request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return 0, err
	}

	return out.Version, nil
}

func (h *httpRemoteAuthority) Create(ctx context.Context, name string, payload []byte) (models.GameRow, error) {
	var row models.GameRow

	resp, err := h.authedRequest(ctx).
		SetBody(models.CreateGameRequest{Name: name, Data: payload}).
		SetResult(&row).
		Post("/api/games")
	if err != nil {
		return models.GameRow{}, fmt.Errorf("create request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.GameRow{}, err
	}

	return row, nil
}

func (h *httpRemoteAuthority) Delete(ctx context.Context, remoteID string) error {
	resp, err := h.authedRequest(ctx).
		SetPathParam("id", remoteID).
		Delete("/api/games/{id}")
	if err != nil {
		return fmt.Errorf("delete request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpRemoteAuthority) FetchOwn(ctx context.Context, userID int64) ([]models.GameRow, error) {
	var rows []models.GameRow

	resp, err := h.authedRequest(ctx).
		SetQueryParam("author_id", strconv.FormatInt(userID, 10)).
		SetResult(&rows).
		Get("/api/games")
	if err != nil {
		return nil, fmt.Errorf("fetch own request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return rows, nil
}

func (h *httpRemoteAuthority) FetchShared(ctx context.Context, userID int64) ([]string, error) {
	var out models.SharedGamesResponse

	resp, err := h.authedRequest(ctx).
		SetQueryParam("user_id", strconv.FormatInt(userID, 10)).
		SetResult(&out).
		Get("/api/games/shared")
	if err != nil {
		return nil, fmt.Errorf("fetch shared request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return out.IDs, nil
}

func (h *httpRemoteAuthority) FetchByIDs(ctx context.Context, ids []string) ([]models.GameRow, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	var rows []models.GameRow

	resp, err := h.authedRequest(ctx).
		SetBody(models.FetchByIDsRequest{IDs: ids}).
		SetResult(&rows).
		Post("/api/games/batch")
	if err != nil {
		return nil, fmt.Errorf("fetch by ids request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return rows, nil
}

func (h *httpRemoteAuthority) FetchByShareToken(ctx context.Context, token string) (models.GameRow, error) {
	var row models.GameRow

	resp, err := h.authedRequest(ctx).
		SetPathParam("token", token).
		SetResult(&row).
		Get("/api/games/share/{token}")
	if err != nil {
		return models.GameRow{}, fmt.Errorf("fetch by share token request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.GameRow{}, err
	}

	return row, nil
}

func (h *httpRemoteAuthority) Share(ctx context.Context, remoteID string) (string, error) {
	var out models.ShareResponse

	resp, err := h.authedRequest(ctx).
		SetPathParam("id", remoteID).
		SetResult(&out).
		Post("/api/games/{id}/share")
	if err != nil {
		return "", fmt.Errorf("share request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return out.ShareToken, nil
}

// authedRequest starts a JSON request carrying the current access token.
func (h *httpRemoteAuthority) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json")
	if session := h.auth.current(); session != nil {
		req.SetAuthToken(session.AccessToken)
	}
	return req
}

// decodeSession reads a session body and fills user id and expiry from the
// access token claims.
func decodeSession(body []byte) (models.Session, error) {
	var session models.Session
	if err := json.Unmarshal(body, &session); err != nil {
		return models.Session{}, fmt.Errorf("decode session: %w", err)
	}
	if session.AccessToken == "" {
		return models.Session{}, fmt.Errorf("decode session: empty access token")
	}

	userID, expiresAt, err := utils.ParseUnverifiedClaims(session.AccessToken)
	if err != nil {
		return models.Session{}, fmt.Errorf("decode session: %w", err)
	}
	session.UserID = userID
	if expiresAt > 0 {
		session.ExpiresAt = expiresAt
	}

	return session, nil
}
