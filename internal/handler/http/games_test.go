package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/MKhiriev/go-factory-planner/internal/service"
	"github.com/MKhiriev/go-factory-planner/internal/store"
	"github.com/MKhiriev/go-factory-planner/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func testRow(id string, version int64) models.GameRow {
	ts := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	return models.GameRow{
		ID:        id,
		AuthorID:  testUserID,
		Name:      "base",
		Data:      json.RawMessage(`{"game":{"name":"base"}}`),
		Version:   version,
		CreatedAt: ts,
		UpdatedAt: ts,
	}
}

// ── Reads ──

func TestListOwnGames(t *testing.T) {
	t.Run("returns the rows of the author", func(t *testing.T) {
		f := newHandlerFixture(t)
		rows := []models.GameRow{testRow("g1", 3), testRow("g2", 1)}
		f.games.EXPECT().ListOwn(gomock.Any(), testUserID, testUserID).Return(rows, nil)

		resp := f.do(t, http.MethodGet, "/api/games?author_id=7", testToken, nil)

		require.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, rows, decodeBody[[]models.GameRow](t, resp))
	})

	t.Run("empty result is an empty array", func(t *testing.T) {
		f := newHandlerFixture(t)
		f.games.EXPECT().ListOwn(gomock.Any(), testUserID, testUserID).Return(nil, nil)

		resp := f.do(t, http.MethodGet, "/api/games?author_id=7", testToken, nil)

		require.Equal(t, http.StatusOK, resp.StatusCode)
		assert.JSONEq(t, `[]`, decodeText(t, resp))
	})

	t.Run("someone else's rows are forbidden", func(t *testing.T) {
		f := newHandlerFixture(t)
		f.games.EXPECT().ListOwn(gomock.Any(), testUserID, int64(8)).Return(nil, service.ErrNoGameAccess)

		resp := f.do(t, http.MethodGet, "/api/games?author_id=8", testToken, nil)

		assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	})

	t.Run("missing author is a bad request", func(t *testing.T) {
		f := newHandlerFixture(t)

		resp := f.do(t, http.MethodGet, "/api/games", testToken, nil)

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}

func TestListSharedGames(t *testing.T) {
	f := newHandlerFixture(t)
	f.games.EXPECT().ListShared(gomock.Any(), testUserID, testUserID).Return([]string{"g4", "g9"}, nil)

	resp := f.do(t, http.MethodGet, "/api/games/shared?user_id=7", testToken, nil)

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, []string{"g4", "g9"}, decodeBody[models.SharedGamesResponse](t, resp).IDs)
}

func TestFetchGamesByIDs(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		f := newHandlerFixture(t)
		rows := []models.GameRow{testRow("g4", 2)}
		f.games.EXPECT().GetByIDs(gomock.Any(), testUserID, []string{"g4", "g5"}).Return(rows, nil)

		resp := f.do(t, http.MethodPost, "/api/games/batch", testToken, models.FetchByIDsRequest{IDs: []string{"g4", "g5"}})

		require.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, rows, decodeBody[[]models.GameRow](t, resp))
	})

	t.Run("empty id list is a bad request", func(t *testing.T) {
		f := newHandlerFixture(t)
		f.games.EXPECT().GetByIDs(gomock.Any(), testUserID, gomock.Nil()).Return(nil, service.ErrInvalidDataProvided)

		resp := f.do(t, http.MethodPost, "/api/games/batch", testToken, models.FetchByIDsRequest{})

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}

// ── Writes ──

func TestCreateGame(t *testing.T) {
	request := models.CreateGameRequest{Name: "base", Data: json.RawMessage(`{"game":{"name":"base"}}`)}

	t.Run("created", func(t *testing.T) {
		f := newHandlerFixture(t)
		row := testRow("g1", 1)
		f.games.EXPECT().Create(gomock.Any(), testUserID, gomock.Any()).
			DoAndReturn(func(_ any, _ int64, got models.CreateGameRequest) (models.GameRow, error) {
				assert.Equal(t, request.Name, got.Name)
				assert.JSONEq(t, string(request.Data), string(got.Data))
				return row, nil
			})

		resp := f.do(t, http.MethodPost, "/api/games", testToken, request)

		require.Equal(t, http.StatusCreated, resp.StatusCode)
		assert.Equal(t, row, decodeBody[models.GameRow](t, resp))
	})

	t.Run("invalid payload", func(t *testing.T) {
		f := newHandlerFixture(t)
		f.games.EXPECT().Create(gomock.Any(), testUserID, gomock.Any()).Return(models.GameRow{}, service.ErrInvalidPayload)

		resp := f.do(t, http.MethodPost, "/api/games", testToken, request)

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}

func TestPersistGame(t *testing.T) {
	request := models.PersistRequest{Data: json.RawMessage(`{"game":{"name":"base"}}`), Version: 4}

	t.Run("echoes the stored version", func(t *testing.T) {
		f := newHandlerFixture(t)
		f.games.EXPECT().Persist(gomock.Any(), testUserID, "g1", gomock.Any()).Return(testRow("g1", 4), nil)

		resp := f.do(t, http.MethodPut, "/api/games/g1", testToken, request)

		require.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, models.PersistResponse{Version: 4}, decodeBody[models.PersistResponse](t, resp))
	})

	t.Run("unknown row", func(t *testing.T) {
		f := newHandlerFixture(t)
		f.games.EXPECT().Persist(gomock.Any(), testUserID, "gone", gomock.Any()).
			Return(models.GameRow{}, fmt.Errorf("%w: %w", service.ErrGameNotFound, store.ErrGameNotFound))

		resp := f.do(t, http.MethodPut, "/api/games/gone", testToken, request)

		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})

	t.Run("no access", func(t *testing.T) {
		f := newHandlerFixture(t)
		f.games.EXPECT().Persist(gomock.Any(), testUserID, "g2", gomock.Any()).Return(models.GameRow{}, service.ErrNoGameAccess)

		resp := f.do(t, http.MethodPut, "/api/games/g2", testToken, request)

		assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	})
}

func TestDeleteGame(t *testing.T) {
	t.Run("owner", func(t *testing.T) {
		f := newHandlerFixture(t)
		f.games.EXPECT().Delete(gomock.Any(), testUserID, "g1").Return(nil)

		resp := f.do(t, http.MethodDelete, "/api/games/g1", testToken, nil)

		assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	})

	t.Run("member is forbidden", func(t *testing.T) {
		f := newHandlerFixture(t)
		f.games.EXPECT().Delete(gomock.Any(), testUserID, "g1").Return(service.ErrNotGameOwner)

		resp := f.do(t, http.MethodDelete, "/api/games/g1", testToken, nil)

		assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	})
}

// ── Sharing ──

func TestShareGame(t *testing.T) {
	f := newHandlerFixture(t)
	f.games.EXPECT().Share(gomock.Any(), testUserID, "g1").Return("tok-1", nil)

	resp := f.do(t, http.MethodPost, "/api/games/g1/share", testToken, nil)

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "tok-1", decodeBody[models.ShareResponse](t, resp).ShareToken)
}

func TestJoinGame(t *testing.T) {
	t.Run("returns the joined row", func(t *testing.T) {
		f := newHandlerFixture(t)
		row := testRow("g4", 6)
		f.games.EXPECT().Join(gomock.Any(), testUserID, "tok-1").Return(row, nil)

		resp := f.do(t, http.MethodGet, "/api/games/share/tok-1", testToken, nil)

		require.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, row, decodeBody[models.GameRow](t, resp))
	})

	t.Run("unknown token", func(t *testing.T) {
		f := newHandlerFixture(t)
		f.games.EXPECT().Join(gomock.Any(), testUserID, "nope").Return(models.GameRow{}, service.ErrGameNotFound)

		resp := f.do(t, http.MethodGet, "/api/games/share/nope", testToken, nil)

		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})
}
