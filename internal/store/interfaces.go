package store

import (
	"context"
	"time"

	"github.com/MKhiriev/go-factory-planner/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository persists accounts.
type UserRepository interface {
	// CreateUser stores a new user and returns it with UserID and CreatedAt
	// filled in. A duplicate login yields [ErrLoginAlreadyExists].
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByLogin returns the user with login, or [ErrUserNotFound].
	FindUserByLogin(ctx context.Context, login string) (models.User, error)
}

// RefreshTokenRepository persists issued refresh tokens. Tokens are single
// use: a refresh consumes the presented token and issues a new one.
type RefreshTokenRepository interface {
	SaveRefreshToken(ctx context.Context, token models.RefreshToken) error

	// ConsumeRefreshToken deletes token and returns the record it held.
	// An unknown token yields [ErrRefreshTokenNotFound].
	ConsumeRefreshToken(ctx context.Context, token string) (models.RefreshToken, error)

	// DeleteRefreshToken removes token. Deleting an unknown token is not an error.
	DeleteRefreshToken(ctx context.Context, token string) error

	// DeleteExpiredRefreshTokens removes every token that expired before now
	// and returns how many were removed.
	DeleteExpiredRefreshTokens(ctx context.Context, now time.Time) (int64, error)
}

// GameRepository persists game rows. Writes are last-writer-wins: the stored
// version is whatever the latest writer sent.
type GameRepository interface {
	CreateGame(ctx context.Context, row models.GameRow) (models.GameRow, error)
	GetGame(ctx context.Context, id string) (models.GameRow, error)
	ListGamesByAuthor(ctx context.Context, authorID int64) ([]models.GameRow, error)
	ListGamesByIDs(ctx context.Context, ids []string) ([]models.GameRow, error)

	// UpdateGame overwrites name, data, version and updated_at of row.ID and
	// returns the stored row.
	UpdateGame(ctx context.Context, row models.GameRow) (models.GameRow, error)
	DeleteGame(ctx context.Context, id string) error

	// SetShareToken stores token unless the row already has one, and returns
	// the row with its effective token.
	SetShareToken(ctx context.Context, id, token string) (models.GameRow, error)
	FindGameByShareToken(ctx context.Context, token string) (models.GameRow, error)
}

// MembershipRepository records which users joined which games through a
// share token.
type MembershipRepository interface {
	// AddMember is idempotent.
	AddMember(ctx context.Context, gameID string, userID int64) error
	ListGameIDsByMember(ctx context.Context, userID int64) ([]string, error)
	IsMember(ctx context.Context, gameID string, userID int64) (bool, error)
}
