package service

import (
	"context"

	"github.com/MKhiriev/go-factory-planner/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock -exclude_interfaces=GameServiceWrapper,RowNotifier

// AuthService handles accounts and the token pair of the authority.
type AuthService interface {
	// Register creates an account and returns its first session.
	// Returns ErrLoginAlreadyTaken when the login exists.
	Register(ctx context.Context, credentials models.Credentials) (models.Session, error)

	// Login verifies credentials and issues a session.
	Login(ctx context.Context, credentials models.Credentials) (models.Session, error)

	// Refresh consumes a refresh token and issues a new session. Every
	// refresh token is single use.
	Refresh(ctx context.Context, refreshToken string) (models.Session, error)

	// Logout revokes the refresh token. Unknown tokens are not an error.
	Logout(ctx context.Context, refreshToken string) error

	// ParseToken validates a signed access token.
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)

	// PurgeExpiredRefreshTokens deletes refresh tokens past their expiry.
	PurgeExpiredRefreshTokens(ctx context.Context) (int64, error)
}

// GameService stores game rows and decides who may touch them. userID is
// always the authenticated caller.
type GameService interface {
	ListOwn(ctx context.Context, userID, authorID int64) ([]models.GameRow, error)
	ListShared(ctx context.Context, userID, memberID int64) ([]string, error)

	// GetByIDs returns the rows among ids the caller owns or joined.
	GetByIDs(ctx context.Context, userID int64, ids []string) ([]models.GameRow, error)

	// Create inserts a row at version 1 owned by userID.
	Create(ctx context.Context, userID int64, request models.CreateGameRequest) (models.GameRow, error)

	// Persist overwrites the row without comparing versions and notifies
	// the watchers of the row.
	Persist(ctx context.Context, userID int64, gameID string, request models.PersistRequest) (models.GameRow, error)

	// Delete removes a row owned by userID and notifies its watchers.
	Delete(ctx context.Context, userID int64, gameID string) error

	// Share returns the share token of a row owned by userID, creating it
	// on first use.
	Share(ctx context.Context, userID int64, gameID string) (string, error)

	// Join resolves a share token and records userID as a member.
	Join(ctx context.Context, userID int64, shareToken string) (models.GameRow, error)

	// Watch returns the row if userID may receive its realtime changes.
	Watch(ctx context.Context, userID int64, gameID string) (models.GameRow, error)
}

// GameServiceWrapper decorates a GameService, e.g. with request validation.
type GameServiceWrapper interface {
	Wrap(GameService) GameService
}

// AppInfoService exposes build information of the running server.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// RowNotifier fans row changes out to realtime watchers.
type RowNotifier interface {
	Publish(message models.RealtimeMessage)
}
