package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-factory-planner/models"
)

// ClientAuthService defines the foreground sign-in flow of the client.
// Session continuity after sign-in is the job of [ClientSessionService].
type ClientAuthService interface {
	// Login signs in with credentials and hands the new session to the
	// session scheduler. Returns ErrWrongPassword for rejected credentials.
	Login(ctx context.Context, credentials models.Credentials) (models.Session, error)

	// Register creates an account and signs it in. Returns
	// ErrLoginAlreadyTaken when the login exists.
	Register(ctx context.Context, credentials models.Credentials) (models.Session, error)

	// Logout revokes the session on the authority and stops every
	// background loop that needs one.
	Logout(ctx context.Context) error
}

// ClientSessionService keeps the credential session alive by refreshing it
// shortly before it expires.
//
// Every method is safe to call from any goroutine except the event loop
// itself.
type ClientSessionService interface {
	// Start begins listening to auth transitions of the authority and
	// observes the session the authority already holds, if any.
	Start()

	// Observe records session as the current one and schedules its refresh
	// at expiry minus the refresh margin. Any previously scheduled refresh is
	// cancelled first. A nil session behaves like SignOut.
	Observe(session *models.Session)

	// SignOut cancels the pending refresh and forgets the session. It is
	// idempotent.
	SignOut()

	// HandleAuthEvent routes an auth transition: SIGNED_IN and
	// TOKEN_REFRESHED observe the session, SIGNED_OUT signs out.
	HandleAuthEvent(event models.AuthEvent, session *models.Session)

	// NextRefresh returns the instant of the scheduled refresh and whether
	// one is scheduled.
	NextRefresh() (time.Time, bool)

	// Close cancels the pending refresh unconditionally and detaches from
	// the authority. No callback fires after Close returns.
	Close()
}

// ClientSyncService moves local edits of persisted games to the authority
// and applies remote edits of the focused game to local state.
//
// Every method is safe to call from any goroutine except the event loop
// itself.
type ClientSyncService interface {
	// ScheduleSync (re)starts the debounce timer of the game. Only the last
	// call within the quiet period results in a push. Games without a
	// remote row are ignored.
	ScheduleSync(gameID string)

	// FlushSync cancels the pending debounce timer and pushes immediately.
	FlushSync(gameID string)

	// Watch subscribes to remote changes of the game, replacing any
	// previous subscription.
	Watch(gameID string)

	// Unwatch tears the current subscription down.
	Unwatch()

	// WatchedGame returns the local id of the watched game, "" if none.
	WatchedGame() string

	// Close cancels every pending timer, unwatches and waits for in-flight
	// pushes to deliver their results.
	Close()
}

// ClientGameService holds the foreground game operations of the client.
// Network calls run on the calling goroutine; state changes are applied on
// the event loop.
type ClientGameService interface {
	// LoadAll fetches the games the user owns and the games they joined and
	// stores them locally.
	LoadAll(ctx context.Context) error

	// Create makes a new game. With a session it is persisted at version 1;
	// without one it stays local until published.
	Create(ctx context.Context, name string) (models.Game, error)

	// Publish persists a local-only game as a new remote row.
	Publish(ctx context.Context, gameID string) (models.Game, error)

	// Join resolves a share token. An unknown token raises an alert and
	// returns ErrGameNotFound.
	Join(ctx context.Context, shareToken string) (models.Game, error)

	// Share returns the share token of a game owned by the user.
	Share(ctx context.Context, gameID string) (string, error)

	// Delete removes a game owned by the user, remotely and locally.
	Delete(ctx context.Context, gameID string) error

	Rename(gameID, name string) error
	AddFactory(gameID string, factory models.Factory) (models.Factory, error)
	UpdateFactory(gameID string, factory models.Factory) error
	RemoveFactory(gameID, factoryID string) error
	SetSolver(gameID string, solver models.Solver) error
}
