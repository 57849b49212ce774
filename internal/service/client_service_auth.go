package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-factory-planner/internal/adapter"
	"github.com/MKhiriev/go-factory-planner/internal/logger"
	"github.com/MKhiriev/go-factory-planner/models"
)

type clientAuthService struct {
	authority adapter.RemoteAuthority
	sessions  ClientSessionService
	sync      ClientSyncService
	logger    *logger.Logger
}

func NewClientAuthService(authority adapter.RemoteAuthority, sessions ClientSessionService, sync ClientSyncService, log *logger.Logger) ClientAuthService {
	return &clientAuthService{authority: authority, sessions: sessions, sync: sync, logger: log}
}

func (a *clientAuthService) Login(ctx context.Context, credentials models.Credentials) (models.Session, error) {
	if credentials.Login == "" || credentials.Password == "" {
		return models.Session{}, ErrInvalidDataProvided
	}

	session, err := a.authority.SignIn(ctx, credentials)
	if err != nil {
		a.logger.Err(err).Str("func", "*clientAuthService.Login").Str("login", credentials.Login).Msg("sign in failed")
		if errors.Is(err, adapter.ErrUnauthorized) {
			return models.Session{}, fmt.Errorf("%w: %w", ErrWrongPassword, err)
		}
		return models.Session{}, mapAdapterError(err)
	}

	a.sessions.Observe(&session)
	return session, nil
}

func (a *clientAuthService) Register(ctx context.Context, credentials models.Credentials) (models.Session, error) {
	if credentials.Login == "" || credentials.Password == "" {
		return models.Session{}, ErrInvalidDataProvided
	}

	session, err := a.authority.SignUp(ctx, credentials)
	if err != nil {
		a.logger.Err(err).Str("func", "*clientAuthService.Register").Str("login", credentials.Login).Msg("sign up failed")
		if errors.Is(err, adapter.ErrConflict) {
			return models.Session{}, fmt.Errorf("%w: %w", ErrLoginAlreadyTaken, err)
		}
		return models.Session{}, mapAdapterError(err)
	}

	a.sessions.Observe(&session)
	return session, nil
}

// Logout always tears local state down, even when the authority could not
// be reached.
func (a *clientAuthService) Logout(ctx context.Context) error {
	a.sync.Unwatch()
	err := a.authority.SignOut(ctx)
	a.sessions.SignOut()

	if err != nil {
		a.logger.Err(err).Str("func", "*clientAuthService.Logout").Msg("sign out on the authority failed")
		return mapAdapterError(err)
	}
	return nil
}
