// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-factory-planner/internal/clock"
	"github.com/MKhiriev/go-factory-planner/internal/config"
	"github.com/MKhiriev/go-factory-planner/internal/logger"
	"github.com/MKhiriev/go-factory-planner/internal/store"
	"github.com/MKhiriev/go-factory-planner/internal/utils"
	"github.com/MKhiriev/go-factory-planner/models"
)

// authService is the concrete implementation of AuthService. Passwords are
// stored as bcrypt hashes; sessions are a signed JWT plus an opaque
// single-use refresh token kept in the database.
type authService struct {
	users         store.UserRepository
	refreshTokens store.RefreshTokenRepository

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	tokenIssuer string

	tokenDuration        time.Duration
	refreshTokenDuration time.Duration

	clock  clock.Clock
	logger *logger.Logger
}

// NewAuthService constructs an AuthService from the security parameters of
// cfg. The returned service is safe for concurrent use.
func NewAuthService(users store.UserRepository, refreshTokens store.RefreshTokenRepository, cfg config.App,
	clk clock.Clock, logger *logger.Logger) AuthService {
	return &authService{
		users:                users,
		refreshTokens:        refreshTokens,
		tokenSignKey:         cfg.TokenSignKey,
		tokenIssuer:          cfg.TokenIssuer,
		tokenDuration:        cfg.TokenDuration,
		refreshTokenDuration: cfg.RefreshTokenDuration,
		clock:                clk,
		logger:               logger,
	}
}

// Register creates a new account and signs it in.
//
// Returns ErrInvalidDataProvided for empty credentials and
// ErrLoginAlreadyTaken when the login is in use.
func (a *authService) Register(ctx context.Context, credentials models.Credentials) (models.Session, error) {
	log := logger.FromContext(ctx)

	if credentials.Login == "" || credentials.Password == "" {
		log.Error().Str("login", credentials.Login).Msg("invalid credentials provided")
		return models.Session{}, ErrInvalidDataProvided
	}

	hash, err := utils.HashPassword(credentials.Password)
	if err != nil {
		log.Err(err).Str("login", credentials.Login).Msg("password hashing failed")
		return models.Session{}, fmt.Errorf("password hashing failed: %w", err)
	}

	user, err := a.users.CreateUser(ctx, models.User{
		Login:        credentials.Login,
		Name:         credentials.Login,
		PasswordHash: hash,
	})
	if err != nil {
		log.Err(err).Str("login", credentials.Login).Msg("user creation ended with error")
		if errors.Is(err, store.ErrLoginAlreadyExists) {
			return models.Session{}, fmt.Errorf("%w: %w", ErrLoginAlreadyTaken, err)
		}
		return models.Session{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return a.issueSession(ctx, user.UserID)
}

// Login authenticates an existing user. An unknown login and a wrong
// password both yield ErrWrongPassword.
func (a *authService) Login(ctx context.Context, credentials models.Credentials) (models.Session, error) {
	log := logger.FromContext(ctx)

	if credentials.Login == "" || credentials.Password == "" {
		log.Error().Str("login", credentials.Login).Msg("invalid credentials provided")
		return models.Session{}, ErrInvalidDataProvided
	}

	user, err := a.users.FindUserByLogin(ctx, credentials.Login)
	if err != nil {
		log.Err(err).Str("login", credentials.Login).Msg("user search by login failed")
		if errors.Is(err, store.ErrUserNotFound) {
			return models.Session{}, ErrWrongPassword
		}
		return models.Session{}, fmt.Errorf("user search by login failed: %w", err)
	}

	if err = utils.CheckPassword(user.PasswordHash, credentials.Password); err != nil {
		log.Error().Int64("id", user.UserID).Str("login", user.Login).Msg("wrong password")
		return models.Session{}, ErrWrongPassword
	}

	return a.issueSession(ctx, user.UserID)
}

func (a *authService) Refresh(ctx context.Context, refreshToken string) (models.Session, error) {
	log := logger.FromContext(ctx)

	if refreshToken == "" {
		return models.Session{}, ErrRefreshTokenInvalid
	}

	consumed, err := a.refreshTokens.ConsumeRefreshToken(ctx, refreshToken)
	if err != nil {
		log.Err(err).Msg("refresh token consumption failed")
		if errors.Is(err, store.ErrRefreshTokenNotFound) {
			return models.Session{}, ErrRefreshTokenInvalid
		}
		return models.Session{}, fmt.Errorf("refresh token consumption failed: %w", err)
	}

	if !consumed.ExpiresAt.After(a.clock.Now()) {
		log.Error().Int64("user_id", consumed.UserID).Time("expires_at", consumed.ExpiresAt).Msg("refresh token expired")
		return models.Session{}, ErrRefreshTokenInvalid
	}

	return a.issueSession(ctx, consumed.UserID)
}

func (a *authService) Logout(ctx context.Context, refreshToken string) error {
	if refreshToken == "" {
		return nil
	}

	if err := a.refreshTokens.DeleteRefreshToken(ctx, refreshToken); err != nil {
		logger.FromContext(ctx).Err(err).Msg("refresh token revocation failed")
		return fmt.Errorf("refresh token revocation failed: %w", err)
	}
	return nil
}

// ParseToken validates and parses a raw JWT string. Any validation failure
// is normalised to ErrTokenIsExpiredOrInvalid.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}

func (a *authService) PurgeExpiredRefreshTokens(ctx context.Context) (int64, error) {
	n, err := a.refreshTokens.DeleteExpiredRefreshTokens(ctx, a.clock.Now())
	if err != nil {
		a.logger.Err(err).Str("func", "*authService.PurgeExpiredRefreshTokens").Msg("error purging refresh tokens")
		return 0, err
	}
	return n, nil
}

// issueSession signs an access token for userID and stores a fresh refresh
// token next to it.
func (a *authService) issueSession(ctx context.Context, userID int64) (models.Session, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, userID, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Session{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	refresh := models.RefreshToken{
		Token:     utils.NewRefreshToken(),
		UserID:    userID,
		ExpiresAt: a.clock.Now().Add(a.refreshTokenDuration),
	}
	if err = a.refreshTokens.SaveRefreshToken(ctx, refresh); err != nil {
		logger.FromContext(ctx).Err(err).Int64("user_id", userID).Msg("refresh token save failed")
		return models.Session{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return models.Session{
		AccessToken:  token.SignedString,
		RefreshToken: refresh.Token,
		ExpiresAt:    token.ExpiresAtUnix(),
		UserID:       userID,
	}, nil
}
