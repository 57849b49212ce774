package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-factory-planner/internal/logger"
	"github.com/MKhiriev/go-factory-planner/models"
)

type refreshTokenRepository struct {
	logger *logger.Logger
	db     *DB
}

func NewRefreshTokenRepository(db *DB, logger *logger.Logger) RefreshTokenRepository {
	logger.Debug().Msg("RefreshTokenRepository created")
	return &refreshTokenRepository{
		db:     db,
		logger: logger,
	}
}

func (r *refreshTokenRepository) SaveRefreshToken(ctx context.Context, token models.RefreshToken) error {
	query, args, err := buildSaveRefreshTokenQuery(r.db.builder, token)
	if err != nil {
		r.logger.Err(err).Str("func", "*refreshTokenRepository.SaveRefreshToken").Msg("error building query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		r.logger.Err(err).Str("func", "*refreshTokenRepository.SaveRefreshToken").Msg("error inserting refresh token")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return nil
}

func (r *refreshTokenRepository) ConsumeRefreshToken(ctx context.Context, token string) (models.RefreshToken, error) {
	query, args, err := buildConsumeRefreshTokenQuery(r.db.builder, token)
	if err != nil {
		r.logger.Err(err).Str("func", "*refreshTokenRepository.ConsumeRefreshToken").Msg("error building query")
		return models.RefreshToken{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var consumed models.RefreshToken
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&consumed.Token, &consumed.UserID, dbTime{&consumed.ExpiresAt})
	if errors.Is(err, sql.ErrNoRows) {
		return models.RefreshToken{}, ErrRefreshTokenNotFound
	}
	if err != nil {
		r.logger.Err(err).Str("func", "*refreshTokenRepository.ConsumeRefreshToken").Msg("error deleting refresh token")
		return models.RefreshToken{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return consumed, nil
}

func (r *refreshTokenRepository) DeleteRefreshToken(ctx context.Context, token string) error {
	query, args, err := buildDeleteRefreshTokenQuery(r.db.builder, token)
	if err != nil {
		r.logger.Err(err).Str("func", "*refreshTokenRepository.DeleteRefreshToken").Msg("error building query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		r.logger.Err(err).Str("func", "*refreshTokenRepository.DeleteRefreshToken").Msg("error deleting refresh token")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return nil
}

func (r *refreshTokenRepository) DeleteExpiredRefreshTokens(ctx context.Context, now time.Time) (int64, error) {
	query, args, err := buildDeleteExpiredRefreshTokensQuery(r.db.builder, now)
	if err != nil {
		r.logger.Err(err).Str("func", "*refreshTokenRepository.DeleteExpiredRefreshTokens").Msg("error building query")
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		r.logger.Err(err).Str("func", "*refreshTokenRepository.DeleteExpiredRefreshTokens").Msg("error deleting expired refresh tokens")
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	removed, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return removed, nil
}
