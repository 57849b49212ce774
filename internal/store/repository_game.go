package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-factory-planner/internal/logger"
	"github.com/MKhiriev/go-factory-planner/models"
)

type gameRepository struct {
	logger *logger.Logger
	db     *DB
}

func NewGameRepository(db *DB, logger *logger.Logger) GameRepository {
	logger.Debug().Msg("GameRepository created")
	return &gameRepository{
		db:     db,
		logger: logger,
	}
}

func (r *gameRepository) CreateGame(ctx context.Context, row models.GameRow) (models.GameRow, error) {
	query, args, err := buildCreateGameQuery(r.db.builder, row)
	if err != nil {
		r.logger.Err(err).Str("func", "*gameRepository.CreateGame").Msg("error building query")
		return models.GameRow{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		r.logger.Err(err).Str("func", "*gameRepository.CreateGame").Str("id", row.ID).Msg("error inserting game")

		switch r.db.errorClassificator.Classify(err) {
		case UniqueViolation:
			return models.GameRow{}, ErrGameAlreadyExists
		default:
			return models.GameRow{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}
	}

	return row, nil
}

func (r *gameRepository) GetGame(ctx context.Context, id string) (models.GameRow, error) {
	return r.getOne(ctx, "*gameRepository.GetGame", sq.Eq{"id": id})
}

func (r *gameRepository) FindGameByShareToken(ctx context.Context, token string) (models.GameRow, error) {
	return r.getOne(ctx, "*gameRepository.FindGameByShareToken", sq.Eq{"share_token": token})
}

func (r *gameRepository) getOne(ctx context.Context, funcName string, where sq.Eq) (models.GameRow, error) {
	query, args, err := buildGetGameQuery(r.db.builder, where)
	if err != nil {
		r.logger.Err(err).Str("func", funcName).Msg("error building query")
		return models.GameRow{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	row, err := scanGame(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.GameRow{}, ErrGameNotFound
	}
	if err != nil {
		r.logger.Err(err).Str("func", funcName).Msg("error selecting game")
		return models.GameRow{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return row, nil
}

func (r *gameRepository) ListGamesByAuthor(ctx context.Context, authorID int64) ([]models.GameRow, error) {
	return r.list(ctx, "*gameRepository.ListGamesByAuthor", sq.Eq{"author_id": authorID})
}

func (r *gameRepository) ListGamesByIDs(ctx context.Context, ids []string) ([]models.GameRow, error) {
	if len(ids) == 0 {
		return []models.GameRow{}, nil
	}
	return r.list(ctx, "*gameRepository.ListGamesByIDs", sq.Eq{"id": ids})
}

func (r *gameRepository) list(ctx context.Context, funcName string, where sq.Eq) ([]models.GameRow, error) {
	query, args, err := buildListGamesQuery(r.db.builder, where)
	if err != nil {
		r.logger.Err(err).Str("func", funcName).Msg("error building query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.logger.Err(err).Str("func", funcName).Msg("error selecting games")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	games := make([]models.GameRow, 0)
	for rows.Next() {
		row, err := scanGame(rows)
		if err != nil {
			r.logger.Err(err).Str("func", funcName).Msg("error scanning game")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		games = append(games, row)
	}

	if err = rows.Err(); err != nil {
		r.logger.Err(err).Str("func", funcName).Msg("error iterating games")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return games, nil
}

func (r *gameRepository) UpdateGame(ctx context.Context, row models.GameRow) (models.GameRow, error) {
	query, args, err := buildUpdateGameQuery(r.db.builder, row)
	if err != nil {
		r.logger.Err(err).Str("func", "*gameRepository.UpdateGame").Msg("error building query")
		return models.GameRow{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	updated, err := scanGame(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.GameRow{}, ErrGameNotFound
	}
	if err != nil {
		r.logger.Err(err).Str("func", "*gameRepository.UpdateGame").Str("id", row.ID).Msg("error updating game")
		return models.GameRow{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return updated, nil
}

func (r *gameRepository) DeleteGame(ctx context.Context, id string) error {
	query, args, err := buildDeleteGameQuery(r.db.builder, id)
	if err != nil {
		r.logger.Err(err).Str("func", "*gameRepository.DeleteGame").Msg("error building query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		r.logger.Err(err).Str("func", "*gameRepository.DeleteGame").Str("id", id).Msg("error deleting game")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if affected == 0 {
		return ErrGameNotFound
	}

	return nil
}

func (r *gameRepository) SetShareToken(ctx context.Context, id, token string) (models.GameRow, error) {
	query, args, err := buildSetShareTokenQuery(r.db.builder, id, token)
	if err != nil {
		r.logger.Err(err).Str("func", "*gameRepository.SetShareToken").Msg("error building query")
		return models.GameRow{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	row, err := scanGame(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.GameRow{}, ErrGameNotFound
	}
	if err != nil {
		r.logger.Err(err).Str("func", "*gameRepository.SetShareToken").Str("id", id).Msg("error setting share token")

		switch r.db.errorClassificator.Classify(err) {
		case UniqueViolation:
			return models.GameRow{}, ErrGameAlreadyExists
		default:
			return models.GameRow{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}
	}

	return row, nil
}
