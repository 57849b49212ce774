package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-factory-planner/internal/logger"
)

type membershipRepository struct {
	logger *logger.Logger
	db     *DB
}

func NewMembershipRepository(db *DB, logger *logger.Logger) MembershipRepository {
	logger.Debug().Msg("MembershipRepository created")
	return &membershipRepository{
		db:     db,
		logger: logger,
	}
}

func (r *membershipRepository) AddMember(ctx context.Context, gameID string, userID int64) error {
	query, args, err := buildAddMemberQuery(r.db.builder, gameID, userID, time.Now())
	if err != nil {
		r.logger.Err(err).Str("func", "*membershipRepository.AddMember").Msg("error building query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		r.logger.Err(err).Str("func", "*membershipRepository.AddMember").Str("game_id", gameID).Msg("error inserting member")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return nil
}

func (r *membershipRepository) ListGameIDsByMember(ctx context.Context, userID int64) ([]string, error) {
	query, args, err := buildListGameIDsByMemberQuery(r.db.builder, userID)
	if err != nil {
		r.logger.Err(err).Str("func", "*membershipRepository.ListGameIDsByMember").Msg("error building query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.logger.Err(err).Str("func", "*membershipRepository.ListGameIDsByMember").Msg("error selecting memberships")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	ids := make([]string, 0)
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		ids = append(ids, id)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return ids, nil
}

func (r *membershipRepository) IsMember(ctx context.Context, gameID string, userID int64) (bool, error) {
	query, args, err := buildIsMemberQuery(r.db.builder, gameID, userID)
	if err != nil {
		r.logger.Err(err).Str("func", "*membershipRepository.IsMember").Msg("error building query")
		return false, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var one int
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		r.logger.Err(err).Str("func", "*membershipRepository.IsMember").Msg("error selecting membership")
		return false, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return true, nil
}
