// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"fmt"
	"net/url"
	"strings"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-factory-planner/internal/config"
	"github.com/MKhiriev/go-factory-planner/internal/logger"
	"github.com/MKhiriev/go-factory-planner/migrations"
)

// DB wraps the connection pool together with everything the repositories
// need to speak the backend's SQL: a placeholder-aware statement builder
// and an error classifier for driver errors.
type DB struct {
	*sql.DB
	dialect            string
	builder            sq.StatementBuilderType
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// NewConnect opens the backend selected by the DSN. "postgres://" and
// "postgresql://" open PostgreSQL through pgx; "file:", ":memory:" and
// paths ending in ".db" open SQLite.
func NewConnect(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	dialect, err := DialectFromDSN(cfg.DSN)
	if err != nil {
		log.Err(err).Str("func", "NewConnect").Msg("unsupported database DSN")
		return nil, err
	}

	switch dialect {
	case migrations.DialectPostgres:
		return NewConnectPostgres(ctx, cfg.DSN, log)
	default:
		return NewConnectSQLite(ctx, cfg.DSN, log)
	}
}

// DialectFromDSN reports which backend a DSN points to.
func DialectFromDSN(dsn string) (string, error) {
	dsn = strings.TrimSpace(dsn)

	switch {
	case strings.HasPrefix(dsn, "postgres://"), strings.HasPrefix(dsn, "postgresql://"):
		return migrations.DialectPostgres, nil
	case strings.HasPrefix(dsn, "file:"), dsn == ":memory:":
		return migrations.DialectSQLite, nil
	}

	path, _, _ := strings.Cut(dsn, "?")
	if strings.HasSuffix(path, ".db") {
		return migrations.DialectSQLite, nil
	}

	return "", fmt.Errorf("%w: %q", ErrUnsupportedDSN, redactDSN(dsn))
}

// newDB assembles a DB for dialect around an open pool.
func newDB(conn *sql.DB, dialect string, log *logger.Logger) *DB {
	db := &DB{
		DB:      conn,
		dialect: dialect,
		builder: newStatementBuilder(dialect),
		logger:  log,
	}

	switch dialect {
	case migrations.DialectPostgres:
		db.errorClassificator = NewPostgresErrorClassifier()
	default:
		db.errorClassificator = NewSQLiteErrorClassifier()
	}

	return db
}

func newStatementBuilder(dialect string) sq.StatementBuilderType {
	if dialect == migrations.DialectPostgres {
		return sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	}
	return sq.StatementBuilder.PlaceholderFormat(sq.Question)
}

// Dialect returns the backend name understood by [migrations.Migrate].
func (db *DB) Dialect() string {
	return db.dialect
}

// Migrate applies the embedded migrations of the DB's dialect.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.dialect)
}

// redactDSN strips credentials so a DSN can be logged or put into errors.
func redactDSN(dsn string) string {
	u, err := url.Parse(dsn)
	if err != nil || u.User == nil {
		return dsn
	}
	return u.Redacted()
}
