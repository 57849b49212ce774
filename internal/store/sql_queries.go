package store

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-factory-planner/models"
)

const (
	usersTable         = "users"
	refreshTokensTable = "refresh_tokens"
	gamesTable         = "games"
	gameMembersTable   = "game_members"
)

var (
	userColumns = []string{"user_id", "login", "name", "password_hash", "created_at"}
	gameColumns = []string{"id", "author_id", "name", "data", "share_token", "version", "created_at", "updated_at"}
)

func buildCreateUserQuery(b sq.StatementBuilderType, user models.User, now time.Time) (string, []any, error) {
	return b.Insert(usersTable).
		Columns("login", "name", "password_hash", "created_at").
		Values(user.Login, user.Name, user.PasswordHash, now).
		Suffix("RETURNING user_id, login, name, password_hash, created_at").
		ToSql()
}

func buildFindUserByLoginQuery(b sq.StatementBuilderType, login string) (string, []any, error) {
	return b.Select(userColumns...).
		From(usersTable).
		Where(sq.Eq{"login": login}).
		ToSql()
}

func buildSaveRefreshTokenQuery(b sq.StatementBuilderType, token models.RefreshToken) (string, []any, error) {
	return b.Insert(refreshTokensTable).
		Columns("token", "user_id", "expires_at").
		Values(token.Token, token.UserID, token.ExpiresAt.UTC()).
		ToSql()
}

func buildConsumeRefreshTokenQuery(b sq.StatementBuilderType, token string) (string, []any, error) {
	return b.Delete(refreshTokensTable).
		Where(sq.Eq{"token": token}).
		Suffix("RETURNING token, user_id, expires_at").
		ToSql()
}

func buildDeleteRefreshTokenQuery(b sq.StatementBuilderType, token string) (string, []any, error) {
	return b.Delete(refreshTokensTable).
		Where(sq.Eq{"token": token}).
		ToSql()
}

func buildDeleteExpiredRefreshTokensQuery(b sq.StatementBuilderType, now time.Time) (string, []any, error) {
	return b.Delete(refreshTokensTable).
		Where(sq.Lt{"expires_at": now.UTC()}).
		ToSql()
}

func buildCreateGameQuery(b sq.StatementBuilderType, row models.GameRow) (string, []any, error) {
	return b.Insert(gamesTable).
		Columns(gameColumns...).
		Values(row.ID, row.AuthorID, row.Name, string(row.Data), nullableString(row.ShareToken),
			row.Version, row.CreatedAt.UTC(), row.UpdatedAt.UTC()).
		ToSql()
}

func buildGetGameQuery(b sq.StatementBuilderType, where sq.Eq) (string, []any, error) {
	return b.Select(gameColumns...).
		From(gamesTable).
		Where(where).
		ToSql()
}

func buildListGamesQuery(b sq.StatementBuilderType, where sq.Eq) (string, []any, error) {
	return b.Select(gameColumns...).
		From(gamesTable).
		Where(where).
		OrderBy("created_at", "id").
		ToSql()
}

func buildUpdateGameQuery(b sq.StatementBuilderType, row models.GameRow) (string, []any, error) {
	return b.Update(gamesTable).
		Set("name", row.Name).
		Set("data", string(row.Data)).
		Set("version", row.Version).
		Set("updated_at", row.UpdatedAt.UTC()).
		Where(sq.Eq{"id": row.ID}).
		Suffix("RETURNING " + joinColumns(gameColumns)).
		ToSql()
}

func buildDeleteGameQuery(b sq.StatementBuilderType, id string) (string, []any, error) {
	return b.Delete(gamesTable).
		Where(sq.Eq{"id": id}).
		ToSql()
}

func buildSetShareTokenQuery(b sq.StatementBuilderType, id, token string) (string, []any, error) {
	return b.Update(gamesTable).
		Set("share_token", sq.Expr("COALESCE(share_token, ?)", token)).
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING " + joinColumns(gameColumns)).
		ToSql()
}

func buildAddMemberQuery(b sq.StatementBuilderType, gameID string, userID int64, now time.Time) (string, []any, error) {
	return b.Insert(gameMembersTable).
		Columns("game_id", "user_id", "joined_at").
		Values(gameID, userID, now.UTC()).
		Suffix("ON CONFLICT (game_id, user_id) DO NOTHING").
		ToSql()
}

func buildListGameIDsByMemberQuery(b sq.StatementBuilderType, userID int64) (string, []any, error) {
	return b.Select("game_id").
		From(gameMembersTable).
		Where(sq.Eq{"user_id": userID}).
		OrderBy("joined_at", "game_id").
		ToSql()
}

func buildIsMemberQuery(b sq.StatementBuilderType, gameID string, userID int64) (string, []any, error) {
	return b.Select("1").
		From(gameMembersTable).
		Where(sq.Eq{"game_id": gameID, "user_id": userID}).
		Limit(1).
		ToSql()
}

func joinColumns(cols []string) string {
	return strings.Join(cols, ", ")
}

func nullableString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}

// sqliteTimeLayouts are the text forms go-sqlite3 writes for time.Time
// arguments and the ones SQLite itself produces for CURRENT_TIMESTAMP.
var sqliteTimeLayouts = []string{
	"2006-01-02 15:04:05.999999999-07:00",
	"2006-01-02T15:04:05.999999999-07:00",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05",
	time.RFC3339Nano,
}

// dbTime scans timestamps from either backend. Postgres hands back
// time.Time; SQLite hands back text when the column type is unknown, as
// it is for RETURNING results.
type dbTime struct {
	t *time.Time
}

func (d dbTime) Scan(src any) error {
	switch v := src.(type) {
	case time.Time:
		*d.t = v.UTC()
		return nil
	case string:
		return d.parse(v)
	case []byte:
		return d.parse(string(v))
	case nil:
		*d.t = time.Time{}
		return nil
	default:
		return fmt.Errorf("unsupported time value %T", src)
	}
}

func (d dbTime) parse(s string) error {
	for _, layout := range sqliteTimeLayouts {
		if parsed, err := time.Parse(layout, s); err == nil {
			*d.t = parsed.UTC()
			return nil
		}
	}
	return fmt.Errorf("cannot parse time %q", s)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanGame(s rowScanner) (models.GameRow, error) {
	var (
		row        models.GameRow
		data       []byte
		shareToken sql.NullString
	)

	if err := s.Scan(&row.ID, &row.AuthorID, &row.Name, &data, &shareToken,
		&row.Version, dbTime{&row.CreatedAt}, dbTime{&row.UpdatedAt}); err != nil {
		return models.GameRow{}, err
	}

	row.Data = data
	if shareToken.Valid {
		token := shareToken.String
		row.ShareToken = &token
	}

	return row, nil
}
