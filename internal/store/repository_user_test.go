package store

import (
	"errors"
	"regexp"
	"strings"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-factory-planner/internal/logger"
	"github.com/MKhiriev/go-factory-planner/models"
	"github.com/jackc/pgerrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func userFixture(login string) models.User {
	return models.User{
		Login:        login,
		Name:         strings.ToUpper(login[:1]) + login[1:],
		PasswordHash: "$2a$10$hash-" + login,
	}
}

func newTestUserRepo(t *testing.T) (UserRepository, sqlmock.Sqlmock) {
	db, mock := newTestDB(t)
	return NewUserRepository(newDBFromSQL(db), logger.Nop()), mock
}

func TestCreateUser_Success(t *testing.T) {
	repo, mock := newTestUserRepo(t)
	user := userFixture("john")
	now := time.Now().UTC()

	rows := sqlmock.
		NewRows(userColumns).
		AddRow(1, user.Login, user.Name, user.PasswordHash, now)

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO users (login,name,password_hash,created_at) VALUES ($1,$2,$3,$4) RETURNING")).
		WithArgs(user.Login, user.Name, user.PasswordHash, sqlmock.AnyArg()).
		WillReturnRows(rows)

	created, err := repo.CreateUser(testContext(), user)
	require.NoError(t, err)
	assert.Equal(t, int64(1), created.UserID)
	assert.Equal(t, user.Login, created.Login)
	assert.Equal(t, user.PasswordHash, created.PasswordHash)
	assert.True(t, now.Equal(created.CreatedAt))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateUser_UniqueViolation(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectQuery("INSERT INTO users").
		WillReturnError(pgError(pgerrcode.UniqueViolation))

	_, err := repo.CreateUser(testContext(), userFixture("john"))
	if !errors.Is(err, ErrLoginAlreadyExists) {
		t.Fatalf("expected ErrLoginAlreadyExists, got %v", err)
	}
}

func TestCreateUser_UnexpectedDBError(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectQuery("INSERT INTO users").
		WillReturnError(errors.New("db network error"))

	_, err := repo.CreateUser(testContext(), userFixture("john"))
	if err == nil || !strings.Contains(err.Error(), "unexpected DB error") {
		t.Fatalf("expected wrapped unexpected DB error, got %v", err)
	}
}

func TestCreateUser_ScanError(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	rows := sqlmock.
		NewRows([]string{"user_id"}). // intentionally wrong shape → scan error
		AddRow(1)

	mock.ExpectQuery("INSERT INTO users").
		WillReturnRows(rows)

	_, err := repo.CreateUser(testContext(), userFixture("john"))
	if err == nil {
		t.Fatal("expected scan error, got nil")
	}
}

func TestFindUserByLogin_Success(t *testing.T) {
	repo, mock := newTestUserRepo(t)
	now := time.Now().UTC()

	rows := sqlmock.
		NewRows(userColumns).
		AddRow(1, "john", "John", "hash", now)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT user_id, login, name, password_hash, created_at FROM users WHERE login = $1")).
		WithArgs("john").
		WillReturnRows(rows)

	found, err := repo.FindUserByLogin(testContext(), "john")
	require.NoError(t, err)
	assert.Equal(t, int64(1), found.UserID)
	assert.Equal(t, "hash", found.PasswordHash)
}

func TestFindUserByLogin_NotFound(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectQuery("SELECT user_id").
		WithArgs("ghost").
		WillReturnRows(sqlmock.NewRows(userColumns))

	_, err := repo.FindUserByLogin(testContext(), "ghost")
	require.ErrorIs(t, err, ErrUserNotFound)
}

func TestFindUserByLogin_DBError(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectQuery("SELECT user_id").
		WillReturnError(errors.New("connection reset"))

	_, err := repo.FindUserByLogin(testContext(), "john")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrUserNotFound)
}
