package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockStore(t *testing.T) (*PostgresStore, sqlmock.Sqlmock) {
	t.Helper()
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { mockDB.Close() })
	return NewPostgresStore(sqlx.NewDb(mockDB, "sqlmock")), mock
}

func TestPostgresCreateUser(t *testing.T) {
	s, mock := newMockStore(t)

	mock.ExpectExec("INSERT INTO usuarios").
		WithArgs(
			sqlmock.AnyArg(), "ana", "a@x.com", "$2a$fake", "admin",
			true, sqlmock.AnyArg(), sqlmock.AnyArg(),
		).
		WillReturnResult(sqlmock.NewResult(0, 1))

	u, err := s.CreateUser(context.Background(), NewUser{
		Username:     "ana",
		Email:        "a@x.com",
		PasswordHash: "$2a$fake",
		Role:         "admin",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, u.ID)
	assert.True(t, u.Active)
	assert.Equal(t, u.CreatedAt, u.UpdatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresCreateUserUniqueViolation(t *testing.T) {
	s, mock := newMockStore(t)

	mock.ExpectExec("INSERT INTO usuarios").
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "usuarios_correo_electronico_key"})

	_, err := s.CreateUser(context.Background(), NewUser{
		Username: "ana", Email: "a@x.com", PasswordHash: "h", Role: "admin",
	})
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestPostgresCreateUserOtherError(t *testing.T) {
	s, mock := newMockStore(t)

	mock.ExpectExec("INSERT INTO usuarios").
		WillReturnError(errors.New("connection reset"))

	_, err := s.CreateUser(context.Background(), NewUser{
		Username: "ana", Email: "a@x.com", PasswordHash: "h", Role: "admin",
	})
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrEmailTaken)
}

func TestPostgresFindActiveByEmail(t *testing.T) {
	s, mock := newMockStore(t)

	now := time.Now().UTC()
	rows := sqlmock.NewRows([]string{
		"id_usuario", "nombre_usuario", "correo_electronico", "contrasena_hash",
		"rol", "activo", "fecha_creacion", "fecha_actualizacion",
	}).AddRow("u-1", "ana", "a@x.com", "$2a$fake", "admin", true, now, now)

	mock.ExpectQuery("FROM usuarios").
		WithArgs("a@x.com").
		WillReturnRows(rows)

	u, err := s.FindActiveByEmail(context.Background(), "a@x.com")
	require.NoError(t, err)
	assert.Equal(t, "u-1", u.ID)
	assert.Equal(t, "$2a$fake", u.PasswordHash)
	assert.True(t, u.Active)
}

func TestPostgresFindActiveByEmailNoRows(t *testing.T) {
	s, mock := newMockStore(t)

	mock.ExpectQuery("FROM usuarios").
		WithArgs("nobody@x.com").
		WillReturnRows(sqlmock.NewRows([]string{"id_usuario"}))

	_, err := s.FindActiveByEmail(context.Background(), "nobody@x.com")
	assert.ErrorIs(t, err, ErrNotFound)
}
