package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"

	"github.com/Beticesk/PROYECTO-FINAL/internal/models"
)

// Postgres SQLSTATE for unique_violation. The usuarios table carries a
// single unique constraint, so any violation here is a duplicate email.
const uniqueViolation = "23505"

type PostgresStore struct {
	db *sqlx.DB
}

func NewPostgresStore(db *sqlx.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) CreateUser(ctx context.Context, nu NewUser) (*models.User, error) {
	now := time.Now().UTC()
	u := &models.User{
		ID:           uuid.NewString(),
		Username:     nu.Username,
		Email:        nu.Email,
		PasswordHash: nu.PasswordHash,
		Role:         nu.Role,
		Active:       true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO usuarios (id_usuario, nombre_usuario, correo_electronico, contrasena_hash, rol, activo, fecha_creacion, fecha_actualizacion)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`, u.ID, u.Username, u.Email, u.PasswordHash, u.Role, u.Active, u.CreatedAt, u.UpdatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("store: insert user: %w", err)
	}

	return u, nil
}

func (s *PostgresStore) FindActiveByEmail(ctx context.Context, email string) (*models.User, error) {
	var u models.User

	err := s.db.GetContext(ctx, &u, `
		SELECT id_usuario, nombre_usuario, correo_electronico, contrasena_hash, rol, activo, fecha_creacion, fecha_actualizacion
		FROM usuarios
		WHERE correo_electronico = $1 AND activo = TRUE
	`, email)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("store: find user by email: %w", err)
	}

	return &u, nil
}
