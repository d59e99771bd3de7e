package db

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
)

// helper to read env with default
func getenv(key, def string) string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	return v
}

// Connect opens the shared connection pool against Postgres. The pool is
// the only shared resource in the process: handlers borrow a connection
// for a single query and release it.
func Connect(dsn string) (*sqlx.DB, error) {
	cfg, err := pgx.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("db: failed to parse DSN: %w", err)
	}

	// Fail fast on startup if PG is unreachable
	cfg.ConnectTimeout = 5 * time.Second

	// pgx stdlib adapter wrapped in sqlx for struct scanning
	conn := sqlx.NewDb(stdlib.OpenDB(*cfg), "pgx")

	maxOpen, _ := strconv.Atoi(getenv("DB_MAX_OPEN", "25"))
	maxIdle, _ := strconv.Atoi(getenv("DB_MAX_IDLE", "25"))
	lifetime, _ := strconv.Atoi(getenv("DB_MAX_LIFETIME", "300")) // seconds

	conn.SetMaxOpenConns(maxOpen)
	conn.SetMaxIdleConns(maxIdle)
	conn.SetConnMaxLifetime(time.Duration(lifetime) * time.Second)

	if err := conn.Ping(); err != nil {
		return nil, fmt.Errorf("db: failed to connect to Postgres: %w", err)
	}

	var tmp int
	if err := conn.QueryRow("SELECT 1").Scan(&tmp); err != nil {
		return nil, fmt.Errorf("db: health check failed: %w", err)
	}

	return conn, nil
}
