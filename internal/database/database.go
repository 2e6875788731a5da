// Package database wraps the Postgres connection pool. A handle built from an
// empty connection string is valid and represents degraded mode: every query
// fails with a NotConfigured error callers can branch on.
package database

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"chopbar/internal/apperr"
)

// Postgres SQLSTATE codes the fallback and schema-mismatch paths branch on.
const (
	codeUndefinedTable  = "42P01"
	codeUndefinedColumn = "42703"
)

// ErrNotConfigured is returned by every query method in degraded mode.
var ErrNotConfigured = apperr.New(apperr.NotConfigured,
	"Database not configured. Set DATABASE_URL and create the required tables.")

// DB wraps a pgx connection pool. The zero pool means no database is
// configured.
type DB struct {
	pool *pgxpool.Pool
	log  *slog.Logger
}

// Health is the result of a connectivity probe.
type Health struct {
	OK     bool   `json:"ok"`
	Reason string `json:"reason,omitempty"`
}

// New builds a DB from a connection string. An empty dsn yields a degraded
// handle rather than an error.
//
// Transport policy: remote hosts connect with TLS but without certificate
// verification, loopback hosts connect in the clear. This deliberately weak
// trust model matches the managed-Postgres deployment this serves; a dsn
// carrying an explicit sslmode parameter keeps whatever it asked for.
func New(ctx context.Context, dsn string, log *slog.Logger) (*DB, error) {
	if dsn == "" {
		log.Info("database not configured, serving the built-in menu only")
		return &DB{log: log}, nil
	}

	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to parse database url: %w", err)
	}

	cfg.MaxConns = 20
	cfg.MaxConnIdleTime = 30 * time.Second
	cfg.ConnConfig.ConnectTimeout = 5 * time.Second

	local := isLoopback(cfg.ConnConfig.Host)
	if !strings.Contains(dsn, "sslmode=") {
		if local {
			cfg.ConnConfig.TLSConfig = nil
		} else {
			cfg.ConnConfig.TLSConfig = &tls.Config{InsecureSkipVerify: true}
		}
	}

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}

	mode := "remote"
	if local {
		mode = "local"
	}
	log.Info("database configured", "mode", mode, "host", cfg.ConnConfig.Host)

	return &DB{pool: pool, log: log}, nil
}

// Configured reports whether a connection string was provided.
func (db *DB) Configured() bool {
	return db.pool != nil
}

// Close releases the connection pool.
func (db *DB) Close() {
	if db.pool != nil {
		db.pool.Close()
	}
}

// Health issues a trivial round-trip query. It never returns an error; all
// failure is folded into the result.
func (db *DB) Health(ctx context.Context) Health {
	if db.pool == nil {
		return Health{OK: false, Reason: "DATABASE_URL not set"}
	}
	if _, err := db.pool.Exec(ctx, "select 1"); err != nil {
		return Health{OK: false, Reason: err.Error()}
	}
	return Health{OK: true}
}

// Query executes a query that returns rows.
func (db *DB) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	if db.pool == nil {
		return nil, ErrNotConfigured
	}
	return db.pool.Query(ctx, sql, args...)
}

// QueryRow executes a query expected to return at most one row.
func (db *DB) QueryRow(ctx context.Context, sql string, args ...any) (pgx.Row, error) {
	if db.pool == nil {
		return nil, ErrNotConfigured
	}
	return db.pool.QueryRow(ctx, sql, args...), nil
}

// Begin starts a transaction on a single pooled connection.
func (db *DB) Begin(ctx context.Context) (pgx.Tx, error) {
	if db.pool == nil {
		return nil, ErrNotConfigured
	}
	return db.pool.Begin(ctx)
}

// IsUndefinedTable reports whether err is Postgres "relation does not exist".
func IsUndefinedTable(err error) bool {
	return sqlState(err) == codeUndefinedTable
}

// IsUndefinedColumn reports whether err is Postgres "column does not exist".
func IsUndefinedColumn(err error) bool {
	return sqlState(err) == codeUndefinedColumn
}

func sqlState(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}

func isLoopback(host string) bool {
	if host == "" || host == "localhost" {
		return true
	}
	if ip := net.ParseIP(host); ip != nil {
		return ip.IsLoopback()
	}
	return false
}
