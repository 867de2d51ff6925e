package facades

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-health-portal/internal/identity"
	"github.com/sbilibin2017/gw-health-portal/internal/logger"
)

// DatastoreConfig points the facade at the hosted relational store.
type DatastoreConfig struct {
	URL             string // Postgres connection URL
	AnonKey         string // Anonymous role key, used as password when URL has none
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

// DatastoreConfigFromEnv reads DATASTORE_URL and DATASTORE_ANON_KEY.
// Missing values stay empty; the service still starts.
func DatastoreConfigFromEnv() DatastoreConfig {
	cfg := DatastoreConfig{
		URL:     os.Getenv("DATASTORE_URL"),
		AnonKey: os.Getenv("DATASTORE_ANON_KEY"),
	}
	if cfg.URL == "" || cfg.AnonKey == "" {
		logger.Log.Warnw("datastore is not fully configured",
			"url_set", cfg.URL != "",
			"anon_key_set", cfg.AnonKey != "",
		)
	}
	return cfg
}

func serverConnConfig(cfg DatastoreConfig) (*pgx.ConnConfig, error) {
	connCfg, err := pgx.ParseConfig(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("parse datastore url: %w", err)
	}
	if connCfg.Password == "" {
		connCfg.Password = cfg.AnonKey
	}
	return connCfg, nil
}

// NewServerClient returns the client used for trusted server-side calls.
// It carries no user session. Connections are opened lazily.
func NewServerClient(ctx context.Context, cfg DatastoreConfig) (*sqlx.DB, error) {
	connCfg, err := serverConnConfig(cfg)
	if err != nil {
		return nil, err
	}

	db := sqlx.NewDb(stdlib.OpenDB(*connCfg), "pgx")
	if cfg.MaxOpenConns > 0 {
		db.SetMaxOpenConns(cfg.MaxOpenConns)
	}
	if cfg.MaxIdleConns > 0 {
		db.SetMaxIdleConns(cfg.MaxIdleConns)
	}
	if cfg.ConnMaxLifetime > 0 {
		db.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	}

	logger.Log.Infow("datastore client created",
		"host", connCfg.Host,
		"port", connCfg.Port,
		"database", connCfg.Database,
		"user", connCfg.User,
	)
	return db, nil
}

// NewSessionClient returns a transaction bound to the user's session: the
// access token claims are set transaction-locally so row-level policies in
// the store apply to every statement run through it. The caller commits or
// rolls back.
func NewSessionClient(ctx context.Context, db *sqlx.DB, session *identity.Session) (*sqlx.Tx, error) {
	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin session transaction: %w", err)
	}

	claims, err := json.Marshal(map[string]string{
		"sub":        session.UserID,
		"email":      session.Email,
		"session_id": session.ID,
		"role":       "authenticated",
	})
	if err != nil {
		tx.Rollback()
		return nil, err
	}

	const query = `SELECT set_config('request.jwt.claim.sub', $1, true), set_config('request.jwt.claims', $2, true)`
	if _, err := tx.ExecContext(ctx, query, session.UserID, string(claims)); err != nil {
		tx.Rollback()
		return nil, fmt.Errorf("set session claims: %w", err)
	}

	return tx, nil
}
