package repositories

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-health-portal/internal/logger"
)

//go:embed sql/schema.sql sql/seed.sql
var migrations embed.FS

// TxGetter returns the session transaction of the request, if any.
type TxGetter func(ctx context.Context) *sqlx.Tx

// executor picks the session transaction when there is one and falls back
// to the server client.
func executor(ctx context.Context, db *sqlx.DB, txGetter TxGetter) sqlx.ExtContext {
	if txGetter != nil {
		if tx := txGetter(ctx); tx != nil {
			return tx
		}
	}
	return db
}

// read runs fn on the request executor. Inside a session transaction fn is
// wrapped in a savepoint, so a failed read does not abort the transaction
// for the statements that follow it.
func read(ctx context.Context, db *sqlx.DB, txGetter TxGetter, fn func(q sqlx.ExtContext) error) error {
	q := executor(ctx, db, txGetter)
	tx, ok := q.(*sqlx.Tx)
	if !ok {
		return fn(q)
	}

	if _, err := tx.ExecContext(ctx, "SAVEPOINT portal_read"); err != nil {
		return err
	}

	err := fn(tx)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		if _, rbErr := tx.ExecContext(ctx, "ROLLBACK TO SAVEPOINT portal_read"); rbErr != nil {
			logger.FromContext(ctx).Errorw("failed to roll back to savepoint", "error", rbErr)
		}
		return err
	}

	if _, relErr := tx.ExecContext(ctx, "RELEASE SAVEPOINT portal_read"); relErr != nil {
		return relErr
	}
	return err
}

// logQuery logs a statement with the query collapsed to a single line.
func logQuery(ctx context.Context, query string, args []any, result any, err error) {
	logger.FromContext(ctx).Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", result,
		"error", err,
	)
}

// Migrate creates the tables and seeds the service catalog.
func Migrate(ctx context.Context, db *sqlx.DB) error {
	for _, name := range []string{"sql/schema.sql", "sql/seed.sql"} {
		stmt, err := migrations.ReadFile(name)
		if err != nil {
			return err
		}
		_, err = db.ExecContext(ctx, string(stmt))
		logger.Log.Infow("migration", "file", name, "error", err)
		if err != nil {
			return err
		}
	}
	return nil
}
