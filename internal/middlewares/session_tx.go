package middlewares

import (
	"context"
	"net/http"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-health-portal/internal/facades"
	"github.com/sbilibin2017/gw-health-portal/internal/identity"
	"github.com/sbilibin2017/gw-health-portal/internal/logger"
)

// SessionTx wraps a page request in a transaction that carries the
// signed-in user's claims. Requests without a session, or whose transaction
// cannot be opened, run on the server client. Server errors roll back.
// Commit hooks registered by the handler run only after a successful commit.
func SessionTx(db *sqlx.DB) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			log := logger.FromContext(ctx)

			session, ok := identity.FromContext(ctx)
			if !ok {
				next.ServeHTTP(w, r)
				return
			}

			tx, err := facades.NewSessionClient(ctx, db, session)
			if err != nil {
				log.Errorw("failed to begin session transaction", "error", err)
				next.ServeHTTP(w, r)
				return
			}

			defer func() {
				if rec := recover(); rec != nil {
					tx.Rollback()
					panic(rec)
				}
			}()

			rw := &responseWriter{
				ResponseWriter: w,
				statusCode:     http.StatusOK,
			}

			txCtx, hooks := facades.WithCommitHooks(setTxToContext(ctx, tx))
			next.ServeHTTP(rw, r.WithContext(txCtx))

			if rw.statusCode >= http.StatusInternalServerError {
				if err := tx.Rollback(); err != nil {
					log.Errorw("failed to roll back session transaction", "error", err)
				}
				log.Warnw("session transaction rolled back", "dropped_hooks", hooks.Discard())
				return
			}

			if err := tx.Commit(); err != nil {
				log.Errorw("failed to commit session transaction", "error", err, "dropped_hooks", hooks.Discard())
				return
			}
			hooks.Run()
		})
	}
}

// contextKey is an unexported type for keys in context
type contextKey struct{}

var txKey = contextKey{}

// setTxToContext stores a transaction in the context
func setTxToContext(ctx context.Context, tx *sqlx.Tx) context.Context {
	return context.WithValue(ctx, txKey, tx)
}

// GetTxFromContext retrieves the transaction from the context. Returns nil if not present.
func GetTxFromContext(ctx context.Context) *sqlx.Tx {
	tx, _ := ctx.Value(txKey).(*sqlx.Tx)
	return tx
}
