package middlewares

//go:generate mockgen -source=guard.go -destination=guard_mock_test.go -package=middlewares

import (
	"context"
	"net/http"
	"strings"

	"github.com/sbilibin2017/gw-health-portal/internal/identity"
	"github.com/sbilibin2017/gw-health-portal/internal/logger"
)

// SessionResolver defines the minimal interface needed by the guard.
type SessionResolver interface {
	SessionFromRequest(ctx context.Context, r *http.Request) (*identity.Session, error)
}

// GuardOptions configures which paths the guard protects.
type GuardOptions struct {
	PublicPrefixes []string // Passed through without a session lookup
	APIPrefix      string   // API handlers check sessions themselves
	AuthPrefix     string   // Sign-in pages, hidden from signed-in users
	LoginPath      string   // Where anonymous users are sent
	HomePath       string   // Where signed-in users are sent
}

// DefaultGuardOptions protects every page except sign-in, assets and docs.
var DefaultGuardOptions = GuardOptions{
	PublicPrefixes: []string{
		"/auth/login",
		"/auth/register",
		"/auth/reset-password",
		"/auth/callback",
		"/auth/logout",
		"/static/",
		"/swagger/",
		"/favicon.ico",
	},
	APIPrefix:  "/api/",
	AuthPrefix: "/auth/",
	LoginPath:  "/auth/login",
	HomePath:   "/",
}

func (o GuardOptions) isPublic(path string) bool {
	for _, prefix := range o.PublicPrefixes {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}
	return false
}

// SessionGuard returns a middleware that keeps anonymous users out of the
// pages and signed-in users out of the auth pages. Any failure to resolve a
// session counts as no session. The session, when present, is attached to
// the request context.
func SessionGuard(resolver SessionResolver, opts GuardOptions) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			path := r.URL.Path

			if opts.isPublic(path) || strings.HasPrefix(path, opts.APIPrefix) {
				next.ServeHTTP(w, r)
				return
			}

			ctx := r.Context()
			session, err := resolver.SessionFromRequest(ctx, r)
			if err != nil {
				logger.FromContext(ctx).Debugw("no session", "path", path, "err", err)
				session = nil
			}

			inAuth := strings.HasPrefix(path, opts.AuthPrefix)
			switch {
			case session == nil && !inAuth:
				http.Redirect(w, r, opts.LoginPath, http.StatusTemporaryRedirect)
				return
			case session != nil && inAuth:
				http.Redirect(w, r, opts.HomePath, http.StatusTemporaryRedirect)
				return
			}

			if session != nil {
				ctx = identity.WithSession(ctx, session)
			}
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
