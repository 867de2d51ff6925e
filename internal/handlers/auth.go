package handlers

//go:generate mockgen -source=auth.go -destination=auth_mock_test.go -package=handlers

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	"github.com/sbilibin2017/gw-health-portal/internal/identity"
	"github.com/sbilibin2017/gw-health-portal/internal/logger"
)

// SessionManager defines the interface that the service must implement.
type SessionManager interface {
	SignIn(ctx context.Context, token string) (*identity.Session, error)
	SignOut(ctx context.Context, session *identity.Session) error
}

// SessionCookies reads and writes the session cookie.
type SessionCookies interface {
	SessionFromRequest(ctx context.Context, r *http.Request) (*identity.Session, error)
	Cookie(s *identity.Session) *http.Cookie
	ExpiredCookie() *http.Cookie
}

// LoginView is the content of login.html.
type LoginView struct {
	LoginURL string
	Error    string
}

// LoginURL builds the identity provider's sign-in link that returns to
// publicURL/auth/callback.
func LoginURL(providerURL, publicURL string) string {
	callback := strings.TrimRight(publicURL, "/") + "/auth/callback"
	sep := "?"
	if strings.Contains(providerURL, "?") {
		sep = "&"
	}
	return providerURL + sep + "redirect_to=" + url.QueryEscape(callback)
}

// NewLoginPage returns the sign-in page handler.
func NewLoginPage(loginURL string, rd *Renderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		view := LoginView{LoginURL: loginURL}
		if r.URL.Query().Get("error") == "session" {
			view.Error = "Your session could not be verified. Please sign in again."
		}
		rd.Render(w, r, http.StatusOK, "login.html", "Sign in", view)
	}
}

// NewAuthCallbackHandler returns the handler the identity provider
// redirects to after sign-in. It stores the access token in the session cookie.
func NewAuthCallbackHandler(svc SessionManager, cookies SessionCookies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token := r.URL.Query().Get("access_token")

		session, err := svc.SignIn(r.Context(), token)
		if err != nil {
			http.Redirect(w, r, "/auth/login?error=session", http.StatusSeeOther)
			return
		}

		http.SetCookie(w, cookies.Cookie(session))
		http.Redirect(w, r, "/", http.StatusSeeOther)
	}
}

// NewLogoutHandler returns the sign-out handler. The cookie is cleared even
// when the session cannot be revoked.
func NewLogoutHandler(svc SessionManager, cookies SessionCookies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		if session, err := cookies.SessionFromRequest(ctx, r); err == nil {
			if err := svc.SignOut(ctx, session); err != nil {
				logger.FromContext(ctx).Errorw("failed to sign out", "sessionID", session.ID, "error", err)
			}
		}

		http.SetCookie(w, cookies.ExpiredCookie())
		http.Redirect(w, r, "/auth/login", http.StatusSeeOther)
	}
}
