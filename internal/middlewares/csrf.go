package middlewares

import (
	"net/http"

	"github.com/gorilla/csrf"
)

// CSRFProtect guards the page forms with gorilla/csrf. Without TLS the
// request is marked plaintext so the Referer check does not demand https.
func CSRFProtect(authKey []byte, secure bool) func(http.Handler) http.Handler {
	protect := csrf.Protect(authKey,
		csrf.Secure(secure),
		csrf.Path("/"),
		csrf.SameSite(csrf.SameSiteLaxMode),
	)

	return func(next http.Handler) http.Handler {
		protected := protect(next)
		if secure {
			return protected
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			protected.ServeHTTP(w, csrf.PlaintextHTTPRequest(r))
		})
	}
}
