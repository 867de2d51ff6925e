// Package identity verifies sessions issued by the external identity provider.
//
// The provider hands out HS256 access tokens signed with the project secret.
// The subject claim carries the user ID and session_id identifies the
// sign-in, which is what logout revokes.
package identity

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// DefaultCookieName is the cookie the session access token is persisted in.
const DefaultCookieName = "sb-access-token"

var (
	ErrNoSession      = errors.New("no session")
	ErrSessionRevoked = errors.New("session revoked")
	ErrInvalidToken   = errors.New("invalid token")
)

// Session is the authenticated user as seen by one request.
type Session struct {
	ID          string    // Provider session ID
	UserID      string    // Subject of the access token
	Email       string    // Email claim, may be empty
	ExpiresAt   time.Time // Access token expiry
	AccessToken string    // Raw token, forwarded to the data store as claims
}

// Claims are the access token claims issued by the identity provider.
type Claims struct {
	Email     string `json:"email,omitempty"`
	SessionID string `json:"session_id,omitempty"`
	Role      string `json:"role,omitempty"`
	jwt.RegisteredClaims
}

// RevocationChecker reports whether a session was signed out.
type RevocationChecker interface {
	IsRevoked(ctx context.Context, sessionID string) (bool, error)
}

// Provider resolves sessions from requests.
type Provider struct {
	SecretKey    string        // Shared secret the provider signs tokens with
	Exp          time.Duration // Lifetime of tokens issued by Issue
	CookieName   string        // Session cookie name
	SecureCookie bool          // Whether the session cookie requires TLS

	revocations RevocationChecker
}

// Opt configures a Provider.
type Opt func(*Provider)

// WithSecretKey sets the token signing secret.
func WithSecretKey(key string) Opt {
	return func(p *Provider) { p.SecretKey = key }
}

// WithExpiration sets the lifetime of issued tokens.
func WithExpiration(exp time.Duration) Opt {
	return func(p *Provider) { p.Exp = exp }
}

// WithCookieName overrides the session cookie name.
func WithCookieName(name string) Opt {
	return func(p *Provider) {
		if name != "" {
			p.CookieName = name
		}
	}
}

// WithSecureCookie marks the session cookie Secure.
func WithSecureCookie(secure bool) Opt {
	return func(p *Provider) { p.SecureCookie = secure }
}

// WithRevocations enables the sign-out check.
func WithRevocations(r RevocationChecker) Opt {
	return func(p *Provider) { p.revocations = r }
}

// New creates a Provider.
func New(opts ...Opt) *Provider {
	p := &Provider{
		Exp:        time.Hour,
		CookieName: DefaultCookieName,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Issue signs an access token the way the identity provider does.
// Used by tests and local development.
func (p *Provider) Issue(ctx context.Context, userID, email string) (string, error) {
	now := time.Now()
	claims := Claims{
		Email:     email,
		SessionID: uuid.New().String(),
		Role:      "authenticated",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			ExpiresAt: jwt.NewNumericDate(now.Add(p.Exp)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(p.SecretKey))
}

// Parse validates an access token and returns its session.
func (p *Provider) Parse(ctx context.Context, tokenString string) (*Session, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte(p.SecretKey), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithExpirationRequired())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if !token.Valid || claims.Subject == "" {
		return nil, ErrInvalidToken
	}

	session := &Session{
		ID:          claims.SessionID,
		UserID:      claims.Subject,
		Email:       claims.Email,
		ExpiresAt:   claims.ExpiresAt.Time,
		AccessToken: tokenString,
	}
	if session.ID == "" {
		session.ID = claims.ID
	}
	if session.ID == "" && claims.IssuedAt != nil {
		session.ID = fmt.Sprintf("%s:%d", claims.Subject, claims.IssuedAt.Unix())
	}
	// Without an id the session could never be revoked.
	if session.ID == "" {
		return nil, fmt.Errorf("%w: no session id", ErrInvalidToken)
	}
	return session, nil
}

// TokenFromRequest extracts the access token from the session cookie,
// falling back to the Authorization header.
func (p *Provider) TokenFromRequest(ctx context.Context, r *http.Request) (string, error) {
	if c, err := r.Cookie(p.CookieName); err == nil && c.Value != "" {
		return c.Value, nil
	}

	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return "", ErrNoSession
	}

	parts := strings.Fields(authHeader)
	if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
		return "", errors.New("invalid authorization header format")
	}

	return parts[1], nil
}

// SessionFromRequest returns the session carried by the request.
func (p *Provider) SessionFromRequest(ctx context.Context, r *http.Request) (*Session, error) {
	token, err := p.TokenFromRequest(ctx, r)
	if err != nil {
		return nil, err
	}

	session, err := p.Parse(ctx, token)
	if err != nil {
		return nil, err
	}

	if p.revocations != nil && session.ID != "" {
		revoked, err := p.revocations.IsRevoked(ctx, session.ID)
		if err != nil {
			return nil, fmt.Errorf("check session revocation: %w", err)
		}
		if revoked {
			return nil, ErrSessionRevoked
		}
	}

	return session, nil
}

// Cookie returns the cookie that persists the session in the browser.
func (p *Provider) Cookie(s *Session) *http.Cookie {
	return &http.Cookie{
		Name:     p.CookieName,
		Value:    s.AccessToken,
		Path:     "/",
		Expires:  s.ExpiresAt,
		HttpOnly: true,
		Secure:   p.SecureCookie,
		SameSite: http.SameSiteLaxMode,
	}
}

// ExpiredCookie returns a cookie that removes the session from the browser.
func (p *Provider) ExpiredCookie() *http.Cookie {
	return &http.Cookie{
		Name:     p.CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		Expires:  time.Unix(0, 0),
		HttpOnly: true,
		Secure:   p.SecureCookie,
		SameSite: http.SameSiteLaxMode,
	}
}

type sessionKey struct{}

// WithSession attaches the session to the context.
func WithSession(ctx context.Context, s *Session) context.Context {
	return context.WithValue(ctx, sessionKey{}, s)
}

// FromContext returns the session attached to the context, if any.
func FromContext(ctx context.Context) (*Session, bool) {
	s, ok := ctx.Value(sessionKey{}).(*Session)
	return s, ok && s != nil
}
