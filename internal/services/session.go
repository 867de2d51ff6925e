package services

//go:generate mockgen -source=session.go -destination=session_mock_test.go -package=services

import (
	"context"
	"time"

	"github.com/sbilibin2017/gw-health-portal/internal/identity"
	"github.com/sbilibin2017/gw-health-portal/internal/logger"
)

// SessionParser verifies access tokens issued by the identity provider.
type SessionParser interface {
	Parse(ctx context.Context, token string) (*identity.Session, error) // Returns the session carried by token
}

// SessionRevoker remembers signed-out sessions.
type SessionRevoker interface {
	Revoke(ctx context.Context, sessionID string, ttl time.Duration) error // Marks the session revoked for ttl
}

// SessionService signs users in and out.
type SessionService struct {
	parser  SessionParser
	revoker SessionRevoker
}

// NewSessionService creates a new SessionService.
func NewSessionService(parser SessionParser, revoker SessionRevoker) *SessionService {
	return &SessionService{parser: parser, revoker: revoker}
}

// SignIn verifies the token handed back by the identity provider.
func (s *SessionService) SignIn(ctx context.Context, token string) (*identity.Session, error) {
	session, err := s.parser.Parse(ctx, token)
	if err != nil {
		logger.FromContext(ctx).Warnw("sign in rejected", "error", err)
		return nil, err
	}

	logger.FromContext(ctx).Infow("user signed in", "userID", session.UserID, "sessionID", session.ID)
	return session, nil
}

// SignOut revokes the session until its token would have expired anyway.
func (s *SessionService) SignOut(ctx context.Context, session *identity.Session) error {
	if session.ID == "" {
		logger.FromContext(ctx).Warnw("sign out without session id", "userID", session.UserID)
		return identity.ErrInvalidToken
	}
	if err := s.revoker.Revoke(ctx, session.ID, time.Until(session.ExpiresAt)); err != nil {
		logger.FromContext(ctx).Errorw("failed to revoke session", "sessionID", session.ID, "error", err)
		return err
	}

	logger.FromContext(ctx).Infow("user signed out", "userID", session.UserID, "sessionID", session.ID)
	return nil
}
