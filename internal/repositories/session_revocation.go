package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sbilibin2017/gw-health-portal/internal/logger"
)

// SessionRevocationRepository remembers signed-out sessions in Redis until
// their access tokens expire.
type SessionRevocationRepository struct {
	client *redis.Client
}

// NewSessionRevocationRepository creates a new repository instance.
func NewSessionRevocationRepository(client *redis.Client) *SessionRevocationRepository {
	return &SessionRevocationRepository{client: client}
}

func revocationKey(sessionID string) string {
	return fmt.Sprintf("session_revoked:%s", sessionID)
}

// Revoke marks the session as signed out for ttl. Non-positive ttls are
// stored for one minute so an already-expired token cannot race the check.
func (r *SessionRevocationRepository) Revoke(ctx context.Context, sessionID string, ttl time.Duration) error {
	if ttl <= 0 {
		ttl = time.Minute
	}
	key := revocationKey(sessionID)
	err := r.client.Set(ctx, key, "1", ttl).Err()

	logger.FromContext(ctx).Infow("session revoked",
		"key", key,
		"ttl", ttl.String(),
		"error", err,
	)

	return err
}

// IsRevoked reports whether the session was signed out.
func (r *SessionRevocationRepository) IsRevoked(ctx context.Context, sessionID string) (bool, error) {
	key := revocationKey(sessionID)
	n, err := r.client.Exists(ctx, key).Result()

	logger.FromContext(ctx).Infow("session revocation checked",
		"key", key,
		"result", n,
		"error", err,
	)

	if err != nil {
		return false, err
	}
	return n > 0, nil
}
