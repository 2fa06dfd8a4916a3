package redis

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/dexpay/treasuryd/internal/domain"
)

// SessionStore implements usecase.SessionStore using Redis. Each session key
// carries the operator name and expires after the inactivity TTL; Touch
// refreshes the TTL so activity keeps the session alive.
type SessionStore struct {
	client *redis.Client
	prefix string
}

// NewSessionStore creates a new SessionStore.
func NewSessionStore(client *redis.Client) *SessionStore {
	return &SessionStore{
		client: client,
		prefix: "session:",
	}
}

// Create stores a new session token.
func (s *SessionStore) Create(ctx context.Context, token, userName string, ttl time.Duration) error {
	return s.client.Set(ctx, s.prefix+token, userName, ttl).Err()
}

// Touch refreshes the session TTL and returns the operator name. An unknown
// or expired token yields domain.ErrSessionExpired.
func (s *SessionStore) Touch(ctx context.Context, token string, ttl time.Duration) (string, error) {
	userName, err := s.client.GetEx(ctx, s.prefix+token, ttl).Result()
	if err == redis.Nil {
		return "", domain.ErrSessionExpired
	}
	if err != nil {
		return "", err
	}

	return userName, nil
}

// Delete removes a session token.
func (s *SessionStore) Delete(ctx context.Context, token string) error {
	return s.client.Del(ctx, s.prefix+token).Err()
}
