package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// SessionStore keeps live bearer-token sessions in Redis.
// Keys are session:<token_id> holding the user id, expiring with the token
// TTL, so revoked and expired sessions disappear the same way.
type SessionStore struct {
	client *redis.Client
}

// NewSessionStore creates a SessionStore wrapping the given Redis client.
func NewSessionStore(client *redis.Client) *SessionStore {
	return &SessionStore{client: client}
}

// Save records a live session for tokenID.
func (s *SessionStore) Save(ctx context.Context, tokenID, userID string, ttl time.Duration) error {
	if err := s.client.Set(ctx, s.key(tokenID), userID, ttl).Err(); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

// Exists reports whether the session behind tokenID is still live.
func (s *SessionStore) Exists(ctx context.Context, tokenID string) (bool, error) {
	n, err := s.client.Exists(ctx, s.key(tokenID)).Result()
	if err != nil {
		return false, fmt.Errorf("check session: %w", err)
	}
	return n > 0, nil
}

// Delete revokes the session behind tokenID. Deleting a missing session is
// not an error.
func (s *SessionStore) Delete(ctx context.Context, tokenID string) error {
	if err := s.client.Del(ctx, s.key(tokenID)).Err(); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}

func (s *SessionStore) key(tokenID string) string {
	return fmt.Sprintf("session:%s", tokenID)
}
