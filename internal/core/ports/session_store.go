package ports

import (
	"context"
	"time"
)

// SessionStore keeps track of live bearer-token sessions so that sign-out
// actually revokes a token instead of relying on client-side storage wipes.
type SessionStore interface {
	Save(ctx context.Context, tokenID, userID string, ttl time.Duration) error
	Exists(ctx context.Context, tokenID string) (bool, error)
	Delete(ctx context.Context, tokenID string) error
}
