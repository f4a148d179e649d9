package tokens

import (
	"context"
	"time"
)

// RevocationStore remembers token ids that must no longer authenticate.
// Entries only need to outlive the token they revoke.
type RevocationStore interface {
	Revoke(ctx context.Context, tokenID string, ttl time.Duration) error

	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}
