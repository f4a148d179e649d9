package tokens

import (
	"context"
	"sync"
	"testing"
	"time"
)

func TestMemoryRevocationStore_RevokeAndExpire(t *testing.T) {
	store := NewMemoryRevocationStore()
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return now }

	ctx := context.Background()

	revoked, err := store.IsRevoked(ctx, "jti-1")
	if err != nil || revoked {
		t.Fatalf("expected unknown token to be live, got revoked=%v err=%v", revoked, err)
	}

	if err := store.Revoke(ctx, "jti-1", time.Minute); err != nil {
		t.Fatalf("revoke failed: %v", err)
	}

	revoked, _ = store.IsRevoked(ctx, "jti-1")
	if !revoked {
		t.Error("expected token to be revoked")
	}

	now = now.Add(time.Minute)
	revoked, _ = store.IsRevoked(ctx, "jti-1")
	if revoked {
		t.Error("expected revocation to lapse with the token")
	}
	if len(store.entries) != 0 {
		t.Errorf("expected expired entry to be dropped, have %d", len(store.entries))
	}
}

func TestMemoryRevocationStore_NonPositiveTTL(t *testing.T) {
	store := NewMemoryRevocationStore()
	ctx := context.Background()

	if err := store.Revoke(ctx, "already-expired", 0); err != nil {
		t.Fatalf("revoke failed: %v", err)
	}

	revoked, _ := store.IsRevoked(ctx, "already-expired")
	if revoked {
		t.Error("expected nothing to be stored for an expired token")
	}
}

func TestMemoryRevocationStore_Concurrent(t *testing.T) {
	store := NewMemoryRevocationStore()
	ctx := context.Background()

	const n = 50
	var wg sync.WaitGroup
	wg.Add(n)
	for i := 0; i < n; i++ {
		go func(idx int) {
			defer wg.Done()
			id := string(rune('a' + idx%26))
			_ = store.Revoke(ctx, id, time.Hour)
			_, _ = store.IsRevoked(ctx, id)
		}(i)
	}
	wg.Wait()

	revoked, _ := store.IsRevoked(ctx, "a")
	if !revoked {
		t.Error("expected token a to be revoked")
	}
}
