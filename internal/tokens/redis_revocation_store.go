package tokens

import (
	"context"
	"math"
	"time"

	"github.com/redis/rueidis"
)

type RedisRevocationStore struct {
	client rueidis.Client
	prefix string
}

func NewRedisRevocationStore(client rueidis.Client, keyPrefix string) *RedisRevocationStore {
	return &RedisRevocationStore{
		client: client,
		prefix: keyPrefix,
	}
}

func (r *RedisRevocationStore) Revoke(ctx context.Context, tokenID string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}

	seconds := int64(math.Ceil(ttl.Seconds()))
	cmd := r.client.B().Set().Key(r.key(tokenID)).Value("1").ExSeconds(seconds).Build()
	return r.client.Do(ctx, cmd).Error()
}

func (r *RedisRevocationStore) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	cmd := r.client.B().Exists().Key(r.key(tokenID)).Build()
	n, err := r.client.Do(ctx, cmd).AsInt64()
	if err != nil {
		return false, err
	}

	return n > 0, nil
}

func (r *RedisRevocationStore) key(tokenID string) string {
	return r.prefix + tokenID
}
