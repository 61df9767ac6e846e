package auth

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

const revocationKeyPrefix = "castwire:revoked:"

// Revoker is a token denylist keyed by jti. Entries expire together with the
// token they ban, so the set stays bounded.
type Revoker struct {
	client *redis.Client
}

// NewRevoker wraps a redis client as a token denylist.
func NewRevoker(client *redis.Client) *Revoker {
	return &Revoker{client: client}
}

// Revoke bans the token with the given jti until ttl elapses.
func (r *Revoker) Revoke(ctx context.Context, jti string, ttl time.Duration) error {
	return r.client.Set(ctx, revocationKeyPrefix+jti, "1", ttl).Err()
}

// IsRevoked reports whether the token with the given jti has been banned.
func (r *Revoker) IsRevoked(ctx context.Context, jti string) (bool, error) {
	err := r.client.Get(ctx, revocationKeyPrefix+jti).Err()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}
