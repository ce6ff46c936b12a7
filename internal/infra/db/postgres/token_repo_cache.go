package postgres

import (
	"context"
	"fmt"
	"time"

	"newsletter-service/internal/domain/ports/repository"
	"newsletter-service/internal/infra/metrics"
	red "newsletter-service/internal/infra/redis"
)

var _ repository.TokenRepository = (*tokenRepoCacheDecorator)(nil)

// tokenRepoCacheDecorator caches token -> subscriber_id lookups. Tokens are
// write-once and never invalidated, so a cached binding can never go stale;
// the TTL only bounds cache residency, not token validity.
type tokenRepoCacheDecorator struct {
	inner repository.TokenRepository
	cache red.RedisClient
	ttl   time.Duration
}

func NewTokenRepoCacheDecorator(inner repository.TokenRepository, cache red.RedisClient, ttl time.Duration) repository.TokenRepository {
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &tokenRepoCacheDecorator{inner: inner, cache: cache, ttl: ttl}
}

func tokenKey(token string) string { return fmt.Sprintf("token:%s", token) }

// Insert passes through and warms the cache for the confirm that follows.
func (d *tokenRepoCacheDecorator) Insert(ctx context.Context, tx repository.Tx, token, subscriberID string) error {
	if err := d.inner.Insert(ctx, tx, token, subscriberID); err != nil {
		return err
	}
	_ = d.cache.Set(ctx, tokenKey(token), subscriberID, d.ttl)
	return nil
}

func (d *tokenRepoCacheDecorator) FindSubscriberID(ctx context.Context, tx repository.Tx, token string) (string, error) {
	val, err := d.cache.Get(ctx, tokenKey(token))
	if err == nil && val != "" {
		metrics.IncCacheRequest("token", "hit")
		return val, nil
	}

	metrics.IncCacheRequest("token", "miss")
	subscriberID, err := d.inner.FindSubscriberID(ctx, tx, token)
	if err != nil {
		// Not-found is NOT cached: the token may be mid-insert in a
		// concurrent subscribe transaction.
		return "", err
	}
	_ = d.cache.Set(ctx, tokenKey(token), subscriberID, d.ttl)
	return subscriberID, nil
}
