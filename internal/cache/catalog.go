package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/rs/zerolog"
)

const (
	KeyServices = "catalog:services"
	KeyTeam     = "catalog:team"
	KeyReviews  = "catalog:reviews"

	defaultTTL = 5 * time.Minute
)

// Catalog caches the public collection reads in redis. A nil client
// disables caching entirely, so the API keeps working (and tests run)
// without redis.
type Catalog struct {
	rdb *redis.Client
	log zerolog.Logger
}

func NewCatalog(rdb *redis.Client, log zerolog.Logger) *Catalog {
	return &Catalog{rdb: rdb, log: log}
}

func (c *Catalog) Get(ctx context.Context, key string, dest any) bool {
	if c == nil || c.rdb == nil {
		return false
	}

	raw, err := c.rdb.Get(ctx, key).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.log.Warn().Err(err).Str("key", key).Msg("catalog cache read failed")
		}
		return false
	}

	if err := json.Unmarshal(raw, dest); err != nil {
		c.log.Warn().Err(err).Str("key", key).Msg("catalog cache entry corrupt")
		return false
	}
	return true
}

func (c *Catalog) Set(ctx context.Context, key string, value any) {
	if c == nil || c.rdb == nil {
		return
	}

	raw, err := json.Marshal(value)
	if err != nil {
		return
	}
	if err := c.rdb.Set(ctx, key, raw, defaultTTL).Err(); err != nil {
		c.log.Warn().Err(err).Str("key", key).Msg("catalog cache write failed")
	}
}

// Invalidate drops keys after an admin mutation so the next public read
// re-fetches from the store.
func (c *Catalog) Invalidate(ctx context.Context, keys ...string) {
	if c == nil || c.rdb == nil {
		return
	}
	if err := c.rdb.Del(ctx, keys...).Err(); err != nil {
		c.log.Warn().Err(err).Msg("catalog cache invalidation failed")
	}
}
