package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/statusgrab/statusgrab/internal/resolvers"
	"github.com/statusgrab/statusgrab/internal/utils"
)

const keyPrefix = "video:"

// Cache keeps resolved descriptors in redis so repeated submissions of the
// same post skip the upstream round trip. A nil *Cache is a valid no-op cache.
type Cache struct {
	rdb *redis.Client
	ttl time.Duration
}

func New(addr string, ttl time.Duration) *Cache {
	if addr == "" {
		return nil
	}

	return NewWithClient(redis.NewClient(&redis.Options{Addr: addr}), ttl)
}

func NewWithClient(rdb *redis.Client, ttl time.Duration) *Cache {
	return &Cache{
		rdb: rdb,
		ttl: ttl,
	}
}

func (c *Cache) Get(ctx context.Context, url string) (*resolvers.Video, bool) {
	if c == nil {
		return nil, false
	}

	b, err := c.rdb.Get(ctx, keyPrefix+url).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			utils.Log.Error(err)
		}

		return nil, false
	}

	var v resolvers.Video
	if err := json.Unmarshal(b, &v); err != nil {
		utils.Log.Error(err)

		return nil, false
	}

	return &v, true
}

func (c *Cache) Set(ctx context.Context, url string, v *resolvers.Video) {
	if c == nil || v == nil {
		return
	}

	b, err := json.Marshal(v)
	if err != nil {
		utils.Log.Error(err)

		return
	}

	if err := c.rdb.Set(ctx, keyPrefix+url, b, c.ttl).Err(); err != nil {
		utils.Log.Error(err)
	}
}
