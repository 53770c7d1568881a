// README: Redis-backed itinerary response cache.
package itinerary

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// cacheTTL keeps generated itineraries for a day; trips are planned well in
// advance, so repeated identical requests within that window are common.
const cacheTTL = 24 * time.Hour

// Store caches generated itinerary text in Redis. All operations are
// best-effort: a Redis failure reads as a cache miss and writes are dropped.
type Store struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewStore returns a Store backed by the given Redis client.
func NewStore(rdb *redis.Client) *Store {
	return &Store{rdb: rdb, ttl: cacheTTL}
}

func (s *Store) Get(ctx context.Context, key string) (string, bool) {
	val, err := s.rdb.Get(ctx, key).Result()
	if err != nil {
		return "", false
	}
	return val, true
}

func (s *Store) Set(ctx context.Context, key, text string) {
	_ = s.rdb.Set(ctx, key, text, s.ttl).Err()
}
