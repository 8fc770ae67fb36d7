package binlookup

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/allisson/binbot/internal/card/domain"
)

const cacheKeyPrefix = "binbot:bin:"

// CachedResolver is a Redis read-through cache in front of another Resolver.
// Only resolved results are stored; Redis failures fall through to next.
type CachedResolver struct {
	next   Resolver
	client redis.Cmdable
	ttl    time.Duration
	logger *slog.Logger
}

// NewCachedResolver wraps next with a cache whose entries live for ttl.
func NewCachedResolver(next Resolver, client redis.Cmdable, ttl time.Duration, logger *slog.Logger) *CachedResolver {
	return &CachedResolver{
		next:   next,
		client: client,
		ttl:    ttl,
		logger: logger,
	}
}

// CacheKey returns the Redis key holding metadata for bin.
func CacheKey(bin string) string {
	return cacheKeyPrefix + bin
}

func (r *CachedResolver) Resolve(ctx context.Context, bin string) domain.LookupResult {
	key := CacheKey(bin)

	data, err := r.client.Get(ctx, key).Bytes()
	switch {
	case err == nil:
		var metadata domain.BinMetadata
		if err := json.Unmarshal(data, &metadata); err == nil {
			return domain.Resolved(metadata)
		}
		r.logger.Warn("discarding corrupt cache entry", slog.String("key", key))
	case errors.Is(err, redis.Nil):
	default:
		r.logger.Warn("bin cache read failed", slog.String("key", key), slog.Any("error", err))
	}

	result := r.next.Resolve(ctx, bin)
	if !result.Available {
		return result
	}

	encoded, err := json.Marshal(result.Metadata)
	if err != nil {
		return result
	}
	if err := r.client.Set(ctx, key, string(encoded), r.ttl).Err(); err != nil {
		r.logger.Warn("bin cache write failed", slog.String("key", key), slog.Any("error", err))
	}
	return result
}
