package recall

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"

	"github.com/redis/go-redis/v9"

	"github.com/taibuivan/recalldash/internal/platform/constants"
)

// OptionCache is a read-through Redis cache in front of an [OptionSource].
//
// Maker lists are keyed by scope; the year bounds are a single key. Entries
// expire after [constants.OptionCacheTTL].
//
// # Failure Mode
//
// The cache fails open: a Redis error is logged and the call falls through
// to the underlying source. A degraded cache must never take down a read
// that the database can still answer.
type OptionCache struct {
	source OptionSource
	client *redis.Client
	logger *slog.Logger
}

// NewOptionCache wraps source with a Redis read-through layer.
func NewOptionCache(source OptionSource, client *redis.Client, logger *slog.Logger) *OptionCache {
	return &OptionCache{
		source: source,
		client: client,
		logger: logger,
	}
}

// ListMakers returns the maker dropdown options for a scope, cached.
func (cache *OptionCache) ListMakers(context context.Context, scope string) ([]string, error) {
	if scope == "" {
		scope = FilterAll
	}
	key := constants.RedisPrefixMakerOptions + scope

	var makers []string
	if hit := cache.lookup(context, key, &makers); hit {
		return makers, nil
	}

	makers, err := cache.source.ListMakers(context, scope)
	if err != nil {
		return nil, err
	}

	cache.store(context, key, makers)
	return makers, nil
}

// YearBounds returns the year dropdown bounds, cached.
func (cache *OptionCache) YearBounds(context context.Context) (YearRange, error) {
	var bounds YearRange
	if hit := cache.lookup(context, constants.RedisKeyYearBounds, &bounds); hit {
		return bounds, nil
	}

	bounds, err := cache.source.YearBounds(context)
	if err != nil {
		return YearRange{}, err
	}

	cache.store(context, constants.RedisKeyYearBounds, bounds)
	return bounds, nil
}

// lookup fetches and decodes a cached entry. It reports a usable hit;
// misses, decode failures, and Redis errors all read as "no hit".
func (cache *OptionCache) lookup(context context.Context, key string, target any) bool {
	payload, err := cache.client.Get(context, key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			cache.logger.Warn("option_cache_get_failed",
				slog.String("key", key),
				slog.Any("error", err),
			)
		}
		return false
	}

	if err := json.Unmarshal(payload, target); err != nil {
		cache.logger.Warn("option_cache_decode_failed",
			slog.String("key", key),
			slog.Any("error", err),
		)
		return false
	}

	return true
}

// store encodes and writes a cache entry with the option TTL.
func (cache *OptionCache) store(context context.Context, key string, value any) {
	payload, err := json.Marshal(value)
	if err != nil {
		cache.logger.Warn("option_cache_encode_failed",
			slog.String("key", key),
			slog.Any("error", err),
		)
		return
	}

	if err := cache.client.Set(context, key, payload, constants.OptionCacheTTL).Err(); err != nil {
		cache.logger.Warn("option_cache_set_failed",
			slog.String("key", key),
			slog.Any("error", err),
		)
	}
}
