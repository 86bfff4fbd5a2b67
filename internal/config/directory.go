package config

import (
	"context"

	"github.com/iwvelando/college-roi/internal/analysis"
	"github.com/iwvelando/college-roi/internal/lookup"
	"github.com/iwvelando/college-roi/pkg/constants"
	"go.uber.org/zap"
)

// BuildDirectory creates the lookup directory for the configured records,
// wrapped in the configured cache. The returned close function releases any
// cache connection and is never nil. An unreachable Redis
// server degrades to uncached lookups.
func (c *Configuration) BuildDirectory(ctx context.Context, logger *zap.Logger) (lookup.Directory, func() error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	noop := func() error { return nil }

	static := lookup.NewStaticDirectory(c.Institutions, c.Programs, c.Regions)

	switch c.Cache.Backend {
	case constants.CacheBackendMemory:
		return lookup.NewCachedDirectory(logger, static, lookup.NewMemoryCache(), c.Cache.TTLDuration()), noop
	case constants.CacheBackendRedis:
		if c.Cache.Address == "" {
			return static, noop
		}
		cache := lookup.NewRedisCache(c.Cache.Address, c.Cache.Password, c.Cache.DB, c.Cache.Prefix)
		if err := cache.Ping(ctx); err != nil {
			logger.Warn("redis cache unavailable, continuing without cache",
				zap.String("op", "config.BuildDirectory"),
				zap.String("address", c.Cache.Address),
				zap.Error(err),
			)
			_ = cache.Close()
			return static, noop
		}
		return lookup.NewCachedDirectory(logger, static, cache, c.Cache.TTLDuration()), cache.Close
	default:
		return static, noop
	}
}

// ActiveSelections returns at most the first two selections.
func (c *Configuration) ActiveSelections() []analysis.Selection {
	if len(c.Selections) > 2 {
		return c.Selections[:2]
	}
	return c.Selections
}
