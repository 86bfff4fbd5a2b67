package lookup

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"go.uber.org/zap"
)

// CachedDirectory wraps a Directory with a Cache. Cache failures are logged
// and fall through to the wrapped Directory.
type CachedDirectory struct {
	next   Directory
	cache  Cache
	ttl    time.Duration
	logger *zap.Logger
}

// NewCachedDirectory wraps next with cache.
func NewCachedDirectory(logger *zap.Logger, next Directory, cache Cache, ttl time.Duration) *CachedDirectory {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CachedDirectory{next: next, cache: cache, ttl: ttl, logger: logger}
}

// Institution returns the institution with id.
func (c *CachedDirectory) Institution(ctx context.Context, id int) (Institution, error) {
	key := fmt.Sprintf("institution:%d", id)
	var inst Institution
	if c.load(ctx, key, &inst) {
		return inst, nil
	}

	inst, err := c.next.Institution(ctx, id)
	if err != nil {
		return Institution{}, err
	}
	c.store(ctx, key, inst)
	return inst, nil
}

// Program returns the program identified by institutionID and cipCode.
func (c *CachedDirectory) Program(ctx context.Context, institutionID int, cipCode string) (Program, error) {
	key := fmt.Sprintf("program:%d:%s", institutionID, cipCode)
	var prog Program
	if c.load(ctx, key, &prog) {
		return prog, nil
	}

	prog, err := c.next.Program(ctx, institutionID, cipCode)
	if err != nil {
		return Program{}, err
	}
	c.store(ctx, key, prog)
	return prog, nil
}

// HousingCost returns the annual one-bedroom cost for state.
func (c *CachedDirectory) HousingCost(ctx context.Context, state string) float64 {
	return c.number(ctx, "housing:"+normalizeState(state), func() float64 {
		return c.next.HousingCost(ctx, state)
	})
}

// MedianEarnings returns the median earnings for state.
func (c *CachedDirectory) MedianEarnings(ctx context.Context, state string) float64 {
	return c.number(ctx, "earnings:"+normalizeState(state), func() float64 {
		return c.next.MedianEarnings(ctx, state)
	})
}

func (c *CachedDirectory) number(ctx context.Context, key string, fetch func() float64) float64 {
	raw, ok, err := c.cache.Get(ctx, key)
	if err != nil {
		c.logger.Warn("cache read failed",
			zap.String("op", "lookup.CachedDirectory"),
			zap.String("key", key),
			zap.Error(err),
		)
	} else if ok {
		if v, parseErr := strconv.ParseFloat(raw, 64); parseErr == nil {
			return v
		}
	}

	v := fetch()
	if err := c.cache.Set(ctx, key, strconv.FormatFloat(v, 'f', -1, 64), c.ttl); err != nil {
		c.logger.Warn("cache write failed",
			zap.String("op", "lookup.CachedDirectory"),
			zap.String("key", key),
			zap.Error(err),
		)
	}
	return v
}

func (c *CachedDirectory) load(ctx context.Context, key string, dst interface{}) bool {
	raw, ok, err := c.cache.Get(ctx, key)
	if err != nil {
		c.logger.Warn("cache read failed",
			zap.String("op", "lookup.CachedDirectory"),
			zap.String("key", key),
			zap.Error(err),
		)
		return false
	}
	if !ok {
		return false
	}
	if err := json.Unmarshal([]byte(raw), dst); err != nil {
		c.logger.Warn("discarding undecodable cache entry",
			zap.String("op", "lookup.CachedDirectory"),
			zap.String("key", key),
			zap.Error(err),
		)
		return false
	}
	c.logger.Debug("cache hit",
		zap.String("op", "lookup.CachedDirectory"),
		zap.String("key", key),
	)
	return true
}

func (c *CachedDirectory) store(ctx context.Context, key string, value interface{}) {
	data, err := json.Marshal(value)
	if err != nil {
		return
	}
	if err := c.cache.Set(ctx, key, string(data), c.ttl); err != nil {
		c.logger.Warn("cache write failed",
			zap.String("op", "lookup.CachedDirectory"),
			zap.String("key", key),
			zap.Error(err),
		)
	}
}
