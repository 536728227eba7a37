package cache

import (
	"context"
	"log/slog"

	"github.com/albapepper/hoops-collector/internal/config"
)

// Open returns the response cache selected by cfg.CacheBackend.
// A disabled cache is an always-miss memory cache.
func Open(ctx context.Context, cfg *config.Config, logger *slog.Logger) (Cache, func(), error) {
	if cfg.CacheEnabled && cfg.CacheBackend == config.CacheRedis {
		c, err := NewRedis(ctx, cfg.RedisURL, logger)
		if err != nil {
			return nil, nil, err
		}
		return c, func() { c.Close() }, nil
	}
	c := NewMemory(cfg.CacheEnabled)
	return c, c.Close, nil
}
