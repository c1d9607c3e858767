// Package bootstrap connects the runtime dependencies shared by the commands.
package bootstrap

import (
	"context"
	"fmt"

	"dwitter/internal/cache"
	"dwitter/internal/config"
	"dwitter/internal/database"
	"dwitter/internal/observability"
	"dwitter/internal/seed"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// Options control runtime initialization behavior.
type Options struct {
	// FixturePath, when set, is a YAML fixture loaded after migration.
	FixturePath string
}

// InitRuntime connects to the database and Redis and optionally loads a fixture.
// The Redis client is nil when Redis is not configured or unreachable.
func InitRuntime(ctx context.Context, cfg *config.Config, opts Options) (*gorm.DB, *redis.Client, error) {
	db, err := database.Connect(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("database connection failed: %w", err)
	}

	rdb := cache.Connect(cfg.RedisURL)

	if opts.FixturePath != "" {
		if cfg.IsProduction() {
			return nil, nil, fmt.Errorf("fixtures cannot be loaded in production")
		}
		fx, err := seed.LoadFixtureFile(opts.FixturePath)
		if err != nil {
			return nil, nil, err
		}
		if _, err := seed.NewFactory(db, 0).ApplyFixture(ctx, fx); err != nil {
			return nil, nil, fmt.Errorf("apply fixture: %w", err)
		}
		observability.Logger.InfoContext(ctx, "fixture loaded", "path", opts.FixturePath)
	}

	return db, rdb, nil
}
