// Package storage opens the configured vote store and hands out contexts
// over it.
package storage

import (
	"context"
	"fmt"

	"github.com/vncsmyrnk/vote/internal/adapters/repository/memory"
	"github.com/vncsmyrnk/vote/internal/adapters/repository/postgres"
	"github.com/vncsmyrnk/vote/internal/adapters/repository/redis"
	"github.com/vncsmyrnk/vote/internal/adapters/repository/sqlite"
	"github.com/vncsmyrnk/vote/internal/core/ports"
	"github.com/vncsmyrnk/vote/internal/platform/config"
)

// Backend owns a store handle. NewContext is cheap; Close releases the handle.
type Backend struct {
	NewContext func() ports.VoteContext
	close      func() error
}

func (b *Backend) Close() error {
	if b.close == nil {
		return nil
	}
	return b.close()
}

func Open(ctx context.Context, cfg config.Config) (*Backend, error) {
	switch cfg.Store {
	case config.StoreMemory:
		store := memory.NewStore()
		return &Backend{
			NewContext: func() ports.VoteContext { return memory.NewVoteContext(store) },
		}, nil

	case config.StoreSQLite:
		db, err := sqlite.Open(ctx, cfg.SQLitePath)
		if err != nil {
			return nil, err
		}
		return &Backend{
			NewContext: func() ports.VoteContext { return sqlite.NewVoteContext(db) },
			close:      db.Close,
		}, nil

	case config.StorePostgres:
		db, err := postgres.Open(ctx, cfg.Postgres.ConnString())
		if err != nil {
			return nil, err
		}
		return &Backend{
			NewContext: func() ports.VoteContext { return postgres.NewVoteContext(db) },
			close:      db.Close,
		}, nil

	case config.StoreRedis:
		client, err := redis.Open(ctx, cfg.RedisURL)
		if err != nil {
			return nil, err
		}
		return &Backend{
			NewContext: func() ports.VoteContext { return redis.NewVoteContext(client, cfg.RedisPrefix) },
			close:      client.Close,
		}, nil
	}

	return nil, fmt.Errorf("unknown store %q", cfg.Store)
}
