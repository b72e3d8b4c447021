package database

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Pool is the part of the connection pool the HTTP layer needs for readiness checks
type Pool interface {
	Ping(ctx context.Context) error
	Close()
}

// PoolConfig sizes the Postgres connection pool
type PoolConfig struct {
	ConnString      string
	MaxConns        int
	MaxConnIdleTime time.Duration
	MaxConnLifetime time.Duration
}

// NewPool opens a pgx connection pool and verifies it with a ping bounded by ctx
func NewPool(ctx context.Context, cfg PoolConfig) (*pgxpool.Pool, error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.ConnString)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToParseConnString, err)
	}

	maxConns := min(max(cfg.MaxConns, DefaultMinConnections), math.MaxInt32)
	poolCfg.MaxConns = int32(maxConns)
	poolCfg.MinConns = DefaultMinConnections
	if cfg.MaxConnIdleTime > 0 {
		poolCfg.MaxConnIdleTime = cfg.MaxConnIdleTime
	}
	if cfg.MaxConnLifetime > 0 {
		poolCfg.MaxConnLifetime = cfg.MaxConnLifetime
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToCreatePool, err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToPingDatabase, err)
	}

	slog.Info(LogMsgConnectedToDatabase,
		"max_conns", poolCfg.MaxConns,
		"max_conn_idle_time", poolCfg.MaxConnIdleTime,
		"max_conn_lifetime", poolCfg.MaxConnLifetime)
	return pool, nil
}
