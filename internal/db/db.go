package db

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Pool tunables. Zero values fall back to these defaults so callers only set
// what they care about.
const (
	defaultMaxConns     = 10
	defaultConnIdleTime = 5 * time.Minute
	defaultConnLifetime = 30 * time.Minute
	defaultPingTimeout  = 5 * time.Second
)

// Options tune the connection pool beyond what the DSN carries.
type Options struct {
	MaxConns     int32
	ConnIdleTime time.Duration
	ConnLifetime time.Duration
	PingTimeout  time.Duration
}

func (o Options) withDefaults() Options {
	if o.MaxConns <= 0 {
		o.MaxConns = defaultMaxConns
	}
	if o.ConnIdleTime <= 0 {
		o.ConnIdleTime = defaultConnIdleTime
	}
	if o.ConnLifetime <= 0 {
		o.ConnLifetime = defaultConnLifetime
	}
	if o.PingTimeout <= 0 {
		o.PingTimeout = defaultPingTimeout
	}
	return o
}

// Connect opens a pgx pool against dsn and verifies connectivity with a
// bounded ping before handing the pool out.
func Connect(ctx context.Context, dsn string, opts Options) (*pgxpool.Pool, error) {
	opts = opts.withDefaults()

	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse dsn: %w", err)
	}
	cfg.MaxConns = opts.MaxConns
	cfg.MaxConnIdleTime = opts.ConnIdleTime
	cfg.MaxConnLifetime = opts.ConnLifetime

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, err
	}

	pingCtx, cancel := context.WithTimeout(ctx, opts.PingTimeout)
	defer cancel()
	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping: %w", err)
	}

	return pool, nil
}
