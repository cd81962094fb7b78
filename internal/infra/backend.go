package infra

import (
	"context"
	"errors"
	"fmt"
	"time"

	"rebowork/internal/config"
	"rebowork/internal/store"

	"github.com/rs/zerolog/log"
)

// Backend is the record store selected by STORE_DRIVER, plus what the
// server needs to report on and release it.
type Backend struct {
	store.Backend
	Driver string
	// Breaker guards remote drivers; nil for file and memory.
	Breaker *CircuitBreaker
	closeFn func(ctx context.Context) error
}

// Close releases the underlying connection, if any.
func (b *Backend) Close(ctx context.Context) error {
	if b.closeFn == nil {
		return nil
	}
	return b.closeFn(ctx)
}

// NewBackend connects the configured store backend.
func NewBackend(ctx context.Context, cfg *config.Config) (*Backend, error) {
	cbCfg := CircuitBreakerConfig{
		FailureThreshold: cfg.StoreBreakerFailures,
		OpenTimeout:      time.Duration(cfg.StoreBreakerOpenSeconds) * time.Second,
	}

	switch cfg.StoreDriver {
	case "memory":
		return &Backend{Backend: store.NewMemoryBackend(), Driver: cfg.StoreDriver}, nil

	case "file":
		fb, err := store.NewFileBackend(cfg.StoreDir)
		if err != nil {
			return nil, err
		}
		return &Backend{Backend: fb, Driver: cfg.StoreDriver}, nil

	case "redis":
		rdb, err := NewRedis(ctx, cfg.RedisURL)
		if err != nil {
			return nil, fmt.Errorf("infra: connect redis: %w", err)
		}
		return guarded(store.NewRedisBackend(rdb), cfg.StoreDriver, cbCfg, func(context.Context) error {
			return rdb.Close()
		}), nil

	case "postgres", "mysql":
		db, err := NewDatabase(cfg.StoreDriver, cfg.DatabaseURL)
		if err != nil {
			return nil, fmt.Errorf("infra: connect %s: %w", cfg.StoreDriver, err)
		}
		sb, err := store.NewSQLBackend(db)
		if err != nil {
			return nil, fmt.Errorf("infra: migrate collections table: %w", err)
		}
		return guarded(sb, cfg.StoreDriver, cbCfg, func(context.Context) error {
			sqlDB, err := db.DB()
			if err != nil {
				return err
			}
			return sqlDB.Close()
		}), nil

	case "mongo":
		mdb, err := NewMongo(ctx, cfg.MongoURI, cfg.MongoDBName)
		if err != nil {
			return nil, fmt.Errorf("infra: connect mongo: %w", err)
		}
		return guarded(store.NewMongoBackend(mdb), cfg.StoreDriver, cbCfg, func(ctx context.Context) error {
			return mdb.Client().Disconnect(ctx)
		}), nil
	}
	return nil, fmt.Errorf("infra: unknown store driver %q", cfg.StoreDriver)
}

// storeFailure reports whether err says something about the backend.
// A caller that went away tells us nothing about the store's health.
func storeFailure(err error) bool {
	return !errors.Is(err, context.Canceled)
}

func guarded(b store.Backend, driver string, cbCfg CircuitBreakerConfig, closeFn func(context.Context) error) *Backend {
	cbCfg.IsFailure = storeFailure
	cb := NewCircuitBreaker(cbCfg)
	return &Backend{
		Backend: &breakerBackend{next: b, cb: cb, driver: driver},
		Driver:  driver,
		Breaker: cb,
		closeFn: closeFn,
	}
}

// breakerBackend routes every call through a circuit breaker.
type breakerBackend struct {
	next   store.Backend
	cb     *CircuitBreaker
	driver string
}

func (b *breakerBackend) Read(ctx context.Context, name string) ([]byte, error) {
	var doc []byte
	err := b.cb.Execute(func() error {
		var err error
		doc, err = b.next.Read(ctx, name)
		return err
	})
	b.logFailure(err, "read", name)
	return doc, err
}

func (b *breakerBackend) Write(ctx context.Context, name string, doc []byte) error {
	err := b.cb.Execute(func() error { return b.next.Write(ctx, name, doc) })
	b.logFailure(err, "write", name)
	return err
}

func (b *breakerBackend) Ping(ctx context.Context) error {
	return b.cb.Execute(func() error { return b.next.Ping(ctx) })
}

func (b *breakerBackend) logFailure(err error, op, name string) {
	if err == nil {
		return
	}
	if !storeFailure(err) {
		log.Debug().Err(err).Str("driver", b.driver).Str("op", op).Str("collection", name).Msg("store backend call cancelled")
		return
	}
	log.Warn().
		Err(err).
		Str("driver", b.driver).
		Str("op", op).
		Str("collection", name).
		Str("breaker", b.cb.State().String()).
		Msg("store backend call failed")
}
