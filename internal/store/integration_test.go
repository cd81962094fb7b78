//go:build integration

package store

// Runs the remote backends against real containers.
// Run with: go test -tags integration ./internal/store/... -v

import (
	"context"
	"testing"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcPostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	tcRedis "github.com/testcontainers/testcontainers-go/modules/redis"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func exerciseBackend(t *testing.T, b Backend) {
	t.Helper()
	ctx := context.Background()
	require.NoError(t, b.Ping(ctx))

	c := NewCollection[item](b, Workers)
	items, err := c.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, items)

	require.NoError(t, c.Save(ctx, []item{{ID: "w1"}}))
	require.NoError(t, c.Update(ctx, func(items []item) ([]item, error) {
		return append(items, item{ID: "w2"}), nil
	}))

	items, err = c.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, []item{{ID: "w1"}, {ID: "w2"}}, items)
}

func TestRedisBackend_Integration(t *testing.T) {
	ctx := context.Background()
	rdC, err := tcRedis.RunContainer(ctx, testcontainers.WithImage("redis:7-alpine"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = rdC.Terminate(ctx) })

	url, err := rdC.ConnectionString(ctx)
	require.NoError(t, err)
	opts, err := redis.ParseURL(url)
	require.NoError(t, err)

	exerciseBackend(t, NewRedisBackend(redis.NewClient(opts)))
}

func TestSQLBackend_Integration(t *testing.T) {
	ctx := context.Background()
	pgC, err := tcPostgres.RunContainer(ctx,
		testcontainers.WithImage("postgres:15-alpine"),
		tcPostgres.WithDatabase("rebowork_test"),
		tcPostgres.WithUsername("rebowork"),
		tcPostgres.WithPassword("rebowork"),
		tcPostgres.BasicWaitStrategies(),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = pgC.Terminate(ctx) })

	dsn, err := pgC.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	b, err := NewSQLBackend(db)
	require.NoError(t, err)
	exerciseBackend(t, b)
}
