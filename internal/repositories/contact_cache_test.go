package repositories

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/sbilibin2017/paperplane-redeem/internal/models"
)

func TestContactCacheRepository(t *testing.T) {
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        "redis:7.0-alpine",
		ExposedPorts: []string{"6379/tcp"},
		WaitingFor:   wait.ForListeningPort("6379/tcp"),
	}
	redisC, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)
	defer redisC.Terminate(ctx)

	host, err := redisC.Host(ctx)
	require.NoError(t, err)
	port, err := redisC.MappedPort(ctx, "6379")
	require.NoError(t, err)

	rdb := redis.NewClient(&redis.Options{
		Addr: fmt.Sprintf("%s:%s", host, port.Port()),
	})
	defer rdb.Close()
	require.NoError(t, rdb.Ping(ctx).Err())

	repo := NewContactCacheRepository(rdb, 2*time.Second)

	newContact := func() *models.Contact {
		return &models.Contact{
			ID:        primitive.NewObjectID(),
			UserEmail: "cache@example.com",
			FullName:  strPtr("Cached"),
			CreatedAt: time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC),
			UpdatedAt: time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC),
		}
	}

	t.Run("set and get", func(t *testing.T) {
		c := newContact()
		require.NoError(t, repo.Set(ctx, c, 0))

		got, err := repo.Get(ctx, c.ID.Hex())
		require.NoError(t, err)
		assert.Equal(t, c, got)
	})

	t.Run("miss", func(t *testing.T) {
		_, err := repo.Get(ctx, primitive.NewObjectID().Hex())
		assert.ErrorIs(t, err, ErrCacheMiss)
	})

	t.Run("delete", func(t *testing.T) {
		c := newContact()
		require.NoError(t, repo.Set(ctx, c, 0))
		require.NoError(t, repo.Delete(ctx, c.ID.Hex()))

		_, err := repo.Get(ctx, c.ID.Hex())
		assert.ErrorIs(t, err, ErrCacheMiss)

		gen, err := repo.Generation(ctx, c.ID.Hex())
		require.NoError(t, err)
		assert.Equal(t, int64(1), gen)
	})

	t.Run("write of a read that raced an invalidation is refused", func(t *testing.T) {
		c := newContact()
		id := c.ID.Hex()

		gen, err := repo.Generation(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, int64(0), gen)

		// An update lands between the store read and the cache write.
		require.NoError(t, repo.Delete(ctx, id))

		assert.ErrorIs(t, repo.Set(ctx, c, gen), ErrStaleGeneration)
		_, err = repo.Get(ctx, id)
		assert.ErrorIs(t, err, ErrCacheMiss)

		gen, err = repo.Generation(ctx, id)
		require.NoError(t, err)
		require.NoError(t, repo.Set(ctx, c, gen))
		_, err = repo.Get(ctx, id)
		assert.NoError(t, err)
	})

	t.Run("entries expire", func(t *testing.T) {
		c := newContact()
		require.NoError(t, repo.Set(ctx, c, 0))

		time.Sleep(3 * time.Second)

		_, err := repo.Get(ctx, c.ID.Hex())
		assert.ErrorIs(t, err, ErrCacheMiss)
	})
}
