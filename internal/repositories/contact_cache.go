package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/sbilibin2017/paperplane-redeem/internal/logger"
	"github.com/sbilibin2017/paperplane-redeem/internal/models"
)

var (
	// ErrCacheMiss is returned when a contact is not cached.
	ErrCacheMiss = errors.New("contact not found in cache")
	// ErrStaleGeneration is returned by Set when the contact was invalidated
	// after its generation was read.
	ErrStaleGeneration = errors.New("contact invalidated since read")
)

// ContactCacheRepository caches single contacts in Redis.
type ContactCacheRepository struct {
	client *redis.Client
	exp    time.Duration
}

// NewContactCacheRepository creates a cache whose entries live for expiration.
func NewContactCacheRepository(client *redis.Client, expiration time.Duration) *ContactCacheRepository {
	return &ContactCacheRepository{
		client: client,
		exp:    expiration,
	}
}

func contactKey(id string) string {
	return "contact:" + id
}

func generationKey(id string) string {
	return "contact:" + id + ":gen"
}

// Get returns the cached contact or ErrCacheMiss.
func (r *ContactCacheRepository) Get(ctx context.Context, id string) (*models.Contact, error) {
	key := contactKey(id)

	val, err := r.client.Get(ctx, key).Bytes()
	logger.Log.Debugw("cache get", "key", key, "hit", err == nil, "error", err)
	if errors.Is(err, redis.Nil) {
		return nil, ErrCacheMiss
	}
	if err != nil {
		return nil, err
	}

	var contact models.Contact
	if err := json.Unmarshal(val, &contact); err != nil {
		return nil, err
	}
	return &contact, nil
}

// Generation returns the invalidation counter of id. Read it before loading
// the contact from the store and hand it to Set.
func (r *ContactCacheRepository) Generation(ctx context.Context, id string) (int64, error) {
	gen, err := r.client.Get(ctx, generationKey(id)).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	return gen, err
}

// Set caches the contact under its id unless Delete ran for it after
// generation was read, in which case it returns ErrStaleGeneration.
func (r *ContactCacheRepository) Set(ctx context.Context, contact *models.Contact, generation int64) error {
	id := contact.ID.Hex()
	key := contactKey(id)
	genKey := generationKey(id)

	data, err := json.Marshal(contact)
	if err != nil {
		return err
	}

	err = r.client.Watch(ctx, func(tx *redis.Tx) error {
		current, err := tx.Get(ctx, genKey).Int64()
		if err != nil && !errors.Is(err, redis.Nil) {
			return err
		}
		if current != generation {
			return ErrStaleGeneration
		}
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, data, r.exp)
			return nil
		})
		return err
	}, genKey)
	if errors.Is(err, redis.TxFailedErr) {
		err = ErrStaleGeneration
	}

	logger.Log.Debugw("cache set", "key", key, "generation", generation, "ttl", r.exp, "error", err)
	return err
}

// Delete drops the cached contact and bumps its generation so that reads
// started before the call cannot cache what they loaded.
func (r *ContactCacheRepository) Delete(ctx context.Context, id string) error {
	key := contactKey(id)
	genKey := generationKey(id)

	_, err := r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Incr(ctx, genKey)
		if r.exp > 0 {
			pipe.Expire(ctx, genKey, r.exp)
		}
		pipe.Del(ctx, key)
		return nil
	})
	logger.Log.Debugw("cache delete", "key", key, "error", err)
	return err
}
