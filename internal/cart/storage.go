// Package cart holds the guest's intended booking: an ordered list of room
// snapshots sharing a single stay window, kept durable across sessions.
package cart

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"
)

// ErrNoRecord is returned by Storage.Load when no cart has ever been
// persisted under the key.
var ErrNoRecord = errors.New("cart: no stored record")

// Storage persists the serialized cart record under a fixed per-guest key.
// The store never touches the record except through this interface.
type Storage interface {
	Load(ctx context.Context, key string) ([]byte, error)
	Save(ctx context.Context, key string, data []byte) error
}

// storageKeyPrefix namespaces cart records in Redis. The suffix is the guest
// user id, so each guest owns exactly one durable cart.
const storageKeyPrefix = "bungalow-cart:"

// Key returns the storage key for a guest's cart.
func Key(userID string) string { return storageKeyPrefix + userID }

// RedisStorage keeps cart records in Redis without expiry: a cart survives
// until the guest clears it or checks out.
type RedisStorage struct {
	rdb *redis.Client
}

// NewRedisStorage returns a RedisStorage bound to the given client.
func NewRedisStorage(rdb *redis.Client) *RedisStorage { return &RedisStorage{rdb: rdb} }

func (s *RedisStorage) Load(ctx context.Context, key string) ([]byte, error) {
	b, err := s.rdb.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNoRecord
	}
	if err != nil {
		return nil, err
	}
	return b, nil
}

func (s *RedisStorage) Save(ctx context.Context, key string, data []byte) error {
	return s.rdb.Set(ctx, key, data, 0).Err()
}
