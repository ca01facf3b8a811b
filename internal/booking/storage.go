package booking

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	redisclient "github.com/Japhetmondragon/Mondragonpartyrental.com/pkg/redis"
)

// Storage persists carts between requests.
type Storage interface {
	Load(ctx context.Context, token string) (*Cart, error)
	Save(ctx context.Context, token string, cart *Cart) error
	Delete(ctx context.Context, token string) error
}

type cartStore interface {
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	Get(ctx context.Context, key string) (string, error)
	Del(ctx context.Context, keys ...string) error
	CartKey(token string) string
}

// RedisStorage keeps carts in Redis with a sliding TTL. Every write
// refreshes the expiry, so active carts survive and abandoned ones age out.
type RedisStorage struct {
	store cartStore
	ttl   time.Duration
}

// NewRedisStorage constructs cart storage on top of the shared Redis client.
func NewRedisStorage(client *redisclient.Client, ttl time.Duration) (*RedisStorage, error) {
	if client == nil {
		return nil, fmt.Errorf("redis client is required")
	}
	if ttl <= 0 {
		return nil, fmt.Errorf("cart ttl must be positive")
	}
	return &RedisStorage{store: client, ttl: ttl}, nil
}

// Load fetches the cart. A missing key or a payload that fails to decode
// both come back as an empty cart; a corrupt blob is not worth a 500.
func (s *RedisStorage) Load(ctx context.Context, token string) (*Cart, error) {
	raw, err := s.store.Get(ctx, s.store.CartKey(token))
	if err != nil {
		if errors.Is(err, redisclient.ErrNotFound) {
			return NewCart(), nil
		}
		return nil, err
	}

	var cart Cart
	if err := json.Unmarshal([]byte(raw), &cart); err != nil {
		return NewCart(), nil
	}
	if cart.Items == nil {
		cart.Items = NewCart().Items
	}
	return &cart, nil
}

// Save serializes the cart and refreshes its TTL.
func (s *RedisStorage) Save(ctx context.Context, token string, cart *Cart) error {
	cart.UpdatedAt = time.Now().UTC()
	payload, err := json.Marshal(cart)
	if err != nil {
		return fmt.Errorf("encoding cart: %w", err)
	}
	return s.store.Set(ctx, s.store.CartKey(token), payload, s.ttl)
}

// Delete removes the cart entirely.
func (s *RedisStorage) Delete(ctx context.Context, token string) error {
	return s.store.Del(ctx, s.store.CartKey(token))
}
