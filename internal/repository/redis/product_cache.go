package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/oskarlind/shopthelook/internal/domain"
)

const keyPrefix = "product:"

// ProductCache implements repository.ProductCache on Redis. Products are
// cached already normalized, so a cache hit skips both the storefront round
// trip and the trimming pass.
type ProductCache struct {
	client *redis.Client
}

// NewProductCache creates a Redis-backed product cache.
func NewProductCache(client *redis.Client) *ProductCache {
	return &ProductCache{client: client}
}

// Get returns the cached product for a handle, or nil on a miss.
func (c *ProductCache) Get(ctx context.Context, handle string) (*domain.Product, error) {
	data, err := c.client.Get(ctx, keyPrefix+handle).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("redis get product: %w", err)
	}

	var product domain.Product
	if err := json.Unmarshal(data, &product); err != nil {
		return nil, fmt.Errorf("unmarshal cached product: %w", err)
	}

	return &product, nil
}

// Set stores a product under its handle with the given TTL.
func (c *ProductCache) Set(ctx context.Context, product *domain.Product, ttl time.Duration) error {
	data, err := json.Marshal(product)
	if err != nil {
		return fmt.Errorf("marshal product: %w", err)
	}

	if err := c.client.Set(ctx, keyPrefix+product.Handle, data, ttl).Err(); err != nil {
		return fmt.Errorf("redis set product: %w", err)
	}

	return nil
}
