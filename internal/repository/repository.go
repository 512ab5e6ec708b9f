package repository

import (
	"context"
	"time"

	"github.com/oskarlind/shopthelook/internal/domain"
)

// SceneRepository defines the read path for scenes and their hotspots.
type SceneRepository interface {
	// GetBySlug retrieves a scene with its hotspots ordered by position.
	GetBySlug(ctx context.Context, slug string) (*domain.Scene, error)

	// List returns all scenes without their hotspots, newest first.
	List(ctx context.Context) ([]domain.Scene, error)
}

// PromotionRuleRepository defines access to the promotion rule set.
type PromotionRuleRepository interface {
	// ListActive returns all active promotion rules in creation order.
	ListActive(ctx context.Context) ([]domain.PromotionRule, error)
}

// ProductCache caches normalized products fetched from the storefront.
type ProductCache interface {
	// Get returns the cached product for a handle, or nil on a miss.
	Get(ctx context.Context, handle string) (*domain.Product, error)

	// Set stores a product under its handle with the given TTL.
	Set(ctx context.Context, product *domain.Product, ttl time.Duration) error
}
