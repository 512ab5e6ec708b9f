package domain

import (
	"time"

	"github.com/google/uuid"
)

// PromotionRule bundles a companion product into the cart when the shopper's
// selection matches the required color and size exactly. Matching is
// case-sensitive on trimmed values; "black" does not satisfy a rule requiring
// "Black".
type PromotionRule struct {
	ID              uuid.UUID `json:"id"`
	Name            string    `json:"name"`
	RequiredColor   string    `json:"required_color"`
	RequiredSize    string    `json:"required_size"`
	CompanionHandle string    `json:"companion_handle"`
	Quantity        int       `json:"quantity"`
	Active          bool      `json:"active"`
	CreatedAt       time.Time `json:"created_at"`
}

// Matches reports whether the selection satisfies this rule.
func (r PromotionRule) Matches(selection Selection) bool {
	return r.Active &&
		selection.Color == r.RequiredColor &&
		selection.Size == r.RequiredSize
}
