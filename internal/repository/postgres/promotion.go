package postgres

import (
	"context"
	"fmt"

	"github.com/oskarlind/shopthelook/internal/domain"
	"github.com/oskarlind/shopthelook/pkg/database"
)

// PromotionRuleRepository implements repository.PromotionRuleRepository using
// PostgreSQL. Rules are data, not code: merchandising can add or retire a
// bundle without a deploy.
type PromotionRuleRepository struct {
	db database.DBTX
}

// NewPromotionRuleRepository creates a new PostgreSQL-backed rule repository.
func NewPromotionRuleRepository(db database.DBTX) *PromotionRuleRepository {
	return &PromotionRuleRepository{db: db}
}

// ListActive returns all active promotion rules in creation order.
func (r *PromotionRuleRepository) ListActive(ctx context.Context) ([]domain.PromotionRule, error) {
	query := `
		SELECT id, name, required_color, required_size, companion_handle, quantity, active, created_at
		FROM promotion_rules
		WHERE active = TRUE
		ORDER BY created_at`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query promotion rules: %w", err)
	}
	defer rows.Close()

	var rules []domain.PromotionRule
	for rows.Next() {
		var rule domain.PromotionRule
		if err := rows.Scan(
			&rule.ID,
			&rule.Name,
			&rule.RequiredColor,
			&rule.RequiredSize,
			&rule.CompanionHandle,
			&rule.Quantity,
			&rule.Active,
			&rule.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan promotion rule: %w", err)
		}
		rules = append(rules, rule)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate promotion rules: %w", err)
	}

	return rules, nil
}
