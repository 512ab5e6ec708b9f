package event

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/oskarlind/shopthelook/internal/domain"
	pkgkafka "github.com/oskarlind/shopthelook/pkg/kafka"
)

// Kafka topic constants for widget domain events.
const (
	TopicCartSubmitted = "storefront.widget.cart.submitted"
)

// Aggregate type constant.
const AggregateTypeCart = "cart"

// Source identifier for events originating from this service.
const SourceWidgetService = "shopthelook"

// CartSubmittedData is the payload for a cart.submitted event.
type CartSubmittedData struct {
	ProductHandle   string            `json:"product_handle"`
	Selection       domain.Selection  `json:"selection"`
	Lines           []domain.CartLine `json:"lines"`
	PromotionFired  bool              `json:"promotion_fired"`
	CompanionHandle string            `json:"companion_handle,omitempty"`
}

// Producer publishes widget domain events to Kafka.
type Producer struct {
	kafka  *pkgkafka.Producer
	logger *slog.Logger
}

// NewProducer creates a new event producer for the widget service.
func NewProducer(kafka *pkgkafka.Producer, logger *slog.Logger) *Producer {
	return &Producer{
		kafka:  kafka,
		logger: logger,
	}
}

// PublishCartSubmitted publishes a cart.submitted event after a successful
// cart mutation.
func (p *Producer) PublishCartSubmitted(ctx context.Context, data CartSubmittedData) error {
	event, err := pkgkafka.NewEvent(TopicCartSubmitted, data.ProductHandle, AggregateTypeCart, SourceWidgetService, data)
	if err != nil {
		return fmt.Errorf("create cart.submitted event: %w", err)
	}

	if err := p.kafka.Publish(ctx, TopicCartSubmitted, event); err != nil {
		return fmt.Errorf("publish cart.submitted event: %w", err)
	}

	p.logger.DebugContext(ctx, "published cart.submitted event",
		slog.String("product_handle", data.ProductHandle),
		slog.Bool("promotion_fired", data.PromotionFired),
	)

	return nil
}
