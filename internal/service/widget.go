package service

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/oskarlind/shopthelook/internal/domain"
	"github.com/oskarlind/shopthelook/internal/event"
	"github.com/oskarlind/shopthelook/internal/repository"
	"github.com/oskarlind/shopthelook/internal/storefront"
	apperrors "github.com/oskarlind/shopthelook/pkg/errors"
)

// StorefrontAPI is the upstream catalog and cart surface the widget talks to.
// *storefront.Client satisfies it.
type StorefrontAPI interface {
	GetProduct(ctx context.Context, handle string) (*domain.Product, error)
	AddToCart(ctx context.Context, lines []domain.CartLine) (*storefront.CartReceipt, error)
	GetCart(ctx context.Context) (*storefront.CartSummary, error)
}

// EventPublisher publishes widget domain events. *event.Producer satisfies it.
type EventPublisher interface {
	PublishCartSubmitted(ctx context.Context, data event.CartSubmittedData) error
}

// Swatch pairs a color option value with its display hex.
type Swatch struct {
	Name string `json:"name"`
	Hex  string `json:"hex"`
}

// ProductView is the widget-ready projection of a product: the raw catalog
// data plus the resolved slot assignment, color swatches, and size choices.
type ProductView struct {
	Product    *domain.Product       `json:"product"`
	Assignment domain.SlotAssignment `json:"slot_assignment"`
	Swatches   []Swatch              `json:"swatches"`
	Sizes      []string              `json:"sizes"`
}

// AddToCartInput is a cart submission request from the widget frontend.
type AddToCartInput struct {
	Handle   string `json:"handle" validate:"required"`
	Color    string `json:"color" validate:"required"`
	Size     string `json:"size" validate:"required"`
	Quantity int    `json:"quantity" validate:"omitempty,gte=1,lte=100"`
}

// SubmissionResult reports the outcome of a successful cart submission.
// CartItemCount is nil when the best-effort cart refresh failed.
type SubmissionResult struct {
	VariantID       int64             `json:"variant_id"`
	Lines           []domain.CartLine `json:"lines"`
	PromotionFired  bool              `json:"promotion_fired"`
	CompanionHandle string            `json:"companion_handle,omitempty"`
	CartItemCount   *int              `json:"cart_item_count,omitempty"`
}

// WidgetService implements the business logic for the merchandising widget:
// loading classified product views, resolving variants, evaluating promotion
// rules, and submitting carts.
type WidgetService struct {
	scenes     repository.SceneRepository
	rules      repository.PromotionRuleRepository
	cache      repository.ProductCache
	storefront StorefrontAPI
	events     EventPublisher
	classifier domain.Classifier
	cacheTTL   time.Duration
	logger     *slog.Logger
}

// NewWidgetService creates a new widget service.
func NewWidgetService(
	scenes repository.SceneRepository,
	rules repository.PromotionRuleRepository,
	cache repository.ProductCache,
	storefrontAPI StorefrontAPI,
	events EventPublisher,
	classifier domain.Classifier,
	cacheTTL time.Duration,
	logger *slog.Logger,
) *WidgetService {
	return &WidgetService{
		scenes:     scenes,
		rules:      rules,
		cache:      cache,
		storefront: storefrontAPI,
		events:     events,
		classifier: classifier,
		cacheTTL:   cacheTTL,
		logger:     logger,
	}
}

// GetScene returns a scene with its hotspots for the widget to render.
func (s *WidgetService) GetScene(ctx context.Context, slug string) (*domain.Scene, error) {
	if slug == "" {
		return nil, apperrors.InvalidInput("scene slug is required")
	}
	return s.scenes.GetBySlug(ctx, slug)
}

// ListScenes returns all scenes without hotspots.
func (s *WidgetService) ListScenes(ctx context.Context) ([]domain.Scene, error) {
	return s.scenes.List(ctx)
}

// LoadProduct fetches a product, classifies its option slots, and builds the
// widget-ready view. Classification happens once per load and the result is
// carried in the view, so repeated selection changes never reclassify.
func (s *WidgetService) LoadProduct(ctx context.Context, handle string) (*ProductView, error) {
	handle = strings.TrimSpace(handle)
	if handle == "" {
		return nil, apperrors.InvalidInput("product handle is required")
	}

	product, err := s.fetchProduct(ctx, handle)
	if err != nil {
		return nil, err
	}

	return s.buildView(product), nil
}

// fetchProduct consults the cache before calling the storefront. Cache
// failures are non-fatal on both the read and write side.
func (s *WidgetService) fetchProduct(ctx context.Context, handle string) (*domain.Product, error) {
	if cached, err := s.cache.Get(ctx, handle); err != nil {
		s.logger.WarnContext(ctx, "product cache read failed",
			slog.String("handle", handle),
			slog.String("error", err.Error()),
		)
	} else if cached != nil {
		return cached, nil
	}

	product, err := s.storefront.GetProduct(ctx, handle)
	if err != nil {
		return nil, err
	}

	if err := s.cache.Set(ctx, product, s.cacheTTL); err != nil {
		s.logger.WarnContext(ctx, "product cache write failed",
			slog.String("handle", handle),
			slog.String("error", err.Error()),
		)
	}

	return product, nil
}

func (s *WidgetService) buildView(product *domain.Product) *ProductView {
	assignment := s.classifier.ClassifySlots(product)

	colors := domain.ListOptionValues(product.Variants, assignment.ColorSlot)
	swatches := make([]Swatch, len(colors))
	for i, name := range colors {
		swatches[i] = Swatch{Name: name, Hex: domain.ResolveDisplayColor(name)}
	}

	return &ProductView{
		Product:    product,
		Assignment: assignment,
		Swatches:   swatches,
		Sizes:      domain.ListOptionValues(product.Variants, assignment.SizeSlot),
	}
}

// AddToCart resolves the shopper's selection to a purchasable variant,
// evaluates promotion rules, and submits all resulting lines as one atomic
// cart mutation. The selection survives any failure so the shopper can retry.
func (s *WidgetService) AddToCart(ctx context.Context, input *AddToCartInput) (*SubmissionResult, error) {
	if input == nil {
		return nil, apperrors.InvalidInput("cart input is required")
	}

	handle := strings.TrimSpace(input.Handle)
	if handle == "" {
		return nil, apperrors.InvalidInput("product handle is required")
	}
	quantity := input.Quantity
	if quantity == 0 {
		quantity = 1
	}
	if quantity < 1 {
		return nil, apperrors.InvalidInput("quantity must be positive")
	}

	selection := domain.Selection{
		Color: strings.TrimSpace(input.Color),
		Size:  strings.TrimSpace(input.Size),
	}
	if !selection.Complete() {
		// No upstream call is made for an incomplete selection.
		return nil, apperrors.IncompleteSelection(selection.Missing())
	}

	product, err := s.fetchProduct(ctx, handle)
	if err != nil {
		return nil, err
	}
	assignment := s.classifier.ClassifySlots(product)

	variant, ok := domain.FindVariant(product.Variants, assignment, selection)
	if !ok {
		return nil, apperrors.VariantNotFound(selection.Color, selection.Size)
	}
	if !variant.Available {
		return nil, apperrors.VariantUnavailable(selection.Color, selection.Size)
	}

	lines := []domain.CartLine{{VariantID: variant.ID, Quantity: quantity}}

	companionHandle := ""
	for _, companion := range s.evaluatePromotions(ctx, selection) {
		lines = append(lines, companion.line)
		if companionHandle == "" {
			companionHandle = companion.handle
		}
	}

	if _, err := s.storefront.AddToCart(ctx, lines); err != nil {
		s.logger.ErrorContext(ctx, "cart submission failed",
			slog.String("handle", handle),
			slog.Int64("variant_id", variant.ID),
			slog.String("error", err.Error()),
		)
		return nil, apperrors.SubmissionFailed(err)
	}

	result := &SubmissionResult{
		VariantID:       variant.ID,
		Lines:           lines,
		PromotionFired:  companionHandle != "",
		CompanionHandle: companionHandle,
	}

	// Both side effects below are best-effort: failures are logged, never
	// surfaced, and never undo the submission.
	if summary, err := s.storefront.GetCart(ctx); err != nil {
		s.logger.WarnContext(ctx, "cart count refresh failed",
			slog.String("error", err.Error()),
		)
	} else {
		result.CartItemCount = &summary.ItemCount
	}

	if err := s.events.PublishCartSubmitted(ctx, event.CartSubmittedData{
		ProductHandle:   handle,
		Selection:       selection,
		Lines:           lines,
		PromotionFired:  result.PromotionFired,
		CompanionHandle: companionHandle,
	}); err != nil {
		s.logger.WarnContext(ctx, "cart.submitted event publish failed",
			slog.String("error", err.Error()),
		)
	}

	s.logger.InfoContext(ctx, "cart submitted",
		slog.String("handle", handle),
		slog.Int64("variant_id", variant.ID),
		slog.Int("lines", len(lines)),
		slog.Bool("promotion_fired", result.PromotionFired),
	)

	return result, nil
}

type companionLine struct {
	line   domain.CartLine
	handle string
}

// evaluatePromotions checks every active rule against the selection
// independently and resolves each firing rule's companion to its first
// declared variant. Every failure in here is silent: a broken promotion must
// never block the primary purchase.
func (s *WidgetService) evaluatePromotions(ctx context.Context, selection domain.Selection) []companionLine {
	rules, err := s.rules.ListActive(ctx)
	if err != nil {
		s.logger.WarnContext(ctx, "promotion rule lookup failed, skipping promotions",
			slog.String("error", err.Error()),
		)
		return nil
	}

	var companions []companionLine
	for _, rule := range rules {
		if !rule.Matches(selection) {
			continue
		}

		companion, err := s.storefront.GetProduct(ctx, rule.CompanionHandle)
		if err != nil {
			s.logger.WarnContext(ctx, "companion fetch failed, skipping promotion",
				slog.String("rule", rule.Name),
				slog.String("companion_handle", rule.CompanionHandle),
				slog.String("error", err.Error()),
			)
			continue
		}
		if len(companion.Variants) == 0 {
			s.logger.WarnContext(ctx, "companion has no variants, skipping promotion",
				slog.String("rule", rule.Name),
				slog.String("companion_handle", rule.CompanionHandle),
			)
			continue
		}

		quantity := rule.Quantity
		if quantity < 1 {
			quantity = 1
		}

		// Companion selection is always the first declared variant.
		companions = append(companions, companionLine{
			line:   domain.CartLine{VariantID: companion.Variants[0].ID, Quantity: quantity},
			handle: rule.CompanionHandle,
		})
	}

	return companions
}

// CartSummary reads the current cart state from the storefront.
func (s *WidgetService) CartSummary(ctx context.Context) (*storefront.CartSummary, error) {
	return s.storefront.GetCart(ctx)
}
