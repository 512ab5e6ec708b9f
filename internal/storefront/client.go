package storefront

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/oskarlind/shopthelook/internal/domain"
	apperrors "github.com/oskarlind/shopthelook/pkg/errors"
	"github.com/oskarlind/shopthelook/pkg/httpclient"
)

// HTTPDoer is the interface for executing HTTP requests. Both
// httpclient.Client and httpclient.CircuitBreakerClient satisfy this.
type HTTPDoer interface {
	Do(ctx context.Context, req *http.Request) (*http.Response, error)
}

// CartSummary is the storefront's view of the current cart.
type CartSummary struct {
	Token      string            `json:"token,omitempty"`
	ItemCount  int               `json:"item_count"`
	TotalPrice int64             `json:"total_price"`
	Items      []CartItemSummary `json:"items,omitempty"`
}

// CartItemSummary is one line of the storefront cart.
type CartItemSummary struct {
	VariantID int64  `json:"id"`
	Quantity  int    `json:"quantity"`
	Title     string `json:"title,omitempty"`
	Price     int64  `json:"price,omitempty"`
}

// CartReceipt is the storefront's response to a successful cart mutation.
type CartReceipt struct {
	Items []CartItemSummary `json:"items"`
}

// Client talks to the Shopify-style storefront AJAX endpoints: product
// lookup, cart mutation, and cart read.
type Client struct {
	http    HTTPDoer
	baseURL string
	logger  *slog.Logger
}

// NewClient creates a storefront client. The base URL must not have a
// trailing slash.
func NewClient(doer HTTPDoer, baseURL string, logger *slog.Logger) *Client {
	return &Client{
		http:    doer,
		baseURL: strings.TrimRight(baseURL, "/"),
		logger:  logger,
	}
}

// GetProduct fetches a product by handle and normalizes its option values.
func (c *Client) GetProduct(ctx context.Context, handle string) (*domain.Product, error) {
	endpoint := fmt.Sprintf("%s/products/%s.js", c.baseURL, url.PathEscape(handle))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("create product request: %w", err)
	}

	resp, err := c.http.Do(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("fetch product %s: %w", handle, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, apperrors.ProductNotFound(handle)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, httpclient.ParseResponseError(resp, "product lookup")
	}

	var product domain.Product
	if err := json.NewDecoder(resp.Body).Decode(&product); err != nil {
		return nil, fmt.Errorf("decode product %s: %w", handle, err)
	}
	product.Normalize()

	return &product, nil
}

// AddToCart submits all lines as one atomic cart mutation.
func (c *Client) AddToCart(ctx context.Context, lines []domain.CartLine) (*CartReceipt, error) {
	if len(lines) == 0 {
		return nil, apperrors.InvalidInput("cart submission requires at least one line")
	}

	body, err := json.Marshal(struct {
		Items []domain.CartLine `json:"items"`
	}{Items: lines})
	if err != nil {
		return nil, fmt.Errorf("marshal cart request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/cart/add.js", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("create cart request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("call cart endpoint: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return nil, httpclient.ParseResponseError(resp, "cart mutation")
	}

	var receipt CartReceipt
	if err := json.NewDecoder(resp.Body).Decode(&receipt); err != nil {
		return nil, fmt.Errorf("decode cart receipt: %w", err)
	}

	c.logger.DebugContext(ctx, "cart mutation accepted",
		slog.Int("lines", len(lines)),
	)

	return &receipt, nil
}

// GetCart reads the current cart summary, including the total item count.
func (c *Client) GetCart(ctx context.Context) (*CartSummary, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/cart.js", http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("create cart summary request: %w", err)
	}

	resp, err := c.http.Do(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("fetch cart summary: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, httpclient.ParseResponseError(resp, "cart read")
	}

	var summary CartSummary
	if err := json.NewDecoder(resp.Body).Decode(&summary); err != nil {
		return nil, fmt.Errorf("decode cart summary: %w", err)
	}

	return &summary, nil
}
