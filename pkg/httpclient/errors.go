package httpclient

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	apperrors "github.com/oskarlind/shopthelook/pkg/errors"
)

// StorefrontErrorResponse mirrors the error body returned by Shopify-style
// storefront endpoints, e.g. {"status": 422, "message": "Cart Error",
// "description": "..."}.
type StorefrontErrorResponse struct {
	Status      int    `json:"status"`
	Message     string `json:"message"`
	Description string `json:"description"`
}

// ParseResponseError reads the body of a non-2xx storefront response and
// translates it into an AppError. The response body is fully consumed and
// closed. Callers should only invoke this for error status codes.
func ParseResponseError(resp *http.Response, operation string) error {
	defer func() { _ = resp.Body.Close() }()

	bodyBytes, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20)) // 1 MB limit
	if err != nil {
		return fmt.Errorf("storefront %s returned status %d (failed to read body: %w)", operation, resp.StatusCode, err)
	}

	var sfErr StorefrontErrorResponse
	if json.Unmarshal(bodyBytes, &sfErr) == nil && sfErr.Message != "" {
		return mapStorefrontError(resp.StatusCode, sfErr, operation)
	}

	return mapStorefrontError(resp.StatusCode, StorefrontErrorResponse{
		Status:  resp.StatusCode,
		Message: string(bodyBytes),
	}, operation)
}

// mapStorefrontError translates a storefront HTTP status into an AppError
// preserving the error semantics.
func mapStorefrontError(status int, sfErr StorefrontErrorResponse, operation string) error {
	detail := sfErr.Message
	if sfErr.Description != "" {
		detail = fmt.Sprintf("%s: %s", sfErr.Message, sfErr.Description)
	}

	switch {
	case status == http.StatusNotFound:
		return apperrors.NotFound("storefront "+operation, detail)
	case status == http.StatusBadRequest, status == http.StatusUnprocessableEntity:
		return apperrors.InvalidInput(fmt.Sprintf("storefront %s: %s", operation, detail))
	case status == http.StatusTooManyRequests, status == http.StatusServiceUnavailable:
		return apperrors.ServiceUnavailable(fmt.Sprintf("storefront %s is temporarily unavailable", operation))
	case status >= 500:
		return fmt.Errorf("storefront %s server error (%d): %s", operation, status, detail)
	default:
		return fmt.Errorf("storefront %s returned status %d: %s", operation, status, detail)
	}
}
