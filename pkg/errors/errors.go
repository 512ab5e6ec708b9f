package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// Standard sentinel errors for common cases.
var (
	ErrNotFound            = errors.New("resource not found")
	ErrInvalidInput        = errors.New("invalid input")
	ErrVariantNotFound     = errors.New("variant not found")
	ErrVariantUnavailable  = errors.New("variant unavailable")
	ErrSubmissionFailed    = errors.New("cart submission failed")
	ErrServiceUnavail      = errors.New("service unavailable")
	ErrInternal            = errors.New("internal error")
)

// AppError represents a structured application error with HTTP status mapping.
type AppError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Status  int    `json:"-"`
	Err     error  `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NotFound creates a 404 error.
func NotFound(resource, id string) *AppError {
	return &AppError{
		Code:    "NOT_FOUND",
		Message: fmt.Sprintf("%s %q not found", resource, id),
		Status:  http.StatusNotFound,
		Err:     ErrNotFound,
	}
}

// ProductNotFound creates a 404 error for a storefront product lookup miss.
func ProductNotFound(handle string) *AppError {
	return &AppError{
		Code:    "PRODUCT_NOT_FOUND",
		Message: fmt.Sprintf("product %q is not available", handle),
		Status:  http.StatusNotFound,
		Err:     ErrNotFound,
	}
}

// InvalidInput creates a 400 error.
func InvalidInput(message string) *AppError {
	return &AppError{
		Code:    "INVALID_INPUT",
		Message: message,
		Status:  http.StatusBadRequest,
		Err:     ErrInvalidInput,
	}
}

// IncompleteSelection creates a 400 error for a submission attempted before
// both color and size are chosen. No upstream call is made in this case.
func IncompleteSelection(missing string) *AppError {
	return &AppError{
		Code:    "INCOMPLETE_SELECTION",
		Message: fmt.Sprintf("select a %s before adding to cart", missing),
		Status:  http.StatusBadRequest,
		Err:     ErrInvalidInput,
	}
}

// VariantNotFound creates a 404 error for a selection that matches no
// catalog variant. Distinct from VariantUnavailable: the combination does
// not exist at all.
func VariantNotFound(color, size string) *AppError {
	return &AppError{
		Code:    "VARIANT_NOT_FOUND",
		Message: fmt.Sprintf("the combination %s / %s is not available", color, size),
		Status:  http.StatusNotFound,
		Err:     ErrVariantNotFound,
	}
}

// VariantUnavailable creates a 409 error for a variant that exists in the
// catalog but is currently out of stock.
func VariantUnavailable(color, size string) *AppError {
	return &AppError{
		Code:    "VARIANT_UNAVAILABLE",
		Message: fmt.Sprintf("the combination %s / %s is out of stock", color, size),
		Status:  http.StatusConflict,
		Err:     ErrVariantUnavailable,
	}
}

// SubmissionFailed creates a 502 error for a failed cart mutation upstream.
// The shopper's selection is preserved so the submission can be retried.
func SubmissionFailed(err error) *AppError {
	return &AppError{
		Code:    "CART_SUBMISSION_FAILED",
		Message: "the item could not be added to the cart, please try again",
		Status:  http.StatusBadGateway,
		Err:     errors.Join(ErrSubmissionFailed, err),
	}
}

// ServiceUnavailable creates a 503 error.
func ServiceUnavailable(message string) *AppError {
	return &AppError{
		Code:    "SERVICE_UNAVAILABLE",
		Message: message,
		Status:  http.StatusServiceUnavailable,
		Err:     ErrServiceUnavail,
	}
}

// Internal creates a 500 error.
func Internal(err error) *AppError {
	return &AppError{
		Code:    "INTERNAL_ERROR",
		Message: "an internal error occurred",
		Status:  http.StatusInternalServerError,
		Err:     err,
	}
}

// Wrap wraps an error with additional context.
func Wrap(err error, message string) error {
	return fmt.Errorf("%s: %w", message, err)
}

// HTTPStatus returns the HTTP status code for the given error.
func HTTPStatus(err error) int {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Status
	}

	switch {
	case errors.Is(err, ErrNotFound), errors.Is(err, ErrVariantNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, ErrVariantUnavailable):
		return http.StatusConflict
	case errors.Is(err, ErrSubmissionFailed):
		return http.StatusBadGateway
	case errors.Is(err, ErrServiceUnavail):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
