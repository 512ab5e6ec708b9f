package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/oskarlind/shopthelook/internal/service"
	"github.com/oskarlind/shopthelook/pkg/httputil"
	"github.com/oskarlind/shopthelook/pkg/validator"
)

// WidgetHandler handles HTTP requests for the widget API.
type WidgetHandler struct {
	service *service.WidgetService
	logger  *slog.Logger
}

// NewWidgetHandler creates a new widget HTTP handler.
func NewWidgetHandler(svc *service.WidgetService, logger *slog.Logger) *WidgetHandler {
	return &WidgetHandler{
		service: svc,
		logger:  logger,
	}
}

// --- Request DTOs ---

// AddToCartRequest is the JSON request body for a cart submission. Color and
// size are intentionally not validated here: a missing one maps to the
// INCOMPLETE_SELECTION error in the service layer, not a generic 400.
type AddToCartRequest struct {
	Handle   string `json:"handle" validate:"required,max=255"`
	Color    string `json:"color"`
	Size     string `json:"size"`
	Quantity int    `json:"quantity" validate:"omitempty,gte=1,lte=100"`
}

// --- Handlers ---

// ListScenes handles GET /api/v1/scenes
func (h *WidgetHandler) ListScenes(w http.ResponseWriter, r *http.Request) {
	scenes, err := h.service.ListScenes(r.Context())
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: scenes})
}

// GetScene handles GET /api/v1/scenes/{slug}
func (h *WidgetHandler) GetScene(w http.ResponseWriter, r *http.Request) {
	scene, err := h.service.GetScene(r.Context(), chi.URLParam(r, "slug"))
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: scene})
}

// GetProduct handles GET /api/v1/products/{handle}
func (h *WidgetHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	view, err := h.service.LoadProduct(r.Context(), chi.URLParam(r, "handle"))
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: view})
}

// AddToCart handles POST /api/v1/cart/items
func (h *WidgetHandler) AddToCart(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, 1<<20)

	var req AddToCartRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.WriteJSON(w, http.StatusBadRequest, httputil.Response{
			Error: &httputil.ErrorResponse{Code: "INVALID_INPUT", Message: "invalid request body: " + err.Error()},
		})
		return
	}

	if err := validator.Validate(req); err != nil {
		httputil.WriteValidationError(w, err)
		return
	}

	result, err := h.service.AddToCart(r.Context(), &service.AddToCartInput{
		Handle:   req.Handle,
		Color:    req.Color,
		Size:     req.Size,
		Quantity: req.Quantity,
	})
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusCreated, httputil.Response{Data: result})
}

// GetCart handles GET /api/v1/cart
func (h *WidgetHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	summary, err := h.service.CartSummary(r.Context())
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: summary})
}
