package transport

import (
	"net/http"

	"shopkeeper/internal/middleware"
	"shopkeeper/internal/service"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// AddToCartRequest represents the add-to-cart payload
type AddToCartRequest struct {
	CustomerID int64 `json:"customerId" validate:"required,gt=0"`
	ProductID  int64 `json:"productId" validate:"required,gt=0"`
	Quantity   int   `json:"quantity" validate:"required,gt=0,lte=2147483647"`
}

// CartHandler handles HTTP requests for customer carts
type CartHandler struct {
	cartService service.CartService
	logger      *zap.Logger
}

// NewCartHandler creates a new CartHandler
func NewCartHandler(cartService service.CartService, logger *zap.Logger) *CartHandler {
	return &CartHandler{
		cartService: cartService,
		logger:      logger,
	}
}

// RegisterRoutes registers all cart routes
func (h *CartHandler) RegisterRoutes(r chi.Router) {
	r.Post("/api/cart", h.AddToCart)
	r.Post("/api/carts", h.AddToCart)
	r.Get("/api/customers/{customerId}/cart", h.GetCart)
}

// AddToCart appends a line to the customer's cart
func (h *CartHandler) AddToCart(w http.ResponseWriter, r *http.Request) {
	var req AddToCartRequest
	if !decodeRequest(w, r, h.logger, &req) {
		return
	}

	item, err := h.cartService.AddToCart(r.Context(), req.CustomerID, req.ProductID, req.Quantity)
	if err != nil {
		respondServiceError(w, h.logger, err, "add to cart")
		return
	}

	h.logger.Info("Cart item added",
		zap.Int64("cart_id", item.ID),
		zap.Int64("customer_id", item.CustomerID),
		zap.String("subtotal", item.Subtotal.StringFixed(2)),
	)
	middleware.RespondWithJSON(w, http.StatusCreated, item)
}

// GetCart lists the customer's cart lines with product names
func (h *CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	customerID, err := idParam(r, "customerId")
	if err != nil {
		respondInvalidID(w, "customerId")
		return
	}

	lines, err := h.cartService.GetCart(r.Context(), customerID)
	if err != nil {
		respondServiceError(w, h.logger, err, "get cart")
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, lines)
}
