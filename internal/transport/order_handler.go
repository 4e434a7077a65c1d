package transport

import (
	"net/http"

	"shopkeeper/internal/middleware"
	"shopkeeper/internal/service"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// CreateOrderRequest represents the order payload
type CreateOrderRequest struct {
	ShopID    int64 `json:"shopId" validate:"required,gt=0"`
	ProductID int64 `json:"productId" validate:"required,gt=0"`
	Quantity  int   `json:"quantity" validate:"required,gt=0,lte=2147483647"`
}

// OrderHandler handles HTTP requests for orders
type OrderHandler struct {
	orderService service.OrderService
	logger       *zap.Logger
}

// NewOrderHandler creates a new OrderHandler
func NewOrderHandler(orderService service.OrderService, logger *zap.Logger) *OrderHandler {
	return &OrderHandler{
		orderService: orderService,
		logger:       logger,
	}
}

// RegisterRoutes registers all order routes
func (h *OrderHandler) RegisterRoutes(r chi.Router) {
	r.Post("/api/orders", h.CreateOrder)
	r.Get("/api/shops/{shopId}/orders", h.ListShopOrders)
}

// CreateOrder records a pending order priced from the current product price
func (h *OrderHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	var req CreateOrderRequest
	if !decodeRequest(w, r, h.logger, &req) {
		return
	}

	order, err := h.orderService.CreateOrder(r.Context(), req.ShopID, req.ProductID, req.Quantity)
	if err != nil {
		respondServiceError(w, h.logger, err, "create order")
		return
	}

	h.logger.Info("Order created",
		zap.Int64("order_id", order.ID),
		zap.Int64("shop_id", order.ShopID),
	)
	middleware.RespondWithJSON(w, http.StatusCreated, order)
}

// ListShopOrders returns a shop's orders, optionally filtered by ?status=
func (h *OrderHandler) ListShopOrders(w http.ResponseWriter, r *http.Request) {
	shopID, err := idParam(r, "shopId")
	if err != nil {
		respondInvalidID(w, "shopId")
		return
	}

	orders, err := h.orderService.ListByShop(r.Context(), shopID, r.URL.Query().Get("status"))
	if err != nil {
		respondServiceError(w, h.logger, err, "list orders")
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, orders)
}
