package transport

import (
	"net/http"

	"shopkeeper/internal/middleware"
	"shopkeeper/internal/service"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// CheckoutRequest represents the checkout payload
type CheckoutRequest struct {
	CustomerID int64 `json:"customerId" validate:"required,gt=0"`
	ShopID     int64 `json:"shopId" validate:"required,gt=0"`
}

// SaleHandler handles checkout and sale listing
type SaleHandler struct {
	saleService service.SaleService
	logger      *zap.Logger
}

// NewSaleHandler creates a new SaleHandler
func NewSaleHandler(saleService service.SaleService, logger *zap.Logger) *SaleHandler {
	return &SaleHandler{
		saleService: saleService,
		logger:      logger,
	}
}

// RegisterRoutes registers all sale routes
func (h *SaleHandler) RegisterRoutes(r chi.Router) {
	r.Post("/api/sells", h.Checkout)
	r.Get("/api/shops/{shopId}/sells", h.ListShopSales)
}

// Checkout converts the customer's cart into a sale and clears the cart
func (h *SaleHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	var req CheckoutRequest
	if !decodeRequest(w, r, h.logger, &req) {
		return
	}

	sale, err := h.saleService.Checkout(r.Context(), req.CustomerID, req.ShopID)
	if err != nil {
		respondServiceError(w, h.logger, err, "checkout")
		return
	}

	h.logger.Info("Checkout completed",
		zap.Int64("sell_id", sale.ID),
		zap.Int64("shop_id", sale.ShopID),
		zap.Int64("customer_id", sale.CustomerID),
		zap.String("total_amount", sale.TotalAmount.StringFixed(2)),
	)
	middleware.RespondWithJSON(w, http.StatusCreated, sale)
}

// ListShopSales returns the sales recorded for a shop
func (h *SaleHandler) ListShopSales(w http.ResponseWriter, r *http.Request) {
	shopID, err := idParam(r, "shopId")
	if err != nil {
		respondInvalidID(w, "shopId")
		return
	}

	sales, err := h.saleService.ListByShop(r.Context(), shopID)
	if err != nil {
		respondServiceError(w, h.logger, err, "list sales")
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, sales)
}
