package transport

import (
	"net/http"

	"shopkeeper/internal/middleware"
	"shopkeeper/internal/service"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// ProductFields are the product attributes shared by both creation routes
type ProductFields struct {
	Name     string           `json:"name" validate:"required"`
	Price    *decimal.Decimal `json:"price" validate:"required"`
	Quantity int              `json:"quantity" validate:"gte=0,lte=2147483647"`
}

// CreateProductRequest is the payload for POST /api/products
type CreateProductRequest struct {
	ShopID int64 `json:"shopId" validate:"required,gt=0"`
	ProductFields
}

// ProductHandler handles HTTP requests for products
type ProductHandler struct {
	productService service.ProductService
	logger         *zap.Logger
}

// NewProductHandler creates a new ProductHandler
func NewProductHandler(productService service.ProductService, logger *zap.Logger) *ProductHandler {
	return &ProductHandler{
		productService: productService,
		logger:         logger,
	}
}

// RegisterRoutes registers all product routes
func (h *ProductHandler) RegisterRoutes(r chi.Router) {
	r.Post("/api/products", h.CreateProduct)
	r.Post("/api/products/shopId/{shopId}", h.CreateShopProduct)
	r.Get("/api/products/{productId}", h.GetProduct)
	r.Get("/api/shops/{shopId}/products", h.ListShopProducts)
}

// CreateProduct creates a product for the shop named in the body
func (h *ProductHandler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	var req CreateProductRequest
	if !decodeRequest(w, r, h.logger, &req) {
		return
	}

	h.create(w, r, req.ShopID, req.ProductFields)
}

// CreateShopProduct creates a product for the shop in the path
func (h *ProductHandler) CreateShopProduct(w http.ResponseWriter, r *http.Request) {
	shopID, err := idParam(r, "shopId")
	if err != nil {
		respondInvalidID(w, "shopId")
		return
	}

	var req ProductFields
	if !decodeRequest(w, r, h.logger, &req) {
		return
	}

	h.create(w, r, shopID, req)
}

func (h *ProductHandler) create(w http.ResponseWriter, r *http.Request, shopID int64, fields ProductFields) {
	product, err := h.productService.CreateProduct(r.Context(), shopID, fields.Name, *fields.Price, fields.Quantity)
	if err != nil {
		respondServiceError(w, h.logger, err, "create product")
		return
	}

	h.logger.Info("Product created",
		zap.Int64("product_id", product.ID),
		zap.Int64("shop_id", shopID),
	)
	middleware.RespondWithJSON(w, http.StatusCreated, product)
}

// GetProduct returns a product by id
func (h *ProductHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	productID, err := idParam(r, "productId")
	if err != nil {
		respondInvalidID(w, "productId")
		return
	}

	product, err := h.productService.GetProduct(r.Context(), productID)
	if err != nil {
		respondServiceError(w, h.logger, err, "get product")
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, product)
}

// ListShopProducts returns the products of a shop
func (h *ProductHandler) ListShopProducts(w http.ResponseWriter, r *http.Request) {
	shopID, err := idParam(r, "shopId")
	if err != nil {
		respondInvalidID(w, "shopId")
		return
	}

	products, err := h.productService.ListByShop(r.Context(), shopID)
	if err != nil {
		respondServiceError(w, h.logger, err, "list products")
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, products)
}
