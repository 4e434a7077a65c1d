package transport

import (
	"mime"
	"net/http"

	"shopkeeper/internal/domain"
	"shopkeeper/internal/middleware"
	"shopkeeper/internal/service"
	"shopkeeper/internal/storage"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// CreateShopRequest represents the shop creation payload
type CreateShopRequest struct {
	ShopName  string `json:"shopName" validate:"required"`
	Location  string `json:"location"`
	Type      string `json:"type"`
	OwnerID   string `json:"ownerId" validate:"required"`
	ShopImage string `json:"shopImage"`
}

// CreateShopResponse carries the new shop and its owner link
type CreateShopResponse struct {
	Shop  *domain.Shop      `json:"shop"`
	Owner *domain.ShopOwner `json:"owner"`
}

// AddShopCustomerRequest links an existing customer to a shop
type AddShopCustomerRequest struct {
	CustomerID int64 `json:"customerId" validate:"required,gt=0"`
}

// ShopHandler handles HTTP requests for shops
type ShopHandler struct {
	shopService service.ShopService
	images      *storage.ImageStore
	logger      *zap.Logger
}

// NewShopHandler creates a new ShopHandler
func NewShopHandler(shopService service.ShopService, images *storage.ImageStore, logger *zap.Logger) *ShopHandler {
	return &ShopHandler{
		shopService: shopService,
		images:      images,
		logger:      logger,
	}
}

// RegisterRoutes registers all shop routes
func (h *ShopHandler) RegisterRoutes(r chi.Router) {
	r.Post("/api/shops", h.CreateShop)
	r.Get("/api/shops/details/{shopId}", h.GetShopDetails)
	r.Get("/api/shops/{ownerId}", h.GetShopByOwner)
	r.Post("/api/shops/{shopId}/customers", h.AddCustomer)
	r.Get("/api/shops/{shopId}/customers", h.ListCustomers)
}

// CreateShop accepts JSON or a multipart form with an optional "image" file
func (h *ShopHandler) CreateShop(w http.ResponseWriter, r *http.Request) {
	var req CreateShopRequest

	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType == "multipart/form-data" {
		if err := parseImageForm(w, r, h.images); err != nil {
			respondServiceError(w, h.logger, err, "create shop")
			return
		}

		req = CreateShopRequest{
			ShopName:  r.FormValue("shopName"),
			Location:  r.FormValue("location"),
			Type:      r.FormValue("type"),
			OwnerID:   r.FormValue("ownerId"),
			ShopImage: r.FormValue("shopImage"),
		}
		if err := middleware.ValidateRequest(&req); err != nil {
			middleware.RespondWithDecodeError(w, err)
			return
		}

		stored, err := saveFormImage(r, h.images, false)
		if err != nil {
			respondServiceError(w, h.logger, err, "create shop")
			return
		}
		if stored != nil {
			req.ShopImage = stored.URL
		}
	} else if !decodeRequest(w, r, h.logger, &req) {
		return
	}

	shop, owner, err := h.shopService.CreateShop(r.Context(), service.CreateShopInput{
		Name:     req.ShopName,
		Location: req.Location,
		Type:     req.Type,
		Image:    req.ShopImage,
		OwnerID:  req.OwnerID,
	})
	if err != nil {
		respondServiceError(w, h.logger, err, "create shop")
		return
	}

	h.logger.Info("Shop created",
		zap.Int64("shop_id", shop.ID),
		zap.String("owner_id", shop.OwnerID),
	)
	middleware.RespondWithJSON(w, http.StatusCreated, CreateShopResponse{Shop: shop, Owner: owner})
}

// GetShopByOwner returns the first shop owned by a user
func (h *ShopHandler) GetShopByOwner(w http.ResponseWriter, r *http.Request) {
	shop, err := h.shopService.GetShopByOwner(r.Context(), chi.URLParam(r, "ownerId"))
	if err != nil {
		respondServiceError(w, h.logger, err, "get shop")
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, shop)
}

// GetShopDetails returns a shop with its stats and products
func (h *ShopHandler) GetShopDetails(w http.ResponseWriter, r *http.Request) {
	shopID, err := idParam(r, "shopId")
	if err != nil {
		respondInvalidID(w, "shopId")
		return
	}

	details, err := h.shopService.GetShopDetails(r.Context(), shopID)
	if err != nil {
		respondServiceError(w, h.logger, err, "get shop details")
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, details)
}

// AddCustomer links a customer to the shop
func (h *ShopHandler) AddCustomer(w http.ResponseWriter, r *http.Request) {
	shopID, err := idParam(r, "shopId")
	if err != nil {
		respondInvalidID(w, "shopId")
		return
	}

	var req AddShopCustomerRequest
	if !decodeRequest(w, r, h.logger, &req) {
		return
	}

	link, err := h.shopService.AddCustomer(r.Context(), shopID, req.CustomerID)
	if err != nil {
		respondServiceError(w, h.logger, err, "add shop customer")
		return
	}

	middleware.RespondWithJSON(w, http.StatusCreated, link)
}

// ListCustomers returns the customers linked to the shop
func (h *ShopHandler) ListCustomers(w http.ResponseWriter, r *http.Request) {
	shopID, err := idParam(r, "shopId")
	if err != nil {
		respondInvalidID(w, "shopId")
		return
	}

	customers, err := h.shopService.ListCustomers(r.Context(), shopID)
	if err != nil {
		respondServiceError(w, h.logger, err, "list shop customers")
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, customers)
}
