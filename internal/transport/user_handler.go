package transport

import (
	"net/http"

	"shopkeeper/internal/middleware"
	"shopkeeper/internal/service"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// CreateUserRequest represents the user registration payload.
// The user id is issued by the external identity provider.
type CreateUserRequest struct {
	UserID   string `json:"userId" validate:"required"`
	Username string `json:"username"`
	Image    string `json:"image"`
}

// UserHandler handles HTTP requests for user operations
type UserHandler struct {
	userService service.UserService
	shopService service.ShopService
	logger      *zap.Logger
}

// NewUserHandler creates a new UserHandler
func NewUserHandler(userService service.UserService, shopService service.ShopService, logger *zap.Logger) *UserHandler {
	return &UserHandler{
		userService: userService,
		shopService: shopService,
		logger:      logger,
	}
}

// RegisterRoutes registers all user routes
func (h *UserHandler) RegisterRoutes(r chi.Router) {
	r.Post("/api/users", h.CreateUser)
	r.Get("/api/users/{userId}", h.GetUser)
	r.Get("/api/users/{userId}/shops", h.ListShops)
}

// CreateUser handles user registration
func (h *UserHandler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var req CreateUserRequest
	if !decodeRequest(w, r, h.logger, &req) {
		return
	}

	user, err := h.userService.Register(r.Context(), req.UserID, req.Username, req.Image)
	if err != nil {
		respondServiceError(w, h.logger, err, "create user")
		return
	}

	h.logger.Info("User created", zap.String("user_id", user.ID))
	middleware.RespondWithJSON(w, http.StatusCreated, user)
}

// GetUser returns a user by id
func (h *UserHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	user, err := h.userService.GetUserByID(r.Context(), chi.URLParam(r, "userId"))
	if err != nil {
		respondServiceError(w, h.logger, err, "get user")
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, user)
}

// ListShops returns every shop owned by the user
func (h *UserHandler) ListShops(w http.ResponseWriter, r *http.Request) {
	shops, err := h.shopService.ListShopsByOwner(r.Context(), chi.URLParam(r, "userId"))
	if err != nil {
		respondServiceError(w, h.logger, err, "list shops")
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, shops)
}
