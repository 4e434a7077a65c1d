package transport

import (
	"net/http"

	"shopkeeper/internal/middleware"
	"shopkeeper/internal/service"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// CreateCustomerRequest represents the customer payload
type CreateCustomerRequest struct {
	Mobile string `json:"mobile" validate:"required"`
}

// CustomerHandler handles HTTP requests for customers
type CustomerHandler struct {
	customerService service.CustomerService
	logger          *zap.Logger
}

// NewCustomerHandler creates a new CustomerHandler
func NewCustomerHandler(customerService service.CustomerService, logger *zap.Logger) *CustomerHandler {
	return &CustomerHandler{
		customerService: customerService,
		logger:          logger,
	}
}

// RegisterRoutes registers all customer routes
func (h *CustomerHandler) RegisterRoutes(r chi.Router) {
	r.Post("/api/customers", h.CreateCustomer)
	r.Get("/api/customers/{customerId}", h.GetCustomer)
}

func (h *CustomerHandler) CreateCustomer(w http.ResponseWriter, r *http.Request) {
	var req CreateCustomerRequest
	if !decodeRequest(w, r, h.logger, &req) {
		return
	}

	customer, err := h.customerService.CreateCustomer(r.Context(), req.Mobile)
	if err != nil {
		respondServiceError(w, h.logger, err, "create customer")
		return
	}

	middleware.RespondWithJSON(w, http.StatusCreated, customer)
}

func (h *CustomerHandler) GetCustomer(w http.ResponseWriter, r *http.Request) {
	customerID, err := idParam(r, "customerId")
	if err != nil {
		respondInvalidID(w, "customerId")
		return
	}

	customer, err := h.customerService.GetCustomer(r.Context(), customerID)
	if err != nil {
		respondServiceError(w, h.logger, err, "get customer")
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, customer)
}
