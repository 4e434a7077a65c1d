package transport

import (
	"net/http"

	"shopkeeper/internal/middleware"
	"shopkeeper/internal/service"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// CreateExpenseRequest represents the expense payload
type CreateExpenseRequest struct {
	ShopID      int64            `json:"shopId" validate:"required,gt=0"`
	Amount      *decimal.Decimal `json:"amount" validate:"required"`
	Description string           `json:"description"`
}

// ExpenseHandler handles HTTP requests for shop expenses
type ExpenseHandler struct {
	expenseService service.ExpenseService
	logger         *zap.Logger
}

// NewExpenseHandler creates a new ExpenseHandler
func NewExpenseHandler(expenseService service.ExpenseService, logger *zap.Logger) *ExpenseHandler {
	return &ExpenseHandler{
		expenseService: expenseService,
		logger:         logger,
	}
}

// RegisterRoutes registers all expense routes
func (h *ExpenseHandler) RegisterRoutes(r chi.Router) {
	r.Post("/api/expenses", h.CreateExpense)
	r.Get("/api/shops/{shopId}/expenses", h.ListShopExpenses)
}

func (h *ExpenseHandler) CreateExpense(w http.ResponseWriter, r *http.Request) {
	var req CreateExpenseRequest
	if !decodeRequest(w, r, h.logger, &req) {
		return
	}

	expense, err := h.expenseService.CreateExpense(r.Context(), req.ShopID, *req.Amount, req.Description)
	if err != nil {
		respondServiceError(w, h.logger, err, "create expense")
		return
	}

	middleware.RespondWithJSON(w, http.StatusCreated, expense)
}

func (h *ExpenseHandler) ListShopExpenses(w http.ResponseWriter, r *http.Request) {
	shopID, err := idParam(r, "shopId")
	if err != nil {
		respondInvalidID(w, "shopId")
		return
	}

	expenses, err := h.expenseService.ListByShop(r.Context(), shopID)
	if err != nil {
		respondServiceError(w, h.logger, err, "list expenses")
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, expenses)
}
