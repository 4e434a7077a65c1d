package transport

import (
	"net/http"

	"shopkeeper/internal/database"
	"shopkeeper/internal/middleware"

	"github.com/go-chi/chi/v5"
)

// HealthHandler reports liveness and database health
type HealthHandler struct {
	db database.Service
}

// NewHealthHandler creates a new HealthHandler
func NewHealthHandler(db database.Service) *HealthHandler {
	return &HealthHandler{db: db}
}

// RegisterRoutes registers the health routes
func (h *HealthHandler) RegisterRoutes(r chi.Router) {
	r.Get("/health", h.Live)
	r.Get("/api/health", h.Ready)
}

// Live answers as long as the process serves requests
func (h *HealthHandler) Live(w http.ResponseWriter, r *http.Request) {
	middleware.RespondWithJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Ready includes the database pool health and answers 503 when it is down
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	dbHealth := h.db.Health(r.Context())

	status, code := "ok", http.StatusOK
	if dbHealth["status"] != "up" {
		status, code = "degraded", http.StatusServiceUnavailable
	}

	middleware.RespondWithJSON(w, code, map[string]interface{}{
		"status":   status,
		"database": dbHealth,
	})
}
