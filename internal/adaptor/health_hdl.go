package adaptor

import (
	"net/http"

	"movie-catalog/pkg/database"
	"movie-catalog/pkg/utils"

	"go.uber.org/zap"
)

type HealthHandler struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewHealthHandler(db database.PgxIface, log *zap.Logger) *HealthHandler {
	return &HealthHandler{
		db:  db,
		log: log.With(zap.String("handler", "health")),
	}
}

type healthResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// Health handles GET /api/health
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	if err := h.db.Ping(r.Context()); err != nil {
		h.log.Error("Health check failed", zap.Error(err))
		utils.ResponseJSON(w, http.StatusInternalServerError, healthResponse{
			Status:  "ERROR",
			Message: err.Error(),
		})
		return
	}

	utils.ResponseOK(w, healthResponse{
		Status:  "OK",
		Message: "Server is running (PostgreSQL)",
	})
}
