package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/vkravets/budget-cloud/internal/logger"
	"github.com/vkravets/budget-cloud/internal/models"
)

// PingFunc checks connectivity to one dependency.
type PingFunc func(ctx context.Context) error

// NewHealthHandler returns an HTTP handler reporting dependency health.
// @Summary Health check
// @Description Reports database and cache connectivity
// @Tags health
// @Produce json
// @Success 200 {object} models.HealthResponse "Healthy"
// @Failure 503 {object} models.HealthResponse "Unhealthy"
// @Router /health [get]
func NewHealthHandler(dbPing, cachePing PingFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		resp := models.HealthResponse{
			Status:   "healthy",
			Database: "connected",
			Cache:    "connected",
		}
		status := http.StatusOK

		if err := dbPing(ctx); err != nil {
			logger.Log.Errorw("database health check failed", "error", err)
			resp.Status = "unhealthy"
			resp.Database = "disconnected"
			status = http.StatusServiceUnavailable
		}
		if err := cachePing(ctx); err != nil {
			logger.Log.Errorw("cache health check failed", "error", err)
			resp.Status = "unhealthy"
			resp.Cache = "disconnected"
			status = http.StatusServiceUnavailable
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_ = json.NewEncoder(w).Encode(resp)
	}
}
