package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"parley/internal/httputil"
)

// HealthHandler answers liveness probes.
type HealthHandler struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(pool *pgxpool.Pool, logger *slog.Logger) *HealthHandler {
	return &HealthHandler{
		pool:   pool,
		logger: logger,
	}
}

// Health reports whether the server can reach its database.
// GET /health
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	if err := h.pool.Ping(ctx); err != nil {
		h.logger.Error("health check failed", "error", err)
		httputil.RespondJSON(w, http.StatusServiceUnavailable, map[string]string{
			"status": "degraded",
		})
		return
	}

	httputil.RespondJSON(w, http.StatusOK, map[string]string{
		"status": "ok",
	})
}
