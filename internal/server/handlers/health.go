package handlers

import (
	"context"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/iudanet/authmodule/internal/server/storage"
	"github.com/iudanet/authmodule/pkg/api"
)

const healthPingTimeout = 2 * time.Second

// HealthHandler handles health check requests
type HealthHandler struct {
	logger  *zap.Logger
	store   storage.Pinger
	version string
}

// NewHealthHandler creates a new health check handler
func NewHealthHandler(logger *zap.Logger, store storage.Pinger, version string) *HealthHandler {
	return &HealthHandler{
		logger:  logger,
		store:   store,
		version: version,
	}
}

// Health handles GET /health. It reports 503 while the database is unreachable.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), healthPingTimeout)
	defer cancel()

	if err := h.store.Ping(ctx); err != nil {
		h.logger.Error("health check failed", zap.Error(err))
		sendJSON(h.logger, w, api.HealthResponse{Status: "unavailable", Version: h.version}, http.StatusServiceUnavailable)
		return
	}

	sendJSON(h.logger, w, api.HealthResponse{Status: "ok", Version: h.version}, http.StatusOK)
}
