package handlers

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/iudanet/authmodule/internal/server/middleware"
	"github.com/iudanet/authmodule/internal/server/storage"
	"github.com/iudanet/authmodule/pkg/api"
)

// UsersHandler serves the admin users listing. Access control is applied by
// middleware.AdminMiddleware in front of it.
type UsersHandler struct {
	logger *zap.Logger
	users  storage.UserLister
}

// NewUsersHandler creates a new handler for GET /api/data/users
func NewUsersHandler(logger *zap.Logger, users storage.UserLister) *UsersHandler {
	return &UsersHandler{
		logger: logger,
		users:  users,
	}
}

// List handles GET /api/data/users
func (h *UsersHandler) List(w http.ResponseWriter, r *http.Request) {
	users, err := h.users.ListUsers(r.Context())
	if err != nil {
		h.logger.Error("failed to list users",
			zap.String("request_id", middleware.RequestIDFromContext(r.Context())),
			zap.Error(err))
		sendJSON(h.logger, w, api.ErrorResponse{Success: false, Error: err.Error()}, http.StatusInternalServerError)
		return
	}

	sendJSON(h.logger, w, api.UsersResponse{Success: true, Data: toUserSummaries(users)}, http.StatusOK)
}
