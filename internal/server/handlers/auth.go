package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"go.uber.org/zap"

	"github.com/iudanet/authmodule/internal/models"
	"github.com/iudanet/authmodule/internal/server/middleware"
	"github.com/iudanet/authmodule/internal/validation"
	"github.com/iudanet/authmodule/pkg/api"
)

// maxBodyBytes caps request bodies on the auth endpoints.
const maxBodyBytes = 1 << 20

const (
	msgInvalidInput         = "Invalid input data"
	msgTokenRequired        = "Token is required"
	msgRefreshTokenRequired = "Refresh token is required"
	msgLogoutSuccessful     = "Logout successful"
)

//go:generate moq -out auth_service_mock_test.go . AuthService

// AuthService is the auth core as seen by the HTTP layer.
type AuthService interface {
	Login(ctx context.Context, creds models.Credentials) *models.AuthResult
	Register(ctx context.Context, reg models.Registration) *models.AuthResult
	ValidateToken(ctx context.Context, token string) *models.AuthResult
	RefreshToken(ctx context.Context, refreshToken string) *models.AuthResult
	Logout(ctx context.Context, token string) bool
	IsAdmin(token string) bool
}

// AuthHandler serves /api/auth/*.
type AuthHandler struct {
	logger    *zap.Logger
	auth      AuthService
	validator *validation.Validator
}

// NewAuthHandler creates a new handler for the auth endpoints
func NewAuthHandler(logger *zap.Logger, auth AuthService, validator *validation.Validator) *AuthHandler {
	return &AuthHandler{
		logger:    logger,
		auth:      auth,
		validator: validator,
	}
}

// Login handles POST /api/auth/login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req api.LoginRequest
	if !h.decodeAndValidate(w, r, &req) {
		return
	}

	result := h.auth.Login(r.Context(), models.Credentials{
		UsernameOrEmail: req.UsernameOrEmail,
		Password:        req.Password,
		RememberMe:      req.RememberMe,
	})

	h.sendResult(w, result, http.StatusUnauthorized)
}

// Register handles POST /api/auth/register
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req api.RegisterRequest
	if !h.decodeAndValidate(w, r, &req) {
		return
	}

	userType, err := models.ParseUserType(req.UserType)
	if err != nil {
		h.sendFailure(w, msgInvalidInput, http.StatusBadRequest)
		return
	}

	result := h.auth.Register(r.Context(), models.Registration{
		Username:        req.Username,
		Email:           req.Email,
		Password:        req.Password,
		ConfirmPassword: req.ConfirmPassword,
		UserType:        userType,
		AcceptTerms:     req.AcceptTerms,
	})

	h.sendResult(w, result, http.StatusBadRequest)
}

// Validate handles POST /api/auth/validate. The body is a bare JSON string.
func (h *AuthHandler) Validate(w http.ResponseWriter, r *http.Request) {
	token, ok := h.decodeToken(w, r, msgTokenRequired)
	if !ok {
		return
	}

	h.sendResult(w, h.auth.ValidateToken(r.Context(), token), http.StatusUnauthorized)
}

// Refresh handles POST /api/auth/refresh. The body is a bare JSON string.
func (h *AuthHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	refreshToken, ok := h.decodeToken(w, r, msgRefreshTokenRequired)
	if !ok {
		return
	}

	h.sendResult(w, h.auth.RefreshToken(r.Context(), refreshToken), http.StatusUnauthorized)
}

// Logout handles POST /api/auth/logout. Any body, including none, succeeds.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	var token string
	_ = json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&token)

	// logout is stateless and always succeeds
	_ = h.auth.Logout(r.Context(), token)

	sendJSON(h.logger, w, api.LogoutResponse{Success: true, Message: msgLogoutSuccessful}, http.StatusOK)
}

func (h *AuthHandler) decodeAndValidate(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(dst); err != nil {
		h.logger.Warn("failed to decode request",
			zap.String("request_id", middleware.RequestIDFromContext(r.Context())),
			zap.Error(err))
		h.sendFailure(w, msgInvalidInput, http.StatusBadRequest)
		return false
	}

	if err := h.validator.Struct(dst); err != nil {
		h.logger.Warn("request validation failed",
			zap.String("request_id", middleware.RequestIDFromContext(r.Context())),
			zap.Error(err))
		h.sendFailure(w, msgInvalidInput, http.StatusBadRequest)
		return false
	}

	return true
}

// decodeToken reads a JSON string body. A missing or empty string yields
// 400 with the given message.
func (h *AuthHandler) decodeToken(w http.ResponseWriter, r *http.Request, requiredMsg string) (string, bool) {
	var token string
	err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&token)
	switch {
	case errors.Is(err, io.EOF):
		h.sendFailure(w, requiredMsg, http.StatusBadRequest)
		return "", false
	case err != nil:
		h.sendFailure(w, msgInvalidInput, http.StatusBadRequest)
		return "", false
	case token == "":
		h.sendFailure(w, requiredMsg, http.StatusBadRequest)
		return "", false
	}
	return token, true
}

func (h *AuthHandler) sendResult(w http.ResponseWriter, result *models.AuthResult, failureStatus int) {
	status := http.StatusOK
	if !result.Success {
		status = failureStatus
	}
	sendJSON(h.logger, w, toAuthResponse(result), status)
}

func (h *AuthHandler) sendFailure(w http.ResponseWriter, message string, statusCode int) {
	sendJSON(h.logger, w, api.AuthResponse{Success: false, Message: message}, statusCode)
}

func sendJSON(logger *zap.Logger, w http.ResponseWriter, data any, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger.Error("failed to encode JSON response", zap.Error(err))
	}
}
