package handlers

import (
	"github.com/iudanet/authmodule/internal/models"
	"github.com/iudanet/authmodule/pkg/api"
)

func toAPIUser(u *models.User) *api.User {
	if u == nil {
		return nil
	}
	return &api.User{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		UserType:  u.UserType.String(),
		IsActive:  u.IsActive,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

func toAuthResponse(r *models.AuthResult) api.AuthResponse {
	return api.AuthResponse{
		Success:      r.Success,
		Message:      r.Message,
		Token:        r.Token,
		RefreshToken: r.RefreshToken,
		ExpiresAt:    r.ExpiresAt,
		User:         toAPIUser(r.User),
	}
}

func toUserSummaries(users []*models.User) []api.UserSummary {
	out := make([]api.UserSummary, 0, len(users))
	for _, u := range users {
		out = append(out, api.UserSummary{
			ID:        u.ID,
			Username:  u.Username,
			Email:     u.Email,
			UserType:  u.UserType.String(),
			CreatedAt: u.CreatedAt,
			UpdatedAt: u.UpdatedAt,
		})
	}
	return out
}
