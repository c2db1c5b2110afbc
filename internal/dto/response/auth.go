package response

import (
	"github.com/Catalinvisual/AuraMarket/internal/data/entity"
)

type AuthUser struct {
	ID    string          `json:"id"`
	Email string          `json:"email"`
	Name  string          `json:"name"`
	Role  entity.UserRole `json:"role"`
}

type LoginResponse struct {
	Token string   `json:"token"`
	User  AuthUser `json:"user"`
}

func LoginToResponse(user *entity.User, token string) *LoginResponse {
	return &LoginResponse{
		Token: token,
		User: AuthUser{
			ID:    user.ID.String(),
			Email: user.Email,
			Name:  user.Name,
			Role:  user.Role,
		},
	}
}
