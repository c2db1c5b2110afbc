package response

import (
	"time"

	"github.com/Catalinvisual/AuraMarket/internal/data/entity"
	"github.com/Catalinvisual/AuraMarket/internal/data/repository"
)

type UserResponse struct {
	ID         string          `json:"id"`
	Name       string          `json:"name"`
	Email      string          `json:"email"`
	Role       entity.UserRole `json:"role"`
	CreatedAt  time.Time       `json:"createdAt"`
	OrderCount int64           `json:"orderCount"`
}

// UserListResponse matches the admin contract:
// {users, total, page, totalPages}
type UserListResponse struct {
	Users      []UserResponse `json:"users"`
	Total      int64          `json:"total"`
	Page       int            `json:"page"`
	TotalPages int            `json:"totalPages"`
}

func UserToResponse(user *repository.UserWithOrderCount) UserResponse {
	return UserResponse{
		ID:         user.ID.String(),
		Name:       user.Name,
		Email:      user.Email,
		Role:       user.Role,
		CreatedAt:  user.CreatedAt,
		OrderCount: user.OrderCount,
	}
}
