package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/Catalinvisual/AuraMarket/internal/data/entity"
	"github.com/Catalinvisual/AuraMarket/internal/data/repository"
	"github.com/Catalinvisual/AuraMarket/internal/dto/request"
	"github.com/Catalinvisual/AuraMarket/internal/dto/response"
	"github.com/Catalinvisual/AuraMarket/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type UserService interface {
	GetUsers(ctx context.Context, page *request.PageRequest, search string) (*response.UserListResponse, error)
	UpdateUser(ctx context.Context, userID string, req *request.UpdateUserRequest) (*response.UserResponse, error)
	DeleteUser(ctx context.Context, userID string) error
}

type userService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewUserService(
	repo *repository.Repository,
	log *zap.Logger,
) UserService {
	return &userService{
		repo: repo,
		log:  log.With(zap.String("service", "user")),
	}
}

func (s *userService) GetUsers(ctx context.Context, page *request.PageRequest, search string) (*response.UserListResponse, error) {
	limit := page.Take()
	offset := page.Offset()

	users, err := s.repo.User.FindAll(ctx, search, limit, offset)
	if err != nil {
		s.log.Error("Failed to get users",
			zap.Error(err),
			zap.Int("page", page.Page),
			zap.String("search", search),
		)
		return nil, fmt.Errorf("get users: %w", err)
	}

	total, err := s.repo.User.CountAll(ctx, search)
	if err != nil {
		s.log.Error("Failed to count users", zap.Error(err))
		return nil, fmt.Errorf("count users: %w", err)
	}

	userResponses := make([]response.UserResponse, len(users))
	for i, user := range users {
		userResponses[i] = response.UserToResponse(user)
	}

	s.log.Info("Users retrieved",
		zap.Int("count", len(users)),
		zap.Int64("total", total),
		zap.Int("page", page.Page),
	)

	return &response.UserListResponse{
		Users:      userResponses,
		Total:      total,
		Page:       page.Page,
		TotalPages: utils.CalculateTotalPages(total, limit),
	}, nil
}

func (s *userService) UpdateUser(ctx context.Context, userID string, req *request.UpdateUserRequest) (*response.UserResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update user validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	id, err := uuid.Parse(userID)
	if err != nil {
		return nil, fmt.Errorf("invalid user id: %w", err)
	}

	user, err := s.repo.User.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to get user by ID",
			zap.Error(err),
			zap.String("user_id", userID),
		)
		return nil, fmt.Errorf("get user by id: %w", err)
	}
	if user == nil {
		return nil, fmt.Errorf("user not found")
	}

	// Password stays untouched; only profile fields and role change here
	user.Name = req.Name
	user.Email = req.Email
	user.Role = entity.UserRole(req.Role)
	user.UpdatedAt = time.Now()

	if err := s.repo.User.Update(ctx, user); err != nil {
		s.log.Error("Failed to update user",
			zap.Error(err),
			zap.String("user_id", userID),
		)
		return nil, fmt.Errorf("update user: %w", err)
	}

	s.log.Info("User updated",
		zap.String("user_id", userID),
		zap.String("role", req.Role),
	)

	resp := response.UserToResponse(&repository.UserWithOrderCount{User: *user})
	return &resp, nil
}

func (s *userService) DeleteUser(ctx context.Context, userID string) error {
	id, err := uuid.Parse(userID)
	if err != nil {
		return fmt.Errorf("invalid user id: %w", err)
	}

	user, err := s.repo.User.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to get user by ID",
			zap.Error(err),
			zap.String("user_id", userID),
		)
		return fmt.Errorf("get user by id: %w", err)
	}
	if user == nil {
		return fmt.Errorf("user not found")
	}

	if err := s.repo.User.Delete(ctx, id); err != nil {
		s.log.Error("Failed to delete user",
			zap.Error(err),
			zap.String("user_id", userID),
		)
		return fmt.Errorf("delete user: %w", err)
	}

	s.log.Info("User deleted", zap.String("user_id", userID))
	return nil
}
