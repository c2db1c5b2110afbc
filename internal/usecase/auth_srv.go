package usecase

import (
	"context"
	"fmt"

	"github.com/Catalinvisual/AuraMarket/internal/data/repository"
	"github.com/Catalinvisual/AuraMarket/internal/dto/request"
	"github.com/Catalinvisual/AuraMarket/internal/dto/response"
	"github.com/Catalinvisual/AuraMarket/pkg/utils"

	"go.uber.org/zap"
)

type AuthService interface {
	Login(ctx context.Context, req *request.LoginRequest) (*response.LoginResponse, error)
}

type authService struct {
	repo *repository.Repository
	cfg  *utils.Config
	log  *zap.Logger
}

func NewAuthService(
	repo *repository.Repository,
	cfg *utils.Config,
	log *zap.Logger,
) AuthService {
	return &authService{
		repo: repo,
		cfg:  cfg,
		log:  log.With(zap.String("service", "auth")),
	}
}

func (s *authService) Login(ctx context.Context, req *request.LoginRequest) (*response.LoginResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Login validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	user, err := s.repo.User.FindByEmail(ctx, req.Email)
	if err != nil {
		s.log.Error("Failed to get user by email",
			zap.Error(err),
			zap.String("email", req.Email),
		)
		return nil, fmt.Errorf("get user by email: %w", err)
	}

	// Same error for unknown email and wrong password
	if user == nil {
		return nil, fmt.Errorf("invalid credentials")
	}

	if !utils.CheckPasswordHash(req.Password, user.PasswordHash) {
		s.log.Warn("Password mismatch", zap.String("email", req.Email))
		return nil, fmt.Errorf("invalid credentials")
	}

	token, err := utils.GenerateToken(user.ID, string(user.Role), s.cfg.JWT.Secret, s.cfg.JWT.ExpiryHours)
	if err != nil {
		s.log.Error("Failed to generate token",
			zap.Error(err),
			zap.String("user_id", user.ID.String()),
		)
		return nil, fmt.Errorf("generate token: %w", err)
	}

	s.log.Info("User logged in",
		zap.String("user_id", user.ID.String()),
		zap.String("role", string(user.Role)),
	)

	return response.LoginToResponse(user, token), nil
}
