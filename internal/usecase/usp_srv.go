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

// defaultUsps fill the storefront benefits bar when the table is empty.
// Icon names match the client's icon set.
var defaultUsps = []entity.UspItem{
	{Icon: "Truck", Title: "Fast Delivery", Subtitle: "24-48h", DisplayOrder: 1},
	{Icon: "RotateCcw", Title: "Free Returns", Subtitle: "30 days", DisplayOrder: 2},
	{Icon: "ShieldCheck", Title: "Secure Payments", Subtitle: "100% Protected", DisplayOrder: 3},
	{Icon: "Headphones", Title: "Customer Support", Subtitle: "24/7", DisplayOrder: 4},
}

type UspService interface {
	GetUsps(ctx context.Context) ([]response.UspResponse, error)
	CreateUsp(ctx context.Context, req *request.UspRequest) (*response.UspResponse, error)
	UpdateUsp(ctx context.Context, uspID string, req *request.UspRequest) (*response.UspResponse, error)
	DeleteUsp(ctx context.Context, uspID string) error
}

type uspService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewUspService(
	repo *repository.Repository,
	log *zap.Logger,
) UspService {
	return &uspService{
		repo: repo,
		log:  log.With(zap.String("service", "usp")),
	}
}

func (s *uspService) GetUsps(ctx context.Context) ([]response.UspResponse, error) {
	usps, err := s.repo.Usp.FindAll(ctx)
	if err != nil {
		s.log.Error("Failed to get usp items", zap.Error(err))
		return nil, fmt.Errorf("get usp items: %w", err)
	}

	if len(usps) == 0 {
		now := time.Now()
		seed := make([]*entity.UspItem, len(defaultUsps))
		for i := range defaultUsps {
			u := defaultUsps[i]
			u.Base = entity.Base{
				ID:        uuid.New(),
				CreatedAt: now,
				UpdatedAt: now,
			}
			seed[i] = &u
		}
		if err := s.repo.Usp.CreateBatch(ctx, seed); err != nil {
			s.log.Error("Failed to seed default usp items", zap.Error(err))
			return nil, fmt.Errorf("seed usp items: %w", err)
		}
		s.log.Info("Default usp items seeded", zap.Int("count", len(seed)))

		usps, err = s.repo.Usp.FindAll(ctx)
		if err != nil {
			s.log.Error("Failed to get usp items", zap.Error(err))
			return nil, fmt.Errorf("get usp items: %w", err)
		}
	}

	uspResponses := make([]response.UspResponse, len(usps))
	for i, usp := range usps {
		uspResponses[i] = response.UspToResponse(usp)
	}

	return uspResponses, nil
}

func (s *uspService) CreateUsp(ctx context.Context, req *request.UspRequest) (*response.UspResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create usp validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	now := time.Now()
	usp := &entity.UspItem{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Icon:         req.Icon,
		Title:        req.Title,
		Subtitle:     req.Subtitle,
		DisplayOrder: req.DisplayOrder,
	}

	if err := s.repo.Usp.Create(ctx, usp); err != nil {
		s.log.Error("Failed to create usp item",
			zap.Error(err),
			zap.String("title", req.Title),
		)
		return nil, fmt.Errorf("create usp item: %w", err)
	}

	s.log.Info("Usp item created",
		zap.String("usp_id", usp.ID.String()),
		zap.String("title", usp.Title),
	)

	resp := response.UspToResponse(usp)
	return &resp, nil
}

func (s *uspService) UpdateUsp(ctx context.Context, uspID string, req *request.UspRequest) (*response.UspResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update usp validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	id, err := uuid.Parse(uspID)
	if err != nil {
		return nil, fmt.Errorf("invalid usp id: %w", err)
	}

	usp, err := s.repo.Usp.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to get usp item by ID",
			zap.Error(err),
			zap.String("usp_id", uspID),
		)
		return nil, fmt.Errorf("get usp item by id: %w", err)
	}
	if usp == nil {
		return nil, fmt.Errorf("usp item not found")
	}

	usp.Icon = req.Icon
	usp.Title = req.Title
	usp.Subtitle = req.Subtitle
	usp.DisplayOrder = req.DisplayOrder
	usp.UpdatedAt = time.Now()

	if err := s.repo.Usp.Update(ctx, usp); err != nil {
		s.log.Error("Failed to update usp item",
			zap.Error(err),
			zap.String("usp_id", uspID),
		)
		return nil, fmt.Errorf("update usp item: %w", err)
	}

	s.log.Info("Usp item updated", zap.String("usp_id", uspID))

	resp := response.UspToResponse(usp)
	return &resp, nil
}

func (s *uspService) DeleteUsp(ctx context.Context, uspID string) error {
	id, err := uuid.Parse(uspID)
	if err != nil {
		return fmt.Errorf("invalid usp id: %w", err)
	}

	usp, err := s.repo.Usp.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to get usp item by ID",
			zap.Error(err),
			zap.String("usp_id", uspID),
		)
		return fmt.Errorf("get usp item by id: %w", err)
	}
	if usp == nil {
		return fmt.Errorf("usp item not found")
	}

	if err := s.repo.Usp.Delete(ctx, id); err != nil {
		s.log.Error("Failed to delete usp item",
			zap.Error(err),
			zap.String("usp_id", uspID),
		)
		return fmt.Errorf("delete usp item: %w", err)
	}

	s.log.Info("Usp item deleted", zap.String("usp_id", uspID))
	return nil
}
