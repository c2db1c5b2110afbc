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

// defaultTestimonials backfill the landing page the first time it loads
// against an empty table.
var defaultTestimonials = []entity.Testimonial{
	{
		Name:     "Sarah Johnson",
		Role:     "Verified Buyer",
		Content:  "Absolutely love the quality of the products! The delivery was super fast and the packaging was eco-friendly. Will definitely order again.",
		Rating:   5,
		Avatar:   "https://images.unsplash.com/photo-1494790108377-be9c29b29330?q=80&w=1887&auto=format&fit=crop",
		IsActive: true,
	},
	{
		Name:     "Michael Chen",
		Role:     "Tech Enthusiast",
		Content:  "The gadgets here are top-notch. I bought the new smartwatch and it exceeded my expectations. Great customer support too!",
		Rating:   5,
		Avatar:   "https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?q=80&w=1887&auto=format&fit=crop",
		IsActive: true,
	},
	{
		Name:     "Emma Davis",
		Role:     "Designer",
		Content:  "Beautiful aesthetics and functional design. This store curates the best items. Highly recommended for anyone looking for style and substance.",
		Rating:   4,
		Avatar:   "https://images.unsplash.com/photo-1438761681033-6461ffad8d80?q=80&w=2070&auto=format&fit=crop",
		IsActive: true,
	},
}

type TestimonialService interface {
	GetTestimonials(ctx context.Context) ([]response.TestimonialResponse, error)
	GetAllTestimonials(ctx context.Context) ([]response.TestimonialResponse, error)
	CreateTestimonial(ctx context.Context, req *request.TestimonialRequest) (*response.TestimonialResponse, error)
	UpdateTestimonial(ctx context.Context, testimonialID string, req *request.TestimonialRequest) (*response.TestimonialResponse, error)
	DeleteTestimonial(ctx context.Context, testimonialID string) error
}

type testimonialService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewTestimonialService(
	repo *repository.Repository,
	log *zap.Logger,
) TestimonialService {
	return &testimonialService{
		repo: repo,
		log:  log.With(zap.String("service", "testimonial")),
	}
}

// GetTestimonials is the public listing: active entries only, seeding the
// defaults when the table is empty.
func (s *testimonialService) GetTestimonials(ctx context.Context) ([]response.TestimonialResponse, error) {
	count, err := s.repo.Testimonial.CountAll(ctx)
	if err != nil {
		s.log.Error("Failed to count testimonials", zap.Error(err))
		return nil, fmt.Errorf("count testimonials: %w", err)
	}

	if count == 0 {
		now := time.Now()
		seed := make([]*entity.Testimonial, len(defaultTestimonials))
		for i := range defaultTestimonials {
			t := defaultTestimonials[i]
			t.Base = entity.Base{
				ID:        uuid.New(),
				CreatedAt: now,
				UpdatedAt: now,
			}
			seed[i] = &t
		}
		if err := s.repo.Testimonial.CreateBatch(ctx, seed); err != nil {
			s.log.Error("Failed to seed default testimonials", zap.Error(err))
			return nil, fmt.Errorf("seed testimonials: %w", err)
		}
		s.log.Info("Default testimonials seeded", zap.Int("count", len(seed)))
	}

	testimonials, err := s.repo.Testimonial.FindAll(ctx, true)
	if err != nil {
		s.log.Error("Failed to get testimonials", zap.Error(err))
		return nil, fmt.Errorf("get testimonials: %w", err)
	}

	return testimonialsToResponses(testimonials), nil
}

// GetAllTestimonials is the back-office listing, inactive entries included.
func (s *testimonialService) GetAllTestimonials(ctx context.Context) ([]response.TestimonialResponse, error) {
	testimonials, err := s.repo.Testimonial.FindAll(ctx, false)
	if err != nil {
		s.log.Error("Failed to get all testimonials", zap.Error(err))
		return nil, fmt.Errorf("get all testimonials: %w", err)
	}

	return testimonialsToResponses(testimonials), nil
}

func (s *testimonialService) CreateTestimonial(ctx context.Context, req *request.TestimonialRequest) (*response.TestimonialResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create testimonial validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	now := time.Now()
	testimonial := &entity.Testimonial{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Name:     req.Name,
		Role:     req.Role,
		Content:  req.Content,
		Rating:   req.Rating,
		Avatar:   req.Avatar,
		VideoURL: req.VideoURL,
		IsActive: true,
	}
	if testimonial.Rating == 0 {
		testimonial.Rating = 5
	}
	if req.IsActive != nil {
		testimonial.IsActive = *req.IsActive
	}

	if err := s.repo.Testimonial.Create(ctx, testimonial); err != nil {
		s.log.Error("Failed to create testimonial",
			zap.Error(err),
			zap.String("name", req.Name),
		)
		return nil, fmt.Errorf("create testimonial: %w", err)
	}

	s.log.Info("Testimonial created",
		zap.String("testimonial_id", testimonial.ID.String()),
		zap.String("name", testimonial.Name),
	)

	resp := response.TestimonialToResponse(testimonial)
	return &resp, nil
}

func (s *testimonialService) UpdateTestimonial(ctx context.Context, testimonialID string, req *request.TestimonialRequest) (*response.TestimonialResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update testimonial validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	id, err := uuid.Parse(testimonialID)
	if err != nil {
		return nil, fmt.Errorf("invalid testimonial id: %w", err)
	}

	testimonial, err := s.repo.Testimonial.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to get testimonial by ID",
			zap.Error(err),
			zap.String("testimonial_id", testimonialID),
		)
		return nil, fmt.Errorf("get testimonial by id: %w", err)
	}
	if testimonial == nil {
		return nil, fmt.Errorf("testimonial not found")
	}

	testimonial.Name = req.Name
	testimonial.Role = req.Role
	testimonial.Content = req.Content
	testimonial.Rating = req.Rating
	testimonial.Avatar = req.Avatar
	testimonial.VideoURL = req.VideoURL
	if testimonial.Rating == 0 {
		testimonial.Rating = 5
	}
	if req.IsActive != nil {
		testimonial.IsActive = *req.IsActive
	}
	testimonial.UpdatedAt = time.Now()

	if err := s.repo.Testimonial.Update(ctx, testimonial); err != nil {
		s.log.Error("Failed to update testimonial",
			zap.Error(err),
			zap.String("testimonial_id", testimonialID),
		)
		return nil, fmt.Errorf("update testimonial: %w", err)
	}

	s.log.Info("Testimonial updated", zap.String("testimonial_id", testimonialID))

	resp := response.TestimonialToResponse(testimonial)
	return &resp, nil
}

func (s *testimonialService) DeleteTestimonial(ctx context.Context, testimonialID string) error {
	id, err := uuid.Parse(testimonialID)
	if err != nil {
		return fmt.Errorf("invalid testimonial id: %w", err)
	}

	testimonial, err := s.repo.Testimonial.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to get testimonial by ID",
			zap.Error(err),
			zap.String("testimonial_id", testimonialID),
		)
		return fmt.Errorf("get testimonial by id: %w", err)
	}
	if testimonial == nil {
		return fmt.Errorf("testimonial not found")
	}

	if err := s.repo.Testimonial.Delete(ctx, id); err != nil {
		s.log.Error("Failed to delete testimonial",
			zap.Error(err),
			zap.String("testimonial_id", testimonialID),
		)
		return fmt.Errorf("delete testimonial: %w", err)
	}

	s.log.Info("Testimonial deleted", zap.String("testimonial_id", testimonialID))
	return nil
}

func testimonialsToResponses(testimonials []*entity.Testimonial) []response.TestimonialResponse {
	responses := make([]response.TestimonialResponse, len(testimonials))
	for i, testimonial := range testimonials {
		responses[i] = response.TestimonialToResponse(testimonial)
	}
	return responses
}
