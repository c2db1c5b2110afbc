package usecase

import (
	"github.com/Catalinvisual/AuraMarket/internal/data/repository"
	"github.com/Catalinvisual/AuraMarket/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Auth        AuthService
	Product     ProductService
	Order       OrderService
	User        UserService
	Testimonial TestimonialService
	Usp         UspService
	Dashboard   DashboardService
	Upload      UploadService
}

func NewService(repo *repository.Repository, cfg *utils.Config, log *zap.Logger) *Service {
	return &Service{
		Auth:        NewAuthService(repo, cfg, log),
		Product:     NewProductService(repo, log),
		Order:       NewOrderService(repo, log),
		User:        NewUserService(repo, log),
		Testimonial: NewTestimonialService(repo, log),
		Usp:         NewUspService(repo, log),
		Dashboard:   NewDashboardService(repo, log),
		Upload:      NewUploadService(cfg, log),
	}
}
