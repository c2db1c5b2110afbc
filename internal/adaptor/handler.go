package adaptor

import (
	"net/http"
	"strings"

	"github.com/Catalinvisual/AuraMarket/internal/usecase"
	"github.com/Catalinvisual/AuraMarket/pkg/utils"

	"go.uber.org/zap"
)

type Handler struct {
	Auth        *AuthHandler
	Product     *ProductHandler
	Order       *OrderHandler
	User        *UserHandler
	Testimonial *TestimonialHandler
	Usp         *UspHandler
	Dashboard   *DashboardHandler
	Upload      *UploadHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Auth:        NewAuthHandler(service.Auth, log),
		Product:     NewProductHandler(service.Product, log),
		Order:       NewOrderHandler(service.Order, log),
		User:        NewUserHandler(service.User, log),
		Testimonial: NewTestimonialHandler(service.Testimonial, log),
		Usp:         NewUspHandler(service.Usp, log),
		Dashboard:   NewDashboardHandler(service.Dashboard, log),
		Upload:      NewUploadHandler(service.Upload, log),
	}
}

// handleServiceError maps service errors onto HTTP statuses by message.
// Unrecognized errors become an opaque 500.
func handleServiceError(log *zap.Logger, w http.ResponseWriter, err error, operation string) {
	errMsg := err.Error()

	switch {
	case strings.Contains(errMsg, "invalid credentials"):
		log.Warn(operation+" failed - bad credentials",
			zap.String("operation", operation))
		utils.ResponseUnauthorized(w, errMsg)

	case strings.Contains(errMsg, "not found"):
		log.Warn(operation+" failed - not found",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseNotFound(w, errMsg)

	case strings.Contains(errMsg, "validation failed"):
		log.Warn(operation+" validation failed",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseBadRequest(w, errMsg)

	case strings.Contains(errMsg, "invalid"):
		log.Warn("Invalid input for "+operation,
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseBadRequest(w, errMsg)

	default:
		log.Error("Failed to "+operation,
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
