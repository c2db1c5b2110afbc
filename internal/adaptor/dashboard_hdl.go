package adaptor

import (
	"net/http"

	"github.com/Catalinvisual/AuraMarket/internal/usecase"
	"github.com/Catalinvisual/AuraMarket/pkg/utils"

	"go.uber.org/zap"
)

type DashboardHandler struct {
	service usecase.DashboardService
	log     *zap.Logger
}

func NewDashboardHandler(service usecase.DashboardService, log *zap.Logger) *DashboardHandler {
	return &DashboardHandler{
		service: service,
		log:     log.With(zap.String("handler", "dashboard")),
	}
}

// GetStats handles GET /api/dashboard/stats (admin)
func (h *DashboardHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.service.GetStats(r.Context())
	if err != nil {
		handleServiceError(h.log, w, err, "get dashboard stats")
		return
	}

	utils.ResponseSuccess(w, stats)
}
