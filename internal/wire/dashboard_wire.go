package wire

import (
	"github.com/Catalinvisual/AuraMarket/internal/adaptor"
	"github.com/Catalinvisual/AuraMarket/pkg/middleware"
	"github.com/Catalinvisual/AuraMarket/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireDashboard(
	r chi.Router,
	dashboardHandler *adaptor.DashboardHandler,
	config *utils.Config,
	log *zap.Logger,
) {
	r.Route("/api/dashboard", func(r chi.Router) {
		r.Use(middleware.AuthJWT(config.JWT, log)) // Must be authenticated
		r.Use(middleware.Admin(log))               // Must be admin

		r.Get("/stats", dashboardHandler.GetStats) // GET /api/dashboard/stats
	})
}
