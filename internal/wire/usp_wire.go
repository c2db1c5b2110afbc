package wire

import (
	"github.com/Catalinvisual/AuraMarket/internal/adaptor"
	"github.com/Catalinvisual/AuraMarket/pkg/middleware"
	"github.com/Catalinvisual/AuraMarket/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireUsp(
	r chi.Router,
	uspHandler *adaptor.UspHandler,
	config *utils.Config,
	log *zap.Logger,
) {
	r.Route("/api/usp", func(r chi.Router) {
		// ==================== PUBLIC ROUTES ====================
		// GET /api/usp - Benefits bar entries (seeds defaults when empty)
		r.Get("/", uspHandler.GetUsps)

		// ==================== ADMIN ROUTES ====================
		r.Group(func(r chi.Router) {
			r.Use(middleware.AuthJWT(config.JWT, log)) // Must be authenticated
			r.Use(middleware.Admin(log))               // Must be admin

			r.Post("/", uspHandler.CreateUsp)       // POST /api/usp
			r.Put("/{id}", uspHandler.UpdateUsp)    // PUT /api/usp/{id}
			r.Delete("/{id}", uspHandler.DeleteUsp) // DELETE /api/usp/{id}
		})
	})
}
