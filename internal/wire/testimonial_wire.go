package wire

import (
	"github.com/Catalinvisual/AuraMarket/internal/adaptor"
	"github.com/Catalinvisual/AuraMarket/pkg/middleware"
	"github.com/Catalinvisual/AuraMarket/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireTestimonial(
	r chi.Router,
	testimonialHandler *adaptor.TestimonialHandler,
	config *utils.Config,
	log *zap.Logger,
) {
	r.Route("/api/testimonials", func(r chi.Router) {
		// ==================== PUBLIC ROUTES ====================
		// GET /api/testimonials - Active entries for the landing page
		r.Get("/", testimonialHandler.GetTestimonials)

		// ==================== ADMIN ROUTES ====================
		r.Group(func(r chi.Router) {
			r.Use(middleware.AuthJWT(config.JWT, log)) // Must be authenticated
			r.Use(middleware.Admin(log))               // Must be admin

			r.Get("/admin", testimonialHandler.GetAllTestimonials)      // GET /api/testimonials/admin
			r.Post("/", testimonialHandler.CreateTestimonial)           // POST /api/testimonials
			r.Put("/{id}", testimonialHandler.UpdateTestimonial)        // PUT /api/testimonials/{id}
			r.Delete("/{id}", testimonialHandler.DeleteTestimonial)     // DELETE /api/testimonials/{id}
		})
	})
}
