package wire

import (
	"github.com/Catalinvisual/AuraMarket/internal/adaptor"
	"github.com/Catalinvisual/AuraMarket/pkg/middleware"
	"github.com/Catalinvisual/AuraMarket/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireProduct(
	r chi.Router,
	productHandler *adaptor.ProductHandler,
	config *utils.Config,
	log *zap.Logger,
) {
	r.Route("/api/products", func(r chi.Router) {
		// ==================== PUBLIC ROUTES ====================
		// GET /api/products - Catalog listing with search/filter/pagination
		r.Get("/", productHandler.GetProducts)

		// GET /api/products/categories - Category list (seeds defaults when empty)
		r.Get("/categories", productHandler.GetCategories)

		// GET /api/products/{id} - Product details
		r.Get("/{id}", productHandler.GetProduct)

		// ==================== ADMIN ROUTES ====================
		r.Group(func(r chi.Router) {
			r.Use(middleware.AuthJWT(config.JWT, log)) // Must be authenticated
			r.Use(middleware.Admin(log))               // Must be admin

			r.Post("/", productHandler.CreateProduct)            // POST /api/products
			r.Put("/{id}", productHandler.UpdateProduct)         // PUT /api/products/{id}
			r.Delete("/{id}", productHandler.DeleteProduct)      // DELETE /api/products/{id}
			r.Post("/categories", productHandler.CreateCategory) // POST /api/products/categories
		})
	})
}
