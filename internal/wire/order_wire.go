package wire

import (
	"github.com/Catalinvisual/AuraMarket/internal/adaptor"
	"github.com/Catalinvisual/AuraMarket/pkg/middleware"
	"github.com/Catalinvisual/AuraMarket/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireOrder(
	r chi.Router,
	orderHandler *adaptor.OrderHandler,
	config *utils.Config,
	log *zap.Logger,
) {
	r.Route("/api/orders", func(r chi.Router) {
		// ==================== CUSTOMER ROUTES ====================
		// Checkout needs a valid token but not the admin role
		r.Group(func(r chi.Router) {
			r.Use(middleware.AuthJWT(config.JWT, log))

			r.Post("/", orderHandler.CreateOrder) // POST /api/orders
		})

		// ==================== ADMIN ROUTES ====================
		r.Group(func(r chi.Router) {
			r.Use(middleware.AuthJWT(config.JWT, log)) // Must be authenticated
			r.Use(middleware.Admin(log))               // Must be admin

			r.Get("/", orderHandler.GetOrders)                    // GET /api/orders
			r.Get("/{id}", orderHandler.GetOrder)                 // GET /api/orders/{id}
			r.Put("/{id}/status", orderHandler.UpdateOrderStatus) // PUT /api/orders/{id}/status
			r.Delete("/{id}", orderHandler.DeleteOrder)           // DELETE /api/orders/{id}
		})
	})
}
