package wire

import (
	"github.com/Catalinvisual/AuraMarket/internal/adaptor"
	"github.com/Catalinvisual/AuraMarket/pkg/middleware"
	"github.com/Catalinvisual/AuraMarket/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireUser(
	r chi.Router,
	userHandler *adaptor.UserHandler,
	config *utils.Config,
	log *zap.Logger,
) {
	// User management is admin-only end to end
	r.Route("/api/users", func(r chi.Router) {
		r.Use(middleware.AuthJWT(config.JWT, log)) // Must be authenticated
		r.Use(middleware.Admin(log))               // Must be admin

		r.Get("/", userHandler.GetUsers)          // GET /api/users
		r.Put("/{id}", userHandler.UpdateUser)    // PUT /api/users/{id}
		r.Delete("/{id}", userHandler.DeleteUser) // DELETE /api/users/{id}
	})
}
