package wire

import (
	"github.com/Catalinvisual/AuraMarket/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireAuth(
	r chi.Router,
	authHandler *adaptor.AuthHandler,
) {
	// POST /api/auth/login - Exchange credentials for a JWT
	r.Post("/api/auth/login", authHandler.Login)

	// POST /api/auth/register - Reserved, returns 501
	r.Post("/api/auth/register", authHandler.Register)
}
