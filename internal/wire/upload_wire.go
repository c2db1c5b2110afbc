package wire

import (
	"github.com/Catalinvisual/AuraMarket/internal/adaptor"
	"github.com/Catalinvisual/AuraMarket/pkg/middleware"
	"github.com/Catalinvisual/AuraMarket/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireUpload(
	r chi.Router,
	uploadHandler *adaptor.UploadHandler,
	config *utils.Config,
	log *zap.Logger,
) {
	r.Route("/api/upload", func(r chi.Router) {
		r.Use(middleware.AuthJWT(config.JWT, log)) // Must be authenticated
		r.Use(middleware.Admin(log))               // Must be admin

		r.Post("/", uploadHandler.UploadImage) // POST /api/upload
	})
}
