package wire

import (
	"net/http"
	"time"

	"github.com/Catalinvisual/AuraMarket/internal/adaptor"
	"github.com/Catalinvisual/AuraMarket/internal/data/repository"
	"github.com/Catalinvisual/AuraMarket/internal/usecase"
	"github.com/Catalinvisual/AuraMarket/pkg/middleware"
	"github.com/Catalinvisual/AuraMarket/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type App struct {
	Router *chi.Mux
}

// Wiring builds services, handlers and the router
func Wiring(repo *repository.Repository, config *utils.Config, logger *zap.Logger) *App {
	service := usecase.NewService(repo, config, logger)
	handler := adaptor.NewHandler(service, logger)

	router := setupRouter(handler, config, logger)

	return &App{
		Router: router,
	}
}

func setupRouter(
	handler *adaptor.Handler,
	config *utils.Config,
	logger *zap.Logger,
) *chi.Mux {
	r := chi.NewRouter()

	// Apply global middleware
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.CORS())

	// Apply routes
	wireAuth(r, handler.Auth)
	wireProduct(r, handler.Product, config, logger)
	wireOrder(r, handler.Order, config, logger)
	wireUser(r, handler.User, config, logger)
	wireTestimonial(r, handler.Testimonial, config, logger)
	wireUsp(r, handler.Usp, config, logger)
	wireDashboard(r, handler.Dashboard, config, logger)
	wireUpload(r, handler.Upload, config, logger)

	// Root banner kept for uptime checks pointed at /
	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("Ecommerce API is running..."))
	})

	r.Get("/api/status", func(w http.ResponseWriter, r *http.Request) {
		utils.ResponseSuccess(w, map[string]any{
			"status": "ok",
			"time":   time.Now().Format(time.RFC3339),
		})
	})

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Uploaded product images are served straight off disk
	uploads := http.StripPrefix("/uploads/", http.FileServer(http.Dir(config.Upload.Dir)))
	r.Get("/uploads/*", uploads.ServeHTTP)

	return r
}
