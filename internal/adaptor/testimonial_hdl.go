package adaptor

import (
	"encoding/json"
	"net/http"

	"github.com/Catalinvisual/AuraMarket/internal/dto/request"
	"github.com/Catalinvisual/AuraMarket/internal/usecase"
	"github.com/Catalinvisual/AuraMarket/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type TestimonialHandler struct {
	service usecase.TestimonialService
	log     *zap.Logger
}

func NewTestimonialHandler(service usecase.TestimonialService, log *zap.Logger) *TestimonialHandler {
	return &TestimonialHandler{
		service: service,
		log:     log.With(zap.String("handler", "testimonial")),
	}
}

// GetTestimonials handles GET /api/testimonials (public, active only)
func (h *TestimonialHandler) GetTestimonials(w http.ResponseWriter, r *http.Request) {
	testimonials, err := h.service.GetTestimonials(r.Context())
	if err != nil {
		handleServiceError(h.log, w, err, "get testimonials")
		return
	}

	utils.ResponseSuccess(w, testimonials)
}

// GetAllTestimonials handles GET /api/testimonials/admin (admin, all entries)
func (h *TestimonialHandler) GetAllTestimonials(w http.ResponseWriter, r *http.Request) {
	testimonials, err := h.service.GetAllTestimonials(r.Context())
	if err != nil {
		handleServiceError(h.log, w, err, "get all testimonials")
		return
	}

	utils.ResponseSuccess(w, testimonials)
}

// CreateTestimonial handles POST /api/testimonials (admin)
func (h *TestimonialHandler) CreateTestimonial(w http.ResponseWriter, r *http.Request) {
	var req request.TestimonialRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body")
		return
	}

	testimonial, err := h.service.CreateTestimonial(r.Context(), &req)
	if err != nil {
		handleServiceError(h.log, w, err, "create testimonial")
		return
	}

	utils.ResponseCreated(w, testimonial)
}

// UpdateTestimonial handles PUT /api/testimonials/{id} (admin)
func (h *TestimonialHandler) UpdateTestimonial(w http.ResponseWriter, r *http.Request) {
	testimonialID := chi.URLParam(r, "id")

	var req request.TestimonialRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body")
		return
	}

	testimonial, err := h.service.UpdateTestimonial(r.Context(), testimonialID, &req)
	if err != nil {
		handleServiceError(h.log, w, err, "update testimonial")
		return
	}

	utils.ResponseSuccess(w, testimonial)
}

// DeleteTestimonial handles DELETE /api/testimonials/{id} (admin)
func (h *TestimonialHandler) DeleteTestimonial(w http.ResponseWriter, r *http.Request) {
	testimonialID := chi.URLParam(r, "id")

	if err := h.service.DeleteTestimonial(r.Context(), testimonialID); err != nil {
		handleServiceError(h.log, w, err, "delete testimonial")
		return
	}

	utils.ResponseMessage(w, "Testimonial deleted successfully")
}
