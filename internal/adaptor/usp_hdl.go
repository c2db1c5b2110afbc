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

type UspHandler struct {
	service usecase.UspService
	log     *zap.Logger
}

func NewUspHandler(service usecase.UspService, log *zap.Logger) *UspHandler {
	return &UspHandler{
		service: service,
		log:     log.With(zap.String("handler", "usp")),
	}
}

// GetUsps handles GET /api/usp (public)
func (h *UspHandler) GetUsps(w http.ResponseWriter, r *http.Request) {
	usps, err := h.service.GetUsps(r.Context())
	if err != nil {
		handleServiceError(h.log, w, err, "get usp items")
		return
	}

	utils.ResponseSuccess(w, usps)
}

// CreateUsp handles POST /api/usp (admin)
func (h *UspHandler) CreateUsp(w http.ResponseWriter, r *http.Request) {
	var req request.UspRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body")
		return
	}

	usp, err := h.service.CreateUsp(r.Context(), &req)
	if err != nil {
		handleServiceError(h.log, w, err, "create usp item")
		return
	}

	utils.ResponseCreated(w, usp)
}

// UpdateUsp handles PUT /api/usp/{id} (admin)
func (h *UspHandler) UpdateUsp(w http.ResponseWriter, r *http.Request) {
	uspID := chi.URLParam(r, "id")

	var req request.UspRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body")
		return
	}

	usp, err := h.service.UpdateUsp(r.Context(), uspID, &req)
	if err != nil {
		handleServiceError(h.log, w, err, "update usp item")
		return
	}

	utils.ResponseSuccess(w, usp)
}

// DeleteUsp handles DELETE /api/usp/{id} (admin)
func (h *UspHandler) DeleteUsp(w http.ResponseWriter, r *http.Request) {
	uspID := chi.URLParam(r, "id")

	if err := h.service.DeleteUsp(r.Context(), uspID); err != nil {
		handleServiceError(h.log, w, err, "delete usp item")
		return
	}

	utils.ResponseMessage(w, "USP deleted successfully")
}
