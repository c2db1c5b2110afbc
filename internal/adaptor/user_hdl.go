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

type UserHandler struct {
	service usecase.UserService
	log     *zap.Logger
}

func NewUserHandler(service usecase.UserService, log *zap.Logger) *UserHandler {
	return &UserHandler{
		service: service,
		log:     log.With(zap.String("handler", "user")),
	}
}

// GetUsers handles GET /api/users (admin)
func (h *UserHandler) GetUsers(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	page := &request.PageRequest{
		Page:  utils.ParseInt(query.Get("page"), 1),
		Limit: utils.ParseInt(query.Get("limit"), 10),
	}
	search := query.Get("search")

	result, err := h.service.GetUsers(r.Context(), page, search)
	if err != nil {
		handleServiceError(h.log, w, err, "get users")
		return
	}

	utils.ResponseSuccess(w, result)
}

// UpdateUser handles PUT /api/users/{id} (admin)
func (h *UserHandler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "id")

	var req request.UpdateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body")
		return
	}

	user, err := h.service.UpdateUser(r.Context(), userID, &req)
	if err != nil {
		handleServiceError(h.log, w, err, "update user")
		return
	}

	utils.ResponseSuccess(w, user)
}

// DeleteUser handles DELETE /api/users/{id} (admin)
func (h *UserHandler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "id")

	if err := h.service.DeleteUser(r.Context(), userID); err != nil {
		handleServiceError(h.log, w, err, "delete user")
		return
	}

	utils.ResponseMessage(w, "User deleted successfully")
}
