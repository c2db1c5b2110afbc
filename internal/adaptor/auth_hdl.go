package adaptor

import (
	"encoding/json"
	"net/http"

	"github.com/Catalinvisual/AuraMarket/internal/dto/request"
	"github.com/Catalinvisual/AuraMarket/internal/usecase"
	"github.com/Catalinvisual/AuraMarket/pkg/utils"

	"go.uber.org/zap"
)

type AuthHandler struct {
	service usecase.AuthService
	log     *zap.Logger
}

func NewAuthHandler(service usecase.AuthService, log *zap.Logger) *AuthHandler {
	return &AuthHandler{
		service: service,
		log:     log.With(zap.String("handler", "auth")),
	}
}

// Login handles POST /api/auth/login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req request.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body")
		return
	}

	result, err := h.service.Login(r.Context(), &req)
	if err != nil {
		handleServiceError(h.log, w, err, "login")
		return
	}

	utils.ResponseSuccess(w, result)
}

// Register handles POST /api/auth/register. Self-service signup is not
// offered; accounts are provisioned by an admin.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	utils.ResponseNotImplemented(w, "Not implemented")
}
