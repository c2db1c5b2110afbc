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

type OrderHandler struct {
	service usecase.OrderService
	log     *zap.Logger
}

func NewOrderHandler(service usecase.OrderService, log *zap.Logger) *OrderHandler {
	return &OrderHandler{
		service: service,
		log:     log.With(zap.String("handler", "order")),
	}
}

// CreateOrder handles POST /api/orders (authenticated checkout)
func (h *OrderHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	var req request.CreateOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body")
		return
	}

	order, err := h.service.CreateOrder(r.Context(), &req)
	if err != nil {
		handleServiceError(h.log, w, err, "create order")
		return
	}

	utils.ResponseCreated(w, order)
}

// GetOrders handles GET /api/orders (admin)
func (h *OrderHandler) GetOrders(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	page := &request.PageRequest{
		Page:  utils.ParseInt(query.Get("page"), 1),
		Limit: utils.ParseInt(query.Get("limit"), 10),
	}
	search := query.Get("search")
	status := query.Get("status")
	userID := query.Get("userId")

	result, err := h.service.GetOrders(r.Context(), page, search, status, userID)
	if err != nil {
		handleServiceError(h.log, w, err, "get orders")
		return
	}

	utils.ResponseSuccess(w, result)
}

// GetOrder handles GET /api/orders/{id}
func (h *OrderHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	orderID := chi.URLParam(r, "id")
	if orderID == "" {
		utils.ResponseBadRequest(w, "Order ID is required")
		return
	}

	order, err := h.service.GetOrderByID(r.Context(), orderID)
	if err != nil {
		handleServiceError(h.log, w, err, "get order")
		return
	}

	utils.ResponseSuccess(w, order)
}

// UpdateOrderStatus handles PUT /api/orders/{id}/status (admin)
func (h *OrderHandler) UpdateOrderStatus(w http.ResponseWriter, r *http.Request) {
	orderID := chi.URLParam(r, "id")

	var req request.UpdateOrderStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body")
		return
	}

	order, err := h.service.UpdateOrderStatus(r.Context(), orderID, &req)
	if err != nil {
		handleServiceError(h.log, w, err, "update order status")
		return
	}

	utils.ResponseSuccess(w, order)
}

// DeleteOrder handles DELETE /api/orders/{id} (admin)
func (h *OrderHandler) DeleteOrder(w http.ResponseWriter, r *http.Request) {
	orderID := chi.URLParam(r, "id")

	if err := h.service.DeleteOrder(r.Context(), orderID); err != nil {
		handleServiceError(h.log, w, err, "delete order")
		return
	}

	utils.ResponseMessage(w, "Order deleted successfully")
}
