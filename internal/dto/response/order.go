package response

import (
	"time"

	"github.com/Catalinvisual/AuraMarket/internal/data/entity"

	"github.com/shopspring/decimal"
)

// OrderUser is the embedded customer summary on order rows
type OrderUser struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

type OrderItemResponse struct {
	ID        string           `json:"id"`
	ProductID string           `json:"productId"`
	Quantity  int              `json:"quantity"`
	Price     decimal.Decimal  `json:"price"`
	Product   *ProductResponse `json:"product,omitempty"`
}

type OrderResponse struct {
	ID        string              `json:"id"`
	UserID    string              `json:"userId"`
	Status    entity.OrderStatus  `json:"status"`
	Total     decimal.Decimal     `json:"total"`
	CreatedAt time.Time           `json:"createdAt"`
	User      *OrderUser          `json:"user,omitempty"`
	Items     []OrderItemResponse `json:"items"`
}

// OrderListResponse matches the admin contract:
// {orders, total, page, totalPages}
type OrderListResponse struct {
	Orders     []OrderResponse `json:"orders"`
	Total      int64           `json:"total"`
	Page       int             `json:"page"`
	TotalPages int             `json:"totalPages"`
}

// Helper converters
func OrderItemToResponse(item *entity.OrderItem, product *ProductResponse) OrderItemResponse {
	return OrderItemResponse{
		ID:        item.ID.String(),
		ProductID: item.ProductID.String(),
		Quantity:  item.Quantity,
		Price:     item.Price,
		Product:   product,
	}
}

func OrderToResponse(order *entity.Order, user *OrderUser, items []OrderItemResponse) OrderResponse {
	if items == nil {
		items = []OrderItemResponse{}
	}
	return OrderResponse{
		ID:        order.ID.String(),
		UserID:    order.UserID.String(),
		Status:    order.Status,
		Total:     order.Total,
		CreatedAt: order.CreatedAt,
		User:      user,
		Items:     items,
	}
}
