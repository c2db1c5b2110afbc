package request

import "github.com/shopspring/decimal"

type OrderItemRequest struct {
	ProductID string          `json:"productId" validate:"required,uuid4"`
	Quantity  int             `json:"quantity" validate:"required,min=1"`
	Price     decimal.Decimal `json:"price"`
}

type AddressRequest struct {
	Street  string `json:"street"`
	City    string `json:"city"`
	Zip     string `json:"zip"`
	Country string `json:"country"`
	State   string `json:"state"`
}

// CreateOrderRequest is the denormalized checkout payload: the client sends
// the cart lines with prices it saw, plus the precomputed total.
type CreateOrderRequest struct {
	UserID  string             `json:"userId" validate:"required,uuid4"`
	Items   []OrderItemRequest `json:"items" validate:"required,min=1,dive"`
	Total   decimal.Decimal    `json:"total"`
	Address *AddressRequest    `json:"address,omitempty"`
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=PENDING PROCESSING SHIPPED DELIVERED CANCELLED"`
}
