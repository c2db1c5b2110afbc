package entity

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type OrderStatus string

// Suggested linear flow; transitions are not enforced server-side,
// any admin update can set any value.
const (
	OrderStatusPending    OrderStatus = "PENDING"
	OrderStatusProcessing OrderStatus = "PROCESSING"
	OrderStatusShipped    OrderStatus = "SHIPPED"
	OrderStatusDelivered  OrderStatus = "DELIVERED"
	OrderStatusCancelled  OrderStatus = "CANCELLED"
)

type Order struct {
	Base
	UserID uuid.UUID       `db:"user_id"`
	Status OrderStatus     `db:"status"`
	Total  decimal.Decimal `db:"total"`
}

// OrderItem captures the price at order time, not the live product price.
type OrderItem struct {
	BaseSimple
	OrderID   uuid.UUID       `db:"order_id"`
	ProductID uuid.UUID       `db:"product_id"`
	Quantity  int             `db:"quantity"`
	Price     decimal.Decimal `db:"price"`
}
