package repository

import (
	"context"
	"fmt"

	"github.com/Catalinvisual/AuraMarket/internal/data/entity"
	"github.com/Catalinvisual/AuraMarket/pkg/database"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type OrderItemRepository interface {
	FindByOrderID(ctx context.Context, orderID uuid.UUID) ([]*entity.OrderItem, error)
	DeleteByOrderID(ctx context.Context, orderID uuid.UUID) error
}

type orderItemRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewOrderItemRepository(db database.PgxIface, log *zap.Logger) OrderItemRepository {
	return &orderItemRepository{
		db:  db,
		log: log.With(zap.String("repository", "order_item")),
	}
}

func (r *orderItemRepository) FindByOrderID(ctx context.Context, orderID uuid.UUID) ([]*entity.OrderItem, error) {
	query := `
		SELECT id, order_id, product_id, quantity, price, created_at
		FROM order_items
		WHERE order_id = $1
		ORDER BY created_at ASC
	`

	rows, err := r.db.Query(ctx, query, orderID)
	if err != nil {
		r.log.Error("Failed to find order items",
			zap.Error(err),
			zap.String("order_id", orderID.String()),
		)
		return nil, fmt.Errorf("find order items: %w", err)
	}
	defer rows.Close()

	var items []*entity.OrderItem
	for rows.Next() {
		var item entity.OrderItem
		err := rows.Scan(
			&item.ID,
			&item.OrderID,
			&item.ProductID,
			&item.Quantity,
			&item.Price,
			&item.CreatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan order item row", zap.Error(err))
			return nil, fmt.Errorf("scan order item: %w", err)
		}
		items = append(items, &item)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate order items rows: %w", err)
	}

	return items, nil
}

func (r *orderItemRepository) DeleteByOrderID(ctx context.Context, orderID uuid.UUID) error {
	query := `DELETE FROM order_items WHERE order_id = $1`

	if _, err := r.db.Exec(ctx, query, orderID); err != nil {
		r.log.Error("Failed to delete order items",
			zap.Error(err),
			zap.String("order_id", orderID.String()),
		)
		return fmt.Errorf("delete order items: %w", err)
	}

	return nil
}
