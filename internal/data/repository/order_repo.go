package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/Catalinvisual/AuraMarket/internal/data/entity"
	"github.com/Catalinvisual/AuraMarket/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// OrderFilter mirrors the admin order list query params. Search matches an
// order id substring or the customer name.
type OrderFilter struct {
	Search string
	Status *entity.OrderStatus
	UserID *uuid.UUID
}

type OrderRepository interface {
	// Create inserts the order and its items in one transaction
	Create(ctx context.Context, order *entity.Order, items []*entity.OrderItem) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error)
	FindAll(ctx context.Context, filter OrderFilter, limit, offset int) ([]*entity.Order, error)
	CountAll(ctx context.Context, filter OrderFilter) (int64, error)
	FindRecent(ctx context.Context, limit int) ([]*entity.Order, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status entity.OrderStatus) error
	Delete(ctx context.Context, id uuid.UUID) error

	// SumTotalByStatus backs the dashboard revenue figure
	SumTotalByStatus(ctx context.Context, status entity.OrderStatus) (decimal.Decimal, error)
}

type orderRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewOrderRepository(db database.PgxIface, log *zap.Logger) OrderRepository {
	return &orderRepository{
		db:  db,
		log: log.With(zap.String("repository", "order")),
	}
}

func (r *orderRepository) Create(ctx context.Context, order *entity.Order, items []*entity.OrderItem) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback(ctx)

	orderQuery := `
		INSERT INTO orders (id, user_id, status, total, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	if _, err := tx.Exec(ctx, orderQuery,
		order.ID,
		order.UserID,
		order.Status,
		order.Total,
		order.CreatedAt,
		order.UpdatedAt,
	); err != nil {
		r.log.Error("Failed to create order",
			zap.Error(err),
			zap.String("user_id", order.UserID.String()),
		)
		return fmt.Errorf("create order: %w", err)
	}

	itemQuery := `
		INSERT INTO order_items (id, order_id, product_id, quantity, price, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	for _, item := range items {
		if _, err := tx.Exec(ctx, itemQuery,
			item.ID,
			item.OrderID,
			item.ProductID,
			item.Quantity,
			item.Price,
			item.CreatedAt,
		); err != nil {
			r.log.Error("Failed to create order item",
				zap.Error(err),
				zap.String("order_id", order.ID.String()),
				zap.String("product_id", item.ProductID.String()),
			)
			return fmt.Errorf("create order item: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit order tx: %w", err)
	}

	return nil
}

func (r *orderRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	query := `
		SELECT id, user_id, status, total, created_at, updated_at
		FROM orders
		WHERE id = $1
	`

	var order entity.Order
	err := r.db.QueryRow(ctx, query, id).Scan(
		&order.ID,
		&order.UserID,
		&order.Status,
		&order.Total,
		&order.CreatedAt,
		&order.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find order by ID",
			zap.Error(err),
			zap.String("order_id", id.String()),
		)
		return nil, fmt.Errorf("find order: %w", err)
	}

	return &order, nil
}

// buildOrderWhere appends the optional list filters. The id substring match
// casts the uuid column to text, same as the original contains-search.
func buildOrderWhere(filter OrderFilter) (string, []interface{}) {
	var conditions []string
	var args []interface{}
	argCount := 1

	if filter.UserID != nil {
		conditions = append(conditions, fmt.Sprintf("o.user_id = $%d", argCount))
		args = append(args, *filter.UserID)
		argCount++
	}

	if filter.Search != "" {
		conditions = append(conditions,
			fmt.Sprintf("(o.id::text ILIKE $%d OR u.name ILIKE $%d)", argCount, argCount))
		args = append(args, "%"+filter.Search+"%")
		argCount++
	}

	if filter.Status != nil {
		conditions = append(conditions, fmt.Sprintf("o.status = $%d", argCount))
		args = append(args, *filter.Status)
	}

	if len(conditions) == 0 {
		return "", args
	}
	return " WHERE " + strings.Join(conditions, " AND "), args
}

func (r *orderRepository) FindAll(ctx context.Context, filter OrderFilter, limit, offset int) ([]*entity.Order, error) {
	var queryBuilder strings.Builder
	queryBuilder.WriteString(`
		SELECT o.id, o.user_id, o.status, o.total, o.created_at, o.updated_at
		FROM orders o
		JOIN users u ON u.id = o.user_id
	`)

	where, args := buildOrderWhere(filter)
	queryBuilder.WriteString(where)

	argCount := len(args) + 1
	queryBuilder.WriteString(fmt.Sprintf(" ORDER BY o.created_at DESC LIMIT $%d OFFSET $%d", argCount, argCount+1))
	args = append(args, limit, offset)

	rows, err := r.db.Query(ctx, queryBuilder.String(), args...)
	if err != nil {
		r.log.Error("Failed to find all orders",
			zap.Error(err),
			zap.String("search", filter.Search),
			zap.Int("limit", limit),
			zap.Int("offset", offset),
		)
		return nil, fmt.Errorf("find orders: %w", err)
	}
	defer rows.Close()

	return scanOrders(rows, r.log)
}

func (r *orderRepository) CountAll(ctx context.Context, filter OrderFilter) (int64, error) {
	query := `SELECT COUNT(*) FROM orders o JOIN users u ON u.id = o.user_id`

	where, args := buildOrderWhere(filter)
	query += where

	var total int64
	err := r.db.QueryRow(ctx, query, args...).Scan(&total)
	if err != nil {
		r.log.Error("Failed to count orders", zap.Error(err))
		return 0, fmt.Errorf("count orders: %w", err)
	}

	return total, nil
}

func (r *orderRepository) FindRecent(ctx context.Context, limit int) ([]*entity.Order, error) {
	query := `
		SELECT id, user_id, status, total, created_at, updated_at
		FROM orders
		ORDER BY created_at DESC
		LIMIT $1
	`

	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		r.log.Error("Failed to find recent orders", zap.Error(err), zap.Int("limit", limit))
		return nil, fmt.Errorf("find recent orders: %w", err)
	}
	defer rows.Close()

	return scanOrders(rows, r.log)
}

// UpdateStatus overwrites the status unconditionally; there is no
// transition validation against the current state.
func (r *orderRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.OrderStatus) error {
	query := `UPDATE orders SET status = $2, updated_at = NOW() WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id, status)
	if err != nil {
		r.log.Error("Failed to update order status",
			zap.Error(err),
			zap.String("order_id", id.String()),
			zap.String("status", string(status)),
		)
		return fmt.Errorf("update order status: %w", err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("order not found")
	}

	return nil
}

func (r *orderRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM orders WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete order",
			zap.Error(err),
			zap.String("order_id", id.String()),
		)
		return fmt.Errorf("delete order: %w", err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("order not found")
	}

	r.log.Info("Order deleted", zap.String("order_id", id.String()))
	return nil
}

func (r *orderRepository) SumTotalByStatus(ctx context.Context, status entity.OrderStatus) (decimal.Decimal, error) {
	query := `SELECT COALESCE(SUM(total), 0) FROM orders WHERE status = $1`

	var sum decimal.Decimal
	err := r.db.QueryRow(ctx, query, status).Scan(&sum)
	if err != nil {
		r.log.Error("Failed to sum order totals",
			zap.Error(err),
			zap.String("status", string(status)),
		)
		return decimal.Zero, fmt.Errorf("sum order totals: %w", err)
	}

	return sum, nil
}

func scanOrders(rows pgx.Rows, log *zap.Logger) ([]*entity.Order, error) {
	var orders []*entity.Order
	for rows.Next() {
		var order entity.Order
		err := rows.Scan(
			&order.ID,
			&order.UserID,
			&order.Status,
			&order.Total,
			&order.CreatedAt,
			&order.UpdatedAt,
		)
		if err != nil {
			log.Error("Failed to scan order row", zap.Error(err))
			return nil, fmt.Errorf("scan order: %w", err)
		}
		orders = append(orders, &order)
	}

	if err := rows.Err(); err != nil {
		log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate orders rows: %w", err)
	}

	return orders, nil
}
