package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/Catalinvisual/AuraMarket/internal/data/entity"
	"github.com/Catalinvisual/AuraMarket/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

// ProductFilter mirrors the catalog query params (search, categoryId, isFeatured)
type ProductFilter struct {
	Search     string
	CategoryID *uuid.UUID
	Featured   bool
}

type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error)
	FindAll(ctx context.Context, filter ProductFilter, limit, offset int) ([]*entity.Product, error)
	CountAll(ctx context.Context, filter ProductFilter) (int64, error)
	Update(ctx context.Context, product *entity.Product) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type productRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewProductRepository(db database.PgxIface, log *zap.Logger) ProductRepository {
	return &productRepository{
		db:  db,
		log: log.With(zap.String("repository", "product")),
	}
}

func (r *productRepository) Create(ctx context.Context, product *entity.Product) error {
	query := `
		INSERT INTO products (id, name, description, price, stock, images,
		                     features, is_featured, category_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`

	_, err := r.db.Exec(ctx, query,
		product.ID,
		product.Name,
		product.Description,
		product.Price,
		product.Stock,
		product.Images,
		product.Features,
		product.IsFeatured,
		product.CategoryID,
		product.CreatedAt,
		product.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create product",
			zap.Error(err),
			zap.String("name", product.Name),
		)
		return fmt.Errorf("create product: %w", err)
	}

	return nil
}

func (r *productRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	query := `
		SELECT id, name, description, price, stock, images, features,
		       is_featured, category_id, created_at, updated_at
		FROM products
		WHERE id = $1
	`

	var product entity.Product
	err := r.db.QueryRow(ctx, query, id).Scan(
		&product.ID,
		&product.Name,
		&product.Description,
		&product.Price,
		&product.Stock,
		&product.Images,
		&product.Features,
		&product.IsFeatured,
		&product.CategoryID,
		&product.CreatedAt,
		&product.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find product by ID",
			zap.Error(err),
			zap.String("product_id", id.String()),
		)
		return nil, fmt.Errorf("find product: %w", err)
	}

	return &product, nil
}

// buildProductWhere appends the optional catalog filters; the search is a
// case-insensitive substring match over name and description.
func buildProductWhere(filter ProductFilter, args []interface{}) (string, []interface{}) {
	var conditions []string
	argCount := len(args) + 1

	if filter.Search != "" {
		conditions = append(conditions,
			fmt.Sprintf("(name ILIKE $%d OR description ILIKE $%d)", argCount, argCount))
		args = append(args, "%"+filter.Search+"%")
		argCount++
	}

	if filter.CategoryID != nil {
		conditions = append(conditions, fmt.Sprintf("category_id = $%d", argCount))
		args = append(args, *filter.CategoryID)
		argCount++
	}

	if filter.Featured {
		conditions = append(conditions, "is_featured = TRUE")
	}

	if len(conditions) == 0 {
		return "", args
	}
	return " WHERE " + strings.Join(conditions, " AND "), args
}

func (r *productRepository) FindAll(ctx context.Context, filter ProductFilter, limit, offset int) ([]*entity.Product, error) {
	var queryBuilder strings.Builder
	queryBuilder.WriteString(`
		SELECT id, name, description, price, stock, images, features,
		       is_featured, category_id, created_at, updated_at
		FROM products
	`)

	where, args := buildProductWhere(filter, nil)
	queryBuilder.WriteString(where)

	argCount := len(args) + 1
	queryBuilder.WriteString(fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d OFFSET $%d", argCount, argCount+1))
	args = append(args, limit, offset)

	rows, err := r.db.Query(ctx, queryBuilder.String(), args...)
	if err != nil {
		r.log.Error("Failed to find all products",
			zap.Error(err),
			zap.String("search", filter.Search),
			zap.Int("limit", limit),
			zap.Int("offset", offset),
		)
		return nil, fmt.Errorf("find products: %w", err)
	}
	defer rows.Close()

	var products []*entity.Product
	for rows.Next() {
		var product entity.Product
		err := rows.Scan(
			&product.ID,
			&product.Name,
			&product.Description,
			&product.Price,
			&product.Stock,
			&product.Images,
			&product.Features,
			&product.IsFeatured,
			&product.CategoryID,
			&product.CreatedAt,
			&product.UpdatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan product row", zap.Error(err))
			return nil, fmt.Errorf("scan product: %w", err)
		}
		products = append(products, &product)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate products rows: %w", err)
	}

	r.log.Debug("Products found",
		zap.Int("count", len(products)),
		zap.Int("offset", offset),
		zap.Int("limit", limit),
	)

	return products, nil
}

func (r *productRepository) CountAll(ctx context.Context, filter ProductFilter) (int64, error) {
	query := `SELECT COUNT(*) FROM products`

	where, args := buildProductWhere(filter, nil)
	query += where

	var total int64
	err := r.db.QueryRow(ctx, query, args...).Scan(&total)
	if err != nil {
		r.log.Error("Failed to count products", zap.Error(err))
		return 0, fmt.Errorf("count products: %w", err)
	}

	return total, nil
}

// Update overwrites every column; edits are wholesale, not field-level diffs.
func (r *productRepository) Update(ctx context.Context, product *entity.Product) error {
	query := `
		UPDATE products
		SET name = $2, description = $3, price = $4, stock = $5, images = $6,
		    features = $7, is_featured = $8, category_id = $9, updated_at = $10
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		product.ID,
		product.Name,
		product.Description,
		product.Price,
		product.Stock,
		product.Images,
		product.Features,
		product.IsFeatured,
		product.CategoryID,
		product.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to update product",
			zap.Error(err),
			zap.String("product_id", product.ID.String()),
		)
		return fmt.Errorf("update product: %w", err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("product not found")
	}

	return nil
}

func (r *productRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM products WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete product",
			zap.Error(err),
			zap.String("product_id", id.String()),
		)
		return fmt.Errorf("delete product: %w", err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("product not found")
	}

	r.log.Info("Product deleted", zap.String("product_id", id.String()))
	return nil
}
