package repository

import (
	"context"
	"fmt"

	"github.com/Catalinvisual/AuraMarket/internal/data/entity"
	"github.com/Catalinvisual/AuraMarket/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type CategoryRepository interface {
	Create(ctx context.Context, category *entity.Category) error
	CreateBatch(ctx context.Context, categories []*entity.Category) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Category, error)
	FindAll(ctx context.Context) ([]*entity.Category, error)
	CountAll(ctx context.Context) (int64, error)
}

type categoryRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewCategoryRepository(db database.PgxIface, log *zap.Logger) CategoryRepository {
	return &categoryRepository{
		db:  db,
		log: log.With(zap.String("repository", "category")),
	}
}

func (r *categoryRepository) Create(ctx context.Context, category *entity.Category) error {
	query := `
		INSERT INTO categories (id, name, image, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := r.db.Exec(ctx, query,
		category.ID,
		category.Name,
		category.Image,
		category.CreatedAt,
		category.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create category",
			zap.Error(err),
			zap.String("name", category.Name),
		)
		return fmt.Errorf("create category %s: %w", category.Name, err)
	}

	return nil
}

func (r *categoryRepository) CreateBatch(ctx context.Context, categories []*entity.Category) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback(ctx)

	query := `
		INSERT INTO categories (id, name, image, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
	`

	for _, category := range categories {
		if _, err := tx.Exec(ctx, query,
			category.ID,
			category.Name,
			category.Image,
			category.CreatedAt,
			category.UpdatedAt,
		); err != nil {
			r.log.Error("Failed to batch insert category",
				zap.Error(err),
				zap.String("name", category.Name),
			)
			return fmt.Errorf("batch insert category %s: %w", category.Name, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}

	return nil
}

func (r *categoryRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Category, error) {
	query := `
		SELECT id, name, image, created_at, updated_at
		FROM categories
		WHERE id = $1
	`

	var category entity.Category
	err := r.db.QueryRow(ctx, query, id).Scan(
		&category.ID,
		&category.Name,
		&category.Image,
		&category.CreatedAt,
		&category.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find category by ID",
			zap.Error(err),
			zap.String("category_id", id.String()),
		)
		return nil, fmt.Errorf("find category %s: %w", id.String(), err)
	}

	return &category, nil
}

func (r *categoryRepository) FindAll(ctx context.Context) ([]*entity.Category, error) {
	query := `
		SELECT id, name, image, created_at, updated_at
		FROM categories
		ORDER BY name ASC
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to find all categories", zap.Error(err))
		return nil, fmt.Errorf("find categories: %w", err)
	}
	defer rows.Close()

	var categories []*entity.Category
	for rows.Next() {
		var category entity.Category
		err := rows.Scan(
			&category.ID,
			&category.Name,
			&category.Image,
			&category.CreatedAt,
			&category.UpdatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan category row", zap.Error(err))
			return nil, fmt.Errorf("scan category: %w", err)
		}
		categories = append(categories, &category)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate categories rows: %w", err)
	}

	return categories, nil
}

func (r *categoryRepository) CountAll(ctx context.Context) (int64, error) {
	query := `SELECT COUNT(*) FROM categories`

	var total int64
	err := r.db.QueryRow(ctx, query).Scan(&total)
	if err != nil {
		r.log.Error("Failed to count categories", zap.Error(err))
		return 0, fmt.Errorf("count categories: %w", err)
	}

	return total, nil
}
