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

type UspRepository interface {
	Create(ctx context.Context, usp *entity.UspItem) error
	CreateBatch(ctx context.Context, usps []*entity.UspItem) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.UspItem, error)
	FindAll(ctx context.Context) ([]*entity.UspItem, error)
	Update(ctx context.Context, usp *entity.UspItem) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type uspRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewUspRepository(db database.PgxIface, log *zap.Logger) UspRepository {
	return &uspRepository{
		db:  db,
		log: log.With(zap.String("repository", "usp")),
	}
}

const uspInsert = `
	INSERT INTO usp_items (id, icon, title, subtitle, display_order, created_at, updated_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7)
`

func (r *uspRepository) Create(ctx context.Context, usp *entity.UspItem) error {
	_, err := r.db.Exec(ctx, uspInsert,
		usp.ID,
		usp.Icon,
		usp.Title,
		usp.Subtitle,
		usp.DisplayOrder,
		usp.CreatedAt,
		usp.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create USP item",
			zap.Error(err),
			zap.String("title", usp.Title),
		)
		return fmt.Errorf("create usp item: %w", err)
	}

	return nil
}

func (r *uspRepository) CreateBatch(ctx context.Context, usps []*entity.UspItem) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback(ctx)

	for _, usp := range usps {
		if _, err := tx.Exec(ctx, uspInsert,
			usp.ID,
			usp.Icon,
			usp.Title,
			usp.Subtitle,
			usp.DisplayOrder,
			usp.CreatedAt,
			usp.UpdatedAt,
		); err != nil {
			r.log.Error("Failed to batch insert USP item",
				zap.Error(err),
				zap.String("title", usp.Title),
			)
			return fmt.Errorf("batch insert usp item: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}

	return nil
}

func (r *uspRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.UspItem, error) {
	query := `
		SELECT id, icon, title, subtitle, display_order, created_at, updated_at
		FROM usp_items
		WHERE id = $1
	`

	var usp entity.UspItem
	err := r.db.QueryRow(ctx, query, id).Scan(
		&usp.ID,
		&usp.Icon,
		&usp.Title,
		&usp.Subtitle,
		&usp.DisplayOrder,
		&usp.CreatedAt,
		&usp.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find USP item by ID",
			zap.Error(err),
			zap.String("usp_id", id.String()),
		)
		return nil, fmt.Errorf("find usp item: %w", err)
	}

	return &usp, nil
}

func (r *uspRepository) FindAll(ctx context.Context) ([]*entity.UspItem, error) {
	query := `
		SELECT id, icon, title, subtitle, display_order, created_at, updated_at
		FROM usp_items
		ORDER BY display_order ASC
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to find USP items", zap.Error(err))
		return nil, fmt.Errorf("find usp items: %w", err)
	}
	defer rows.Close()

	var usps []*entity.UspItem
	for rows.Next() {
		var usp entity.UspItem
		err := rows.Scan(
			&usp.ID,
			&usp.Icon,
			&usp.Title,
			&usp.Subtitle,
			&usp.DisplayOrder,
			&usp.CreatedAt,
			&usp.UpdatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan USP row", zap.Error(err))
			return nil, fmt.Errorf("scan usp item: %w", err)
		}
		usps = append(usps, &usp)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate usp rows: %w", err)
	}

	return usps, nil
}

func (r *uspRepository) Update(ctx context.Context, usp *entity.UspItem) error {
	query := `
		UPDATE usp_items
		SET icon = $2, title = $3, subtitle = $4, display_order = $5, updated_at = $6
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		usp.ID,
		usp.Icon,
		usp.Title,
		usp.Subtitle,
		usp.DisplayOrder,
		usp.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to update USP item",
			zap.Error(err),
			zap.String("usp_id", usp.ID.String()),
		)
		return fmt.Errorf("update usp item: %w", err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("usp item not found")
	}

	return nil
}

func (r *uspRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM usp_items WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete USP item",
			zap.Error(err),
			zap.String("usp_id", id.String()),
		)
		return fmt.Errorf("delete usp item: %w", err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("usp item not found")
	}

	return nil
}
