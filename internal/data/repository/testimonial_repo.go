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

type TestimonialRepository interface {
	Create(ctx context.Context, testimonial *entity.Testimonial) error
	CreateBatch(ctx context.Context, testimonials []*entity.Testimonial) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Testimonial, error)
	FindAll(ctx context.Context, activeOnly bool) ([]*entity.Testimonial, error)
	CountAll(ctx context.Context) (int64, error)
	Update(ctx context.Context, testimonial *entity.Testimonial) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type testimonialRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewTestimonialRepository(db database.PgxIface, log *zap.Logger) TestimonialRepository {
	return &testimonialRepository{
		db:  db,
		log: log.With(zap.String("repository", "testimonial")),
	}
}

const testimonialInsert = `
	INSERT INTO testimonials (id, name, role, content, rating, avatar,
	                         video_url, is_active, created_at, updated_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
`

func (r *testimonialRepository) Create(ctx context.Context, testimonial *entity.Testimonial) error {
	_, err := r.db.Exec(ctx, testimonialInsert,
		testimonial.ID,
		testimonial.Name,
		testimonial.Role,
		testimonial.Content,
		testimonial.Rating,
		testimonial.Avatar,
		testimonial.VideoURL,
		testimonial.IsActive,
		testimonial.CreatedAt,
		testimonial.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create testimonial",
			zap.Error(err),
			zap.String("name", testimonial.Name),
		)
		return fmt.Errorf("create testimonial: %w", err)
	}

	return nil
}

func (r *testimonialRepository) CreateBatch(ctx context.Context, testimonials []*entity.Testimonial) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback(ctx)

	for _, testimonial := range testimonials {
		if _, err := tx.Exec(ctx, testimonialInsert,
			testimonial.ID,
			testimonial.Name,
			testimonial.Role,
			testimonial.Content,
			testimonial.Rating,
			testimonial.Avatar,
			testimonial.VideoURL,
			testimonial.IsActive,
			testimonial.CreatedAt,
			testimonial.UpdatedAt,
		); err != nil {
			r.log.Error("Failed to batch insert testimonial",
				zap.Error(err),
				zap.String("name", testimonial.Name),
			)
			return fmt.Errorf("batch insert testimonial: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}

	return nil
}

func (r *testimonialRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Testimonial, error) {
	query := `
		SELECT id, name, role, content, rating, avatar, video_url,
		       is_active, created_at, updated_at
		FROM testimonials
		WHERE id = $1
	`

	var testimonial entity.Testimonial
	err := r.db.QueryRow(ctx, query, id).Scan(
		&testimonial.ID,
		&testimonial.Name,
		&testimonial.Role,
		&testimonial.Content,
		&testimonial.Rating,
		&testimonial.Avatar,
		&testimonial.VideoURL,
		&testimonial.IsActive,
		&testimonial.CreatedAt,
		&testimonial.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find testimonial by ID",
			zap.Error(err),
			zap.String("testimonial_id", id.String()),
		)
		return nil, fmt.Errorf("find testimonial: %w", err)
	}

	return &testimonial, nil
}

func (r *testimonialRepository) FindAll(ctx context.Context, activeOnly bool) ([]*entity.Testimonial, error) {
	var queryBuilder strings.Builder
	queryBuilder.WriteString(`
		SELECT id, name, role, content, rating, avatar, video_url,
		       is_active, created_at, updated_at
		FROM testimonials
	`)

	if activeOnly {
		queryBuilder.WriteString(" WHERE is_active = TRUE")
	}

	queryBuilder.WriteString(" ORDER BY created_at DESC")

	rows, err := r.db.Query(ctx, queryBuilder.String())
	if err != nil {
		r.log.Error("Failed to find testimonials",
			zap.Error(err),
			zap.Bool("active_only", activeOnly),
		)
		return nil, fmt.Errorf("find testimonials: %w", err)
	}
	defer rows.Close()

	var testimonials []*entity.Testimonial
	for rows.Next() {
		var testimonial entity.Testimonial
		err := rows.Scan(
			&testimonial.ID,
			&testimonial.Name,
			&testimonial.Role,
			&testimonial.Content,
			&testimonial.Rating,
			&testimonial.Avatar,
			&testimonial.VideoURL,
			&testimonial.IsActive,
			&testimonial.CreatedAt,
			&testimonial.UpdatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan testimonial row", zap.Error(err))
			return nil, fmt.Errorf("scan testimonial: %w", err)
		}
		testimonials = append(testimonials, &testimonial)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate testimonials rows: %w", err)
	}

	return testimonials, nil
}

func (r *testimonialRepository) CountAll(ctx context.Context) (int64, error) {
	query := `SELECT COUNT(*) FROM testimonials`

	var total int64
	err := r.db.QueryRow(ctx, query).Scan(&total)
	if err != nil {
		r.log.Error("Failed to count testimonials", zap.Error(err))
		return 0, fmt.Errorf("count testimonials: %w", err)
	}

	return total, nil
}

func (r *testimonialRepository) Update(ctx context.Context, testimonial *entity.Testimonial) error {
	query := `
		UPDATE testimonials
		SET name = $2, role = $3, content = $4, rating = $5, avatar = $6,
		    video_url = $7, is_active = $8, updated_at = $9
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		testimonial.ID,
		testimonial.Name,
		testimonial.Role,
		testimonial.Content,
		testimonial.Rating,
		testimonial.Avatar,
		testimonial.VideoURL,
		testimonial.IsActive,
		testimonial.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to update testimonial",
			zap.Error(err),
			zap.String("testimonial_id", testimonial.ID.String()),
		)
		return fmt.Errorf("update testimonial: %w", err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("testimonial not found")
	}

	return nil
}

func (r *testimonialRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM testimonials WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete testimonial",
			zap.Error(err),
			zap.String("testimonial_id", id.String()),
		)
		return fmt.Errorf("delete testimonial: %w", err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("testimonial not found")
	}

	return nil
}
