package repository

import (
	"context"
	"fmt"

	"github.com/Catalinvisual/AuraMarket/internal/data/entity"
	"github.com/Catalinvisual/AuraMarket/pkg/database"

	"go.uber.org/zap"
)

type AddressRepository interface {
	Create(ctx context.Context, address *entity.Address) error
}

type addressRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewAddressRepository(db database.PgxIface, log *zap.Logger) AddressRepository {
	return &addressRepository{
		db:  db,
		log: log.With(zap.String("repository", "address")),
	}
}

func (r *addressRepository) Create(ctx context.Context, address *entity.Address) error {
	query := `
		INSERT INTO addresses (id, user_id, street, city, zip, country, state, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := r.db.Exec(ctx, query,
		address.ID,
		address.UserID,
		address.Street,
		address.City,
		address.Zip,
		address.Country,
		address.State,
		address.CreatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create address",
			zap.Error(err),
			zap.String("user_id", address.UserID.String()),
		)
		return fmt.Errorf("create address: %w", err)
	}

	return nil
}
