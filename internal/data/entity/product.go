package entity

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Product struct {
	Base
	Name        string          `db:"name"`
	Description string          `db:"description"`
	Price       decimal.Decimal `db:"price"`
	Stock       int             `db:"stock"`
	Images      []string        `db:"images"`
	Features    []string        `db:"features"`
	IsFeatured  bool            `db:"is_featured"`
	CategoryID  uuid.UUID       `db:"category_id"`
}
