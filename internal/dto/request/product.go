package request

import "github.com/shopspring/decimal"

// ProductRequest is used for both create and update; edits overwrite the
// whole row. Zero or negative stock and price are accepted; free items
// are legitimate.
type ProductRequest struct {
	Name        string          `json:"name" validate:"required,min=1,max=200"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Stock       int             `json:"stock"`
	CategoryID  string          `json:"categoryId" validate:"required,uuid4"`
	Images      []string        `json:"images"`
	Features    []string        `json:"features"`
	IsFeatured  bool            `json:"isFeatured"`
}

type CategoryRequest struct {
	Name  string `json:"name" validate:"required,min=1,max=100"`
	Image string `json:"image"`
}
