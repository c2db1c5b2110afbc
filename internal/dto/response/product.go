package response

import (
	"time"

	"github.com/Catalinvisual/AuraMarket/internal/data/entity"

	"github.com/shopspring/decimal"
)

type CategoryResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Image string `json:"image"`
}

type ProductResponse struct {
	ID          string            `json:"id"`
	Name        string            `json:"name"`
	Description string            `json:"description"`
	Price       decimal.Decimal   `json:"price"`
	Stock       int               `json:"stock"`
	Images      []string          `json:"images"`
	Features    []string          `json:"features"`
	IsFeatured  bool              `json:"isFeatured"`
	CategoryID  string            `json:"categoryId"`
	Category    *CategoryResponse `json:"category,omitempty"`
	CreatedAt   time.Time         `json:"createdAt"`
	UpdatedAt   time.Time         `json:"updatedAt"`
}

// ProductListResponse matches the storefront contract:
// {products, total, page, totalPages}
type ProductListResponse struct {
	Products   []ProductResponse `json:"products"`
	Total      int64             `json:"total"`
	Page       int               `json:"page"`
	TotalPages int               `json:"totalPages"`
}

// Helper converters
func CategoryToResponse(category *entity.Category) *CategoryResponse {
	if category == nil {
		return nil
	}
	return &CategoryResponse{
		ID:    category.ID.String(),
		Name:  category.Name,
		Image: category.Image,
	}
}

func ProductToResponse(product *entity.Product, category *entity.Category) ProductResponse {
	images := product.Images
	if images == nil {
		images = []string{}
	}
	features := product.Features
	if features == nil {
		features = []string{}
	}

	return ProductResponse{
		ID:          product.ID.String(),
		Name:        product.Name,
		Description: product.Description,
		Price:       product.Price,
		Stock:       product.Stock,
		Images:      images,
		Features:    features,
		IsFeatured:  product.IsFeatured,
		CategoryID:  product.CategoryID.String(),
		Category:    CategoryToResponse(category),
		CreatedAt:   product.CreatedAt,
		UpdatedAt:   product.UpdatedAt,
	}
}
