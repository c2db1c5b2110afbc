package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/Catalinvisual/AuraMarket/internal/data/entity"
	"github.com/Catalinvisual/AuraMarket/internal/data/repository"
	"github.com/Catalinvisual/AuraMarket/internal/dto/request"
	"github.com/Catalinvisual/AuraMarket/internal/dto/response"
	"github.com/Catalinvisual/AuraMarket/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// defaultCategories seeds the catalog the first time the storefront asks
// for categories and none exist yet.
var defaultCategories = []string{
	"Electronics",
	"Clothing",
	"Home & Garden",
	"Books",
	"Sports",
	"Toys",
	"Beauty",
	"Automotive",
}

type ProductService interface {
	GetProducts(ctx context.Context, page *request.PageRequest, search, categoryID string, featured bool) (*response.ProductListResponse, error)
	GetProductByID(ctx context.Context, productID string) (*response.ProductResponse, error)
	CreateProduct(ctx context.Context, req *request.ProductRequest) (*response.ProductResponse, error)
	UpdateProduct(ctx context.Context, productID string, req *request.ProductRequest) (*response.ProductResponse, error)
	DeleteProduct(ctx context.Context, productID string) error
	GetCategories(ctx context.Context) ([]response.CategoryResponse, error)
	CreateCategory(ctx context.Context, req *request.CategoryRequest) (*response.CategoryResponse, error)
}

type productService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewProductService(
	repo *repository.Repository,
	log *zap.Logger,
) ProductService {
	return &productService{
		repo: repo,
		log:  log.With(zap.String("service", "product")),
	}
}

func (s *productService) GetProducts(ctx context.Context, page *request.PageRequest, search, categoryID string, featured bool) (*response.ProductListResponse, error) {
	filter := repository.ProductFilter{
		Search:   search,
		Featured: featured,
	}
	if categoryID != "" {
		id, err := uuid.Parse(categoryID)
		if err != nil {
			s.log.Warn("Invalid category ID format",
				zap.String("category_id", categoryID),
				zap.Error(err),
			)
			return nil, fmt.Errorf("invalid category id: %w", err)
		}
		filter.CategoryID = &id
	}

	limit := page.Take()
	offset := page.Offset()

	products, err := s.repo.Product.FindAll(ctx, filter, limit, offset)
	if err != nil {
		s.log.Error("Failed to get products",
			zap.Error(err),
			zap.Int("page", page.Page),
			zap.Int("limit", limit),
			zap.String("search", search),
		)
		return nil, fmt.Errorf("get products: %w", err)
	}

	total, err := s.repo.Product.CountAll(ctx, filter)
	if err != nil {
		s.log.Error("Failed to count products", zap.Error(err))
		return nil, fmt.Errorf("count products: %w", err)
	}

	// Hydrate the category on each row; categories repeat across products
	// so cache lookups per request.
	categories := make(map[uuid.UUID]*entity.Category)
	productResponses := make([]response.ProductResponse, len(products))
	for i, product := range products {
		category, ok := categories[product.CategoryID]
		if !ok {
			category, err = s.repo.Category.FindByID(ctx, product.CategoryID)
			if err != nil {
				s.log.Warn("Failed to get category for product",
					zap.Error(err),
					zap.String("product_id", product.ID.String()),
				)
			}
			categories[product.CategoryID] = category
		}
		productResponses[i] = response.ProductToResponse(product, category)
	}

	s.log.Info("Products retrieved",
		zap.Int("count", len(products)),
		zap.Int64("total", total),
		zap.Int("page", page.Page),
	)

	return &response.ProductListResponse{
		Products:   productResponses,
		Total:      total,
		Page:       page.Page,
		TotalPages: utils.CalculateTotalPages(total, limit),
	}, nil
}

func (s *productService) GetProductByID(ctx context.Context, productID string) (*response.ProductResponse, error) {
	id, err := uuid.Parse(productID)
	if err != nil {
		s.log.Warn("Invalid product ID format",
			zap.String("product_id", productID),
			zap.Error(err),
		)
		return nil, fmt.Errorf("invalid product id: %w", err)
	}

	product, err := s.repo.Product.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to get product by ID",
			zap.Error(err),
			zap.String("product_id", productID),
		)
		return nil, fmt.Errorf("get product by id: %w", err)
	}

	if product == nil {
		return nil, fmt.Errorf("product not found")
	}

	category, err := s.repo.Category.FindByID(ctx, product.CategoryID)
	if err != nil {
		s.log.Warn("Failed to get category for product",
			zap.Error(err),
			zap.String("product_id", productID),
		)
	}

	resp := response.ProductToResponse(product, category)
	return &resp, nil
}

func (s *productService) CreateProduct(ctx context.Context, req *request.ProductRequest) (*response.ProductResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create product validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	categoryID, err := uuid.Parse(req.CategoryID)
	if err != nil {
		return nil, fmt.Errorf("invalid category id: %w", err)
	}

	category, err := s.repo.Category.FindByID(ctx, categoryID)
	if err != nil {
		s.log.Error("Failed to get category",
			zap.Error(err),
			zap.String("category_id", req.CategoryID),
		)
		return nil, fmt.Errorf("get category: %w", err)
	}
	if category == nil {
		return nil, fmt.Errorf("category not found")
	}

	now := time.Now()
	product := &entity.Product{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Stock:       req.Stock,
		Images:      req.Images,
		Features:    req.Features,
		IsFeatured:  req.IsFeatured,
		CategoryID:  categoryID,
	}

	if err := s.repo.Product.Create(ctx, product); err != nil {
		s.log.Error("Failed to create product",
			zap.Error(err),
			zap.String("name", req.Name),
		)
		return nil, fmt.Errorf("create product: %w", err)
	}

	s.log.Info("Product created",
		zap.String("product_id", product.ID.String()),
		zap.String("name", product.Name),
	)

	resp := response.ProductToResponse(product, category)
	return &resp, nil
}

func (s *productService) UpdateProduct(ctx context.Context, productID string, req *request.ProductRequest) (*response.ProductResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update product validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	id, err := uuid.Parse(productID)
	if err != nil {
		return nil, fmt.Errorf("invalid product id: %w", err)
	}

	product, err := s.repo.Product.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to get product by ID",
			zap.Error(err),
			zap.String("product_id", productID),
		)
		return nil, fmt.Errorf("get product by id: %w", err)
	}
	if product == nil {
		return nil, fmt.Errorf("product not found")
	}

	categoryID, err := uuid.Parse(req.CategoryID)
	if err != nil {
		return nil, fmt.Errorf("invalid category id: %w", err)
	}

	// Edits overwrite the whole row
	product.Name = req.Name
	product.Description = req.Description
	product.Price = req.Price
	product.Stock = req.Stock
	product.Images = req.Images
	product.Features = req.Features
	product.IsFeatured = req.IsFeatured
	product.CategoryID = categoryID
	product.UpdatedAt = time.Now()

	if err := s.repo.Product.Update(ctx, product); err != nil {
		s.log.Error("Failed to update product",
			zap.Error(err),
			zap.String("product_id", productID),
		)
		return nil, fmt.Errorf("update product: %w", err)
	}

	category, err := s.repo.Category.FindByID(ctx, categoryID)
	if err != nil {
		s.log.Warn("Failed to get category for product",
			zap.Error(err),
			zap.String("product_id", productID),
		)
	}

	s.log.Info("Product updated", zap.String("product_id", productID))

	resp := response.ProductToResponse(product, category)
	return &resp, nil
}

func (s *productService) DeleteProduct(ctx context.Context, productID string) error {
	id, err := uuid.Parse(productID)
	if err != nil {
		return fmt.Errorf("invalid product id: %w", err)
	}

	product, err := s.repo.Product.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to get product by ID",
			zap.Error(err),
			zap.String("product_id", productID),
		)
		return fmt.Errorf("get product by id: %w", err)
	}
	if product == nil {
		return fmt.Errorf("product not found")
	}

	if err := s.repo.Product.Delete(ctx, id); err != nil {
		s.log.Error("Failed to delete product",
			zap.Error(err),
			zap.String("product_id", productID),
		)
		return fmt.Errorf("delete product: %w", err)
	}

	s.log.Info("Product deleted", zap.String("product_id", productID))
	return nil
}

func (s *productService) GetCategories(ctx context.Context) ([]response.CategoryResponse, error) {
	count, err := s.repo.Category.CountAll(ctx)
	if err != nil {
		s.log.Error("Failed to count categories", zap.Error(err))
		return nil, fmt.Errorf("count categories: %w", err)
	}

	if count == 0 {
		now := time.Now()
		seed := make([]*entity.Category, len(defaultCategories))
		for i, name := range defaultCategories {
			seed[i] = &entity.Category{
				Base: entity.Base{
					ID:        uuid.New(),
					CreatedAt: now,
					UpdatedAt: now,
				},
				Name:  name,
				Image: "",
			}
		}
		if err := s.repo.Category.CreateBatch(ctx, seed); err != nil {
			s.log.Error("Failed to seed default categories", zap.Error(err))
			return nil, fmt.Errorf("seed categories: %w", err)
		}
		s.log.Info("Default categories seeded", zap.Int("count", len(seed)))
	}

	categories, err := s.repo.Category.FindAll(ctx)
	if err != nil {
		s.log.Error("Failed to get categories", zap.Error(err))
		return nil, fmt.Errorf("get categories: %w", err)
	}

	categoryResponses := make([]response.CategoryResponse, len(categories))
	for i, category := range categories {
		categoryResponses[i] = *response.CategoryToResponse(category)
	}

	return categoryResponses, nil
}

func (s *productService) CreateCategory(ctx context.Context, req *request.CategoryRequest) (*response.CategoryResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create category validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	now := time.Now()
	category := &entity.Category{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Name:  req.Name,
		Image: req.Image,
	}

	if err := s.repo.Category.Create(ctx, category); err != nil {
		s.log.Error("Failed to create category",
			zap.Error(err),
			zap.String("name", req.Name),
		)
		return nil, fmt.Errorf("create category: %w", err)
	}

	s.log.Info("Category created",
		zap.String("category_id", category.ID.String()),
		zap.String("name", category.Name),
	)

	return response.CategoryToResponse(category), nil
}
