package adaptor

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Catalinvisual/AuraMarket/internal/dto/request"
	"github.com/Catalinvisual/AuraMarket/internal/dto/response"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type stubProductService struct {
	getProducts    func(ctx context.Context, page *request.PageRequest, search, categoryID string, featured bool) (*response.ProductListResponse, error)
	getProductByID func(ctx context.Context, id string) (*response.ProductResponse, error)
}

func (s *stubProductService) GetProducts(ctx context.Context, page *request.PageRequest, search, categoryID string, featured bool) (*response.ProductListResponse, error) {
	return s.getProducts(ctx, page, search, categoryID, featured)
}

func (s *stubProductService) GetProductByID(ctx context.Context, id string) (*response.ProductResponse, error) {
	return s.getProductByID(ctx, id)
}

func (s *stubProductService) CreateProduct(ctx context.Context, req *request.ProductRequest) (*response.ProductResponse, error) {
	return nil, fmt.Errorf("not stubbed")
}

func (s *stubProductService) UpdateProduct(ctx context.Context, id string, req *request.ProductRequest) (*response.ProductResponse, error) {
	return nil, fmt.Errorf("not stubbed")
}

func (s *stubProductService) DeleteProduct(ctx context.Context, id string) error {
	return fmt.Errorf("not stubbed")
}

func (s *stubProductService) GetCategories(ctx context.Context) ([]response.CategoryResponse, error) {
	return nil, fmt.Errorf("not stubbed")
}

func (s *stubProductService) CreateCategory(ctx context.Context, req *request.CategoryRequest) (*response.CategoryResponse, error) {
	return nil, fmt.Errorf("not stubbed")
}

func TestGetProductsHandlerParsesQuery(t *testing.T) {
	var gotPage, gotLimit int
	var gotSearch string
	var gotFeatured bool

	svc := &stubProductService{
		getProducts: func(ctx context.Context, page *request.PageRequest, search, categoryID string, featured bool) (*response.ProductListResponse, error) {
			gotPage = page.Page
			gotLimit = page.Limit
			gotSearch = search
			gotFeatured = featured
			return &response.ProductListResponse{Products: []response.ProductResponse{}, Page: page.Page}, nil
		},
	}
	handler := NewProductHandler(svc, zap.NewNop())

	req := httptest.NewRequest(http.MethodGet, "/api/products?page=2&limit=5&search=lamp&isFeatured=true", nil)
	rec := httptest.NewRecorder()
	handler.GetProducts(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if gotPage != 2 || gotLimit != 5 {
		t.Errorf("page/limit = %d/%d, want 2/5", gotPage, gotLimit)
	}
	if gotSearch != "lamp" {
		t.Errorf("search = %q, want lamp", gotSearch)
	}
	if !gotFeatured {
		t.Error("featured = false, want true")
	}

	var body response.ProductListResponse
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body.Products == nil {
		t.Error("products field absent from response")
	}
}

func TestGetProductHandlerNotFound(t *testing.T) {
	svc := &stubProductService{
		getProductByID: func(ctx context.Context, id string) (*response.ProductResponse, error) {
			return nil, fmt.Errorf("product not found")
		},
	}
	handler := NewProductHandler(svc, zap.NewNop())

	r := chi.NewRouter()
	r.Get("/api/products/{id}", handler.GetProduct)

	req := httptest.NewRequest(http.MethodGet, "/api/products/missing-id", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}

	var body map[string]string
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body["message"] != "product not found" {
		t.Errorf("message = %q, want product not found", body["message"])
	}
}
