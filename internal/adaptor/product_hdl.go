package adaptor

import (
	"encoding/json"
	"net/http"

	"github.com/Catalinvisual/AuraMarket/internal/dto/request"
	"github.com/Catalinvisual/AuraMarket/internal/usecase"
	"github.com/Catalinvisual/AuraMarket/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type ProductHandler struct {
	service usecase.ProductService
	log     *zap.Logger
}

func NewProductHandler(service usecase.ProductService, log *zap.Logger) *ProductHandler {
	return &ProductHandler{
		service: service,
		log:     log.With(zap.String("handler", "product")),
	}
}

// GetProducts handles GET /api/products
func (h *ProductHandler) GetProducts(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	page := &request.PageRequest{
		Page:  utils.ParseInt(query.Get("page"), 1),
		Limit: utils.ParseInt(query.Get("limit"), 10),
	}
	search := query.Get("search")
	categoryID := query.Get("categoryId")
	featured := query.Get("isFeatured") == "true"

	result, err := h.service.GetProducts(r.Context(), page, search, categoryID, featured)
	if err != nil {
		handleServiceError(h.log, w, err, "get products")
		return
	}

	utils.ResponseSuccess(w, result)
}

// GetProduct handles GET /api/products/{id}
func (h *ProductHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	productID := chi.URLParam(r, "id")
	if productID == "" {
		utils.ResponseBadRequest(w, "Product ID is required")
		return
	}

	product, err := h.service.GetProductByID(r.Context(), productID)
	if err != nil {
		handleServiceError(h.log, w, err, "get product")
		return
	}

	utils.ResponseSuccess(w, product)
}

// CreateProduct handles POST /api/products (admin)
func (h *ProductHandler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	var req request.ProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body")
		return
	}

	product, err := h.service.CreateProduct(r.Context(), &req)
	if err != nil {
		handleServiceError(h.log, w, err, "create product")
		return
	}

	utils.ResponseCreated(w, product)
}

// UpdateProduct handles PUT /api/products/{id} (admin)
func (h *ProductHandler) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	productID := chi.URLParam(r, "id")

	var req request.ProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body")
		return
	}

	product, err := h.service.UpdateProduct(r.Context(), productID, &req)
	if err != nil {
		handleServiceError(h.log, w, err, "update product")
		return
	}

	utils.ResponseSuccess(w, product)
}

// DeleteProduct handles DELETE /api/products/{id} (admin)
func (h *ProductHandler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	productID := chi.URLParam(r, "id")

	if err := h.service.DeleteProduct(r.Context(), productID); err != nil {
		handleServiceError(h.log, w, err, "delete product")
		return
	}

	utils.ResponseMessage(w, "Product deleted successfully")
}

// GetCategories handles GET /api/products/categories
func (h *ProductHandler) GetCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.service.GetCategories(r.Context())
	if err != nil {
		handleServiceError(h.log, w, err, "get categories")
		return
	}

	utils.ResponseSuccess(w, categories)
}

// CreateCategory handles POST /api/products/categories (admin)
func (h *ProductHandler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	var req request.CategoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body")
		return
	}

	category, err := h.service.CreateCategory(r.Context(), &req)
	if err != nil {
		handleServiceError(h.log, w, err, "create category")
		return
	}

	utils.ResponseCreated(w, category)
}
