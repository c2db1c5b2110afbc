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

type OrderService interface {
	CreateOrder(ctx context.Context, req *request.CreateOrderRequest) (*response.OrderResponse, error)
	GetOrders(ctx context.Context, page *request.PageRequest, search, status, userID string) (*response.OrderListResponse, error)
	GetOrderByID(ctx context.Context, orderID string) (*response.OrderResponse, error)
	UpdateOrderStatus(ctx context.Context, orderID string, req *request.UpdateOrderStatusRequest) (*response.OrderResponse, error)
	DeleteOrder(ctx context.Context, orderID string) error
}

type orderService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewOrderService(
	repo *repository.Repository,
	log *zap.Logger,
) OrderService {
	return &orderService{
		repo: repo,
		log:  log.With(zap.String("service", "order")),
	}
}

func (s *orderService) CreateOrder(ctx context.Context, req *request.CreateOrderRequest) (*response.OrderResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create order validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		return nil, fmt.Errorf("invalid user id: %w", err)
	}

	user, err := s.repo.User.FindByID(ctx, userID)
	if err != nil {
		s.log.Error("Failed to get user by ID",
			zap.Error(err),
			zap.String("user_id", req.UserID),
		)
		return nil, fmt.Errorf("get user by id: %w", err)
	}
	if user == nil {
		return nil, fmt.Errorf("user not found")
	}

	now := time.Now()
	order := &entity.Order{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		UserID: userID,
		Status: entity.OrderStatusPending,
		Total:  req.Total,
	}

	items := make([]*entity.OrderItem, len(req.Items))
	for i, line := range req.Items {
		productID, err := uuid.Parse(line.ProductID)
		if err != nil {
			return nil, fmt.Errorf("invalid product id: %w", err)
		}
		items[i] = &entity.OrderItem{
			BaseSimple: entity.BaseSimple{
				ID:        uuid.New(),
				CreatedAt: now,
			},
			OrderID:   order.ID,
			ProductID: productID,
			Quantity:  line.Quantity,
			Price:     line.Price,
		}
	}

	if err := s.repo.Order.Create(ctx, order, items); err != nil {
		s.log.Error("Failed to create order",
			zap.Error(err),
			zap.String("user_id", req.UserID),
		)
		return nil, fmt.Errorf("create order: %w", err)
	}

	// Address is saved best-effort; a failure here does not fail checkout
	if req.Address != nil {
		address := &entity.Address{
			BaseSimple: entity.BaseSimple{
				ID:        uuid.New(),
				CreatedAt: now,
			},
			UserID:  userID,
			Street:  req.Address.Street,
			City:    req.Address.City,
			Zip:     req.Address.Zip,
			Country: req.Address.Country,
			State:   req.Address.State,
		}
		if err := s.repo.Address.Create(ctx, address); err != nil {
			s.log.Warn("Failed to save checkout address",
				zap.Error(err),
				zap.String("order_id", order.ID.String()),
			)
		}
	}

	s.log.Info("Order created",
		zap.String("order_id", order.ID.String()),
		zap.String("user_id", req.UserID),
		zap.Int("items", len(items)),
		zap.String("total", order.Total.String()),
	)

	itemResponses := make([]response.OrderItemResponse, len(items))
	for i, item := range items {
		itemResponses[i] = response.OrderItemToResponse(item, nil)
	}

	resp := response.OrderToResponse(order, nil, itemResponses)
	return &resp, nil
}

func (s *orderService) GetOrders(ctx context.Context, page *request.PageRequest, search, status, userID string) (*response.OrderListResponse, error) {
	filter := repository.OrderFilter{Search: search}
	if status != "" {
		orderStatus := entity.OrderStatus(status)
		filter.Status = &orderStatus
	}
	if userID != "" {
		id, err := uuid.Parse(userID)
		if err != nil {
			return nil, fmt.Errorf("invalid user id: %w", err)
		}
		filter.UserID = &id
	}

	limit := page.Take()
	offset := page.Offset()

	orders, err := s.repo.Order.FindAll(ctx, filter, limit, offset)
	if err != nil {
		s.log.Error("Failed to get orders",
			zap.Error(err),
			zap.Int("page", page.Page),
			zap.String("search", search),
			zap.String("status", status),
		)
		return nil, fmt.Errorf("get orders: %w", err)
	}

	total, err := s.repo.Order.CountAll(ctx, filter)
	if err != nil {
		s.log.Error("Failed to count orders", zap.Error(err))
		return nil, fmt.Errorf("count orders: %w", err)
	}

	orderResponses := make([]response.OrderResponse, len(orders))
	for i, order := range orders {
		orderResponses[i] = s.hydrateOrder(ctx, order)
	}

	s.log.Info("Orders retrieved",
		zap.Int("count", len(orders)),
		zap.Int64("total", total),
		zap.Int("page", page.Page),
	)

	return &response.OrderListResponse{
		Orders:     orderResponses,
		Total:      total,
		Page:       page.Page,
		TotalPages: utils.CalculateTotalPages(total, limit),
	}, nil
}

func (s *orderService) GetOrderByID(ctx context.Context, orderID string) (*response.OrderResponse, error) {
	id, err := uuid.Parse(orderID)
	if err != nil {
		s.log.Warn("Invalid order ID format",
			zap.String("order_id", orderID),
			zap.Error(err),
		)
		return nil, fmt.Errorf("invalid order id: %w", err)
	}

	order, err := s.repo.Order.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to get order by ID",
			zap.Error(err),
			zap.String("order_id", orderID),
		)
		return nil, fmt.Errorf("get order by id: %w", err)
	}
	if order == nil {
		return nil, fmt.Errorf("order not found")
	}

	resp := s.hydrateOrder(ctx, order)
	return &resp, nil
}

func (s *orderService) UpdateOrderStatus(ctx context.Context, orderID string, req *request.UpdateOrderStatusRequest) (*response.OrderResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update order status validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	id, err := uuid.Parse(orderID)
	if err != nil {
		return nil, fmt.Errorf("invalid order id: %w", err)
	}

	order, err := s.repo.Order.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to get order by ID",
			zap.Error(err),
			zap.String("order_id", orderID),
		)
		return nil, fmt.Errorf("get order by id: %w", err)
	}
	if order == nil {
		return nil, fmt.Errorf("order not found")
	}

	// Any status can be set from any other; there is no transition guard
	status := entity.OrderStatus(req.Status)
	if err := s.repo.Order.UpdateStatus(ctx, id, status); err != nil {
		s.log.Error("Failed to update order status",
			zap.Error(err),
			zap.String("order_id", orderID),
			zap.String("status", req.Status),
		)
		return nil, fmt.Errorf("update order status: %w", err)
	}
	order.Status = status
	order.UpdatedAt = time.Now()

	s.log.Info("Order status updated",
		zap.String("order_id", orderID),
		zap.String("status", req.Status),
	)

	resp := response.OrderToResponse(order, nil, nil)
	return &resp, nil
}

func (s *orderService) DeleteOrder(ctx context.Context, orderID string) error {
	id, err := uuid.Parse(orderID)
	if err != nil {
		return fmt.Errorf("invalid order id: %w", err)
	}

	order, err := s.repo.Order.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to get order by ID",
			zap.Error(err),
			zap.String("order_id", orderID),
		)
		return fmt.Errorf("get order by id: %w", err)
	}
	if order == nil {
		return fmt.Errorf("order not found")
	}

	// Items first, then the order itself
	if err := s.repo.OrderItem.DeleteByOrderID(ctx, id); err != nil {
		s.log.Error("Failed to delete order items",
			zap.Error(err),
			zap.String("order_id", orderID),
		)
		return fmt.Errorf("delete order items: %w", err)
	}

	if err := s.repo.Order.Delete(ctx, id); err != nil {
		s.log.Error("Failed to delete order",
			zap.Error(err),
			zap.String("order_id", orderID),
		)
		return fmt.Errorf("delete order: %w", err)
	}

	s.log.Info("Order deleted", zap.String("order_id", orderID))
	return nil
}

// hydrateOrder attaches the customer summary and item lines with their
// products. Lookups are best-effort; a missing product leaves the line bare.
func (s *orderService) hydrateOrder(ctx context.Context, order *entity.Order) response.OrderResponse {
	var orderUser *response.OrderUser
	user, err := s.repo.User.FindByID(ctx, order.UserID)
	if err != nil {
		s.log.Warn("Failed to get user for order",
			zap.Error(err),
			zap.String("order_id", order.ID.String()),
		)
	} else if user != nil {
		orderUser = &response.OrderUser{Name: user.Name, Email: user.Email}
	}

	items, err := s.repo.OrderItem.FindByOrderID(ctx, order.ID)
	if err != nil {
		s.log.Warn("Failed to get items for order",
			zap.Error(err),
			zap.String("order_id", order.ID.String()),
		)
	}

	itemResponses := make([]response.OrderItemResponse, len(items))
	for i, item := range items {
		var productResp *response.ProductResponse
		product, err := s.repo.Product.FindByID(ctx, item.ProductID)
		if err != nil {
			s.log.Warn("Failed to get product for order item",
				zap.Error(err),
				zap.String("order_id", order.ID.String()),
				zap.String("product_id", item.ProductID.String()),
			)
		} else if product != nil {
			resp := response.ProductToResponse(product, nil)
			productResp = &resp
		}
		itemResponses[i] = response.OrderItemToResponse(item, productResp)
	}

	return response.OrderToResponse(order, orderUser, itemResponses)
}
