package usecase

import (
	"context"
	"fmt"

	"github.com/Catalinvisual/AuraMarket/internal/data/entity"
	"github.com/Catalinvisual/AuraMarket/internal/data/repository"
	"github.com/Catalinvisual/AuraMarket/internal/dto/response"

	"go.uber.org/zap"
)

const recentOrderCount = 5

// staticChartData stands in for a monthly sales aggregation that was never
// built; the admin chart renders these fixed points.
var staticChartData = []response.ChartPoint{
	{Name: "Jan", Sales: 4000, Visitors: 2400},
	{Name: "Feb", Sales: 3000, Visitors: 1398},
	{Name: "Mar", Sales: 2000, Visitors: 9800},
	{Name: "Apr", Sales: 2780, Visitors: 3908},
	{Name: "May", Sales: 1890, Visitors: 4800},
	{Name: "Jun", Sales: 2390, Visitors: 3800},
	{Name: "Jul", Sales: 3490, Visitors: 4300},
}

type DashboardService interface {
	GetStats(ctx context.Context) (*response.DashboardResponse, error)
}

type dashboardService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewDashboardService(
	repo *repository.Repository,
	log *zap.Logger,
) DashboardService {
	return &dashboardService{
		repo: repo,
		log:  log.With(zap.String("service", "dashboard")),
	}
}

func (s *dashboardService) GetStats(ctx context.Context) (*response.DashboardResponse, error) {
	totalOrders, err := s.repo.Order.CountAll(ctx, repository.OrderFilter{})
	if err != nil {
		s.log.Error("Failed to count orders", zap.Error(err))
		return nil, fmt.Errorf("count orders: %w", err)
	}

	totalUsers, err := s.repo.User.CountAll(ctx, "")
	if err != nil {
		s.log.Error("Failed to count users", zap.Error(err))
		return nil, fmt.Errorf("count users: %w", err)
	}

	totalProducts, err := s.repo.Product.CountAll(ctx, repository.ProductFilter{})
	if err != nil {
		s.log.Error("Failed to count products", zap.Error(err))
		return nil, fmt.Errorf("count products: %w", err)
	}

	// Revenue only counts delivered orders
	totalRevenue, err := s.repo.Order.SumTotalByStatus(ctx, entity.OrderStatusDelivered)
	if err != nil {
		s.log.Error("Failed to sum delivered order totals", zap.Error(err))
		return nil, fmt.Errorf("sum delivered totals: %w", err)
	}

	recent, err := s.repo.Order.FindRecent(ctx, recentOrderCount)
	if err != nil {
		s.log.Error("Failed to get recent orders", zap.Error(err))
		return nil, fmt.Errorf("get recent orders: %w", err)
	}

	recentResponses := make([]response.OrderResponse, len(recent))
	for i, order := range recent {
		recentResponses[i] = s.hydrateRecentOrder(ctx, order)
	}

	s.log.Info("Dashboard stats retrieved",
		zap.Int64("total_orders", totalOrders),
		zap.Int64("total_users", totalUsers),
		zap.Int64("total_products", totalProducts),
		zap.String("total_revenue", totalRevenue.String()),
	)

	return &response.DashboardResponse{
		Stats: response.DashboardStats{
			TotalRevenue:  totalRevenue,
			TotalOrders:   totalOrders,
			TotalUsers:    totalUsers,
			TotalProducts: totalProducts,
		},
		RecentOrders: recentResponses,
		ChartData:    staticChartData,
	}, nil
}

func (s *dashboardService) hydrateRecentOrder(ctx context.Context, order *entity.Order) response.OrderResponse {
	var orderUser *response.OrderUser
	user, err := s.repo.User.FindByID(ctx, order.UserID)
	if err != nil {
		s.log.Warn("Failed to get user for recent order",
			zap.Error(err),
			zap.String("order_id", order.ID.String()),
		)
	} else if user != nil {
		orderUser = &response.OrderUser{Name: user.Name, Email: user.Email}
	}

	items, err := s.repo.OrderItem.FindByOrderID(ctx, order.ID)
	if err != nil {
		s.log.Warn("Failed to get items for recent order",
			zap.Error(err),
			zap.String("order_id", order.ID.String()),
		)
	}

	itemResponses := make([]response.OrderItemResponse, len(items))
	for i, item := range items {
		var productResp *response.ProductResponse
		product, err := s.repo.Product.FindByID(ctx, item.ProductID)
		if err == nil && product != nil {
			resp := response.ProductToResponse(product, nil)
			productResp = &resp
		}
		itemResponses[i] = response.OrderItemToResponse(item, productResp)
	}

	return response.OrderToResponse(order, orderUser, itemResponses)
}
