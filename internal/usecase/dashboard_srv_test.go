package usecase

import (
	"context"
	"testing"

	"github.com/Catalinvisual/AuraMarket/internal/data/entity"
	"github.com/Catalinvisual/AuraMarket/internal/dto/request"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

func TestGetStats(t *testing.T) {
	f := newFakeRepos()
	user := seedUser(t, f, "buyer@example.com", "pw", entity.RoleCustomer)
	category := seedCategory(t, f, "Electronics")

	products := NewProductService(f.repo, zap.NewNop())
	if _, err := products.CreateProduct(context.Background(), &request.ProductRequest{
		Name:       "Widget",
		Price:      decimal.NewFromInt(10),
		CategoryID: category.ID.String(),
	}); err != nil {
		t.Fatalf("create product: %v", err)
	}

	orders := NewOrderService(f.repo, zap.NewNop())
	delivered, err := orders.CreateOrder(context.Background(), checkoutRequest(user.ID, uuid.New()))
	if err != nil {
		t.Fatalf("create order: %v", err)
	}
	if _, err := orders.CreateOrder(context.Background(), checkoutRequest(user.ID, uuid.New())); err != nil {
		t.Fatalf("create order: %v", err)
	}
	if _, err := orders.UpdateOrderStatus(context.Background(), delivered.ID, &request.UpdateOrderStatusRequest{Status: "DELIVERED"}); err != nil {
		t.Fatalf("deliver order: %v", err)
	}

	svc := NewDashboardService(f.repo, zap.NewNop())

	stats, err := svc.GetStats(context.Background())
	if err != nil {
		t.Fatalf("get stats: %v", err)
	}

	if stats.Stats.TotalOrders != 2 {
		t.Errorf("totalOrders = %d, want 2", stats.Stats.TotalOrders)
	}
	if stats.Stats.TotalUsers != 1 {
		t.Errorf("totalUsers = %d, want 1", stats.Stats.TotalUsers)
	}
	if stats.Stats.TotalProducts != 1 {
		t.Errorf("totalProducts = %d, want 1", stats.Stats.TotalProducts)
	}
	// Only the delivered order counts as revenue
	if !stats.Stats.TotalRevenue.Equal(decimal.RequireFromString("39.98")) {
		t.Errorf("totalRevenue = %s, want 39.98", stats.Stats.TotalRevenue)
	}

	if len(stats.RecentOrders) != 2 {
		t.Errorf("recentOrders = %d, want 2", len(stats.RecentOrders))
	}
	for _, order := range stats.RecentOrders {
		if order.User == nil || order.User.Email != "buyer@example.com" {
			t.Errorf("recent order user = %+v, want buyer@example.com", order.User)
		}
	}

	if len(stats.ChartData) != 7 {
		t.Errorf("chartData = %d points, want 7", len(stats.ChartData))
	}
	if stats.ChartData[0].Name != "Jan" || stats.ChartData[6].Name != "Jul" {
		t.Errorf("chartData spans %s..%s, want Jan..Jul", stats.ChartData[0].Name, stats.ChartData[6].Name)
	}
}

func TestGetStatsEmpty(t *testing.T) {
	f := newFakeRepos()

	svc := NewDashboardService(f.repo, zap.NewNop())

	stats, err := svc.GetStats(context.Background())
	if err != nil {
		t.Fatalf("get stats: %v", err)
	}
	if !stats.Stats.TotalRevenue.IsZero() {
		t.Errorf("totalRevenue = %s, want 0", stats.Stats.TotalRevenue)
	}
	if len(stats.RecentOrders) != 0 {
		t.Errorf("recentOrders = %d, want 0", len(stats.RecentOrders))
	}
}
