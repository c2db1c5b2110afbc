package usecase

import (
	"context"
	"strings"
	"testing"

	"github.com/Catalinvisual/AuraMarket/internal/data/entity"
	"github.com/Catalinvisual/AuraMarket/internal/dto/request"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

func checkoutRequest(userID uuid.UUID, productID uuid.UUID) *request.CreateOrderRequest {
	return &request.CreateOrderRequest{
		UserID: userID.String(),
		Items: []request.OrderItemRequest{
			{ProductID: productID.String(), Quantity: 2, Price: decimal.RequireFromString("19.99")},
		},
		Total: decimal.RequireFromString("39.98"),
	}
}

func TestCreateOrder(t *testing.T) {
	f := newFakeRepos()
	user := seedUser(t, f, "buyer@example.com", "pw", entity.RoleCustomer)

	svc := NewOrderService(f.repo, zap.NewNop())

	req := checkoutRequest(user.ID, uuid.New())
	req.Address = &request.AddressRequest{
		Street: "1 Main St", City: "Amsterdam", Zip: "1011", Country: "NL",
	}

	order, err := svc.CreateOrder(context.Background(), req)
	if err != nil {
		t.Fatalf("create order: %v", err)
	}

	if order.Status != entity.OrderStatusPending {
		t.Errorf("status = %q, want PENDING", order.Status)
	}
	if len(order.Items) != 1 {
		t.Fatalf("items = %d, want 1", len(order.Items))
	}
	// Line price is the checkout price, frozen at order time
	if !order.Items[0].Price.Equal(decimal.RequireFromString("19.99")) {
		t.Errorf("item price = %s, want 19.99", order.Items[0].Price)
	}
	if !order.Total.Equal(decimal.RequireFromString("39.98")) {
		t.Errorf("total = %s, want 39.98", order.Total)
	}

	if len(f.addresses.addresses) != 1 {
		t.Fatalf("addresses saved = %d, want 1", len(f.addresses.addresses))
	}
	if f.addresses.addresses[0].UserID != user.ID {
		t.Error("address not linked to ordering user")
	}
}

func TestCreateOrderWithoutAddress(t *testing.T) {
	f := newFakeRepos()
	user := seedUser(t, f, "buyer@example.com", "pw", entity.RoleCustomer)

	svc := NewOrderService(f.repo, zap.NewNop())

	if _, err := svc.CreateOrder(context.Background(), checkoutRequest(user.ID, uuid.New())); err != nil {
		t.Fatalf("create order: %v", err)
	}
	if len(f.addresses.addresses) != 0 {
		t.Errorf("addresses saved = %d, want 0", len(f.addresses.addresses))
	}
}

func TestCreateOrderSetsTimestamps(t *testing.T) {
	f := newFakeRepos()
	user := seedUser(t, f, "buyer@example.com", "pw", entity.RoleCustomer)

	svc := NewOrderService(f.repo, zap.NewNop())

	req := checkoutRequest(user.ID, uuid.New())
	req.Address = &request.AddressRequest{Street: "1 Main St", City: "Amsterdam"}

	if _, err := svc.CreateOrder(context.Background(), req); err != nil {
		t.Fatalf("create order: %v", err)
	}

	order := f.orders.orders[0]
	if order.CreatedAt.IsZero() {
		t.Error("persisted order has zero CreatedAt")
	}
	if order.UpdatedAt.IsZero() {
		t.Error("persisted order has zero UpdatedAt")
	}
	if f.orderItems.items[0].CreatedAt.IsZero() {
		t.Error("persisted order item has zero CreatedAt")
	}
	if f.addresses.addresses[0].CreatedAt.IsZero() {
		t.Error("persisted address has zero CreatedAt")
	}
}

func TestCreateOrderZeroTotal(t *testing.T) {
	f := newFakeRepos()
	user := seedUser(t, f, "buyer@example.com", "pw", entity.RoleCustomer)

	svc := NewOrderService(f.repo, zap.NewNop())

	// A fully discounted cart still checks out
	order, err := svc.CreateOrder(context.Background(), &request.CreateOrderRequest{
		UserID: user.ID.String(),
		Items: []request.OrderItemRequest{
			{ProductID: uuid.NewString(), Quantity: 1},
		},
	})
	if err != nil {
		t.Fatalf("create zero-total order: %v", err)
	}
	if !order.Total.IsZero() {
		t.Errorf("total = %s, want 0", order.Total)
	}
}

func TestCreateOrderUnknownUser(t *testing.T) {
	f := newFakeRepos()

	svc := NewOrderService(f.repo, zap.NewNop())

	_, err := svc.CreateOrder(context.Background(), checkoutRequest(uuid.New(), uuid.New()))
	if err == nil || !strings.Contains(err.Error(), "user not found") {
		t.Fatalf("err = %v, want user not found", err)
	}
}

func TestCreateOrderNoItems(t *testing.T) {
	f := newFakeRepos()
	user := seedUser(t, f, "buyer@example.com", "pw", entity.RoleCustomer)

	svc := NewOrderService(f.repo, zap.NewNop())

	_, err := svc.CreateOrder(context.Background(), &request.CreateOrderRequest{
		UserID: user.ID.String(),
		Total:  decimal.NewFromInt(1),
	})
	if err == nil || !strings.Contains(err.Error(), "validation failed") {
		t.Fatalf("err = %v, want validation failure", err)
	}
}

func TestUpdateOrderStatus(t *testing.T) {
	f := newFakeRepos()
	user := seedUser(t, f, "buyer@example.com", "pw", entity.RoleCustomer)

	svc := NewOrderService(f.repo, zap.NewNop())

	order, err := svc.CreateOrder(context.Background(), checkoutRequest(user.ID, uuid.New()))
	if err != nil {
		t.Fatalf("create order: %v", err)
	}

	updated, err := svc.UpdateOrderStatus(context.Background(), order.ID, &request.UpdateOrderStatusRequest{Status: "SHIPPED"})
	if err != nil {
		t.Fatalf("update status: %v", err)
	}
	if updated.Status != entity.OrderStatusShipped {
		t.Errorf("status = %q, want SHIPPED", updated.Status)
	}

	// Any value from the enum is accepted, including going backwards
	updated, err = svc.UpdateOrderStatus(context.Background(), order.ID, &request.UpdateOrderStatusRequest{Status: "PENDING"})
	if err != nil {
		t.Fatalf("update status back: %v", err)
	}
	if updated.Status != entity.OrderStatusPending {
		t.Errorf("status = %q, want PENDING", updated.Status)
	}
}

func TestUpdateOrderStatusRejectsUnknownValue(t *testing.T) {
	f := newFakeRepos()

	svc := NewOrderService(f.repo, zap.NewNop())

	_, err := svc.UpdateOrderStatus(context.Background(), uuid.NewString(), &request.UpdateOrderStatusRequest{Status: "LOST"})
	if err == nil || !strings.Contains(err.Error(), "validation failed") {
		t.Fatalf("err = %v, want validation failure", err)
	}
}

func TestDeleteOrderRemovesItems(t *testing.T) {
	f := newFakeRepos()
	user := seedUser(t, f, "buyer@example.com", "pw", entity.RoleCustomer)

	svc := NewOrderService(f.repo, zap.NewNop())

	order, err := svc.CreateOrder(context.Background(), checkoutRequest(user.ID, uuid.New()))
	if err != nil {
		t.Fatalf("create order: %v", err)
	}
	if len(f.orderItems.items) != 1 {
		t.Fatalf("items stored = %d, want 1", len(f.orderItems.items))
	}

	if err := svc.DeleteOrder(context.Background(), order.ID); err != nil {
		t.Fatalf("delete order: %v", err)
	}

	if len(f.orderItems.items) != 0 {
		t.Errorf("items left = %d, want 0", len(f.orderItems.items))
	}
	if len(f.orders.orders) != 0 {
		t.Errorf("orders left = %d, want 0", len(f.orders.orders))
	}
}

func TestDeleteOrderNotFound(t *testing.T) {
	f := newFakeRepos()

	svc := NewOrderService(f.repo, zap.NewNop())

	err := svc.DeleteOrder(context.Background(), uuid.NewString())
	if err == nil || !strings.Contains(err.Error(), "order not found") {
		t.Fatalf("err = %v, want order not found", err)
	}
}

func TestGetOrdersHydratesUser(t *testing.T) {
	f := newFakeRepos()
	user := seedUser(t, f, "buyer@example.com", "pw", entity.RoleCustomer)

	svc := NewOrderService(f.repo, zap.NewNop())

	if _, err := svc.CreateOrder(context.Background(), checkoutRequest(user.ID, uuid.New())); err != nil {
		t.Fatalf("create order: %v", err)
	}

	result, err := svc.GetOrders(context.Background(), &request.PageRequest{Page: 1, Limit: 10}, "", "", "")
	if err != nil {
		t.Fatalf("get orders: %v", err)
	}
	if result.Total != 1 || len(result.Orders) != 1 {
		t.Fatalf("orders = %d (total %d), want 1", len(result.Orders), result.Total)
	}

	got := result.Orders[0]
	if got.User == nil || got.User.Email != "buyer@example.com" {
		t.Errorf("order user = %+v, want buyer@example.com", got.User)
	}
	if len(got.Items) != 1 {
		t.Errorf("order items = %d, want 1", len(got.Items))
	}
}

func TestGetOrdersStatusFilter(t *testing.T) {
	f := newFakeRepos()
	user := seedUser(t, f, "buyer@example.com", "pw", entity.RoleCustomer)

	svc := NewOrderService(f.repo, zap.NewNop())

	first, err := svc.CreateOrder(context.Background(), checkoutRequest(user.ID, uuid.New()))
	if err != nil {
		t.Fatalf("create order: %v", err)
	}
	if _, err := svc.CreateOrder(context.Background(), checkoutRequest(user.ID, uuid.New())); err != nil {
		t.Fatalf("create order: %v", err)
	}
	if _, err := svc.UpdateOrderStatus(context.Background(), first.ID, &request.UpdateOrderStatusRequest{Status: "DELIVERED"}); err != nil {
		t.Fatalf("update status: %v", err)
	}

	result, err := svc.GetOrders(context.Background(), &request.PageRequest{Page: 1, Limit: 10}, "", "DELIVERED", "")
	if err != nil {
		t.Fatalf("get delivered orders: %v", err)
	}
	if result.Total != 1 {
		t.Errorf("delivered total = %d, want 1", result.Total)
	}
	if len(result.Orders) == 1 && result.Orders[0].ID != first.ID {
		t.Errorf("delivered order = %s, want %s", result.Orders[0].ID, first.ID)
	}
}
