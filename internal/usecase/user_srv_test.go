package usecase

import (
	"context"
	"strings"
	"testing"

	"github.com/Catalinvisual/AuraMarket/internal/data/entity"
	"github.com/Catalinvisual/AuraMarket/internal/dto/request"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

func TestGetUsersSearch(t *testing.T) {
	f := newFakeRepos()
	seedUser(t, f, "alice@example.com", "pw", entity.RoleCustomer)
	bob := seedUser(t, f, "bob@example.com", "pw", entity.RoleCustomer)
	f.users.orderCounts[bob.ID] = 3

	svc := NewUserService(f.repo, zap.NewNop())

	result, err := svc.GetUsers(context.Background(), &request.PageRequest{Page: 1, Limit: 10}, "bob")
	if err != nil {
		t.Fatalf("get users: %v", err)
	}
	if result.Total != 1 || len(result.Users) != 1 {
		t.Fatalf("users = %d (total %d), want 1", len(result.Users), result.Total)
	}
	if result.Users[0].Email != "bob@example.com" {
		t.Errorf("email = %q, want bob@example.com", result.Users[0].Email)
	}
	if result.Users[0].OrderCount != 3 {
		t.Errorf("orderCount = %d, want 3", result.Users[0].OrderCount)
	}
}

func TestUpdateUserKeepsPassword(t *testing.T) {
	f := newFakeRepos()
	user := seedUser(t, f, "alice@example.com", "pw", entity.RoleCustomer)
	originalHash := user.PasswordHash

	svc := NewUserService(f.repo, zap.NewNop())

	updated, err := svc.UpdateUser(context.Background(), user.ID.String(), &request.UpdateUserRequest{
		Name:  "Alice Admin",
		Email: "alice@example.com",
		Role:  "ADMIN",
	})
	if err != nil {
		t.Fatalf("update user: %v", err)
	}
	if updated.Role != entity.RoleAdmin {
		t.Errorf("role = %q, want ADMIN", updated.Role)
	}
	if updated.Name != "Alice Admin" {
		t.Errorf("name = %q, want Alice Admin", updated.Name)
	}

	stored, _ := f.repo.User.FindByID(context.Background(), user.ID)
	if stored.PasswordHash != originalHash {
		t.Error("password hash changed on profile update")
	}
}

func TestUpdateUserRejectsUnknownRole(t *testing.T) {
	f := newFakeRepos()
	user := seedUser(t, f, "alice@example.com", "pw", entity.RoleCustomer)

	svc := NewUserService(f.repo, zap.NewNop())

	_, err := svc.UpdateUser(context.Background(), user.ID.String(), &request.UpdateUserRequest{
		Name:  "Alice",
		Email: "alice@example.com",
		Role:  "SUPERUSER",
	})
	if err == nil || !strings.Contains(err.Error(), "validation failed") {
		t.Fatalf("err = %v, want validation failure", err)
	}
}

func TestDeleteUser(t *testing.T) {
	f := newFakeRepos()
	user := seedUser(t, f, "alice@example.com", "pw", entity.RoleCustomer)

	svc := NewUserService(f.repo, zap.NewNop())

	if err := svc.DeleteUser(context.Background(), user.ID.String()); err != nil {
		t.Fatalf("delete user: %v", err)
	}
	if len(f.users.users) != 0 {
		t.Errorf("users left = %d, want 0", len(f.users.users))
	}

	err := svc.DeleteUser(context.Background(), uuid.NewString())
	if err == nil || !strings.Contains(err.Error(), "user not found") {
		t.Fatalf("err = %v, want user not found", err)
	}
}
