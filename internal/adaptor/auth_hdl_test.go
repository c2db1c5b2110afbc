package adaptor

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Catalinvisual/AuraMarket/internal/dto/request"
	"github.com/Catalinvisual/AuraMarket/internal/dto/response"

	"go.uber.org/zap"
)

type stubAuthService struct {
	login func(ctx context.Context, req *request.LoginRequest) (*response.LoginResponse, error)
}

func (s *stubAuthService) Login(ctx context.Context, req *request.LoginRequest) (*response.LoginResponse, error) {
	return s.login(ctx, req)
}

func TestLoginHandler(t *testing.T) {
	svc := &stubAuthService{
		login: func(ctx context.Context, req *request.LoginRequest) (*response.LoginResponse, error) {
			return &response.LoginResponse{
				Token: "signed-token",
				User:  response.AuthUser{Email: req.Email, Role: "ADMIN"},
			}, nil
		},
	}
	handler := NewAuthHandler(svc, zap.NewNop())

	req := httptest.NewRequest(http.MethodPost, "/api/auth/login",
		strings.NewReader(`{"email":"admin@example.com","password":"secret"}`))
	rec := httptest.NewRecorder()
	handler.Login(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var body response.LoginResponse
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body.Token != "signed-token" {
		t.Errorf("token = %q", body.Token)
	}
	if body.User.Email != "admin@example.com" {
		t.Errorf("user email = %q", body.User.Email)
	}
}

func TestLoginHandlerBadCredentials(t *testing.T) {
	svc := &stubAuthService{
		login: func(ctx context.Context, req *request.LoginRequest) (*response.LoginResponse, error) {
			return nil, fmt.Errorf("invalid credentials")
		},
	}
	handler := NewAuthHandler(svc, zap.NewNop())

	req := httptest.NewRequest(http.MethodPost, "/api/auth/login",
		strings.NewReader(`{"email":"admin@example.com","password":"nope"}`))
	rec := httptest.NewRecorder()
	handler.Login(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}

	var body map[string]string
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body["message"] == "" {
		t.Error("error body missing message field")
	}
}

func TestLoginHandlerMalformedBody(t *testing.T) {
	handler := NewAuthHandler(&stubAuthService{}, zap.NewNop())

	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader("{"))
	rec := httptest.NewRecorder()
	handler.Login(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestRegisterHandler(t *testing.T) {
	handler := NewAuthHandler(&stubAuthService{}, zap.NewNop())

	req := httptest.NewRequest(http.MethodPost, "/api/auth/register", strings.NewReader(`{}`))
	rec := httptest.NewRecorder()
	handler.Register(rec, req)

	if rec.Code != http.StatusNotImplemented {
		t.Fatalf("status = %d, want 501", rec.Code)
	}
}
