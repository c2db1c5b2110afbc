package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Catalinvisual/AuraMarket/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var testJWT = utils.JWTConfig{Secret: "test-secret", ExpiryHours: 1}

func protectedHandler(t *testing.T, wantUserID uuid.UUID) http.Handler {
	t.Helper()
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, ok := utils.GetUserIDFromContext(r.Context())
		if !ok {
			t.Error("userId missing from context")
		}
		if userID != wantUserID {
			t.Errorf("context userId = %s, want %s", userID, wantUserID)
		}
		w.WriteHeader(http.StatusOK)
	})
}

func TestAuthJWT(t *testing.T) {
	userID := uuid.New()
	token, err := utils.GenerateToken(userID, "CUSTOMER", testJWT.Secret, 1)
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}

	handler := AuthJWT(testJWT, zap.NewNop())(protectedHandler(t, userID))

	req := httptest.NewRequest(http.MethodGet, "/api/orders", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", rec.Code)
	}
}

func TestAuthJWTMissingHeader(t *testing.T) {
	handler := AuthJWT(testJWT, zap.NewNop())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("handler reached without token")
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/orders", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rec.Code)
	}
}

func TestAuthJWTBadToken(t *testing.T) {
	handler := AuthJWT(testJWT, zap.NewNop())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("handler reached with bad token")
	}))

	for _, header := range []string{"Bearer garbage", "Basic abc", "Bearer"} {
		req := httptest.NewRequest(http.MethodGet, "/api/orders", nil)
		req.Header.Set("Authorization", header)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		if rec.Code != http.StatusUnauthorized {
			t.Errorf("header %q: status = %d, want 401", header, rec.Code)
		}
	}
}

func TestAuthJWTWrongSecret(t *testing.T) {
	token, err := utils.GenerateToken(uuid.New(), "ADMIN", "other-secret", 1)
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}

	handler := AuthJWT(testJWT, zap.NewNop())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("handler reached with forged token")
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/orders", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rec.Code)
	}
}

func TestAdmin(t *testing.T) {
	ok := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	tests := []struct {
		name string
		role string
		want int
	}{
		{"admin passes", "ADMIN", http.StatusOK},
		{"customer forbidden", "CUSTOMER", http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := Admin(zap.NewNop())(ok)

			req := httptest.NewRequest(http.MethodGet, "/api/users", nil)
			ctx := utils.SetUserContext(req.Context(), uuid.NewString(), tt.role)
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req.WithContext(ctx))

			if rec.Code != tt.want {
				t.Errorf("status = %d, want %d", rec.Code, tt.want)
			}
		})
	}
}

func TestAdminWithoutAuth(t *testing.T) {
	handler := Admin(zap.NewNop())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("handler reached without role in context")
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/users", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rec.Code)
	}
}
