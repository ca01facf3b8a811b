package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"

	pkgAuth "github.com/Japhetmondragon/Mondragonpartyrental.com/pkg/auth"
	"github.com/Japhetmondragon/Mondragonpartyrental.com/pkg/config"
	"github.com/Japhetmondragon/Mondragonpartyrental.com/pkg/enums"
)

type fakeSessionChecker struct {
	sessions map[string]bool
	err      error
}

func (f *fakeSessionChecker) HasSession(ctx context.Context, accessID string) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	return f.sessions[accessID], nil
}

func authTestConfig() config.JWTConfig {
	return config.JWTConfig{
		Secret:            "middleware-secret",
		Issuer:            "mondragonpartyrental",
		ExpirationMinutes: 30,
		CookieName:        "mpr_session",
	}
}

func mintTestToken(t *testing.T, cfg config.JWTConfig, jti string) (string, uuid.UUID) {
	t.Helper()
	userID := uuid.New()
	token, err := pkgAuth.MintAccessToken(cfg, time.Now().UTC(), pkgAuth.AccessTokenPayload{
		UserID: userID,
		Email:  "admin@example.com",
		Role:   enums.RoleAdmin,
		JTI:    jti,
	})
	if err != nil {
		t.Fatalf("mint token: %v", err)
	}
	return token, userID
}

func contextEchoHandler(t *testing.T, wantUserID uuid.UUID, wantJTI string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if UserIDFromContext(r.Context()) != wantUserID.String() {
			t.Fatalf("expected user id in context")
		}
		if RoleFromContext(r.Context()) != string(enums.RoleAdmin) {
			t.Fatalf("expected role in context")
		}
		if AccessIDFromContext(r.Context()) != wantJTI {
			t.Fatalf("expected access id in context")
		}
		w.WriteHeader(http.StatusOK)
	})
}

func TestAuthAcceptsSessionCookie(t *testing.T) {
	cfg := authTestConfig()
	token, userID := mintTestToken(t, cfg, "jti-cookie")
	checker := &fakeSessionChecker{sessions: map[string]bool{"jti-cookie": true}}

	handler := Auth(cfg, checker, nil)(contextEchoHandler(t, userID, "jti-cookie"))

	req := httptest.NewRequest(http.MethodGet, "/api/admin/v1/auth/me", nil)
	req.AddCookie(&http.Cookie{Name: cfg.CookieName, Value: token})
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestAuthAcceptsBearerHeader(t *testing.T) {
	cfg := authTestConfig()
	token, userID := mintTestToken(t, cfg, "jti-bearer")
	checker := &fakeSessionChecker{sessions: map[string]bool{"jti-bearer": true}}

	handler := Auth(cfg, checker, nil)(contextEchoHandler(t, userID, "jti-bearer"))

	req := httptest.NewRequest(http.MethodGet, "/api/admin/v1/auth/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestAuthRejectsMissingToken(t *testing.T) {
	cfg := authTestConfig()
	handler := Auth(cfg, &fakeSessionChecker{}, nil)(okHandler())

	req := httptest.NewRequest(http.MethodGet, "/api/admin/v1/auth/me", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestAuthRejectsBadSignature(t *testing.T) {
	cfg := authTestConfig()
	otherCfg := cfg
	otherCfg.Secret = "some-other-secret"
	token, _ := mintTestToken(t, otherCfg, "jti-bad")

	handler := Auth(cfg, &fakeSessionChecker{}, nil)(okHandler())

	req := httptest.NewRequest(http.MethodGet, "/api/admin/v1/auth/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestAuthRejectsRevokedSession(t *testing.T) {
	cfg := authTestConfig()
	token, _ := mintTestToken(t, cfg, "jti-revoked")
	checker := &fakeSessionChecker{sessions: map[string]bool{}}

	handler := Auth(cfg, checker, nil)(okHandler())

	req := httptest.NewRequest(http.MethodGet, "/api/admin/v1/auth/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for revoked session, got %d", rec.Code)
	}
}

func TestRequireAdmin(t *testing.T) {
	handler := RequireAdmin(nil)(okHandler())

	req := httptest.NewRequest(http.MethodGet, "/api/admin/v1/items", nil)
	req = req.WithContext(WithRole(req.Context(), string(enums.RoleAdmin)))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected admin allowed, got %d", rec.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/api/admin/v1/items", nil)
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403 without role, got %d", rec.Code)
	}
}
