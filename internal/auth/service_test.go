package auth

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	pkgAuth "github.com/Japhetmondragon/Mondragonpartyrental.com/pkg/auth"
	"github.com/Japhetmondragon/Mondragonpartyrental.com/pkg/config"
	"github.com/Japhetmondragon/Mondragonpartyrental.com/pkg/db/models"
	"github.com/Japhetmondragon/Mondragonpartyrental.com/pkg/enums"
	pkgerrors "github.com/Japhetmondragon/Mondragonpartyrental.com/pkg/errors"
	"github.com/Japhetmondragon/Mondragonpartyrental.com/pkg/security"
)

type stubUserRepo struct {
	user      *models.User
	lastLogin *time.Time
}

func (s *stubUserRepo) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	if s.user != nil && s.user.Email == email {
		return s.user, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *stubUserRepo) FindByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	if s.user != nil && s.user.ID == id {
		return s.user, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *stubUserRepo) UpdateLastLogin(ctx context.Context, id uuid.UUID, at time.Time) error {
	s.lastLogin = &at
	return nil
}

type stubSessionManager struct {
	registered []string
	revoked    []string
}

func (s *stubSessionManager) Register(ctx context.Context, accessID string) error {
	s.registered = append(s.registered, accessID)
	return nil
}

func (s *stubSessionManager) Revoke(ctx context.Context, accessID string) error {
	s.revoked = append(s.revoked, accessID)
	return nil
}

func testJWTConfig() config.JWTConfig {
	return config.JWTConfig{
		Secret:            "test-secret",
		Issuer:            "mondragonpartyrental",
		ExpirationMinutes: 30,
		CookieName:        "mpr_session",
	}
}

func mustHashPassword(t *testing.T, password string) string {
	t.Helper()
	hash, err := security.HashPassword(password, config.PasswordConfig{})
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	return hash
}

func buildAuthService(t *testing.T, user *models.User) (Service, *stubUserRepo, *stubSessionManager) {
	t.Helper()
	repo := &stubUserRepo{user: user}
	sessions := &stubSessionManager{}
	svc, err := NewService(ServiceParams{
		UserRepo:       repo,
		SessionManager: sessions,
		JWTConfig:      testJWTConfig(),
	})
	if err != nil {
		t.Fatalf("new service: %v", err)
	}
	return svc, repo, sessions
}

func TestLoginIssuesTokenAndRegistersSession(t *testing.T) {
	password := "correct-horse-battery"
	user := &models.User{
		ID:           uuid.New(),
		Email:        "admin@example.com",
		PasswordHash: mustHashPassword(t, password),
		Role:         enums.RoleAdmin,
	}
	svc, repo, sessions := buildAuthService(t, user)

	result, err := svc.Login(context.Background(), LoginRequest{
		Email:    user.Email,
		Password: password,
	})
	if err != nil {
		t.Fatalf("login: %v", err)
	}

	claims, err := pkgAuth.ParseAccessToken(testJWTConfig(), result.Token)
	if err != nil {
		t.Fatalf("parse token: %v", err)
	}
	if claims.UserID != user.ID {
		t.Fatalf("expected user id claim %s, got %s", user.ID, claims.UserID)
	}
	if claims.Role != enums.RoleAdmin {
		t.Fatalf("expected admin role claim, got %s", claims.Role)
	}
	if len(sessions.registered) != 1 || sessions.registered[0] != claims.ID {
		t.Fatalf("expected session registered under jti %q", claims.ID)
	}
	if repo.lastLogin == nil {
		t.Fatalf("expected last login recorded")
	}
	if result.User.Email != user.Email {
		t.Fatalf("unexpected user dto email %q", result.User.Email)
	}
}

func TestLoginWrongPassword(t *testing.T) {
	user := &models.User{
		ID:           uuid.New(),
		Email:        "admin@example.com",
		PasswordHash: mustHashPassword(t, "right-password"),
		Role:         enums.RoleAdmin,
	}
	svc, _, sessions := buildAuthService(t, user)

	_, err := svc.Login(context.Background(), LoginRequest{
		Email:    user.Email,
		Password: "wrong-password",
	})
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeUnauthorized {
		t.Fatalf("expected unauthorized, got %v", err)
	}
	if len(sessions.registered) != 0 {
		t.Fatalf("expected no session for failed login")
	}
}

func TestLoginUnknownEmailSameError(t *testing.T) {
	svc, _, _ := buildAuthService(t, nil)

	_, err := svc.Login(context.Background(), LoginRequest{
		Email:    "nobody@example.com",
		Password: "whatever-password",
	})
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeUnauthorized {
		t.Fatalf("expected unauthorized, got %v", err)
	}
	if typed.Error() == "" || typed.Code() != pkgerrors.CodeUnauthorized {
		t.Fatalf("expected generic unauthorized error")
	}
}

func TestLogoutRevokesSession(t *testing.T) {
	svc, _, sessions := buildAuthService(t, nil)

	if err := svc.Logout(context.Background(), "jti-123"); err != nil {
		t.Fatalf("logout: %v", err)
	}
	if len(sessions.revoked) != 1 || sessions.revoked[0] != "jti-123" {
		t.Fatalf("expected session revoked")
	}

	if err := svc.Logout(context.Background(), ""); err != nil {
		t.Fatalf("logout with empty id should be a no-op, got %v", err)
	}
	if len(sessions.revoked) != 1 {
		t.Fatalf("expected no extra revocation")
	}
}

func TestCurrentUser(t *testing.T) {
	user := &models.User{
		ID:           uuid.New(),
		Email:        "admin@example.com",
		PasswordHash: mustHashPassword(t, "password-123"),
		Role:         enums.RoleAdmin,
	}
	svc, _, _ := buildAuthService(t, user)

	dto, err := svc.CurrentUser(context.Background(), user.ID)
	if err != nil {
		t.Fatalf("current user: %v", err)
	}
	if dto.ID != user.ID || dto.Email != user.Email {
		t.Fatalf("unexpected dto %+v", dto)
	}

	_, err = svc.CurrentUser(context.Background(), uuid.New())
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeUnauthorized {
		t.Fatalf("expected unauthorized for missing account, got %v", err)
	}
}
