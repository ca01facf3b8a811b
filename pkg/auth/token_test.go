package auth

import (
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/Japhetmondragon/Mondragonpartyrental.com/pkg/config"
	"github.com/Japhetmondragon/Mondragonpartyrental.com/pkg/enums"
)

func tokenTestConfig() config.JWTConfig {
	return config.JWTConfig{
		Secret:            "token-test-secret",
		Issuer:            "mondragonpartyrental",
		ExpirationMinutes: 15,
	}
}

func TestMintAndParseAccessToken(t *testing.T) {
	cfg := tokenTestConfig()
	userID := uuid.New()
	now := time.Now().UTC()

	token, err := MintAccessToken(cfg, now, AccessTokenPayload{
		UserID: userID,
		Email:  "admin@example.com",
		Role:   enums.RoleAdmin,
		JTI:    "jti-abc",
	})
	if err != nil {
		t.Fatalf("mint: %v", err)
	}

	claims, err := ParseAccessToken(cfg, token)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if claims.UserID != userID {
		t.Fatalf("expected user id %s, got %s", userID, claims.UserID)
	}
	if claims.Email != "admin@example.com" {
		t.Fatalf("unexpected email claim %q", claims.Email)
	}
	if claims.Role != enums.RoleAdmin {
		t.Fatalf("unexpected role claim %q", claims.Role)
	}
	if claims.ID != "jti-abc" {
		t.Fatalf("unexpected jti %q", claims.ID)
	}
	if claims.Issuer != cfg.Issuer {
		t.Fatalf("unexpected issuer %q", claims.Issuer)
	}
}

func TestMintAccessTokenGeneratesJTI(t *testing.T) {
	cfg := tokenTestConfig()

	token, err := MintAccessToken(cfg, time.Now().UTC(), AccessTokenPayload{
		UserID: uuid.New(),
		Email:  "admin@example.com",
		Role:   enums.RoleAdmin,
	})
	if err != nil {
		t.Fatalf("mint: %v", err)
	}

	claims, err := ParseAccessToken(cfg, token)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if claims.ID == "" {
		t.Fatalf("expected generated jti")
	}
	if _, err := uuid.Parse(claims.ID); err != nil {
		t.Fatalf("expected uuid jti, got %q", claims.ID)
	}
}

func TestParseAccessTokenRejectsWrongSecret(t *testing.T) {
	cfg := tokenTestConfig()

	token, err := MintAccessToken(cfg, time.Now().UTC(), AccessTokenPayload{
		UserID: uuid.New(),
		Email:  "admin@example.com",
		Role:   enums.RoleAdmin,
	})
	if err != nil {
		t.Fatalf("mint: %v", err)
	}

	wrong := cfg
	wrong.Secret = "other-secret"
	if _, err := ParseAccessToken(wrong, token); err == nil {
		t.Fatalf("expected signature validation failure")
	}
}

func TestParseAccessTokenRejectsExpired(t *testing.T) {
	cfg := tokenTestConfig()

	token, err := MintAccessToken(cfg, time.Now().UTC().Add(-time.Hour), AccessTokenPayload{
		UserID: uuid.New(),
		Email:  "admin@example.com",
		Role:   enums.RoleAdmin,
	})
	if err != nil {
		t.Fatalf("mint: %v", err)
	}

	if _, err := ParseAccessToken(cfg, token); err == nil {
		t.Fatalf("expected expired token to be rejected")
	}
}

func TestMintAccessTokenValidatesInputs(t *testing.T) {
	cfg := tokenTestConfig()

	bad := cfg
	bad.Secret = ""
	if _, err := MintAccessToken(bad, time.Now(), AccessTokenPayload{Role: enums.RoleAdmin}); err == nil {
		t.Fatalf("expected missing secret to fail")
	}

	if _, err := MintAccessToken(cfg, time.Now(), AccessTokenPayload{Role: enums.Role("ghost")}); err == nil {
		t.Fatalf("expected invalid role to fail")
	}
}
