package services

import (
	"testing"

	"ems-http-service/config"
)

func TestGenerateAndExtractClaims(t *testing.T) {
	service := NewJWTService(&config.Config{JWTSecretKey: "test-secret"})

	token, err := service.GenerateToken(7, "hr", "lilei@example.com")
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}

	claims, err := service.ExtractClaims(token)
	if err != nil {
		t.Fatalf("extract claims: %v", err)
	}
	if claims.UserID != 7 {
		t.Errorf("user_id = %d, want 7", claims.UserID)
	}
	if claims.Role != "hr" {
		t.Errorf("role = %q, want hr", claims.Role)
	}
	if claims.Email != "lilei@example.com" {
		t.Errorf("email = %q, want lilei@example.com", claims.Email)
	}
	if claims.Issuer != "ems-http-service" {
		t.Errorf("issuer = %q, want ems-http-service", claims.Issuer)
	}
}

func TestValidateTokenWrongSecret(t *testing.T) {
	issuer := NewJWTService(&config.Config{JWTSecretKey: "secret-a"})
	verifier := NewJWTService(&config.Config{JWTSecretKey: "secret-b"})

	token, err := issuer.GenerateToken(1, "employee", "lilei@example.com")
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}

	if _, err := verifier.ValidateToken(token); err == nil {
		t.Fatal("expected validation error with wrong secret")
	}
}

func TestValidateTokenGarbage(t *testing.T) {
	service := NewJWTService(&config.Config{JWTSecretKey: "test-secret"})

	if _, err := service.ValidateToken("not-a-token"); err == nil {
		t.Fatal("expected error for malformed token")
	}
}
