package service

import (
	"errors"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"
)

func adminHash(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("bcrypt hash: %v", err)
	}
	return string(hash)
}

func TestAdminAuthLoginAndParse(t *testing.T) {
	svc := NewAdminAuthService("secret", adminHash(t, "hunter2"), 15*time.Minute)

	token, err := svc.Login("hunter2")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if token.AccessToken == "" {
		t.Fatalf("expected access token")
	}
	if token.ExpiresIn != int64((15 * time.Minute).Seconds()) {
		t.Fatalf("unexpected expires_in: %d", token.ExpiresIn)
	}

	claims, err := svc.ParseAccessToken(token.AccessToken)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if claims.Role != "admin" {
		t.Fatalf("expected admin role, got %q", claims.Role)
	}
	if claims.ID == "" {
		t.Fatalf("expected jti claim")
	}
}

func TestAdminAuthLoginWrongPassword(t *testing.T) {
	svc := NewAdminAuthService("secret", adminHash(t, "hunter2"), 15*time.Minute)

	if _, err := svc.Login("letmein"); !errors.Is(err, ErrAdminCredentials) {
		t.Fatalf("expected ErrAdminCredentials, got %v", err)
	}
}

func TestAdminAuthDisabledWithoutConfig(t *testing.T) {
	svc := NewAdminAuthService("", "", 15*time.Minute)

	if _, err := svc.Login("anything"); !errors.Is(err, ErrAdminAuthDisabled) {
		t.Fatalf("expected ErrAdminAuthDisabled, got %v", err)
	}
}

func TestAdminAuthRejectsExpiredToken(t *testing.T) {
	hash := adminHash(t, "hunter2")

	issuer := &AdminAuthService{
		secret:       []byte("secret"),
		passwordHash: []byte(hash),
		accessTTL:    -1 * time.Minute,
		issuer:       "buyer-quiz",
	}
	token, err := issuer.Login("hunter2")
	if err != nil {
		t.Fatalf("login: %v", err)
	}

	svc := NewAdminAuthService("secret", hash, 15*time.Minute)
	if _, err := svc.ParseAccessToken(token.AccessToken); !errors.Is(err, ErrJWTExpired) {
		t.Fatalf("expected ErrJWTExpired, got %v", err)
	}
}

func TestAdminAuthRejectsForeignToken(t *testing.T) {
	hash := adminHash(t, "hunter2")
	issuer := NewAdminAuthService("other-secret", hash, 15*time.Minute)
	token, err := issuer.Login("hunter2")
	if err != nil {
		t.Fatalf("login: %v", err)
	}

	svc := NewAdminAuthService("secret", hash, 15*time.Minute)
	if _, err := svc.ParseAccessToken(token.AccessToken); !errors.Is(err, ErrJWTInvalid) {
		t.Fatalf("expected ErrJWTInvalid, got %v", err)
	}
}
