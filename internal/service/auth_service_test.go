package service

import (
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/studyhq/studyplan-backend/internal/config"
	"golang.org/x/crypto/bcrypt"
)

func newTestAuthService() *AuthService {
	return NewAuthService(&config.Config{
		JWTSecret:  "test-secret",
		JWTExpiry:  time.Hour,
		BcryptCost: bcrypt.MinCost,
	}, nil)
}

func TestPasswordHashRoundTrip(t *testing.T) {
	svc := newTestAuthService()

	hash, err := svc.HashPassword("correct horse")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if hash == "correct horse" {
		t.Fatal("hash must not equal the plaintext")
	}

	if err := svc.CheckPassword(hash, "correct horse"); err != nil {
		t.Errorf("matching password rejected: %v", err)
	}
	if err := svc.CheckPassword(hash, "wrong"); err != ErrInvalidCredentials {
		t.Errorf("wrong password: got %v, want ErrInvalidCredentials", err)
	}
}

func TestTokenRoundTrip(t *testing.T) {
	svc := newTestAuthService()
	userID := uuid.New()

	token, jti, err := svc.GenerateToken(userID, "ana@example.com")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if jti == "" {
		t.Fatal("jti must not be empty")
	}

	claims, err := svc.ValidateToken(token)
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if claims.UserID != userID {
		t.Errorf("user id: got %s, want %s", claims.UserID, userID)
	}
	if claims.Email != "ana@example.com" {
		t.Errorf("email: got %s", claims.Email)
	}
	if claims.ID != jti {
		t.Errorf("jti: got %s, want %s", claims.ID, jti)
	}
}

func TestValidateTokenRejectsWrongSecret(t *testing.T) {
	svc := newTestAuthService()
	token, _, err := svc.GenerateToken(uuid.New(), "ana@example.com")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	other := NewAuthService(&config.Config{JWTSecret: "different-secret", JWTExpiry: time.Hour}, nil)
	if _, err := other.ValidateToken(token); err == nil {
		t.Fatal("token signed with another secret must be rejected")
	}
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	svc := newTestAuthService()
	if _, err := svc.ValidateToken("not.a.token"); err == nil {
		t.Fatal("garbage token must be rejected")
	}
	if _, err := svc.ValidateToken(strings.Repeat("a", 64)); err == nil {
		t.Fatal("malformed token must be rejected")
	}
}

func TestValidateTokenRejectsExpired(t *testing.T) {
	svc := NewAuthService(&config.Config{
		JWTSecret: "test-secret",
		JWTExpiry: -time.Minute,
	}, nil)

	token, _, err := svc.GenerateToken(uuid.New(), "ana@example.com")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if _, err := svc.ValidateToken(token); err == nil {
		t.Fatal("expired token must be rejected")
	}
}
