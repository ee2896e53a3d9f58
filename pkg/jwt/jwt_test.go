package jwt

import (
	"testing"
	"time"

	"fittrack/config"
)

func newTestService() *JWTService {
	return NewJWTService(config.JWTConfig{
		Secret:     "test-secret",
		ExpireTime: time.Hour,
		Issuer:     "fittrack-test",
	})
}

func TestGenerateAndValidateToken(t *testing.T) {
	svc := newTestService()

	token, err := svc.GenerateToken(42, "alice")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	claims, err := svc.ValidateToken(token)
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if got := claims.UserID(); got != 42 {
		t.Errorf("UserID() = %d, want 42", got)
	}
	if got := claims.Username(); got != "alice" {
		t.Errorf("Username() = %q, want %q", got, "alice")
	}
}

func TestGenerateTokenZeroUserID(t *testing.T) {
	svc := newTestService()

	if _, err := svc.GenerateToken(0, "alice"); err == nil {
		t.Fatal("zero userID accepted")
	}
}

func TestValidateTokenInvalid(t *testing.T) {
	svc := newTestService()

	token, err := svc.GenerateToken(42, "alice")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	cases := []struct {
		name  string
		token string
	}{
		{"empty", ""},
		{"garbage", "not.a.token"},
		{"tampered", token + "x"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := svc.ValidateToken(tc.token); err == nil {
				t.Error("invalid token accepted")
			}
		})
	}
}

func TestValidateTokenWrongIssuer(t *testing.T) {
	other := NewJWTService(config.JWTConfig{
		Secret:     "test-secret",
		ExpireTime: time.Hour,
		Issuer:     "someone-else",
	})
	token, err := other.GenerateToken(42, "alice")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	if _, err := newTestService().ValidateToken(token); err == nil {
		t.Fatal("token with wrong issuer accepted")
	}
}

func TestValidateTokenExpired(t *testing.T) {
	svc := NewJWTService(config.JWTConfig{
		Secret:     "test-secret",
		ExpireTime: -time.Minute,
		Issuer:     "fittrack-test",
	})
	token, err := svc.GenerateToken(42, "alice")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	if _, err := svc.ValidateToken(token); err == nil {
		t.Fatal("expired token accepted")
	}
}
