package utils

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func TestTokenRoundTrip(t *testing.T) {
	m := NewJWTManager("secret", time.Hour)
	token, expiresAt, err := m.GenerateToken("admin")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if time.Until(expiresAt) <= 0 {
		t.Fatalf("expiry %v already passed", expiresAt)
	}
	claims, err := m.ValidateToken(token)
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if claims.Username != "admin" {
		t.Fatalf("username = %q", claims.Username)
	}
}

func TestTokenRejectsOtherSecret(t *testing.T) {
	token, _, err := NewJWTManager("one", time.Hour).GenerateToken("admin")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := NewJWTManager("two", time.Hour).ValidateToken(token); err == nil {
		t.Fatal("token signed with another secret was accepted")
	}
}

func TestTokenExpired(t *testing.T) {
	m := NewJWTManager("secret", -time.Minute)
	token, _, err := m.GenerateToken("admin")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := m.ValidateToken(token); !errors.Is(err, jwt.ErrTokenExpired) {
		t.Fatalf("err = %v, want expired", err)
	}
}

func TestPasswordHash(t *testing.T) {
	hash, err := HashPassword("admin123")
	if err != nil {
		t.Fatal(err)
	}
	if !CheckPasswordHash("admin123", hash) {
		t.Fatal("hash does not match its password")
	}
	if CheckPasswordHash("admin124", hash) {
		t.Fatal("hash matches another password")
	}
}
