package auth

import (
	"testing"
	"time"

	"trendsight/internal/models"
)

var testUser = models.User{
	ID:    "u-123",
	Email: "demo@example.com",
	Plan:  models.PlanFree,
}

func TestJWTManager_RoundTrip(t *testing.T) {
	manager := NewJWTManager("test-secret", time.Hour)

	token, expiresAt, err := manager.GenerateToken(testUser)
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	if token == "" {
		t.Fatalf("Expected non-empty token")
	}

	if !expiresAt.After(time.Now()) {
		t.Errorf("Expected expiry in the future, got %v", expiresAt)
	}

	session, err := manager.ValidateToken(token)
	if err != nil {
		t.Fatalf("Expected valid token, got: %v", err)
	}

	if session.UserID != testUser.ID || session.Email != testUser.Email || session.Plan != testUser.Plan {
		t.Errorf("Unexpected session: %+v", session)
	}
}

func TestJWTManager_RejectsWrongSecret(t *testing.T) {
	manager := NewJWTManager("test-secret", time.Hour)
	other := NewJWTManager("other-secret", time.Hour)

	token, _, err := manager.GenerateToken(testUser)
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	if _, err := other.ValidateToken(token); err == nil {
		t.Errorf("Expected validation to fail with a different secret")
	}
}

func TestJWTManager_RejectsExpiredToken(t *testing.T) {
	manager := NewJWTManager("test-secret", -time.Minute)

	token, _, err := manager.GenerateToken(testUser)
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	if _, err := manager.ValidateToken(token); err == nil {
		t.Errorf("Expected validation to fail for an expired token")
	}
}

func TestJWTManager_RejectsGarbage(t *testing.T) {
	manager := NewJWTManager("test-secret", time.Hour)

	if _, err := manager.ValidateToken("not.a.token"); err == nil {
		t.Errorf("Expected validation to fail for garbage input")
	}
}
