package auth

import (
	"errors"
	"testing"
	"time"
)

func TestSessionManager(t *testing.T) {
	m := NewSessionManager(time.Hour)

	t.Run("generate and validate round trip", func(t *testing.T) {
		token, err := m.Generate()
		if err != nil {
			t.Fatalf("Generate failed: %v", err)
		}
		claims, err := m.Validate(token)
		if err != nil {
			t.Fatalf("Validate failed: %v", err)
		}
		if claims.Role != "admin" {
			t.Errorf("Role: got %q, want admin", claims.Role)
		}
	})

	t.Run("garbage token is rejected", func(t *testing.T) {
		if _, err := m.Validate("not.a.token"); !errors.Is(err, ErrInvalidToken) {
			t.Errorf("Expected ErrInvalidToken, got %v", err)
		}
	})

	t.Run("token from another manager is rejected", func(t *testing.T) {
		other := NewSessionManager(time.Hour)
		token, err := other.Generate()
		if err != nil {
			t.Fatalf("Generate failed: %v", err)
		}
		if _, err := m.Validate(token); !errors.Is(err, ErrInvalidToken) {
			t.Errorf("Expected ErrInvalidToken, got %v", err)
		}
	})

	t.Run("expired token is rejected", func(t *testing.T) {
		short := NewSessionManager(-time.Minute)
		token, err := short.Generate()
		if err != nil {
			t.Fatalf("Generate failed: %v", err)
		}
		if _, err := short.Validate(token); !errors.Is(err, ErrInvalidToken) {
			t.Errorf("Expected ErrInvalidToken, got %v", err)
		}
	})
}

func TestPasswordGate(t *testing.T) {
	t.Run("empty password disables the gate", func(t *testing.T) {
		gate, err := NewPasswordGate("")
		if err != nil {
			t.Fatalf("NewPasswordGate failed: %v", err)
		}
		if gate != nil {
			t.Error("Expected nil gate for empty password")
		}
	})

	t.Run("correct and wrong passwords", func(t *testing.T) {
		gate, err := NewPasswordGate("sésame")
		if err != nil {
			t.Fatalf("NewPasswordGate failed: %v", err)
		}
		if err := gate.Check("sésame"); err != nil {
			t.Errorf("Check with correct password failed: %v", err)
		}
		if err := gate.Check("autre"); !errors.Is(err, ErrInvalidPassword) {
			t.Errorf("Expected ErrInvalidPassword, got %v", err)
		}
	})
}
