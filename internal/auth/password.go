package auth

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// PasswordGate checks login attempts against the single configured admin
// password. The plaintext from the configuration is hashed once at startup
// and discarded.
type PasswordGate struct {
	hash []byte
}

// NewPasswordGate hashes the configured password. An empty password returns
// nil, meaning the UI runs without a login page.
func NewPasswordGate(password string) (*PasswordGate, error) {
	if password == "" {
		return nil, nil
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash admin password: %w", err)
	}
	return &PasswordGate{hash: hash}, nil
}

// Check verifies a login attempt.
func (g *PasswordGate) Check(password string) error {
	if err := bcrypt.CompareHashAndPassword(g.hash, []byte(password)); err != nil {
		return ErrInvalidPassword
	}
	return nil
}
