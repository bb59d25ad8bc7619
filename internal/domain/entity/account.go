// Package entity contains the core business objects of the forum,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Account is a registered forum member.
type Account struct {
	ID           uuid.UUID // Time-ordered identifier, also the JWT subject.
	Name         string    // Display name.
	Email        string    // Login identifier, unique across accounts.
	PasswordHash string    // bcrypt hash. The plaintext is never stored.
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// NewAccount builds an account with a fresh identifier.
func NewAccount(name, email, passwordHash string, now time.Time) *Account {
	return &Account{
		ID:           newID(),
		Name:         name,
		Email:        email,
		PasswordHash: passwordHash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

func newID() uuid.UUID {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.New()
	}

	return id
}
