// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"forum/internal/domain/entity"
	"forum/internal/errors"

	"github.com/google/uuid"
)

var (
	// ErrAccountNotFound is returned when no account matches the lookup.
	ErrAccountNotFound = errors.New("account not found")

	// ErrAccountEmailTaken is returned when the email unique constraint rejects an insert.
	ErrAccountEmailTaken = errors.New("account email already taken")
)

type AccountRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Account, error)

	// FindByEmail matches the email exactly as stored.
	FindByEmail(ctx context.Context, email string) (*entity.Account, error)

	Create(ctx context.Context, account *entity.Account) error

	// UpdatePasswordHash replaces the stored hash. Used when upgrading the cost on login.
	UpdatePasswordHash(ctx context.Context, id uuid.UUID, passwordHash string) error
}
