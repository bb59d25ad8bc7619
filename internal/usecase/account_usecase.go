// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"forum/internal/domain/entity"
)

// RegisterAccountInput is the already validated registration payload.
type RegisterAccountInput struct {
	Name     string
	Email    string
	Password string
}

// AccountUsecase manages forum accounts.
type AccountUsecase interface {
	// Register creates an account. The password is hashed before it is stored.
	Register(ctx context.Context, input RegisterAccountInput) (*entity.Account, error)
}
