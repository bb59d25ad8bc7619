package usecase

import (
	"context"
	"time"

	"forum/internal/domain/entity"
)

type AuthenticateInput struct {
	Email    string
	Password string
}

type AuthenticateOutput struct {
	AccessToken string
	ExpiresIn   time.Duration
	Account     *entity.Account
}

// SessionUsecase exchanges credentials for an access token.
type SessionUsecase interface {
	// Authenticate fails with ErrInvalidCredentials for an unknown email and a
	// wrong password alike.
	Authenticate(ctx context.Context, input AuthenticateInput) (*AuthenticateOutput, error)
}
