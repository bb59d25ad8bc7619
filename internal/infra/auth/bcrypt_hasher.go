// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"golang.org/x/crypto/bcrypt"

	"forum/internal/domain/service"
	"forum/internal/errors"
)

// ErrInvalidCost is returned when the configured work factor is outside bcrypt's range.
var ErrInvalidCost = errors.New("bcrypt cost out of range")

// bcryptHasher implements service.PasswordHasher with a fixed work factor.
type bcryptHasher struct {
	cost int
}

// NewBcryptHasher returns a hasher producing hashes at the given cost.
func NewBcryptHasher(cost int) (service.PasswordHasher, error) {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		return nil, errors.Wrapf(ErrInvalidCost, "cost %d not in [%d, %d]", cost, bcrypt.MinCost, bcrypt.MaxCost)
	}

	return &bcryptHasher{cost: cost}, nil
}

// Hash generates a salted hash. bcrypt draws a fresh salt per call and embeds
// it together with the cost in the output.
func (h *bcryptHasher) Hash(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if errors.Is(err, bcrypt.ErrPasswordTooLong) {
		return "", errors.Wrapf(service.ErrPasswordTooLong, "%d bytes", len(password))
	}
	if err != nil {
		return "", errors.Wrap(err, "bcrypt generate")
	}

	return string(bytes), nil
}

// Check compares in constant time. Any error, including a malformed hash, is a mismatch.
func (h *bcryptHasher) Check(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

func (h *bcryptHasher) NeedsRehash(hash string) bool {
	cost, err := bcrypt.Cost([]byte(hash))
	if err != nil {
		return true
	}

	return cost != h.cost
}
