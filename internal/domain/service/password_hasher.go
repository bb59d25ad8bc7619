// Package service defines interfaces for stateless domain logic that does not
// belong to a single entity.
package service

import "forum/internal/errors"

// ErrPasswordTooLong is returned by Hash when the password exceeds the
// algorithm's input limit. It is a client input error.
var ErrPasswordTooLong = errors.New("password exceeds hasher input limit")

// PasswordHasher hashes and verifies account passwords.
// Implementations must be safe for concurrent use.
type PasswordHasher interface {
	// Hash returns a self-describing salted hash of password. Two calls with the
	// same input return different strings that both verify. Over-long input
	// fails with an error matching ErrPasswordTooLong.
	Hash(password string) (string, error)

	// Check reports whether password matches hash. A malformed hash is a mismatch.
	Check(password, hash string) bool

	// NeedsRehash reports whether hash was produced with parameters other than
	// the ones currently configured.
	NeedsRehash(hash string) bool
}
