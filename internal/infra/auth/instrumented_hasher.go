package auth

import (
	"time"

	"forum/internal/domain/service"
)

// HashObserver receives the duration of each hashing operation.
type HashObserver interface {
	ObserveHash(operation string, duration time.Duration)
}

type instrumentedHasher struct {
	next     service.PasswordHasher
	observer HashObserver
}

// NewInstrumentedHasher reports Hash and Check timings to observer.
func NewInstrumentedHasher(next service.PasswordHasher, observer HashObserver) service.PasswordHasher {
	return &instrumentedHasher{next: next, observer: observer}
}

func (h *instrumentedHasher) Hash(password string) (string, error) {
	start := time.Now()
	defer func() { h.observer.ObserveHash("hash", time.Since(start)) }()

	return h.next.Hash(password)
}

func (h *instrumentedHasher) Check(password, hash string) bool {
	start := time.Now()
	defer func() { h.observer.ObserveHash("check", time.Since(start)) }()

	return h.next.Check(password, hash)
}

func (h *instrumentedHasher) NeedsRehash(hash string) bool {
	return h.next.NeedsRehash(hash)
}
