package crypto

import (
	"context"
	"errors"
	"fmt"
	"runtime"

	"golang.org/x/crypto/bcrypt"
	"golang.org/x/sync/semaphore"
)

// DefaultBcryptCost matches the cost of the hashes seeded by the initial migration.
const DefaultBcryptCost = 11

// PasswordHasher hashes and verifies passwords with bcrypt.
// bcrypt is deliberately slow, so at most `workers` hash operations run at once;
// callers beyond that wait (or give up when their context ends) instead of
// stealing every CPU from unrelated requests.
type PasswordHasher struct {
	sem  *semaphore.Weighted
	cost int
}

// NewPasswordHasher creates a hasher. workers <= 0 means GOMAXPROCS.
func NewPasswordHasher(cost, workers int) (*PasswordHasher, error) {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		return nil, fmt.Errorf("bcrypt cost must be between %d and %d, got %d", bcrypt.MinCost, bcrypt.MaxCost, cost)
	}
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	return &PasswordHasher{
		sem:  semaphore.NewWeighted(int64(workers)),
		cost: cost,
	}, nil
}

// Hash returns the salted bcrypt hash of password.
func (h *PasswordHasher) Hash(ctx context.Context, password string) (string, error) {
	if password == "" {
		return "", fmt.Errorf("password cannot be empty")
	}

	if err := h.sem.Acquire(ctx, 1); err != nil {
		return "", fmt.Errorf("hashing pool unavailable: %w", err)
	}
	defer h.sem.Release(1)

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}

	return string(hashed), nil
}

// Verify reports whether password matches the stored hash.
// A mismatch is (false, nil); a malformed hash is an error.
func (h *PasswordHasher) Verify(ctx context.Context, hashed, password string) (bool, error) {
	if err := h.sem.Acquire(ctx, 1); err != nil {
		return false, fmt.Errorf("hashing pool unavailable: %w", err)
	}
	defer h.sem.Release(1)

	err := bcrypt.CompareHashAndPassword([]byte(hashed), []byte(password))
	if err == nil {
		return true, nil
	}
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return false, nil
	}

	return false, fmt.Errorf("failed to verify password: %w", err)
}
