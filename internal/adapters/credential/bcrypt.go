// Package credential hashes and verifies album passwords with bcrypt.
package credential

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"
)

const DefaultVerifyTimeout = 2 * time.Second

type Config struct {
	Cost          int
	VerifyTimeout time.Duration
}

// Bcrypt implements both the gallery's PasswordHasher and the resolver's
// PasswordVerifier.
type Bcrypt struct {
	cost    int
	timeout time.Duration
}

func NewBcrypt(cfg Config) *Bcrypt {
	cost := cfg.Cost
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	timeout := cfg.VerifyTimeout
	if timeout <= 0 {
		timeout = DefaultVerifyTimeout
	}
	return &Bcrypt{cost: cost, timeout: timeout}
}

func (b *Bcrypt) HashPassword(plain string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), b.cost)
	if err != nil {
		return "", fmt.Errorf("bcrypt: %w", err)
	}
	return string(hash), nil
}

// VerifyPassword reports whether plain matches hash. It gives up, and
// reports false, when ctx ends or the verify timeout passes first.
func (b *Bcrypt) VerifyPassword(ctx context.Context, plain, hash string) bool {
	if ctx.Err() != nil {
		return false
	}

	ctx, cancel := context.WithTimeout(ctx, b.timeout)
	defer cancel()

	done := make(chan bool, 1)
	go func() {
		done <- bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
	}()

	select {
	case ok := <-done:
		return ok
	case <-ctx.Done():
		return false
	}
}
