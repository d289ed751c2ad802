// Package auth implements credential issuance and verification: password
// hashing, session token signing, and identity resolution from request headers.
package auth

import (
	"inkwell/internal/models"

	"golang.org/x/crypto/bcrypt"
)

// PasswordHasher produces and verifies salted one-way password digests.
type PasswordHasher struct {
	cost int
}

// NewPasswordHasher returns a hasher with the given bcrypt work factor.
// A cost of 0 falls back to bcrypt.DefaultCost.
func NewPasswordHasher(cost int) *PasswordHasher {
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	return &PasswordHasher{cost: cost}
}

// Hash returns a salted digest of plaintext. Two calls on the same input
// produce different digests because bcrypt embeds a random salt.
func (h *PasswordHasher) Hash(plaintext string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(plaintext), h.cost)
	if err != nil {
		return "", models.NewInternalError(err)
	}
	return string(digest), nil
}

// Verify reports whether plaintext matches digest. It never returns an error
// for a well-formed mismatch; the comparison is constant-time.
func (h *PasswordHasher) Verify(plaintext, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(plaintext)) == nil
}
