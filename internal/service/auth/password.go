package auth

import (
	"crypto/sha256"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// HashPassword digests the password with sha256 before bcrypt, so inputs
// longer than bcrypt's 72-byte limit are still fully mixed in.
func HashPassword(password string) (string, error) {
	sha := sha256.Sum256([]byte(password))

	digest, err := bcrypt.GenerateFromPassword(sha[:], bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}

	return string(digest), nil
}

func VerifyPassword(password, digest string) bool {
	sha := sha256.Sum256([]byte(password))
	return bcrypt.CompareHashAndPassword([]byte(digest), sha[:]) == nil
}
