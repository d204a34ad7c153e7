package utils

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"

	"golang.org/x/crypto/bcrypt"
)

// HashPassword produces a salted bcrypt hash. The original system
// stored unsalted SHA-256 digests; new and reset credentials always
// get bcrypt.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// LegacyHashPassword is the hex SHA-256 digest the pre-migration user
// rows carry, including the seeded admin account.
func LegacyHashPassword(password string) string {
	sum := sha256.Sum256([]byte(password))
	return hex.EncodeToString(sum[:])
}

// CheckPassword verifies a candidate against either hash form:
// bcrypt first, then the legacy digest.
func CheckPassword(stored, candidate string) bool {
	if err := bcrypt.CompareHashAndPassword([]byte(stored), []byte(candidate)); err == nil {
		return true
	}
	legacy := LegacyHashPassword(candidate)
	return subtle.ConstantTimeCompare([]byte(stored), []byte(legacy)) == 1
}
