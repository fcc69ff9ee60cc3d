package utils

import (
	"golang.org/x/crypto/bcrypt"
)

// HashProfilePassword derives the stored bcrypt hash for a profile's
// plaintext password.
func HashProfilePassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(hash), err
}

// VerifyProfilePassword reports whether the plaintext password matches the
// profile's stored hash.
func VerifyProfilePassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
