package crypto

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// hashCost is the bcrypt work factor. Raising it invalidates nothing: stored
// hashes embed their own cost and keep verifying.
const hashCost = 12

// HashPassword hashes a password using bcrypt. The salt is generated per call,
// so hashing the same password twice yields different strings.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), hashCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// VerifyPassword checks whether a password matches the given bcrypt hash.
// A mismatch returns (false, nil); an error is only returned when the stored
// hash itself is malformed.
func VerifyPassword(password, hash string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	if err == nil {
		return true, nil
	}
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return false, nil
	}
	return false, err
}
