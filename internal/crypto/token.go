package crypto

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

// guestTokenBytes is the entropy of a guest session token: 32 random bytes,
// hex-encoded to a 64-character string.
const guestTokenBytes = 32

// NewGuestToken generates a cryptographically unguessable guest session token.
func NewGuestToken() (string, error) {
	b := make([]byte, guestTokenBytes)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("generating guest token: %w", err)
	}
	return hex.EncodeToString(b), nil
}
