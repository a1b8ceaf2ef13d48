package crypto

import (
	"encoding/hex"
	"testing"
)

func TestNewGuestToken(t *testing.T) {
	token, err := NewGuestToken()
	if err != nil {
		t.Fatalf("NewGuestToken() unexpected error: %v", err)
	}
	if len(token) != 64 {
		t.Fatalf("NewGuestToken() length = %d, want 64", len(token))
	}
	if _, err := hex.DecodeString(token); err != nil {
		t.Errorf("NewGuestToken() = %q, not valid hex: %v", token, err)
	}
}

func TestNewGuestTokenUnique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		token, err := NewGuestToken()
		if err != nil {
			t.Fatalf("NewGuestToken() unexpected error: %v", err)
		}
		if seen[token] {
			t.Fatalf("NewGuestToken() repeated token %q", token)
		}
		seen[token] = true
	}
}
