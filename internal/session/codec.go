// Package session turns opaque client-held tokens and payloads into trusted
// values: the Codec handles the external string representations, the Resolver
// owns the trust decision.
package session

import (
	"encoding/base64"
	"encoding/json"
	"time"

	"github.com/pantrypal/pantrypal-go/internal/crypto"
	"github.com/pantrypal/pantrypal-go/internal/model"
)

// TokenPayload is the decoded shape of an identity token. Type is one of
// crypto.SessionTypeUser / crypto.SessionTypeGuest.
type TokenPayload struct {
	Type      string
	UserID    int64
	SessionID string
}

// Codec encodes and decodes the three client-held payload shapes: the signed
// identity token and the two guest resource payloads.
type Codec struct {
	secret string
	ttl    time.Duration
}

// NewCodec creates a Codec signing identity tokens with secret, valid for ttl.
func NewCodec(secret string, ttl time.Duration) *Codec {
	return &Codec{secret: secret, ttl: ttl}
}

// EncodeUserToken produces the external representation of a user identity.
func (c *Codec) EncodeUserToken(userID int64) (string, error) {
	return crypto.SignUserToken(userID, c.secret, c.ttl)
}

// EncodeGuestToken produces the external representation of a guest identity.
func (c *Codec) EncodeGuestToken(sessionID string) (string, error) {
	return crypto.SignGuestToken(sessionID, c.secret, c.ttl)
}

// DecodeToken parses an identity token. ok is false for absent, malformed,
// forged or expired input; no error ever escapes this boundary.
func (c *Codec) DecodeToken(raw string) (TokenPayload, bool) {
	if raw == "" {
		return TokenPayload{}, false
	}
	claims, err := crypto.ParseSessionToken(raw, c.secret)
	if err != nil {
		return TokenPayload{}, false
	}
	return TokenPayload{
		Type:      claims.Type,
		UserID:    claims.UserID,
		SessionID: claims.SessionID,
	}, true
}

// EncodePantryPayload serializes a guest pantry list for client-held storage.
func EncodePantryPayload(items []model.PantryItem) (string, error) {
	return encodePayload(items)
}

// DecodePantryPayload deserializes a guest pantry list. Malformed input yields
// an empty list, never an error.
func DecodePantryPayload(raw string) []model.PantryItem {
	return decodePayload[model.PantryItem](raw)
}

// EncodeFavoritesPayload serializes a guest favorites list.
func EncodeFavoritesPayload(items []model.FavoriteItem) (string, error) {
	return encodePayload(items)
}

// DecodeFavoritesPayload deserializes a guest favorites list. Malformed input
// yields an empty list, never an error.
func DecodeFavoritesPayload(raw string) []model.FavoriteItem {
	return decodePayload[model.FavoriteItem](raw)
}

// Guest payloads are JSON wrapped in unpadded base64url so they survive
// cookie transport untouched.
func encodePayload[T any](items []T) (string, error) {
	if items == nil {
		items = []T{}
	}
	data, err := json.Marshal(items)
	if err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(data), nil
}

func decodePayload[T any](raw string) []T {
	if raw == "" {
		return nil
	}
	data, err := base64.RawURLEncoding.DecodeString(raw)
	if err != nil {
		return nil
	}
	var items []T
	if err := json.Unmarshal(data, &items); err != nil {
		return nil
	}
	return items
}
