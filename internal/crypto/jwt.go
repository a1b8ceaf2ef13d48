package crypto

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var ErrInvalidToken = errors.New("invalid or expired token")

// Session token types. The type claim discriminates the two recognized
// payload shapes; anything else is rejected.
const (
	SessionTypeUser  = "user"
	SessionTypeGuest = "guest"
)

// SessionClaims represents the JWT claims of a PantryPal session token.
// UserID is set for user-typed tokens, SessionID for guest-typed tokens.
type SessionClaims struct {
	jwt.RegisteredClaims
	Type      string `json:"type"`
	UserID    int64  `json:"user_id,omitempty"`
	SessionID string `json:"session_id,omitempty"`
}

// SignUserToken creates a signed session token for a registered user.
func SignUserToken(userID int64, secret string, expiry time.Duration) (string, error) {
	return signToken(SessionClaims{
		RegisteredClaims: registeredClaims(expiry),
		Type:             SessionTypeUser,
		UserID:           userID,
	}, secret)
}

// SignGuestToken creates a signed session token wrapping a guest session ID.
func SignGuestToken(sessionID string, secret string, expiry time.Duration) (string, error) {
	return signToken(SessionClaims{
		RegisteredClaims: registeredClaims(expiry),
		Type:             SessionTypeGuest,
		SessionID:        sessionID,
	}, secret)
}

func registeredClaims(expiry time.Duration) jwt.RegisteredClaims {
	now := time.Now()
	return jwt.RegisteredClaims{
		Issuer:    "pantrypal",
		Audience:  jwt.ClaimStrings{"pantrypal-web"},
		ExpiresAt: jwt.NewNumericDate(now.Add(expiry)),
		IssuedAt:  jwt.NewNumericDate(now),
	}
}

func signToken(claims SessionClaims, secret string) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// ParseSessionToken parses and validates a session token string, returning the
// claims if the signature, expiry and type claim are all valid.
func ParseSessionToken(tokenString, secret string) (*SessionClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &SessionClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return []byte(secret), nil
	}, jwt.WithIssuer("pantrypal"), jwt.WithAudience("pantrypal-web"))
	if err != nil {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*SessionClaims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	switch claims.Type {
	case SessionTypeUser:
		if claims.UserID == 0 {
			return nil, ErrInvalidToken
		}
	case SessionTypeGuest:
		if claims.SessionID == "" {
			return nil, ErrInvalidToken
		}
	default:
		return nil, ErrInvalidToken
	}

	return claims, nil
}
