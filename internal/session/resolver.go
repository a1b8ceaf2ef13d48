package session

import (
	"context"
	"errors"

	"github.com/pantrypal/pantrypal-go/internal/crypto"
	"github.com/pantrypal/pantrypal-go/internal/model"
	"github.com/pantrypal/pantrypal-go/internal/repository"
)

// UserGetter looks up a registered user by ID.
type UserGetter interface {
	GetByID(ctx context.Context, id int64) (*model.User, error)
}

// GuestChecker reports whether a guest session token is live.
type GuestChecker interface {
	IsValid(ctx context.Context, token string) (bool, error)
}

// Resolver turns a raw session token into a trusted Identity. Untrusted input
// can never produce an error: absent, malformed, forged or stale tokens all
// degrade to Anonymous. The only error path is the backing store failing.
type Resolver struct {
	codec  *Codec
	users  UserGetter
	guests GuestChecker
}

// NewResolver creates a Resolver.
func NewResolver(codec *Codec, users UserGetter, guests GuestChecker) *Resolver {
	return &Resolver{codec: codec, users: users, guests: guests}
}

// Resolve establishes the identity behind rawToken. stale is true when a
// token was presented but no longer maps to a live user or guest session;
// the boundary should clear the client's token slot in that case.
func (r *Resolver) Resolve(ctx context.Context, rawToken string) (identity model.Identity, stale bool, err error) {
	if rawToken == "" {
		return model.Anonymous(), false, nil
	}

	payload, ok := r.codec.DecodeToken(rawToken)
	if !ok {
		return model.Anonymous(), true, nil
	}

	switch payload.Type {
	case crypto.SessionTypeUser:
		user, err := r.users.GetByID(ctx, payload.UserID)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return model.Anonymous(), true, nil
			}
			return model.Anonymous(), false, err
		}
		return model.UserIdentity(user.ID), false, nil

	case crypto.SessionTypeGuest:
		valid, err := r.guests.IsValid(ctx, payload.SessionID)
		if err != nil {
			return model.Anonymous(), false, err
		}
		if !valid {
			return model.Anonymous(), true, nil
		}
		return model.GuestIdentity(payload.SessionID), false, nil
	}

	// Unreachable for tokens minted by this codec, but a decoded token with an
	// unknown type claim still fails closed.
	return model.Anonymous(), true, nil
}
