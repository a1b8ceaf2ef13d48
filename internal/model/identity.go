package model

// IdentityKind discriminates the resolved identity of a request.
type IdentityKind int

const (
	// IdentityAnonymous means no valid session token was presented.
	IdentityAnonymous IdentityKind = iota
	// IdentityUser is a registered user proven by a user-typed session token.
	IdentityUser
	// IdentityGuest is an anonymous caller holding a live guest session.
	IdentityGuest
)

// Identity is the trusted, per-request representation of who is calling.
// Exactly one payload field is meaningful for each kind: UserID for
// IdentityUser, SessionToken for IdentityGuest.
type Identity struct {
	Kind         IdentityKind
	UserID       int64
	SessionToken string
}

// Anonymous returns the zero identity.
func Anonymous() Identity {
	return Identity{Kind: IdentityAnonymous}
}

// UserIdentity returns an identity for a registered user.
func UserIdentity(userID int64) Identity {
	return Identity{Kind: IdentityUser, UserID: userID}
}

// GuestIdentity returns an identity for a validated guest session.
func GuestIdentity(sessionToken string) Identity {
	return Identity{Kind: IdentityGuest, SessionToken: sessionToken}
}

// IsAnonymous reports whether no identity was established.
func (i Identity) IsAnonymous() bool {
	return i.Kind == IdentityAnonymous
}
