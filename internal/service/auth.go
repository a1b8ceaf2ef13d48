package service

import (
	"context"
	"errors"
	"time"

	"github.com/pantrypal/pantrypal-go/internal/crypto"
	"github.com/pantrypal/pantrypal-go/internal/model"
	"github.com/pantrypal/pantrypal-go/internal/repository"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailRequired      = errors.New("email is required")
	ErrPasswordRequired   = errors.New("password is required")
	ErrEmailTaken         = errors.New("email already taken")
	ErrUserNotFound       = errors.New("user not found")

	ErrPasswordFieldsRequired   = errors.New("all password fields are required")
	ErrPasswordTooShort         = errors.New("new password must be at least 6 characters")
	ErrPasswordMismatch         = errors.New("new passwords do not match")
	ErrCurrentPasswordIncorrect = errors.New("current password is incorrect")
)

const minPasswordLength = 6

// AuthService handles account and session business logic for both identity
// classes: registered users and anonymous guests.
type AuthService struct {
	users    *repository.UserRepository
	sessions *repository.GuestSessionRepository
	guestTTL time.Duration
}

// NewAuthService creates a new AuthService. guestTTL bounds the lifetime of
// guest sessions.
func NewAuthService(users *repository.UserRepository, sessions *repository.GuestSessionRepository, guestTTL time.Duration) *AuthService {
	return &AuthService{
		users:    users,
		sessions: sessions,
		guestTTL: guestTTL,
	}
}

// Register creates a new user account. Email and username are stored exactly
// as given.
func (s *AuthService) Register(ctx context.Context, req model.SignupRequest) (model.UserResponse, error) {
	if req.Email == "" {
		return model.UserResponse{}, ErrEmailRequired
	}
	if req.Password == "" {
		return model.UserResponse{}, ErrPasswordRequired
	}

	hash, err := crypto.HashPassword(req.Password)
	if err != nil {
		return model.UserResponse{}, err
	}

	user := &model.User{
		Email:        req.Email,
		PasswordHash: hash,
		Username:     req.Username,
	}

	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return model.UserResponse{}, ErrEmailTaken
		}
		return model.UserResponse{}, err
	}

	return toUserResponse(user), nil
}

// Login authenticates a user by email and password. An unknown email and a
// wrong password are deliberately indistinguishable: both return
// ErrInvalidCredentials.
func (s *AuthService) Login(ctx context.Context, req model.LoginRequest) (model.UserResponse, error) {
	user, err := s.users.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return model.UserResponse{}, ErrInvalidCredentials
		}
		return model.UserResponse{}, err
	}

	match, err := crypto.VerifyPassword(req.Password, user.PasswordHash)
	if err != nil {
		return model.UserResponse{}, err
	}
	if !match {
		return model.UserResponse{}, ErrInvalidCredentials
	}

	return toUserResponse(user), nil
}

// GuestLogin creates a guest session and returns its token.
func (s *AuthService) GuestLogin(ctx context.Context) (string, error) {
	token, err := crypto.NewGuestToken()
	if err != nil {
		return "", err
	}

	expiresAt := time.Now().Add(s.guestTTL)
	if err := s.sessions.Create(ctx, token, expiresAt); err != nil {
		return "", err
	}

	return token, nil
}

// Logout revokes server-side session state. Only guest identities hold any:
// a guest's registry row is deleted so the token stops validating. User and
// anonymous identities are a no-op; their logout is purely client-side.
func (s *AuthService) Logout(ctx context.Context, identity model.Identity) error {
	if identity.Kind != model.IdentityGuest {
		return nil
	}
	return s.sessions.Revoke(ctx, identity.SessionToken)
}

// GetUser retrieves a user by ID and returns safe user data.
func (s *AuthService) GetUser(ctx context.Context, userID int64) (model.UserResponse, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return model.UserResponse{}, ErrUserNotFound
		}
		return model.UserResponse{}, err
	}
	return toUserResponse(user), nil
}

// UpdateAccount updates a user's profile. The username changes when a new
// non-empty value is given. A password change happens only when any password
// field is set, and then requires all three plus a correct current password.
func (s *AuthService) UpdateAccount(ctx context.Context, userID int64, req model.UpdateAccountRequest) (model.UserResponse, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return model.UserResponse{}, ErrUserNotFound
		}
		return model.UserResponse{}, err
	}

	if req.Username != "" && req.Username != user.Username {
		if err := s.users.Update(ctx, user.ID, user.Email, req.Username); err != nil {
			return model.UserResponse{}, err
		}
		user.Username = req.Username
	}

	wantsPasswordChange := req.CurrentPassword != "" || req.NewPassword != "" || req.ConfirmNewPassword != ""
	if wantsPasswordChange {
		if req.CurrentPassword == "" || req.NewPassword == "" || req.ConfirmNewPassword == "" {
			return model.UserResponse{}, ErrPasswordFieldsRequired
		}
		if len(req.NewPassword) < minPasswordLength {
			return model.UserResponse{}, ErrPasswordTooShort
		}
		if req.NewPassword != req.ConfirmNewPassword {
			return model.UserResponse{}, ErrPasswordMismatch
		}

		match, err := crypto.VerifyPassword(req.CurrentPassword, user.PasswordHash)
		if err != nil {
			return model.UserResponse{}, err
		}
		if !match {
			return model.UserResponse{}, ErrCurrentPasswordIncorrect
		}

		hash, err := crypto.HashPassword(req.NewPassword)
		if err != nil {
			return model.UserResponse{}, err
		}
		if err := s.users.UpdatePassword(ctx, user.ID, hash); err != nil {
			return model.UserResponse{}, err
		}
	}

	return toUserResponse(user), nil
}

// DeleteAccount removes a user together with all of their pantry items and
// favorites.
func (s *AuthService) DeleteAccount(ctx context.Context, userID int64) error {
	if err := s.users.Delete(ctx, userID); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return ErrUserNotFound
		}
		return err
	}
	return nil
}

// SweepExpiredSessions deletes guest sessions whose expiry has passed and
// returns how many were removed. Safe to run concurrently with validation
// and creation.
func (s *AuthService) SweepExpiredSessions(ctx context.Context) (int64, error) {
	return s.sessions.DeleteExpired(ctx)
}

func toUserResponse(user *model.User) model.UserResponse {
	return model.UserResponse{
		ID:        user.ID,
		Email:     user.Email,
		Username:  user.Username,
		CreatedAt: user.CreatedAt,
	}
}
