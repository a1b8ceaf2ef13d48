package model

import "time"

// User represents a registered user in the database.
type User struct {
	ID           int64
	Email        string
	PasswordHash string
	Username     string
	IsGuest      bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// SignupRequest represents a user registration request.
type SignupRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Username string `json:"username"`
}

// LoginRequest represents a user login request.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UpdateAccountRequest represents a profile update. The password fields are
// only consulted when at least one of them is set.
type UpdateAccountRequest struct {
	Username           string `json:"username"`
	CurrentPassword    string `json:"current_password"`
	NewPassword        string `json:"new_password"`
	ConfirmNewPassword string `json:"confirm_new_password"`
}

// UserResponse represents user data safe for API responses (no sensitive fields).
type UserResponse struct {
	ID        int64     `json:"id"`
	Email     string    `json:"email"`
	Username  string    `json:"username,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// SessionResponse is returned by signup, login and guest login. Type mirrors
// the identity kind carried in the session cookie.
type SessionResponse struct {
	Type string        `json:"type"`
	User *UserResponse `json:"user,omitempty"`
}
