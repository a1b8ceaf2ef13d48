package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/pantrypal/pantrypal-go/internal/middleware"
	"github.com/pantrypal/pantrypal-go/internal/model"
	"github.com/pantrypal/pantrypal-go/internal/service"
	"github.com/pantrypal/pantrypal-go/internal/session"
)

// AuthHandler handles HTTP requests for signup, login and account management.
type AuthHandler struct {
	service   *service.AuthService
	codec     *session.Codec
	cookieTTL time.Duration
}

// NewAuthHandler creates a new AuthHandler. cookieTTL bounds the lifetime of
// the session cookie on the client.
func NewAuthHandler(svc *service.AuthService, codec *session.Codec, cookieTTL time.Duration) *AuthHandler {
	return &AuthHandler{service: svc, codec: codec, cookieTTL: cookieTTL}
}

// HandleSignup handles POST /api/v1/auth/signup requests.
func (h *AuthHandler) HandleSignup(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, 1<<20) // 1MB

	var req model.SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse("invalid request body"))
		return
	}

	user, err := h.service.Register(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEmailRequired), errors.Is(err, service.ErrPasswordRequired):
			writeJSON(w, http.StatusBadRequest, errorResponse(err.Error()))
		case errors.Is(err, service.ErrEmailTaken):
			writeJSON(w, http.StatusConflict, errorResponse(err.Error()))
		default:
			writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		}
		return
	}

	if !h.establishUserSession(w, user.ID) {
		return
	}
	writeJSON(w, http.StatusCreated, model.SessionResponse{Type: "user", User: &user})
}

// HandleLogin handles POST /api/v1/auth/login requests.
func (h *AuthHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, 1<<20) // 1MB

	var req model.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse("invalid request body"))
		return
	}

	user, err := h.service.Login(r.Context(), req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			writeJSON(w, http.StatusUnauthorized, errorResponse(err.Error()))
			return
		}
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		return
	}

	if !h.establishUserSession(w, user.ID) {
		return
	}
	writeJSON(w, http.StatusOK, model.SessionResponse{Type: "user", User: &user})
}

// HandleGuestLogin handles POST /api/v1/auth/guest requests.
func (h *AuthHandler) HandleGuestLogin(w http.ResponseWriter, r *http.Request) {
	sessionToken, err := h.service.GuestLogin(r.Context())
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		return
	}

	token, err := h.codec.EncodeGuestToken(sessionToken)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		return
	}

	setSessionCookie(w, token, h.cookieTTL)
	writeJSON(w, http.StatusOK, model.SessionResponse{Type: "guest"})
}

// HandleLogout handles POST /api/v1/auth/logout requests. Guest sessions are
// revoked server-side; in every case the session cookie is cleared.
func (h *AuthHandler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	identity := middleware.IdentityFromContext(r.Context())

	if err := h.service.Logout(r.Context(), identity); err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		return
	}

	middleware.ClearSessionCookie(w)
	writeJSON(w, http.StatusOK, okResponse())
}

// HandleMe handles GET /api/v1/auth/me requests.
func (h *AuthHandler) HandleMe(w http.ResponseWriter, r *http.Request) {
	identity := middleware.IdentityFromContext(r.Context())

	switch identity.Kind {
	case model.IdentityUser:
		user, err := h.service.GetUser(r.Context(), identity.UserID)
		if err != nil {
			if errors.Is(err, service.ErrUserNotFound) {
				writeJSON(w, http.StatusUnauthorized, errorResponse("unauthorized"))
				return
			}
			writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
			return
		}
		writeJSON(w, http.StatusOK, model.SessionResponse{Type: "user", User: &user})
	case model.IdentityGuest:
		writeJSON(w, http.StatusOK, model.SessionResponse{Type: "guest"})
	default:
		writeJSON(w, http.StatusUnauthorized, errorResponse("unauthorized"))
	}
}

// HandleUpdateAccount handles PUT /api/v1/account requests.
func (h *AuthHandler) HandleUpdateAccount(w http.ResponseWriter, r *http.Request) {
	identity := middleware.IdentityFromContext(r.Context())
	if identity.Kind != model.IdentityUser {
		writeJSON(w, http.StatusUnauthorized, errorResponse("unauthorized"))
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, 1<<20) // 1MB

	var req model.UpdateAccountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse("invalid request body"))
		return
	}

	user, err := h.service.UpdateAccount(r.Context(), identity.UserID, req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrPasswordFieldsRequired),
			errors.Is(err, service.ErrPasswordTooShort),
			errors.Is(err, service.ErrPasswordMismatch):
			writeJSON(w, http.StatusBadRequest, errorResponse(err.Error()))
		case errors.Is(err, service.ErrCurrentPasswordIncorrect):
			writeJSON(w, http.StatusUnauthorized, errorResponse(err.Error()))
		case errors.Is(err, service.ErrUserNotFound):
			writeJSON(w, http.StatusUnauthorized, errorResponse("unauthorized"))
		default:
			writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		}
		return
	}

	writeJSON(w, http.StatusOK, model.SessionResponse{Type: "user", User: &user})
}

// HandleDeleteAccount handles DELETE /api/v1/account requests. The user row
// and everything it owns go together.
func (h *AuthHandler) HandleDeleteAccount(w http.ResponseWriter, r *http.Request) {
	identity := middleware.IdentityFromContext(r.Context())
	if identity.Kind != model.IdentityUser {
		writeJSON(w, http.StatusUnauthorized, errorResponse("unauthorized"))
		return
	}

	if err := h.service.DeleteAccount(r.Context(), identity.UserID); err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			writeJSON(w, http.StatusNotFound, errorResponse(err.Error()))
			return
		}
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		return
	}

	middleware.ClearSessionCookie(w)
	writeJSON(w, http.StatusOK, okResponse())
}

// establishUserSession mints the session token and sets the cookie. Reports
// false after writing an error response.
func (h *AuthHandler) establishUserSession(w http.ResponseWriter, userID int64) bool {
	token, err := h.codec.EncodeUserToken(userID)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		return false
	}
	setSessionCookie(w, token, h.cookieTTL)
	return true
}
