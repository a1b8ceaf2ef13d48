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

// GuestFavoritesCookieName is the client-held slot for a guest's favorites
// payload.
const GuestFavoritesCookieName = "guest_favorites"

// FavoritesHandler handles HTTP requests for recipe favorites.
type FavoritesHandler struct {
	service   *service.FavoriteService
	cookieTTL time.Duration
}

// NewFavoritesHandler creates a new FavoritesHandler.
func NewFavoritesHandler(svc *service.FavoriteService, cookieTTL time.Duration) *FavoritesHandler {
	return &FavoritesHandler{service: svc, cookieTTL: cookieTTL}
}

// HandleList handles GET /api/v1/favorites requests.
func (h *FavoritesHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	identity := middleware.IdentityFromContext(r.Context())

	items, err := h.service.List(r.Context(), identity, guestFavoritesPayload(r))
	if err != nil {
		if errors.Is(err, service.ErrUnauthorized) {
			writeJSON(w, http.StatusUnauthorized, errorResponse(err.Error()))
			return
		}
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		return
	}

	if items == nil {
		items = []model.FavoriteItem{}
	}
	writeJSON(w, http.StatusOK, model.FavoritesResponse{Favorites: items})
}

// HandleSet handles POST /api/v1/favorites requests. Setting a favorite that
// already exists, or unsetting one that does not, is a no-op success.
func (h *FavoritesHandler) HandleSet(w http.ResponseWriter, r *http.Request) {
	identity := middleware.IdentityFromContext(r.Context())

	r.Body = http.MaxBytesReader(w, r.Body, 1<<20) // 1MB

	var req model.SetFavoriteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse("invalid request body"))
		return
	}

	newPayload, err := h.service.Set(r.Context(), identity, req, guestFavoritesPayload(r))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrRecipeIDRequired):
			writeJSON(w, http.StatusBadRequest, errorResponse(err.Error()))
		case errors.Is(err, service.ErrUnauthorized):
			writeJSON(w, http.StatusUnauthorized, errorResponse(err.Error()))
		default:
			writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		}
		return
	}

	if identity.Kind == model.IdentityGuest {
		encoded, err := session.EncodeFavoritesPayload(newPayload)
		if err != nil {
			writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
			return
		}
		setGuestCookie(w, GuestFavoritesCookieName, encoded, h.cookieTTL)
	}

	writeJSON(w, http.StatusOK, okResponse())
}

func guestFavoritesPayload(r *http.Request) []model.FavoriteItem {
	cookie, err := r.Cookie(GuestFavoritesCookieName)
	if err != nil {
		return nil
	}
	return session.DecodeFavoritesPayload(cookie.Value)
}
