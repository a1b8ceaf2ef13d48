package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/pantrypal/pantrypal-go/internal/middleware"
	"github.com/pantrypal/pantrypal-go/internal/model"
	"github.com/pantrypal/pantrypal-go/internal/service"
	"github.com/pantrypal/pantrypal-go/internal/session"
)

// GuestPantryCookieName is the client-held slot for a guest's pantry payload.
const GuestPantryCookieName = "guest_pantry"

// PantryHandler handles HTTP requests for pantry operations. For guest
// identities the pantry payload is read from and written back to the
// guest_pantry cookie on every mutating request.
type PantryHandler struct {
	service   *service.PantryService
	cookieTTL time.Duration
}

// NewPantryHandler creates a new PantryHandler.
func NewPantryHandler(svc *service.PantryService, cookieTTL time.Duration) *PantryHandler {
	return &PantryHandler{service: svc, cookieTTL: cookieTTL}
}

// HandleList handles GET /api/v1/pantry requests.
func (h *PantryHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	identity := middleware.IdentityFromContext(r.Context())

	items, err := h.service.List(r.Context(), identity, guestPantryPayload(r))
	if err != nil {
		if errors.Is(err, service.ErrUnauthorized) {
			writeJSON(w, http.StatusUnauthorized, errorResponse(err.Error()))
			return
		}
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		return
	}

	if items == nil {
		items = []model.PantryItem{}
	}
	writeJSON(w, http.StatusOK, model.PantryResponse{Items: items})
}

// HandleAdd handles POST /api/v1/pantry requests.
func (h *PantryHandler) HandleAdd(w http.ResponseWriter, r *http.Request) {
	identity := middleware.IdentityFromContext(r.Context())

	r.Body = http.MaxBytesReader(w, r.Body, 1<<20) // 1MB

	var req model.AddPantryItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse("invalid request body"))
		return
	}

	newPayload, err := h.service.Add(r.Context(), identity, req.Ingredient, req.Thumb, guestPantryPayload(r))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrIngredientRequired):
			writeJSON(w, http.StatusBadRequest, errorResponse(err.Error()))
		case errors.Is(err, service.ErrUnauthorized):
			writeJSON(w, http.StatusUnauthorized, errorResponse(err.Error()))
		default:
			writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		}
		return
	}

	if !h.storeGuestPayload(w, identity, newPayload) {
		return
	}
	writeJSON(w, http.StatusCreated, okResponse())
}

// HandleRemove handles DELETE /api/v1/pantry/{item_id} requests. Removing an
// item the caller does not own is a silent no-op success.
func (h *PantryHandler) HandleRemove(w http.ResponseWriter, r *http.Request) {
	identity := middleware.IdentityFromContext(r.Context())

	// A non-numeric item_id falls through as zero and fails validation below.
	itemID, _ := strconv.ParseInt(chi.URLParam(r, "item_id"), 10, 64)

	newPayload, err := h.service.Remove(r.Context(), identity, itemID, guestPantryPayload(r))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrItemIDRequired):
			writeJSON(w, http.StatusBadRequest, errorResponse(err.Error()))
		case errors.Is(err, service.ErrUnauthorized):
			writeJSON(w, http.StatusUnauthorized, errorResponse(err.Error()))
		default:
			writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		}
		return
	}

	if !h.storeGuestPayload(w, identity, newPayload) {
		return
	}
	writeJSON(w, http.StatusOK, okResponse())
}

// storeGuestPayload writes the updated pantry payload back to the guest's
// cookie slot. Reports false after writing an error response.
func (h *PantryHandler) storeGuestPayload(w http.ResponseWriter, identity model.Identity, payload []model.PantryItem) bool {
	if identity.Kind != model.IdentityGuest {
		return true
	}
	encoded, err := session.EncodePantryPayload(payload)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		return false
	}
	setGuestCookie(w, GuestPantryCookieName, encoded, h.cookieTTL)
	return true
}

func guestPantryPayload(r *http.Request) []model.PantryItem {
	cookie, err := r.Cookie(GuestPantryCookieName)
	if err != nil {
		return nil
	}
	return session.DecodePantryPayload(cookie.Value)
}
