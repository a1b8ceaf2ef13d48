package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/pantrypal/pantrypal-go/internal/model"
	"github.com/pantrypal/pantrypal-go/internal/repository"
)

var (
	// ErrUnauthorized is returned for every resource operation attempted with
	// an anonymous identity.
	ErrUnauthorized       = errors.New("unauthorized")
	ErrIngredientRequired = errors.New("ingredient is required")
	ErrItemIDRequired     = errors.New("item id is required")
)

// PantryService exposes the pantry contract (list, add, remove) over two
// storage backends selected by identity kind: database rows scoped by owner
// for registered users, the client-held payload for guests. The payload is
// the only copy of guest state; nothing guest-owned is persisted here.
type PantryService struct {
	repo *repository.PantryRepository
}

// NewPantryService creates a new PantryService.
func NewPantryService(repo *repository.PantryRepository) *PantryService {
	return &PantryService{repo: repo}
}

// pantryBackend is one storage implementation of the pantry contract.
type pantryBackend interface {
	list(ctx context.Context) ([]model.PantryItem, error)
	add(ctx context.Context, ingredient, thumb string) error
	remove(ctx context.Context, itemID int64) error
}

// backend selects the implementation for an identity. For guests the returned
// guestPantry carries the updated payload after mutations.
func (s *PantryService) backend(identity model.Identity, payload []model.PantryItem) (pantryBackend, *guestPantry, error) {
	switch identity.Kind {
	case model.IdentityUser:
		return &userPantry{repo: s.repo, ownerID: identity.UserID}, nil, nil
	case model.IdentityGuest:
		guest := &guestPantry{items: payload}
		return guest, guest, nil
	default:
		return nil, nil, ErrUnauthorized
	}
}

// List returns the pantry for the given identity. For users the listing is
// ordered by ingredient name ascending; guest items keep their payload order.
func (s *PantryService) List(ctx context.Context, identity model.Identity, payload []model.PantryItem) ([]model.PantryItem, error) {
	backend, _, err := s.backend(identity, payload)
	if err != nil {
		return nil, err
	}
	return backend.list(ctx)
}

// Add stores a new pantry item. The returned payload is non-nil only for
// guest identities and must be written back to the client's pantry slot.
func (s *PantryService) Add(ctx context.Context, identity model.Identity, ingredient, thumb string, payload []model.PantryItem) ([]model.PantryItem, error) {
	if strings.TrimSpace(ingredient) == "" {
		return nil, ErrIngredientRequired
	}

	backend, guest, err := s.backend(identity, payload)
	if err != nil {
		return nil, err
	}
	if err := backend.add(ctx, ingredient, thumb); err != nil {
		return nil, err
	}
	if guest != nil {
		return guest.items, nil
	}
	return nil, nil
}

// Remove deletes a pantry item. Removing an item the caller does not own, or
// one absent from the guest payload, is a silent no-op. The returned payload
// is non-nil only for guest identities.
func (s *PantryService) Remove(ctx context.Context, identity model.Identity, itemID int64, payload []model.PantryItem) ([]model.PantryItem, error) {
	if itemID <= 0 {
		return nil, ErrItemIDRequired
	}

	backend, guest, err := s.backend(identity, payload)
	if err != nil {
		return nil, err
	}
	if err := backend.remove(ctx, itemID); err != nil {
		return nil, err
	}
	if guest != nil {
		return guest.items, nil
	}
	return nil, nil
}

// userPantry is the relational backend, scoped by owner ID.
type userPantry struct {
	repo    *repository.PantryRepository
	ownerID int64
}

func (p *userPantry) list(ctx context.Context) ([]model.PantryItem, error) {
	return p.repo.ListByOwner(ctx, p.ownerID)
}

func (p *userPantry) add(ctx context.Context, ingredient, thumb string) error {
	return p.repo.Insert(ctx, &model.PantryItem{
		OwnerID:    p.ownerID,
		Ingredient: ingredient,
		Thumb:      thumb,
	})
}

func (p *userPantry) remove(ctx context.Context, itemID int64) error {
	return p.repo.Delete(ctx, p.ownerID, itemID)
}

// guestPantry is the payload backend. It operates on the list passed in with
// the request and holds the updated list for the caller to re-encode.
type guestPantry struct {
	items []model.PantryItem
}

func (p *guestPantry) list(ctx context.Context) ([]model.PantryItem, error) {
	return p.items, nil
}

func (p *guestPantry) add(ctx context.Context, ingredient, thumb string) error {
	p.items = append(p.items, model.PantryItem{
		ID:         p.nextID(),
		Ingredient: ingredient,
		Thumb:      thumb,
		CreatedAt:  time.Now().UTC(),
	})
	return nil
}

func (p *guestPantry) remove(ctx context.Context, itemID int64) error {
	kept := p.items[:0]
	for _, item := range p.items {
		if item.ID != itemID {
			kept = append(kept, item)
		}
	}
	p.items = kept
	return nil
}

// nextID allocates max+1 so two rapid additions can never collide and a later
// removal always targets exactly one item.
func (p *guestPantry) nextID() int64 {
	var max int64
	for _, item := range p.items {
		if item.ID > max {
			max = item.ID
		}
	}
	return max + 1
}
