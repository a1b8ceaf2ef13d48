package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/pantrypal/pantrypal-go/internal/model"
	"github.com/pantrypal/pantrypal-go/internal/repository"
)

var ErrRecipeIDRequired = errors.New("recipe_id is required")

// FavoriteService exposes the favorites contract (list, set) over the same
// two backends as the pantry. Set is idempotent in both directions:
// favoriting an already-favorited recipe and unfavoriting an absent one are
// both no-op successes.
type FavoriteService struct {
	repo *repository.FavoriteRepository
}

// NewFavoriteService creates a new FavoriteService.
func NewFavoriteService(repo *repository.FavoriteRepository) *FavoriteService {
	return &FavoriteService{repo: repo}
}

type favoriteBackend interface {
	list(ctx context.Context) ([]model.FavoriteItem, error)
	set(ctx context.Context, req model.SetFavoriteRequest) error
}

func (s *FavoriteService) backend(identity model.Identity, payload []model.FavoriteItem) (favoriteBackend, *guestFavorites, error) {
	switch identity.Kind {
	case model.IdentityUser:
		return &userFavorites{repo: s.repo, ownerID: identity.UserID}, nil, nil
	case model.IdentityGuest:
		guest := &guestFavorites{items: payload}
		return guest, guest, nil
	default:
		return nil, nil, ErrUnauthorized
	}
}

// List returns the favorites for the given identity, most recently favorited
// first for users; guest items keep their payload order.
func (s *FavoriteService) List(ctx context.Context, identity model.Identity, payload []model.FavoriteItem) ([]model.FavoriteItem, error) {
	backend, _, err := s.backend(identity, payload)
	if err != nil {
		return nil, err
	}
	return backend.list(ctx)
}

// Set favorites or unfavorites a recipe. The returned payload is non-nil only
// for guest identities and must be written back to the client's favorites slot.
func (s *FavoriteService) Set(ctx context.Context, identity model.Identity, req model.SetFavoriteRequest, payload []model.FavoriteItem) ([]model.FavoriteItem, error) {
	if strings.TrimSpace(req.RecipeID) == "" {
		return nil, ErrRecipeIDRequired
	}

	backend, guest, err := s.backend(identity, payload)
	if err != nil {
		return nil, err
	}
	if err := backend.set(ctx, req); err != nil {
		return nil, err
	}
	if guest != nil {
		return guest.items, nil
	}
	return nil, nil
}

// userFavorites is the relational backend, scoped by owner ID. Uniqueness of
// (owner, recipe) is guaranteed by the schema.
type userFavorites struct {
	repo    *repository.FavoriteRepository
	ownerID int64
}

func (f *userFavorites) list(ctx context.Context) ([]model.FavoriteItem, error) {
	return f.repo.ListByOwner(ctx, f.ownerID)
}

func (f *userFavorites) set(ctx context.Context, req model.SetFavoriteRequest) error {
	if req.Favorite {
		return f.repo.Add(ctx, &model.FavoriteItem{
			OwnerID:    f.ownerID,
			RecipeID:   req.RecipeID,
			RecipeName: req.RecipeName,
			Thumb:      req.Thumb,
		})
	}
	return f.repo.Remove(ctx, f.ownerID, req.RecipeID)
}

// guestFavorites is the payload backend. Uniqueness has no backing constraint
// here, so the contains-check below is the enforcement.
type guestFavorites struct {
	items []model.FavoriteItem
}

func (f *guestFavorites) list(ctx context.Context) ([]model.FavoriteItem, error) {
	return f.items, nil
}

func (f *guestFavorites) set(ctx context.Context, req model.SetFavoriteRequest) error {
	if req.Favorite {
		for _, item := range f.items {
			if item.RecipeID == req.RecipeID {
				return nil
			}
		}
		f.items = append(f.items, model.FavoriteItem{
			RecipeID:   req.RecipeID,
			RecipeName: req.RecipeName,
			Thumb:      req.Thumb,
			CreatedAt:  time.Now().UTC(),
		})
		return nil
	}

	kept := f.items[:0]
	for _, item := range f.items {
		if item.RecipeID != req.RecipeID {
			kept = append(kept, item)
		}
	}
	f.items = kept
	return nil
}
