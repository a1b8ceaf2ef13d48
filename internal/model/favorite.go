package model

import "time"

// FavoriteItem represents one favorited recipe. RecipeID is the external
// recipe identifier; at most one favorite exists per (owner, recipe) pair.
// Guest favorites live only inside the client-held payload.
type FavoriteItem struct {
	ID         int64     `json:"-"`
	OwnerID    int64     `json:"-"`
	RecipeID   string    `json:"recipe_id"`
	RecipeName string    `json:"recipe_name,omitempty"`
	Thumb      string    `json:"thumb,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

// SetFavoriteRequest represents an idempotent favorite toggle.
type SetFavoriteRequest struct {
	RecipeID   string `json:"recipe_id"`
	RecipeName string `json:"recipe_name"`
	Thumb      string `json:"thumb"`
	Favorite   bool   `json:"favorite"`
}

// FavoritesResponse wraps a favorites listing.
type FavoritesResponse struct {
	Favorites []FavoriteItem `json:"favorites"`
}
