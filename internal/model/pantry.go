package model

import "time"

// PantryItem represents one ingredient in a pantry. For registered users the
// item is a database row owned via OwnerID; for guests it lives only inside
// the client-held payload and OwnerID is zero.
type PantryItem struct {
	ID         int64     `json:"id"`
	OwnerID    int64     `json:"-"`
	Ingredient string    `json:"ingredient"`
	Thumb      string    `json:"thumb,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

// AddPantryItemRequest represents a request to add an ingredient.
type AddPantryItemRequest struct {
	Ingredient string `json:"ingredient"`
	Thumb      string `json:"thumb"`
}

// PantryResponse wraps a pantry listing.
type PantryResponse struct {
	Items []PantryItem `json:"items"`
}
