package repository

import (
	"context"
	"database/sql"

	"github.com/pantrypal/pantrypal-go/internal/model"
)

// FavoriteRepository handles favorite persistence for registered users.
type FavoriteRepository struct {
	db *sql.DB
}

// NewFavoriteRepository creates a new FavoriteRepository.
func NewFavoriteRepository(db *sql.DB) *FavoriteRepository {
	return &FavoriteRepository{db: db}
}

// Add stores a favorite. Favoriting a recipe that is already favorited is a
// no-op: the unique (user_id, recipe_id) key plus the self-assigning update
// clause leave the existing row untouched.
func (r *FavoriteRepository) Add(ctx context.Context, item *model.FavoriteItem) error {
	query := `INSERT INTO favorites (user_id, recipe_id, recipe_name, thumb)
		VALUES (?, ?, ?, ?)
		ON DUPLICATE KEY UPDATE recipe_id = recipe_id`

	_, err := r.db.ExecContext(ctx, query,
		item.OwnerID, item.RecipeID, nullString(item.RecipeName), nullString(item.Thumb))
	return err
}

// Remove deletes a favorite scoped by owner. Removing a pair that does not
// exist affects zero rows and is not an error.
func (r *FavoriteRepository) Remove(ctx context.Context, ownerID int64, recipeID string) error {
	query := `DELETE FROM favorites WHERE user_id = ? AND recipe_id = ?`

	_, err := r.db.ExecContext(ctx, query, ownerID, recipeID)
	return err
}

// ListByOwner retrieves all favorites for a user, most recently favorited
// first.
func (r *FavoriteRepository) ListByOwner(ctx context.Context, ownerID int64) ([]model.FavoriteItem, error) {
	query := `SELECT id, recipe_id, recipe_name, thumb, created_at FROM favorites
		WHERE user_id = ? ORDER BY created_at DESC, id DESC`

	rows, err := r.db.QueryContext(ctx, query, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []model.FavoriteItem
	for rows.Next() {
		item := model.FavoriteItem{OwnerID: ownerID}
		var name, thumb sql.NullString
		if err := rows.Scan(&item.ID, &item.RecipeID, &name, &thumb, &item.CreatedAt); err != nil {
			return nil, err
		}
		item.RecipeName = name.String
		item.Thumb = thumb.String
		items = append(items, item)
	}

	return items, rows.Err()
}
