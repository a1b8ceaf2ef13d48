package repository

import (
	"context"
	"database/sql"

	"github.com/pantrypal/pantrypal-go/internal/model"
)

// PantryRepository handles pantry item persistence for registered users.
type PantryRepository struct {
	db *sql.DB
}

// NewPantryRepository creates a new PantryRepository.
func NewPantryRepository(db *sql.DB) *PantryRepository {
	return &PantryRepository{db: db}
}

// Insert adds a pantry item for its owner and sets the generated ID.
func (r *PantryRepository) Insert(ctx context.Context, item *model.PantryItem) error {
	query := `INSERT INTO pantry_items (user_id, ingredient, thumb) VALUES (?, ?, ?)`

	result, err := r.db.ExecContext(ctx, query, item.OwnerID, item.Ingredient, nullString(item.Thumb))
	if err != nil {
		return err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return err
	}

	item.ID = id
	return nil
}

// ListByOwner retrieves all pantry items for a user, ordered by ingredient
// name ascending.
func (r *PantryRepository) ListByOwner(ctx context.Context, ownerID int64) ([]model.PantryItem, error) {
	query := `SELECT id, ingredient, thumb, created_at FROM pantry_items
		WHERE user_id = ? ORDER BY ingredient ASC`

	rows, err := r.db.QueryContext(ctx, query, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []model.PantryItem
	for rows.Next() {
		item := model.PantryItem{OwnerID: ownerID}
		var thumb sql.NullString
		if err := rows.Scan(&item.ID, &item.Ingredient, &thumb, &item.CreatedAt); err != nil {
			return nil, err
		}
		item.Thumb = thumb.String
		items = append(items, item)
	}

	return items, rows.Err()
}

// Delete removes a pantry item scoped by owner. Deleting an item that does
// not exist or belongs to someone else affects zero rows and is not an error;
// the ownership predicate is the authorization check.
func (r *PantryRepository) Delete(ctx context.Context, ownerID, itemID int64) error {
	query := `DELETE FROM pantry_items WHERE id = ? AND user_id = ?`

	_, err := r.db.ExecContext(ctx, query, itemID, ownerID)
	return err
}
