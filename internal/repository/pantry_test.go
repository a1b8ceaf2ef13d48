package repository

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/pantrypal/pantrypal-go/internal/model"
)

func TestPantryInsert(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPantryRepository(db)

	mock.ExpectExec(`INSERT INTO pantry_items`).
		WithArgs(int64(5), "eggs", nil).
		WillReturnResult(sqlmock.NewResult(11, 1))

	item := &model.PantryItem{OwnerID: 5, Ingredient: "eggs"}
	if err := repo.Insert(context.Background(), item); err != nil {
		t.Fatalf("Insert() unexpected error: %v", err)
	}
	if item.ID != 11 {
		t.Errorf("item.ID = %d, want 11", item.ID)
	}
}

func TestPantryListByOwner_OrderedByIngredient(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPantryRepository(db)

	now := time.Now()
	rows := sqlmock.NewRows([]string{"id", "ingredient", "thumb", "created_at"}).
		AddRow(3, "apples", nil, now).
		AddRow(1, "eggs", "https://img.example/eggs.jpg", now).
		AddRow(2, "flour", nil, now)
	mock.ExpectQuery(`SELECT .+ FROM pantry_items\s+WHERE user_id = \? ORDER BY ingredient ASC`).
		WithArgs(int64(5)).
		WillReturnRows(rows)

	items, err := repo.ListByOwner(context.Background(), 5)
	if err != nil {
		t.Fatalf("ListByOwner() unexpected error: %v", err)
	}
	if len(items) != 3 {
		t.Fatalf("ListByOwner() returned %d items, want 3", len(items))
	}
	if items[0].Ingredient != "apples" || items[2].Ingredient != "flour" {
		t.Errorf("unexpected order: %q, %q, %q", items[0].Ingredient, items[1].Ingredient, items[2].Ingredient)
	}
	if items[0].Thumb != "" {
		t.Errorf("items[0].Thumb = %q, want empty for NULL column", items[0].Thumb)
	}
	if items[1].Thumb != "https://img.example/eggs.jpg" {
		t.Errorf("items[1].Thumb = %q", items[1].Thumb)
	}
	if items[0].OwnerID != 5 {
		t.Errorf("items[0].OwnerID = %d, want 5", items[0].OwnerID)
	}
}

func TestPantryDelete_UnownedItemIsNoop(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPantryRepository(db)

	// Item 999 belongs to someone else: zero rows affected, no error.
	mock.ExpectExec(`DELETE FROM pantry_items WHERE id = \? AND user_id = \?`).
		WithArgs(int64(999), int64(5)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	if err := repo.Delete(context.Background(), 5, 999); err != nil {
		t.Errorf("Delete() of an unowned item: unexpected error %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}
