package repository

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-sql-driver/mysql"
	"github.com/pantrypal/pantrypal-go/internal/model"
)

func newMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db, mock
}

func duplicateEntryErr() error {
	return &mysql.MySQLError{Number: 1062, Message: "Duplicate entry 'a@x.com' for key 'uq_users_email'"}
}

func TestUserCreate_Success(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db)

	mock.ExpectExec(`INSERT INTO users`).
		WithArgs("a@x.com", "hashed", "bob").
		WillReturnResult(sqlmock.NewResult(7, 1))

	user := &model.User{Email: "a@x.com", PasswordHash: "hashed", Username: "bob"}
	if err := repo.Create(context.Background(), user); err != nil {
		t.Fatalf("Create() unexpected error: %v", err)
	}
	if user.ID != 7 {
		t.Errorf("user.ID = %d, want 7", user.ID)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestUserCreate_NullUsername(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db)

	mock.ExpectExec(`INSERT INTO users`).
		WithArgs("a@x.com", "hashed", nil).
		WillReturnResult(sqlmock.NewResult(1, 1))

	user := &model.User{Email: "a@x.com", PasswordHash: "hashed"}
	if err := repo.Create(context.Background(), user); err != nil {
		t.Fatalf("Create() unexpected error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestUserCreate_DuplicateEmail(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db)

	mock.ExpectExec(`INSERT INTO users`).
		WithArgs("a@x.com", "hashed", nil).
		WillReturnError(duplicateEntryErr())

	err := repo.Create(context.Background(), &model.User{Email: "a@x.com", PasswordHash: "hashed"})
	if !errors.Is(err, ErrDuplicateEmail) {
		t.Errorf("Create() error = %v, want ErrDuplicateEmail", err)
	}
}

func TestUserGetByEmail_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db)

	mock.ExpectQuery(`SELECT .+ FROM users WHERE email`).
		WithArgs("missing@x.com").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByEmail(context.Background(), "missing@x.com")
	if !errors.Is(err, ErrUserNotFound) {
		t.Errorf("GetByEmail() error = %v, want ErrUserNotFound", err)
	}
}

func TestUserGetByID_NullUsername(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db)

	now := time.Now()
	rows := sqlmock.NewRows([]string{"id", "email", "password_hash", "username", "is_guest", "created_at", "updated_at"}).
		AddRow(5, "a@x.com", "hashed", nil, false, now, now)
	mock.ExpectQuery(`SELECT .+ FROM users WHERE id`).
		WithArgs(int64(5)).
		WillReturnRows(rows)

	user, err := repo.GetByID(context.Background(), 5)
	if err != nil {
		t.Fatalf("GetByID() unexpected error: %v", err)
	}
	if user.ID != 5 || user.Email != "a@x.com" {
		t.Errorf("unexpected user: %+v", user)
	}
	if user.Username != "" {
		t.Errorf("user.Username = %q, want empty for NULL column", user.Username)
	}
}

func TestUserUpdate_DuplicateEmail(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db)

	mock.ExpectExec(`UPDATE users SET email`).
		WithArgs("taken@x.com", "bob", int64(5)).
		WillReturnError(duplicateEntryErr())

	err := repo.Update(context.Background(), 5, "taken@x.com", "bob")
	if !errors.Is(err, ErrDuplicateEmail) {
		t.Errorf("Update() error = %v, want ErrDuplicateEmail", err)
	}
}

func TestUserDelete_CascadesInOneTransaction(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM pantry_items WHERE user_id`).
		WithArgs(int64(5)).
		WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectExec(`DELETE FROM favorites WHERE user_id`).
		WithArgs(int64(5)).
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec(`DELETE FROM users WHERE id`).
		WithArgs(int64(5)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	if err := repo.Delete(context.Background(), 5); err != nil {
		t.Fatalf("Delete() unexpected error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestUserDelete_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM pantry_items WHERE user_id`).
		WithArgs(int64(99)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(`DELETE FROM favorites WHERE user_id`).
		WithArgs(int64(99)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(`DELETE FROM users WHERE id`).
		WithArgs(int64(99)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	err := repo.Delete(context.Background(), 99)
	if !errors.Is(err, ErrUserNotFound) {
		t.Errorf("Delete() error = %v, want ErrUserNotFound", err)
	}
}
