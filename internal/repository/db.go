package repository

import (
	"database/sql"
	"fmt"
	"time"

	_ "github.com/go-sql-driver/mysql"
)

// NewDB creates a new MySQL database connection pool with the given DSN.
// The DSN must carry parseTime=true so DATETIME columns scan into time.Time.
func NewDB(dsn string) (*sql.DB, error) {
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, err
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	return db, nil
}

// nullString maps an empty string to SQL NULL, matching the optional columns
// (username, thumb, recipe_name) in the schema.
func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
