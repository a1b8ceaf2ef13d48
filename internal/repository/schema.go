package repository

import (
	"context"
	"database/sql"
	"fmt"
)

// Schema statements are idempotent and run at startup. Email and recipe_id use
// a binary collation: values are stored and compared exactly as given, so two
// emails differing only in case are distinct rows.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id BIGINT AUTO_INCREMENT PRIMARY KEY,
		email VARCHAR(255) COLLATE utf8mb4_bin NOT NULL,
		password_hash VARCHAR(255) NOT NULL,
		username VARCHAR(255),
		is_guest BOOLEAN NOT NULL DEFAULT FALSE,
		created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP,
		UNIQUE KEY uq_users_email (email)
	) ENGINE=InnoDB`,

	`CREATE TABLE IF NOT EXISTS guest_sessions (
		id BIGINT AUTO_INCREMENT PRIMARY KEY,
		session_token VARCHAR(64) COLLATE utf8mb4_bin NOT NULL,
		created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
		expires_at DATETIME NOT NULL,
		UNIQUE KEY uq_guest_sessions_token (session_token)
	) ENGINE=InnoDB`,

	`CREATE TABLE IF NOT EXISTS pantry_items (
		id BIGINT AUTO_INCREMENT PRIMARY KEY,
		user_id BIGINT NOT NULL,
		ingredient VARCHAR(255) NOT NULL,
		thumb VARCHAR(512),
		created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
		KEY idx_pantry_items_user (user_id),
		CONSTRAINT fk_pantry_items_user FOREIGN KEY (user_id)
			REFERENCES users (id) ON DELETE CASCADE
	) ENGINE=InnoDB`,

	`CREATE TABLE IF NOT EXISTS favorites (
		id BIGINT AUTO_INCREMENT PRIMARY KEY,
		user_id BIGINT NOT NULL,
		recipe_id VARCHAR(64) COLLATE utf8mb4_bin NOT NULL,
		recipe_name VARCHAR(255),
		thumb VARCHAR(512),
		created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
		UNIQUE KEY uq_favorites_owner_recipe (user_id, recipe_id),
		CONSTRAINT fk_favorites_user FOREIGN KEY (user_id)
			REFERENCES users (id) ON DELETE CASCADE
	) ENGINE=InnoDB`,
}

// Migrate creates the schema if it does not exist yet.
func Migrate(ctx context.Context, db *sql.DB) error {
	for _, stmt := range schemaStatements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("applying schema: %w", err)
		}
	}
	return nil
}
