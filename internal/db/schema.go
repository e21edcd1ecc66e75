package db

import (
	"database/sql"
	"fmt"
)

// EnsureSchema creates the application tables when they do not exist yet.
// Existing tables are left untouched.
func EnsureSchema(handle *sql.DB) error {
	statements := map[string]string{
		"tasks": `
			CREATE TABLE IF NOT EXISTS tasks (
				id CHAR(36) NOT NULL PRIMARY KEY,
				concurrency_stamp CHAR(36) NOT NULL,
				title VARCHAR(255) NOT NULL,
				description TEXT NULL,
				done TINYINT(1) NOT NULL DEFAULT 0,
				due_date DATETIME NULL,
				created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
			) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,
		"accounts": `
			CREATE TABLE IF NOT EXISTS accounts (
				id CHAR(36) NOT NULL PRIMARY KEY,
				concurrency_stamp CHAR(36) NOT NULL,
				username VARCHAR(100) NOT NULL UNIQUE,
				password_hash VARCHAR(255) NOT NULL,
				roles VARCHAR(255) NOT NULL DEFAULT '',
				created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
			) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,
	}

	for table, statement := range statements {
		if HasTable(handle, table) {
			continue
		}
		if _, err := handle.Exec(statement); err != nil {
			return fmt.Errorf("create table %s: %w", table, err)
		}
	}
	return nil
}
