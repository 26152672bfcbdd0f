package postgres

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/lib/pq" // PostgreSQL driver
)

// DB wraps the database connection
type DB struct {
	*sql.DB
}

// NewDB creates a new database connection
// connectionString should be in the format: "host=localhost port=5432 user=postgres password=postgres dbname=ethicalfolio sslmode=disable"
func NewDB(connectionString string) (*DB, error) {
	db, err := sql.Open("postgres", connectionString)
	if err != nil {
		return nil, fmt.Errorf("failed to open database connection: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DB{DB: db}, nil
}

const schema = `
CREATE TABLE IF NOT EXISTS portfolio_sectors (
	profile     TEXT          NOT NULL,
	id          TEXT          NOT NULL,
	position    INTEGER       NOT NULL,
	name        TEXT          NOT NULL,
	allocation  NUMERIC(9, 6) NOT NULL CHECK (allocation >= 0 AND allocation <= 1),
	color       TEXT          NOT NULL,
	icon        TEXT          NOT NULL DEFAULT '',
	activities  TEXT[]        NOT NULL DEFAULT '{}',
	PRIMARY KEY (profile, id)
);

CREATE TABLE IF NOT EXISTS portfolio_regions (
	profile     TEXT             NOT NULL,
	region      TEXT             NOT NULL,
	position    INTEGER          NOT NULL,
	percentage  INTEGER          NOT NULL CHECK (percentage >= 0),
	longitude   DOUBLE PRECISION NOT NULL,
	latitude    DOUBLE PRECISION NOT NULL,
	PRIMARY KEY (profile, region)
);
`

// EnsureSchema creates the portfolio tables when they do not exist
func (db *DB) EnsureSchema(ctx context.Context) error {
	if _, err := db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	return nil
}

// Close closes the database connection
func (db *DB) Close() error {
	return db.DB.Close()
}
