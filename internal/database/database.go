package database

import (
	"database/sql"
	"fmt"
	"net/url"

	_ "github.com/lib/pq"

	"github.com/testiq/backend/internal/config"
)

// BuildDSN resolves the connection string, overriding the database name
// when one is configured.
func BuildDSN(rawURL, dbName string) (string, error) {
	if dbName == "" {
		return rawURL, nil
	}
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", fmt.Errorf("invalid database URL: %w", err)
	}
	u.Path = "/" + dbName
	return u.String(), nil
}

func Connect(cfg *config.Config) (*sql.DB, error) {
	dsn, err := BuildDSN(cfg.DatabaseURL, cfg.DatabaseName)
	if err != nil {
		return nil, err
	}

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)

	return db, nil
}

// Migrate creates the two document tables. Sessions and results are stored
// as JSON documents keyed by session id; results keep one row per submission
// so a repeat submission appends rather than overwrites.
func Migrate(db *sql.DB) error {
	query := `
	CREATE TABLE IF NOT EXISTS test_sessions (
		test_id    VARCHAR(36) PRIMARY KEY,
		doc        JSONB NOT NULL,
		created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
	);

	CREATE TABLE IF NOT EXISTS test_results (
		id         BIGSERIAL PRIMARY KEY,
		test_id    VARCHAR(36) NOT NULL,
		doc        JSONB NOT NULL,
		created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
	);

	CREATE INDEX IF NOT EXISTS idx_results_test ON test_results(test_id);
	`

	if _, err := db.Exec(query); err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}
	return nil
}
