package cookies

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite"

	"finview/internal/migrations"
)

// Store persists serialized cookies keyed by origin ("scheme://host").
type Store interface {
	Get(ctx context.Context, origin string) ([]byte, error)
	Set(ctx context.Context, origin string, value []byte) error
	List(ctx context.Context) (map[string][]byte, error)
	Clear(ctx context.Context) error
}

// OpenDatabase opens the client-local SQLite database and applies the
// embedded migrations.
func OpenDatabase(ctx context.Context, dsn string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("sqlite3"); err != nil {
		return nil, fmt.Errorf("failed to set goose dialect: %w", err)
	}
	if err := goose.UpContext(ctx, db, "."); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}
	return db, nil
}

// SQLiteStore is the Store backed by the local SQLite database.
type SQLiteStore struct {
	db *sql.DB
}

func NewSQLiteStore(db *sql.DB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

// Get returns the serialized cookies for origin, or nil when absent.
func (s *SQLiteStore) Get(ctx context.Context, origin string) ([]byte, error) {
	var value []byte
	err := s.db.QueryRowContext(ctx, `SELECT value FROM cookies WHERE origin = ?`, origin).Scan(&value)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get cookies[%s]: %w", origin, err)
	}
	return value, nil
}

func (s *SQLiteStore) Set(ctx context.Context, origin string, value []byte) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO cookies (origin, value) VALUES (?, ?)
		ON CONFLICT(origin) DO UPDATE SET value = excluded.value
	`, origin, value)
	if err != nil {
		return fmt.Errorf("failed to set cookies[%s]: %w", origin, err)
	}
	return nil
}

func (s *SQLiteStore) List(ctx context.Context) (map[string][]byte, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT origin, value FROM cookies`)
	if err != nil {
		return nil, fmt.Errorf("failed to list cookies: %w", err)
	}
	defer rows.Close()

	result := make(map[string][]byte)
	for rows.Next() {
		var origin string
		var value []byte
		if err := rows.Scan(&origin, &value); err != nil {
			return nil, fmt.Errorf("failed to scan cookie row: %w", err)
		}
		result[origin] = value
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate cookie rows: %w", err)
	}
	return result, nil
}

func (s *SQLiteStore) Clear(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM cookies`)
	if err != nil {
		return fmt.Errorf("failed to clear cookies: %w", err)
	}
	return nil
}
