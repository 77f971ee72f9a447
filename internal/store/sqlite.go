package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	_ "modernc.org/sqlite" // registers the "sqlite" driver

	"github.com/vyrodovalexey/contacts-api/internal/model"
)

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS contacts (
    name   TEXT PRIMARY KEY,
    number TEXT NOT NULL DEFAULT '',
    type   TEXT NOT NULL DEFAULT ''
);`

// SQLiteStore implements Store on top of an SQLite database.
type SQLiteStore struct {
	db *sql.DB
}

var _ Store = (*SQLiteStore)(nil)

// NewSQLiteStore opens the database at dsn and creates the contacts table.
// dsn examples: "file:contacts.db" or ":memory:".
func NewSQLiteStore(ctx context.Context, dsn string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	// A single connection keeps ":memory:" databases shared and
	// serializes writers.
	db.SetMaxOpenConns(1)

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA synchronous=NORMAL",
		"PRAGMA busy_timeout=5000",
	}
	for _, p := range pragmas {
		if _, err := db.ExecContext(ctx, p); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("set pragma %q: %w", p, err)
		}
	}

	if _, err := db.ExecContext(ctx, sqliteSchema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrate sqlite schema: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

// Create inserts the contact, leaving an existing row with the same name untouched.
func (s *SQLiteStore) Create(ctx context.Context, contact *model.Contact) (bool, error) {
	if contact == nil {
		return false, ErrNilContact
	}

	res, err := s.db.ExecContext(ctx,
		`INSERT INTO contacts (name, number, type) VALUES (?, ?, ?)
		 ON CONFLICT(name) DO NOTHING`,
		contact.Name, contact.Number, contact.Type,
	)
	if err != nil {
		return false, fmt.Errorf("create contact: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("create contact: rows affected: %w", err)
	}

	return n == 1, nil
}

// Retrieve looks up a contact by exact name.
func (s *SQLiteStore) Retrieve(ctx context.Context, name string) (*model.Contact, error) {
	var c model.Contact
	err := s.db.QueryRowContext(ctx,
		`SELECT name, number, type FROM contacts WHERE name = ?`, name,
	).Scan(&c.Name, &c.Number, &c.Type)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("retrieve contact: %w", err)
	}

	return &c, nil
}

// Close closes the underlying database.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
