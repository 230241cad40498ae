package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"phrase-svc/app/domains"

	_ "github.com/mattn/go-sqlite3"
)

// Store represents the SQLite storage implementation
type Store struct {
	db *sql.DB
}

// NewStore creates a new SQLite store
func NewStore(dbPath string) (*Store, error) {
	// Ensure directory exists
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	store := &Store{db: db}

	if err := store.runMigrations(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return store, nil
}

// Close closes the database connection
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) runMigrations() error {
	migrations := []string{
		`CREATE TABLE IF NOT EXISTS phrase_days (
			day_key TEXT PRIMARY KEY,
			phrases TEXT NOT NULL DEFAULT '[]',
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)`,
	}

	for _, migration := range migrations {
		if _, err := s.db.Exec(migration); err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}
	}

	return nil
}

// Load reads every day row into a phrase book
func (s *Store) Load(ctx context.Context) (domains.PhraseBook, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT day_key, phrases FROM phrase_days`)
	if err != nil {
		return nil, fmt.Errorf("failed to query phrases: %w", err)
	}
	defer rows.Close()

	book := domains.PhraseBook{}
	for rows.Next() {
		var (
			dayKey      string
			phrasesJSON string
		)
		if err := rows.Scan(&dayKey, &phrasesJSON); err != nil {
			return nil, err
		}
		phrases := []string{}
		if err := json.Unmarshal([]byte(phrasesJSON), &phrases); err != nil {
			return nil, fmt.Errorf("failed to unmarshal phrases for %q: %w", dayKey, err)
		}
		book[dayKey] = phrases
	}

	return book, rows.Err()
}

// Save replaces all rows with the contents of book in one transaction
func (s *Store) Save(ctx context.Context, book domains.PhraseBook) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM phrase_days`); err != nil {
		return fmt.Errorf("failed to clear phrases: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `INSERT INTO phrase_days (day_key, phrases, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)`)
	if err != nil {
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer stmt.Close()

	for dayKey, phrases := range book {
		if phrases == nil {
			phrases = []string{}
		}
		phrasesJSON, err := json.Marshal(phrases)
		if err != nil {
			return fmt.Errorf("failed to marshal phrases: %w", err)
		}
		if _, err := stmt.ExecContext(ctx, dayKey, string(phrasesJSON)); err != nil {
			return fmt.Errorf("failed to insert phrases for %q: %w", dayKey, err)
		}
	}

	return tx.Commit()
}
