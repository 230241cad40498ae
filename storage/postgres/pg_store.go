package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"phrase-svc/app/domains"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Store represents the Postgres storage implementation
type Store struct {
	pool *pgxpool.Pool
}

// NewStore creates a new Postgres store
// The database must already exist - creation should be handled at the infrastructure/deployment level
func NewStore(ctx context.Context, connString string) (*Store, error) {
	pool, err := pgxpool.New(ctx, connString)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &Store{pool: pool}, nil
}

// Close closes the connection pool
func (s *Store) Close() error {
	s.pool.Close()
	return nil
}

// Load reads every day row into a phrase book
func (s *Store) Load(ctx context.Context) (domains.PhraseBook, error) {
	rows, err := s.pool.Query(ctx, `SELECT day_key, phrases FROM phrase_days`)
	if err != nil {
		return nil, fmt.Errorf("failed to query phrases: %w", err)
	}
	defer rows.Close()

	book := domains.PhraseBook{}
	for rows.Next() {
		var (
			dayKey      string
			phrasesJSON []byte
		)
		if err := rows.Scan(&dayKey, &phrasesJSON); err != nil {
			return nil, err
		}
		phrases := []string{}
		if err := json.Unmarshal(phrasesJSON, &phrases); err != nil {
			return nil, fmt.Errorf("failed to unmarshal phrases for %q: %w", dayKey, err)
		}
		book[dayKey] = phrases
	}

	return book, rows.Err()
}

// Save replaces all rows with the contents of book in one transaction
func (s *Store) Save(ctx context.Context, book domains.PhraseBook) error {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM phrase_days`); err != nil {
		return fmt.Errorf("failed to clear phrases: %w", err)
	}

	batch := &pgx.Batch{}
	for dayKey, phrases := range book {
		if phrases == nil {
			phrases = []string{}
		}
		phrasesJSON, err := json.Marshal(phrases)
		if err != nil {
			return fmt.Errorf("failed to marshal phrases: %w", err)
		}
		batch.Queue(`INSERT INTO phrase_days (day_key, phrases, updated_at) VALUES ($1, $2::jsonb, NOW())`, dayKey, string(phrasesJSON))
	}

	if batch.Len() > 0 {
		if err := tx.SendBatch(ctx, batch).Close(); err != nil {
			return fmt.Errorf("failed to insert phrases: %w", err)
		}
	}

	return tx.Commit(ctx)
}
