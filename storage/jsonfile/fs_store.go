package jsonfile

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"phrase-svc/app/domains"
)

// Store keeps the whole phrase book in a single JSON file
type Store struct {
	path string
}

// NewStore creates a file store. The file is created on the first Save.
func NewStore(path string) (*Store, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create base directory: %w", err)
	}
	return &Store{path: path}, nil
}

// Load reads the phrase book. A missing file is an empty book.
func (s *Store) Load(ctx context.Context) (domains.PhraseBook, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	jsonData, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return domains.PhraseBook{}, nil
		}
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	book := domains.PhraseBook{}
	if err := json.Unmarshal(jsonData, &book); err != nil {
		return nil, fmt.Errorf("failed to unmarshal JSON: %w", err)
	}
	return book, nil
}

// Save rewrites the whole file with 2-space indentation
func (s *Store) Save(ctx context.Context, book domains.PhraseBook) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	jsonData, err := json.MarshalIndent(book, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.path), filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmp.Name()
	if _, err := tmp.Write(jsonData); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("failed to write file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to close file: %w", err)
	}
	if err := os.Chmod(tmpPath, 0644); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to chmod file: %w", err)
	}
	if err := os.Rename(tmpPath, s.path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to replace file: %w", err)
	}
	return nil
}
