package services

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"

	"phrase-svc/app/domains"
	"phrase-svc/app/utils"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// SeedFile is the YAML layout accepted by the importer
type SeedFile struct {
	Days    map[string][]string `yaml:"days" validate:"dive,keys,required,endkeys"`
	Default []string            `yaml:"default"`
}

// ImportResult summarizes an import run
type ImportResult struct {
	Added   int
	Skipped int
}

// LoadSeedFile parses and validates a YAML seed file
func LoadSeedFile(path string) (*SeedFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read seed file: %w", err)
	}

	var seed SeedFile
	if err := yaml.Unmarshal(data, &seed); err != nil {
		return nil, fmt.Errorf("failed to parse seed file: %w", err)
	}
	if err := utils.ValidateStruct(&seed); err != nil {
		return nil, fmt.Errorf("invalid seed file %s: %w", path, err)
	}
	return &seed, nil
}

// Import adds every phrase of seed through the normal add path.
// Duplicates and blank phrases are skipped.
func (s *PhraseService) Import(ctx context.Context, seed *SeedFile) (ImportResult, error) {
	var result ImportResult

	s.mu.Lock()
	defer s.mu.Unlock()

	book := s.load(ctx)

	days := make([]string, 0, len(seed.Days))
	for day := range seed.Days {
		days = append(days, day)
	}
	sort.Strings(days)

	add := func(dayKey string, phrases []string) {
		for _, text := range phrases {
			text = strings.TrimSpace(text)
			if text == "" {
				result.Skipped++
				continue
			}
			if _, err := addToBook(book, dayKey, text); errors.Is(err, ErrPhraseExists) {
				result.Skipped++
				continue
			}
			result.Added++
		}
	}

	for _, day := range days {
		add(utils.NormalizeDayKey(day), seed.Days[day])
	}
	add(domains.DefaultKey, seed.Default)

	if result.Added > 0 {
		if err := s.store.Save(ctx, book); err != nil {
			return ImportResult{}, fmt.Errorf("failed to save imported phrases: %w", err)
		}
	}

	s.logger.Info("imported phrases",
		zap.Int("added", result.Added),
		zap.Int("skipped", result.Skipped),
	)
	return result, nil
}

// SeedIfEmpty imports seed only when the store holds no phrases
func (s *PhraseService) SeedIfEmpty(ctx context.Context, seed *SeedFile) (ImportResult, error) {
	s.mu.Lock()
	empty := s.load(ctx).Empty()
	s.mu.Unlock()

	if !empty {
		return ImportResult{}, nil
	}
	return s.Import(ctx, seed)
}
