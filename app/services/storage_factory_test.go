package services

import (
	"context"
	"path/filepath"
	"testing"

	"phrase-svc/app/domains"
	"phrase-svc/storage/jsonfile"
	"phrase-svc/storage/memory"
	"phrase-svc/storage/sqlite"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStorageFactory_Create(t *testing.T) {
	dir := t.TempDir()
	factory := NewStorageFactory(nil, nil)
	ctx := context.Background()

	tests := []struct {
		driver string
		check  func(t *testing.T, store interface{})
	}{
		{DriverFile, func(t *testing.T, store interface{}) { assert.IsType(t, &jsonfile.Store{}, store) }},
		{"", func(t *testing.T, store interface{}) { assert.IsType(t, &jsonfile.Store{}, store) }},
		{DriverMemory, func(t *testing.T, store interface{}) { assert.IsType(t, &memory.Store{}, store) }},
		{DriverSQLite, func(t *testing.T, store interface{}) { assert.IsType(t, &sqlite.Store{}, store) }},
	}

	for _, tt := range tests {
		t.Run(tt.driver, func(t *testing.T) {
			store, closer, err := factory.Create(ctx, StorageOptions{
				Driver:     tt.driver,
				FilePath:   filepath.Join(dir, tt.driver+"frases.json"),
				SQLitePath: filepath.Join(dir, "frases.db"),
			})
			require.NoError(t, err)
			defer closer.Close()
			tt.check(t, store)

			require.NoError(t, store.Save(ctx, domains.PhraseBook{"lunes": {"x"}}))
			book, err := store.Load(ctx)
			require.NoError(t, err)
			assert.Equal(t, []string{"x"}, book["lunes"])
		})
	}
}

func TestStorageFactory_Errors(t *testing.T) {
	factory := NewStorageFactory(nil, nil)

	_, _, err := factory.Create(context.Background(), StorageOptions{Driver: "redis"})
	assert.Error(t, err)

	_, _, err = factory.Create(context.Background(), StorageOptions{Driver: DriverPostgres})
	assert.Error(t, err)
}
