package jsonfile

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"phrase-svc/app/domains"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_MissingFileLoadsEmpty(t *testing.T) {
	store, err := NewStore(filepath.Join(t.TempDir(), "frases.json"))
	require.NoError(t, err)

	book, err := store.Load(context.Background())
	require.NoError(t, err)
	assert.Empty(t, book)
}

func TestStore_SaveWritesIndentedDocument(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "frases.json")
	store, err := NewStore(path)
	require.NoError(t, err)

	err = store.Save(context.Background(), domains.PhraseBook{
		"viernes":          {"a", "b"},
		domains.DefaultKey: {"fallback"},
	})
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, `{
  "_default": [
    "fallback"
  ],
  "viernes": [
    "a",
    "b"
  ]
}`, string(data))

	book, err := store.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, book["viernes"])
	assert.Equal(t, []string{"fallback"}, book[domains.DefaultKey])
}

func TestStore_SaveReplacesWholeDocument(t *testing.T) {
	dir := t.TempDir()
	store, err := NewStore(filepath.Join(dir, "frases.json"))
	require.NoError(t, err)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, domains.PhraseBook{"lunes": {"x"}, "martes": {"y"}}))
	require.NoError(t, store.Save(ctx, domains.PhraseBook{"martes": {"z"}}))

	book, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, domains.PhraseBook{"martes": {"z"}}, book)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temporary files must not be left behind")
}

func TestStore_MalformedFileIsAnError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "frases.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"viernes": "not a list"`), 0644))

	store, err := NewStore(path)
	require.NoError(t, err)

	_, err = store.Load(context.Background())
	assert.Error(t, err)
}
