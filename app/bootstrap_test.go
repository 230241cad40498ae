package app

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func testConfig(t *testing.T) *Config {
	t.Helper()
	dir := t.TempDir()
	return &Config{
		ServerPort:  "0",
		StoreDriver: "file",
		StorePath:   filepath.Join(dir, "frases.json"),
		SQLitePath:  filepath.Join(dir, "frases.db"),
		Timezone:    "UTC",
		Location:    time.UTC,
		AdminJWTTTL: time.Hour,
		CORSOrigins: []string{"*"},
		LogLevel:    "info",
		LogFormat:   "json",
	}
}

func TestBootstrap_FileStoreEndToEnd(t *testing.T) {
	gin.SetMode(gin.TestMode)
	cfg := testConfig(t)

	a, err := Bootstrap(context.Background(), cfg, zap.NewNop())
	require.NoError(t, err)
	defer a.Close()

	req := httptest.NewRequest(http.MethodPost, "/frases", strings.NewReader(`{"texto":"c","day":"viernes"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	a.Router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusCreated, rec.Code)

	data, err := os.ReadFile(cfg.StorePath)
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"viernes\": [\n    \"c\"\n  ]\n}", string(data))
}

func TestBootstrap_SeedsEmptyStore(t *testing.T) {
	cfg := testConfig(t)
	cfg.SeedPath = filepath.Join(t.TempDir(), "seed.yaml")
	require.NoError(t, os.WriteFile(cfg.SeedPath, []byte("default:\n  - \"Hola\"\n"), 0644))

	a, err := Bootstrap(context.Background(), cfg, zap.NewNop())
	require.NoError(t, err)
	defer a.Close()

	book, err := a.Storage.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"Hola"}, book["_default"])
}

func TestBootstrap_BadSeedFails(t *testing.T) {
	cfg := testConfig(t)
	cfg.SeedPath = filepath.Join(t.TempDir(), "missing.yaml")

	_, err := Bootstrap(context.Background(), cfg, zap.NewNop())
	assert.Error(t, err)
}

func TestCORSConfig(t *testing.T) {
	assert.True(t, corsConfig([]string{"*"}).AllowAllOrigins)
	assert.True(t, corsConfig([]string{""}).AllowAllOrigins)

	cfg := corsConfig([]string{"http://a.test", " "})
	assert.False(t, cfg.AllowAllOrigins)
	assert.Equal(t, []string{"http://a.test"}, cfg.AllowOrigins)
}

func TestNewLogger(t *testing.T) {
	cfg := testConfig(t)
	logger, err := NewLogger(cfg)
	require.NoError(t, err)
	assert.NotNil(t, logger)

	cfg.LogLevel = "loud"
	_, err = NewLogger(cfg)
	assert.Error(t, err)

	cfg.LogLevel = "debug"
	cfg.LogFormat = "xml"
	_, err = NewLogger(cfg)
	assert.Error(t, err)
}
