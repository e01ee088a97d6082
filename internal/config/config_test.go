package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "mongodb://localhost:27017", cfg.Database.URI)
	assert.Equal(t, CatalogSourceFile, cfg.Catalog.Source)
	assert.Equal(t, 10*time.Second, cfg.Catalog.LoadTimeout)
	assert.Equal(t, 10*time.Minute, cfg.Coach.CacheTTL)
	assert.Equal(t, StorageDriverMongo, cfg.Storage.Driver)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Empty(t, cfg.Generator.Equipment)
	assert.Zero(t, cfg.Generator.Seed)
}

func TestLoadConfig_FileAndEnv(t *testing.T) {
	dir := t.TempDir()
	yaml := `
database:
  name: coach_test
catalog:
  source: S3
  object_key: catalogs/v2.json
  load_timeout: 3s
coach:
  base_url: http://brain.local
storage:
  driver: memory
generator:
  equipment: [body only, bands]
  seed: 42
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yaml), 0o600))
	t.Setenv("COACH_TIMEOUT", "5s")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)

	assert.Equal(t, "coach_test", cfg.Database.Name)
	assert.Equal(t, CatalogSourceS3, cfg.Catalog.Source)
	assert.Equal(t, "catalogs/v2.json", cfg.Catalog.ObjectKey)
	assert.Equal(t, 3*time.Second, cfg.Catalog.LoadTimeout)
	assert.Equal(t, "http://brain.local", cfg.Coach.BaseURL)
	assert.Equal(t, 5*time.Second, cfg.Coach.Timeout)
	assert.Equal(t, StorageDriverMemory, cfg.Storage.Driver)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, []string{"body only", "bands"}, cfg.Generator.Equipment)
	assert.Equal(t, uint64(42), cfg.Generator.Seed)
}

func TestLoadConfig_DotEnv(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("S3_BUCKET_NAME=exercise-index\n"), 0o600))
	// registers restoration of the variable, then leaves it unset for .env
	t.Setenv("S3_BUCKET_NAME", "")
	require.NoError(t, os.Unsetenv("S3_BUCKET_NAME"))

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)
	assert.Equal(t, "exercise-index", cfg.S3.BucketName)
}

func TestLoadConfig_BadFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("catalog: [unclosed"), 0o600))

	_, err := LoadConfig(dir)
	assert.Error(t, err)
}
