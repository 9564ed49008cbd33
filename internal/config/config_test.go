package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var configKeys = []string{"PORT", "DATASET_PATH", "DATASET_SHEET", "APP_ENV", "SHUTDOWN_TIMEOUT"}

// chdirTemp runs the test from an empty directory so no stray .env is read,
// and clears every key Load looks at.
func chdirTemp(t *testing.T) string {
	t.Helper()
	for _, k := range configKeys {
		t.Setenv(k, "")
	}

	wd, err := os.Getwd()
	require.NoError(t, err)
	dir := t.TempDir()
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
	return dir
}

func TestLoadDefaults(t *testing.T) {
	chdirTemp(t)

	cfg := Load()
	assert.Equal(t, "5000", cfg.Port)
	assert.Equal(t, ":5000", cfg.Addr())
	assert.Equal(t, "sample_volunteer_database.xlsx", cfg.DatasetPath)
	assert.Equal(t, "Sheet1", cfg.DatasetSheet)
	assert.Equal(t, EnvProduction, cfg.Env)
	assert.False(t, cfg.IsDevelopment())
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
	assert.Empty(t, cfg.Warnings)
}

func TestLoadFromEnv(t *testing.T) {
	chdirTemp(t)
	t.Setenv("PORT", "8081")
	t.Setenv("DATASET_PATH", "/data/roster.xlsx")
	t.Setenv("DATASET_SHEET", "Volunteers")
	t.Setenv("APP_ENV", "development")
	t.Setenv("SHUTDOWN_TIMEOUT", "3s")

	cfg := Load()
	assert.Equal(t, ":8081", cfg.Addr())
	assert.Equal(t, "/data/roster.xlsx", cfg.DatasetPath)
	assert.Equal(t, "Volunteers", cfg.DatasetSheet)
	assert.True(t, cfg.IsDevelopment())
	assert.Equal(t, 3*time.Second, cfg.ShutdownTimeout)
	assert.Empty(t, cfg.Warnings)
}

func TestLoadInvalidValuesFallBack(t *testing.T) {
	chdirTemp(t)
	t.Setenv("APP_ENV", "staging")
	t.Setenv("SHUTDOWN_TIMEOUT", "soon")

	cfg := Load()
	assert.Equal(t, EnvProduction, cfg.Env)
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
	assert.Len(t, cfg.Warnings, 2)
}

func TestLoadDotEnv(t *testing.T) {
	dir := chdirTemp(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("DATASET_SHEET=FromDotEnv\n"), 0o644))
	// godotenv does not override variables that are already set, even if empty.
	require.NoError(t, os.Unsetenv("DATASET_SHEET"))

	cfg := Load()
	assert.Equal(t, "FromDotEnv", cfg.DatasetSheet)
	t.Cleanup(func() { _ = os.Unsetenv("DATASET_SHEET") })
}
