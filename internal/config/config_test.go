// filepath: internal/config/config_test.go
package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfig_ParseAndValidate(t *testing.T) {
	t.Run("Valid Config", func(t *testing.T) {
		cfg := &Config{
			Server:   ServerConfig{Port: 8080},
			Snapshot: SnapshotConfig{AutoExportInterval: "24h"},
		}
		err := cfg.ParseAndValidate()
		assert.NoError(t, err)
	})

	t.Run("Invalid Port", func(t *testing.T) {
		cfg := &Config{
			Server: ServerConfig{Port: 70000},
		}
		err := cfg.ParseAndValidate()
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "invalid server port")
	})

	t.Run("Negative Token Duration", func(t *testing.T) {
		cfg := &Config{
			JWT: JWTConfig{AccessDurationMin: -5},
		}
		err := cfg.ParseAndValidate()
		assert.Error(t, err)
	})

	t.Run("Invalid Export Interval", func(t *testing.T) {
		cfg := &Config{
			Snapshot: SnapshotConfig{AutoExportInterval: "NotADuration"},
		}
		err := cfg.ParseAndValidate()
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "invalid snapshot auto_export_interval")
	})
}

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")

	content := `
[server]
host = "127.0.0.1"
port = 9090

[database]
path = "store.db"

[snapshot]
path = "db_export.json"
auto_export_interval = "24h"
`
	assert.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := LoadConfig(path)
	assert.NoError(t, err)
	assert.Equal(t, "127.0.0.1", cfg.Server.Host)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "db_export.json", cfg.Snapshot.Path)
	assert.True(t, cfg.Snapshot.ImportOnStart, "import_on_start defaults to true when absent")
}

func TestLoadConfig_ExplicitImportOnStartFalse(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")

	content := `
[snapshot]
import_on_start = false
`
	assert.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := LoadConfig(path)
	assert.NoError(t, err)
	assert.False(t, cfg.Snapshot.ImportOnStart, "an explicit false in the file must win over the default")
}

func TestSaveConfigRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")

	original := &Config{
		Server:   ServerConfig{Host: "0.0.0.0", Port: 8080},
		Database: DatabaseConfig{Path: "recipehub.db"},
		Snapshot: SnapshotConfig{Path: "db_export.json", ImportOnStart: true},
		JWT:      JWTConfig{AccessDurationMin: 5, RefreshDurationHours: 24, Secret: "persisted-secret"},
	}
	assert.NoError(t, SaveConfig(path, original))

	loaded, err := LoadConfig(path)
	assert.NoError(t, err)
	assert.Equal(t, original.Server, loaded.Server)
	assert.Equal(t, original.Snapshot, loaded.Snapshot)
	assert.Equal(t, "persisted-secret", loaded.JWT.Secret)
	assert.Empty(t, loaded.JWTSecret, "the runtime secret is never persisted")
}
