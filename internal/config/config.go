// filepath: internal/config/config.go
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"recipehub/internal/shared"
)

// Config holds the application's configuration.
type Config struct {
	Server   ServerConfig   `toml:"server"`
	Database DatabaseConfig `toml:"database"`
	Snapshot SnapshotConfig `toml:"snapshot"`
	Logging  LoggingConfig  `toml:"logging"`
	JWT      JWTConfig      `toml:"jwt"`

	JWTSecret string `toml:"-"` // Runtime secret (from env, flag, or file)
}

// ServerConfig holds the server configuration.
type ServerConfig struct {
	Host string `toml:"host"`
	Port int    `toml:"port"`
}

// DatabaseConfig holds the database configuration.
type DatabaseConfig struct {
	Path string `toml:"path"`
}

// SnapshotConfig holds settings for the store snapshot document.
type SnapshotConfig struct {
	// Path is the well-known location of the snapshot document. It is both
	// the export target and the sole import source.
	Path string `toml:"path"`
	// ImportOnStart reloads the store from the snapshot document at startup.
	// A missing document is not an error; startup continues with the
	// existing store contents.
	ImportOnStart bool `toml:"import_on_start"`
	// AutoExportInterval rewrites the snapshot document on this interval
	// ("24h", "7d", "30m"). "0" disables the background export.
	AutoExportInterval string `toml:"auto_export_interval"`
}

// LoggingConfig holds the logging configuration.
type LoggingConfig struct {
	Level        string `toml:"level"`
	AuditEnabled bool   `toml:"audit_enabled"`
}

// JWTConfig holds settings for token generation.
type JWTConfig struct {
	AccessDurationMin    int    `toml:"access_duration_min"`
	RefreshDurationHours int    `toml:"refresh_duration_hours"`
	Secret               string `toml:"secret"` // Persisted secret
}

// LoadConfig loads the configuration from a TOML file. Boolean defaults
// that differ from the zero value are pre-set so an absent key keeps the
// default while an explicit `false` in the file wins.
func LoadConfig(path string) (*Config, error) {
	config := Config{}
	config.Snapshot.ImportOnStart = true
	if _, err := toml.DecodeFile(path, &config); err != nil {
		return nil, err
	}
	return &config, nil
}

// SaveConfig writes the current configuration back to a TOML file.
// Used to persist the auto-generated JWT secret.
func SaveConfig(path string, cfg *Config) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create config file for saving: %w", err)
	}
	defer f.Close()
	encoder := toml.NewEncoder(f)
	if err := encoder.Encode(cfg); err != nil {
		return fmt.Errorf("failed to encode config to file: %w", err)
	}
	return nil
}

// ParseAndValidate checks configuration values that cannot be defaulted away.
func (c *Config) ParseAndValidate() error {
	if c.Server.Port < 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}
	if c.JWT.AccessDurationMin < 0 || c.JWT.RefreshDurationHours < 0 {
		return fmt.Errorf("token durations must not be negative")
	}
	if c.Snapshot.AutoExportInterval != "" {
		if _, err := shared.ParseDuration(c.Snapshot.AutoExportInterval); err != nil {
			return fmt.Errorf("invalid snapshot auto_export_interval: %w", err)
		}
	}
	return nil
}
