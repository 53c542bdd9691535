// filepath: internal/repository/repository.go
package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/patrickmn/go-cache"
	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite" // SQLite driver

	"recipehub/internal/config"
	"recipehub/internal/db/migrations"
)

// Repository provides access to the SQLite store. It owns the database
// handle; callers receive it once at startup and pass it down explicitly.
type Repository struct {
	DB      *sql.DB
	Cache   *cache.Cache
	Builder squirrel.StatementBuilderType // SQL Query Builder
}

// NewRepository opens (or creates) the SQLite database at the configured path.
func NewRepository(cfg *config.Config) (*Repository, error) {
	// Pragmas go into the DSN so every pooled connection gets them.
	dsn := fmt.Sprintf("file:%s?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)", cfg.Database.Path)
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database at %s: %w", cfg.Database.Path, err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to database at %s: %w", cfg.Database.Path, err)
	}

	return &Repository{
		DB:      db,
		Cache:   cache.New(5*time.Minute, 10*time.Minute),
		Builder: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Question),
	}, nil
}

// Close closes the underlying database handle.
func (s *Repository) Close() error {
	return s.DB.Close()
}

// EnsureSchemaBootstrapped brings the schema up to the latest migration.
// Safe to call on every startup; goose skips already-applied versions.
func (s *Repository) EnsureSchemaBootstrapped() error {
	goose.SetBaseFS(migrations.FS)
	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}
	if err := goose.Up(s.DB, "."); err != nil {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}
	return nil
}
