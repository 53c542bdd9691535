// filepath: internal/services/snapshot_service.go
package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"recipehub/internal/config"
	"recipehub/internal/logging"
	"recipehub/internal/models"
	"recipehub/internal/repository"
	"recipehub/internal/shared"
)

// Compile-time check to ensure interface is implemented
var _ SnapshotService = (*snapshotService)(nil)

// snapshotColumns is the exact key set every row of each snapshot section
// must carry. Missing and unknown keys are both rejected.
var snapshotColumns = map[string][]string{
	"users":              {"username", "name", "password_hash"},
	"recipes":            {"id", "name", "dish_category", "cuisine", "cooking_time", "recipe_steps", "user_id"},
	"ingredients":        {"name"},
	"recipe_ingredients": {"id", "recipe_id", "ingredient_name", "amount"},
	"favourites":         {"id", "user_id", "recipe_id"},
	"ratings":            {"id", "user_id", "recipe_id", "rating"},
}

// snapshotSections fixes the order sections are validated in, so error
// messages are deterministic.
var snapshotSections = []string{"users", "recipes", "ingredients", "recipe_ingredients", "favourites", "ratings"}

// snapshotService implements full-store export and import against the fixed
// snapshot file, plus the wipe action. A mutex serializes the destructive
// operations against each other and against exports.
type snapshotService struct {
	Repo *repository.Repository
	Cfg  *config.Config
	mu   sync.Mutex
}

// NewSnapshotService creates a new SnapshotService.
func NewSnapshotService(repo *repository.Repository, cfg *config.Config) *snapshotService {
	return &snapshotService{Repo: repo, Cfg: cfg}
}

// Export writes the whole store as one JSON document to w.
func (s *snapshotService) Export(w io.Writer) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.export(w)
}

// export does the actual work; callers hold the mutex.
func (s *snapshotService) export(w io.Writer) error {
	snap, err := s.Repo.ExportSnapshot()
	if err != nil {
		return err
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(snap)
}

// ExportToFile writes the snapshot document to the configured snapshot path
// and returns that path. The document goes to a temporary file first and is
// renamed into place, so a failed or interrupted export never clobbers the
// last good snapshot.
func (s *snapshotService) ExportToFile() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	path := s.Cfg.Snapshot.Path
	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".tmp")
	if err != nil {
		return "", fmt.Errorf("failed to create snapshot file for '%s': %w", path, err)
	}
	defer os.Remove(tmp.Name())

	if err := s.export(tmp); err != nil {
		tmp.Close()
		return "", err
	}
	if err := tmp.Close(); err != nil {
		return "", fmt.Errorf("failed to write snapshot file '%s': %w", path, err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return "", fmt.Errorf("failed to replace snapshot file '%s': %w", path, err)
	}

	logging.Log.Infof("SnapshotService: store exported to '%s'", path)
	return path, nil
}

// Import reads the snapshot file at the configured path, validates the
// entire document, and only then replaces the store contents. A missing
// file is shared.ErrSnapshotMissing; a malformed document is rejected
// before anything is deleted.
func (s *snapshotService) Import() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.Cfg.Snapshot.Path)
	if err != nil {
		if os.IsNotExist(err) {
			return shared.ErrSnapshotMissing
		}
		return fmt.Errorf("failed to read snapshot file '%s': %w", s.Cfg.Snapshot.Path, err)
	}

	snap, err := ParseSnapshot(data)
	if err != nil {
		return err
	}

	if err := s.Repo.RestoreSnapshot(snap); err != nil {
		return err
	}

	logging.Log.Infof("SnapshotService: store restored from '%s'", s.Cfg.Snapshot.Path)
	return nil
}

// ImportIfPresent restores the store from the snapshot file if one exists.
// No file means no work and no error; this backs the import-at-startup
// behavior.
func (s *snapshotService) ImportIfPresent() error {
	err := s.Import()
	if err == shared.ErrSnapshotMissing {
		logging.Log.Debugf("SnapshotService: no snapshot file at '%s', starting with current store", s.Cfg.Snapshot.Path)
		return nil
	}
	return err
}

// Wipe deletes everything in the store, keeping the schema.
func (s *snapshotService) Wipe() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.Repo.Wipe()
}

// ParseSnapshot decodes and validates a snapshot document. The document
// must carry exactly the six entity sections, every row must carry exactly
// its section's columns, and cross-references between sections must
// resolve. Any violation wraps shared.ErrSnapshotFormat and the caller's
// store is untouched.
func ParseSnapshot(data []byte) (*models.Snapshot, error) {
	var sections map[string]json.RawMessage
	if err := json.Unmarshal(data, &sections); err != nil {
		return nil, fmt.Errorf("%w: not a JSON object: %v", shared.ErrSnapshotFormat, err)
	}

	for _, name := range snapshotSections {
		if _, ok := sections[name]; !ok {
			return nil, fmt.Errorf("%w: missing section '%s'", shared.ErrSnapshotFormat, name)
		}
	}
	if len(sections) != len(snapshotSections) {
		for name := range sections {
			if _, ok := snapshotColumns[name]; !ok {
				return nil, fmt.Errorf("%w: unknown section '%s'", shared.ErrSnapshotFormat, name)
			}
		}
	}

	for _, name := range snapshotSections {
		if err := checkSectionRows(name, sections[name]); err != nil {
			return nil, err
		}
	}

	var snap models.Snapshot
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&snap); err != nil {
		return nil, fmt.Errorf("%w: %v", shared.ErrSnapshotFormat, err)
	}

	if err := checkReferences(&snap); err != nil {
		return nil, err
	}

	return &snap, nil
}

// checkSectionRows verifies every row of a section is an object carrying
// exactly the section's columns.
func checkSectionRows(name string, raw json.RawMessage) error {
	var rows []map[string]json.RawMessage
	if err := json.Unmarshal(raw, &rows); err != nil {
		return fmt.Errorf("%w: section '%s' is not an array of objects: %v", shared.ErrSnapshotFormat, name, err)
	}

	columns := snapshotColumns[name]
	for i, row := range rows {
		for _, column := range columns {
			if _, ok := row[column]; !ok {
				return fmt.Errorf("%w: %s[%d] is missing column '%s'", shared.ErrSnapshotFormat, name, i, column)
			}
		}
		if len(row) != len(columns) {
			for key := range row {
				known := false
				for _, column := range columns {
					if key == column {
						known = true
						break
					}
				}
				if !known {
					return fmt.Errorf("%w: %s[%d] has unknown column '%s'", shared.ErrSnapshotFormat, name, i, key)
				}
			}
		}
	}
	return nil
}

// checkReferences verifies every cross-section reference resolves within
// the document, so a valid document cannot fail mid-restore on a foreign
// key.
func checkReferences(snap *models.Snapshot) error {
	users := make(map[string]bool, len(snap.Users))
	for i, user := range snap.Users {
		if user.Username == "" {
			return fmt.Errorf("%w: users[%d] has an empty username", shared.ErrSnapshotFormat, i)
		}
		if users[user.Username] {
			return fmt.Errorf("%w: duplicate username '%s'", shared.ErrSnapshotFormat, user.Username)
		}
		users[user.Username] = true
	}

	recipes := make(map[int64]bool, len(snap.Recipes))
	for _, recipe := range snap.Recipes {
		if recipes[recipe.ID] {
			return fmt.Errorf("%w: duplicate recipe id %d", shared.ErrSnapshotFormat, recipe.ID)
		}
		recipes[recipe.ID] = true
		if !users[recipe.UserID] {
			return fmt.Errorf("%w: recipe %d references unknown user '%s'", shared.ErrSnapshotFormat, recipe.ID, recipe.UserID)
		}
	}

	// Ingredient names collate case-insensitively in the store, so two
	// spellings of the same name are one key.
	ingredients := make(map[string]bool, len(snap.Ingredients))
	for _, ingredient := range snap.Ingredients {
		key := strings.ToLower(ingredient.Name)
		if ingredients[key] {
			return fmt.Errorf("%w: duplicate ingredient '%s'", shared.ErrSnapshotFormat, ingredient.Name)
		}
		ingredients[key] = true
	}

	lineIDs := make(map[int64]bool, len(snap.RecipeIngredients))
	for _, line := range snap.RecipeIngredients {
		if lineIDs[line.ID] {
			return fmt.Errorf("%w: duplicate recipe ingredient id %d", shared.ErrSnapshotFormat, line.ID)
		}
		lineIDs[line.ID] = true
		if !recipes[line.RecipeID] {
			return fmt.Errorf("%w: recipe ingredient %d references unknown recipe %d", shared.ErrSnapshotFormat, line.ID, line.RecipeID)
		}
		if !ingredients[strings.ToLower(line.IngredientName)] {
			return fmt.Errorf("%w: recipe ingredient %d references unknown ingredient '%s'", shared.ErrSnapshotFormat, line.ID, line.IngredientName)
		}
	}
	favouriteIDs := make(map[int64]bool, len(snap.Favourites))
	for _, favourite := range snap.Favourites {
		if favouriteIDs[favourite.ID] {
			return fmt.Errorf("%w: duplicate favourite id %d", shared.ErrSnapshotFormat, favourite.ID)
		}
		favouriteIDs[favourite.ID] = true
		if !users[favourite.UserID] {
			return fmt.Errorf("%w: favourite %d references unknown user '%s'", shared.ErrSnapshotFormat, favourite.ID, favourite.UserID)
		}
		if !recipes[favourite.RecipeID] {
			return fmt.Errorf("%w: favourite %d references unknown recipe %d", shared.ErrSnapshotFormat, favourite.ID, favourite.RecipeID)
		}
	}
	ratingIDs := make(map[int64]bool, len(snap.Ratings))
	ratingPairs := make(map[string]bool, len(snap.Ratings))
	for _, rating := range snap.Ratings {
		if ratingIDs[rating.ID] {
			return fmt.Errorf("%w: duplicate rating id %d", shared.ErrSnapshotFormat, rating.ID)
		}
		ratingIDs[rating.ID] = true
		// One rating per (user, recipe), matching the store's unique index.
		pair := fmt.Sprintf("%s\x00%d", rating.UserID, rating.RecipeID)
		if ratingPairs[pair] {
			return fmt.Errorf("%w: user '%s' rates recipe %d more than once", shared.ErrSnapshotFormat, rating.UserID, rating.RecipeID)
		}
		ratingPairs[pair] = true
		if !users[rating.UserID] {
			return fmt.Errorf("%w: rating %d references unknown user '%s'", shared.ErrSnapshotFormat, rating.ID, rating.UserID)
		}
		if !recipes[rating.RecipeID] {
			return fmt.Errorf("%w: rating %d references unknown recipe %d", shared.ErrSnapshotFormat, rating.ID, rating.RecipeID)
		}
	}

	return nil
}
