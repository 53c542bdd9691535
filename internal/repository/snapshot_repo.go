// filepath: internal/repository/snapshot_repo.go
package repository

import (
	"database/sql"
	"fmt"
	"strings"

	"recipehub/internal/logging"
	"recipehub/internal/models"
)

// ExportSnapshot reads every row of all six entity sets. The reads run as
// plain sequential queries: rows changing between two of them end up
// inconsistently in the document. Callers that need a stable snapshot must
// stop mutating the store first.
func (s *Repository) ExportSnapshot() (*models.Snapshot, error) {
	var snap models.Snapshot
	var err error

	if snap.Users, err = s.GetUsers(); err != nil {
		return nil, fmt.Errorf("failed to export users: %w", err)
	}
	if snap.Recipes, err = s.GetRecipes(); err != nil {
		return nil, fmt.Errorf("failed to export recipes: %w", err)
	}
	if snap.Ingredients, err = s.GetIngredients(); err != nil {
		return nil, fmt.Errorf("failed to export ingredients: %w", err)
	}
	if snap.RecipeIngredients, err = s.getAllRecipeIngredients(); err != nil {
		return nil, fmt.Errorf("failed to export recipe ingredients: %w", err)
	}
	if snap.Favourites, err = s.GetFavourites(); err != nil {
		return nil, fmt.Errorf("failed to export favourites: %w", err)
	}
	if snap.Ratings, err = s.GetRatings(); err != nil {
		return nil, fmt.Errorf("failed to export ratings: %w", err)
	}

	return &snap, nil
}

func (s *Repository) getAllRecipeIngredients() ([]models.RecipeIngredient, error) {
	rows, err := s.DB.Query("SELECT id, recipe_id, ingredient_name, amount FROM recipe_ingredients ORDER BY id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	lines := make([]models.RecipeIngredient, 0)
	for rows.Next() {
		var line models.RecipeIngredient
		if err := rows.Scan(&line.ID, &line.RecipeID, &line.IngredientName, &line.Amount); err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}

	return lines, rows.Err()
}

// RestoreSnapshot replaces the whole store with the document's contents in
// one transaction: either the full replace commits, or the store keeps its
// pre-import state. Rows go in parents-first so foreign keys hold at every
// point: users, recipes, ingredients, recipe ingredients, favourites, ratings.
func (s *Repository) RestoreSnapshot(snap *models.Snapshot) error {
	tx, err := s.DB.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if err := clearAllTables(tx); err != nil {
		return err
	}

	for _, user := range snap.Users {
		if _, err := tx.Exec("INSERT INTO users (username, name, password_hash) VALUES (?, ?, ?)",
			user.Username, user.Name, user.PasswordHash); err != nil {
			return fmt.Errorf("failed to restore user '%s': %w", user.Username, err)
		}
	}
	for _, recipe := range snap.Recipes {
		if _, err := tx.Exec(
			"INSERT INTO recipes (id, name, dish_category, cuisine, cooking_time, recipe_steps, user_id) VALUES (?, ?, ?, ?, ?, ?, ?)",
			recipe.ID, recipe.Name, recipe.DishCategory, recipe.Cuisine,
			recipe.CookingTime, recipe.RecipeSteps, recipe.UserID); err != nil {
			return fmt.Errorf("failed to restore recipe %d: %w", recipe.ID, err)
		}
	}
	for _, ingredient := range snap.Ingredients {
		if _, err := tx.Exec("INSERT INTO ingredients (name) VALUES (?)", ingredient.Name); err != nil {
			return fmt.Errorf("failed to restore ingredient '%s': %w", ingredient.Name, err)
		}
	}
	for _, line := range snap.RecipeIngredients {
		if _, err := tx.Exec("INSERT INTO recipe_ingredients (id, recipe_id, ingredient_name, amount) VALUES (?, ?, ?, ?)",
			line.ID, line.RecipeID, line.IngredientName, line.Amount); err != nil {
			return fmt.Errorf("failed to restore recipe ingredient %d: %w", line.ID, err)
		}
	}
	for _, favourite := range snap.Favourites {
		if _, err := tx.Exec("INSERT INTO favourites (id, user_id, recipe_id) VALUES (?, ?, ?)",
			favourite.ID, favourite.UserID, favourite.RecipeID); err != nil {
			return fmt.Errorf("failed to restore favourite %d: %w", favourite.ID, err)
		}
	}
	for _, rating := range snap.Ratings {
		if _, err := tx.Exec("INSERT INTO ratings (id, user_id, recipe_id, rating) VALUES (?, ?, ?, ?)",
			rating.ID, rating.UserID, rating.RecipeID, rating.Rating); err != nil {
			return fmt.Errorf("failed to restore rating %d: %w", rating.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return err
	}

	s.Cache.Flush()
	logging.Log.Infof("RestoreSnapshot: store replaced (%d users, %d recipes, %d ratings)",
		len(snap.Users), len(snap.Recipes), len(snap.Ratings))
	return nil
}

// Wipe empties every table, leaving the schema in place. Sessions are
// cleared as well, logging everyone out.
func (s *Repository) Wipe() error {
	tx, err := s.DB.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if err := clearAllTables(tx); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return err
	}

	s.Cache.Flush()
	logging.Log.Warn("Wipe: all store contents deleted")
	return nil
}

// clearAllTables deletes all rows children-first and resets the
// AUTOINCREMENT counters.
func clearAllTables(tx *sql.Tx) error {
	tables := []string{"refresh_tokens", "ratings", "favourites", "recipe_ingredients", "ingredients", "recipes", "users"}
	for _, table := range tables {
		if _, err := tx.Exec("DELETE FROM " + table); err != nil {
			return fmt.Errorf("failed to clear table %s: %w", table, err)
		}
	}
	// sqlite_sequence only exists once an AUTOINCREMENT table got a row.
	if _, err := tx.Exec("DELETE FROM sqlite_sequence WHERE name IN ('recipes', 'recipe_ingredients', 'favourites', 'ratings')"); err != nil {
		if !strings.Contains(err.Error(), "no such table") {
			return fmt.Errorf("failed to reset sequences: %w", err)
		}
	}
	return nil
}
