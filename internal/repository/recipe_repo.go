// filepath: internal/repository/recipe_repo.go
package repository

import (
	"database/sql"
	"fmt"
	"strings"

	"recipehub/internal/logging"
	"recipehub/internal/models"
	"recipehub/internal/shared"
)

// CreateRecipe inserts a recipe together with its ingredient lines in one
// transaction. Ingredient rows are created on first use with an atomic
// insert-if-absent, so two concurrent submissions of the same new ingredient
// name cannot both insert it.
func (s *Repository) CreateRecipe(recipe *models.Recipe, lines []models.IngredientLine) (*models.Recipe, error) {
	tx, err := s.DB.Begin()
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	query := `
		INSERT INTO recipes (name, dish_category, cuisine, cooking_time, recipe_steps, user_id)
		VALUES (?, ?, ?, ?, ?, ?)
	`
	result, err := tx.Exec(query,
		recipe.Name, recipe.DishCategory, recipe.Cuisine,
		recipe.CookingTime, recipe.RecipeSteps, recipe.UserID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to insert recipe: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, err
	}
	recipe.ID = id

	for _, line := range lines {
		// Get-or-create without a read-modify-write race.
		if _, err := tx.Exec("INSERT INTO ingredients (name) VALUES (?) ON CONFLICT(name) DO NOTHING", line.Name); err != nil {
			return nil, fmt.Errorf("failed to ensure ingredient '%s': %w", line.Name, err)
		}
		if _, err := tx.Exec(
			"INSERT INTO recipe_ingredients (recipe_id, ingredient_name, amount) VALUES (?, ?, ?)",
			id, line.Name, line.Amount,
		); err != nil {
			return nil, fmt.Errorf("failed to insert ingredient line '%s': %w", line.Name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}

	logging.Log.Debugf("CreateRecipe: Recipe '%s' created with ID %d (%d ingredient lines)", recipe.Name, id, len(lines))
	return recipe, nil
}

// GetRecipe retrieves a single recipe by its ID.
func (s *Repository) GetRecipe(id int64) (*models.Recipe, error) {
	query := "SELECT id, name, dish_category, cuisine, cooking_time, recipe_steps, user_id FROM recipes WHERE id = ?"
	row := s.DB.QueryRow(query, id)

	var recipe models.Recipe
	err := row.Scan(&recipe.ID, &recipe.Name, &recipe.DishCategory, &recipe.Cuisine,
		&recipe.CookingTime, &recipe.RecipeSteps, &recipe.UserID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, shared.ErrRecipeNotFound
		}
		return nil, err
	}
	return &recipe, nil
}

// GetRecipes retrieves all recipes.
func (s *Repository) GetRecipes() ([]models.Recipe, error) {
	return s.queryRecipes("SELECT id, name, dish_category, cuisine, cooking_time, recipe_steps, user_id FROM recipes ORDER BY id")
}

// GetRecipesByUser retrieves all recipes owned by one user.
func (s *Repository) GetRecipesByUser(username string) ([]models.Recipe, error) {
	return s.queryRecipes(
		"SELECT id, name, dish_category, cuisine, cooking_time, recipe_steps, user_id FROM recipes WHERE user_id = ? ORDER BY id",
		username,
	)
}

func (s *Repository) queryRecipes(query string, args ...interface{}) ([]models.Recipe, error) {
	rows, err := s.DB.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	// Non-nil slice so JSON marshals to [] instead of null.
	recipes := make([]models.Recipe, 0)
	for rows.Next() {
		var recipe models.Recipe
		if err := rows.Scan(&recipe.ID, &recipe.Name, &recipe.DishCategory, &recipe.Cuisine,
			&recipe.CookingTime, &recipe.RecipeSteps, &recipe.UserID); err != nil {
			return nil, err
		}
		recipes = append(recipes, recipe)
	}

	return recipes, rows.Err()
}

// GetRecipeIngredients retrieves the ingredient lines of a recipe in
// submission order.
func (s *Repository) GetRecipeIngredients(recipeID int64) ([]models.RecipeIngredient, error) {
	query := "SELECT id, recipe_id, ingredient_name, amount FROM recipe_ingredients WHERE recipe_id = ? ORDER BY id"
	rows, err := s.DB.Query(query, recipeID)
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

// CategorySuggestions returns the distinct dish categories matching a
// case-insensitive substring query.
func (s *Repository) CategorySuggestions(query string) ([]string, error) {
	return s.distinctLike("dish_category", query)
}

// CuisineSuggestions returns the distinct cuisines matching a
// case-insensitive substring query.
func (s *Repository) CuisineSuggestions(query string) ([]string, error) {
	return s.distinctLike("cuisine", query)
}

// distinctLike projects the distinct values of one recipes column filtered
// by a case-insensitive substring match. The column name comes from the two
// callers above, never from request input.
func (s *Repository) distinctLike(column, query string) ([]string, error) {
	pattern := "%" + strings.ToLower(query) + "%"
	builder := s.Builder.
		Select(column).Distinct().
		From("recipes").
		Where(fmt.Sprintf("LOWER(%s) LIKE ?", column), pattern).
		OrderBy(column)

	sqlQuery, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build suggestion query: %w", err)
	}

	rows, err := s.DB.Query(sqlQuery, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	values := make([]string, 0)
	for rows.Next() {
		var v string
		if err := rows.Scan(&v); err != nil {
			return nil, err
		}
		values = append(values, v)
	}

	return values, rows.Err()
}
