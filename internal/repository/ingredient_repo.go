// filepath: internal/repository/ingredient_repo.go
package repository

import (
	"fmt"
	"strings"

	"recipehub/internal/models"
)

// GetIngredients retrieves all known ingredient names.
func (s *Repository) GetIngredients() ([]models.Ingredient, error) {
	rows, err := s.DB.Query("SELECT name FROM ingredients ORDER BY name")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	ingredients := make([]models.Ingredient, 0)
	for rows.Next() {
		var ingredient models.Ingredient
		if err := rows.Scan(&ingredient.Name); err != nil {
			return nil, err
		}
		ingredients = append(ingredients, ingredient)
	}

	return ingredients, rows.Err()
}

// IngredientSuggestions returns ingredient names matching a case-insensitive
// substring query.
func (s *Repository) IngredientSuggestions(query string) ([]string, error) {
	pattern := "%" + strings.ToLower(query) + "%"
	builder := s.Builder.
		Select("name").
		From("ingredients").
		Where("LOWER(name) LIKE ?", pattern).
		OrderBy("name")

	sqlQuery, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build suggestion query: %w", err)
	}

	rows, err := s.DB.Query(sqlQuery, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	names := make([]string, 0)
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		names = append(names, name)
	}

	return names, rows.Err()
}
