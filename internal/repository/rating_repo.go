// filepath: internal/repository/rating_repo.go
package repository

import (
	"recipehub/internal/logging"
	"recipehub/internal/models"
)

// UpsertRating records one user's rating of a recipe. A second rating from
// the same (user, recipe) pair overwrites the first; the row count for the
// pair stays at one.
func (s *Repository) UpsertRating(username string, recipeID int64, value int) error {
	query := `
		INSERT INTO ratings (user_id, recipe_id, rating)
		VALUES (?, ?, ?)
		ON CONFLICT(user_id, recipe_id) DO UPDATE SET rating = excluded.rating
	`
	if _, err := s.DB.Exec(query, username, recipeID, value); err != nil {
		return err
	}

	logging.Log.Debugf("UpsertRating: user '%s' rated recipe %d with %d", username, recipeID, value)
	return nil
}

// GetRatingsForRecipe retrieves all ratings of one recipe.
func (s *Repository) GetRatingsForRecipe(recipeID int64) ([]models.Rating, error) {
	query := "SELECT id, user_id, recipe_id, rating FROM ratings WHERE recipe_id = ? ORDER BY id"
	rows, err := s.DB.Query(query, recipeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	ratings := make([]models.Rating, 0)
	for rows.Next() {
		var rating models.Rating
		if err := rows.Scan(&rating.ID, &rating.UserID, &rating.RecipeID, &rating.Rating); err != nil {
			return nil, err
		}
		ratings = append(ratings, rating)
	}

	return ratings, rows.Err()
}

// GetRatings retrieves all ratings in the store.
func (s *Repository) GetRatings() ([]models.Rating, error) {
	rows, err := s.DB.Query("SELECT id, user_id, recipe_id, rating FROM ratings ORDER BY id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	ratings := make([]models.Rating, 0)
	for rows.Next() {
		var rating models.Rating
		if err := rows.Scan(&rating.ID, &rating.UserID, &rating.RecipeID, &rating.Rating); err != nil {
			return nil, err
		}
		ratings = append(ratings, rating)
	}

	return ratings, rows.Err()
}
