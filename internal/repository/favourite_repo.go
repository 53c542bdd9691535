// filepath: internal/repository/favourite_repo.go
package repository

import (
	"recipehub/internal/models"
)

// Favourites are part of the schema and the snapshot document, but no route
// exercises them yet; the repository support below exists for the snapshot
// round-trip.

// GetFavourites retrieves all favourites in the store.
func (s *Repository) GetFavourites() ([]models.Favourite, error) {
	rows, err := s.DB.Query("SELECT id, user_id, recipe_id FROM favourites ORDER BY id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	favourites := make([]models.Favourite, 0)
	for rows.Next() {
		var favourite models.Favourite
		if err := rows.Scan(&favourite.ID, &favourite.UserID, &favourite.RecipeID); err != nil {
			return nil, err
		}
		favourites = append(favourites, favourite)
	}

	return favourites, rows.Err()
}
