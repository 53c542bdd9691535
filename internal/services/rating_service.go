// filepath: internal/services/rating_service.go
package services

import (
	"math"
	"strings"

	"recipehub/internal/models"
	"recipehub/internal/repository"
)

// Compile-time check to ensure interface is implemented
var _ RatingService = (*ratingService)(nil)

const (
	filledStar = "★"
	emptyStar  = "☆"
	starCount  = 5
)

// ratingService records ratings and computes per-recipe aggregates.
type ratingService struct {
	Repo *repository.Repository
}

// NewRatingService creates a new RatingService.
func NewRatingService(repo *repository.Repository) *ratingService {
	return &ratingService{Repo: repo}
}

// RateRecipe stores one user's rating of a recipe, overwriting any earlier
// rating by the same user. The value is stored as submitted; clients send
// 1-5.
func (s *ratingService) RateRecipe(username string, recipeID int64, value int) error {
	// A miss here becomes the request's 404.
	if _, err := s.Repo.GetRecipe(recipeID); err != nil {
		return err
	}
	return s.Repo.UpsertRating(username, recipeID, value)
}

// RatingsForRecipe retrieves the individual ratings of one recipe.
func (s *ratingService) RatingsForRecipe(recipeID int64) ([]models.Rating, error) {
	if _, err := s.Repo.GetRecipe(recipeID); err != nil {
		return nil, err
	}
	return s.Repo.GetRatingsForRecipe(recipeID)
}

// Aggregate computes the mean rating and star rendering of one recipe.
func (s *ratingService) Aggregate(recipeID int64) (models.RatingSummary, error) {
	ratings, err := s.Repo.GetRatingsForRecipe(recipeID)
	if err != nil {
		return models.RatingSummary{}, err
	}
	return Summarize(ratings), nil
}

// Summarize aggregates a set of ratings: the arithmetic mean of the values
// and a five-position star string with round(mean) filled positions,
// clamped to [0,5]. Halves round away from zero, so a 2.5 mean fills three
// stars. No ratings means a mean of 0 and five empty stars.
func Summarize(ratings []models.Rating) models.RatingSummary {
	if len(ratings) == 0 {
		return models.RatingSummary{
			Average: 0,
			Stars:   strings.Repeat(emptyStar, starCount),
			Count:   0,
		}
	}

	sum := 0
	for _, r := range ratings {
		sum += r.Rating
	}
	mean := float64(sum) / float64(len(ratings))

	filled := int(math.Round(mean))
	if filled < 0 {
		filled = 0
	}
	if filled > starCount {
		filled = starCount
	}

	return models.RatingSummary{
		Average: mean,
		Stars:   strings.Repeat(filledStar, filled) + strings.Repeat(emptyStar, starCount-filled),
		Count:   len(ratings),
	}
}
