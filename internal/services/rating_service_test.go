// filepath: internal/services/rating_service_test.go
package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"recipehub/internal/models"
	"recipehub/internal/shared"
)

func TestSummarize(t *testing.T) {
	tests := []struct {
		name    string
		ratings []int
		average float64
		stars   string
	}{
		{"no ratings", nil, 0, "☆☆☆☆☆"},
		{"single one", []int{1}, 1, "★☆☆☆☆"},
		{"single five", []int{5}, 5, "★★★★★"},
		{"rounds down", []int{2, 3, 2}, 7.0 / 3.0, "★★☆☆☆"},
		{"rounds half up", []int{4, 5}, 4.5, "★★★★★"},
		{"mixed", []int{1, 5, 3}, 3, "★★★☆☆"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ratings := make([]models.Rating, 0, len(tt.ratings))
			for _, v := range tt.ratings {
				ratings = append(ratings, models.Rating{Rating: v})
			}

			summary := Summarize(ratings)
			assert.InDelta(t, tt.average, summary.Average, 1e-9)
			assert.Equal(t, tt.stars, summary.Stars)
			assert.Equal(t, len(tt.ratings), summary.Count)
		})
	}
}

func TestRateRecipeOverwrites(t *testing.T) {
	repo, _, cleanup := newTestRepo(t)
	defer cleanup()
	registerTestUser(t, repo, "alice")
	registerTestUser(t, repo, "bob")

	recipeSvc := NewRecipeService(repo, NewRatingService(repo))
	recipe, err := recipeSvc.SubmitRecipe("alice", RecipeSubmission{
		Name: "Stew", DishCategory: "Main", Cuisine: "Irish", Hours: 2,
	})
	assert.NoError(t, err)

	svc := NewRatingService(repo)
	assert.NoError(t, svc.RateRecipe("alice", recipe.ID, 2))
	assert.NoError(t, svc.RateRecipe("bob", recipe.ID, 5))
	assert.NoError(t, svc.RateRecipe("alice", recipe.ID, 4))

	summary, err := svc.Aggregate(recipe.ID)
	assert.NoError(t, err)
	assert.Equal(t, 2, summary.Count)
	assert.InDelta(t, 4.5, summary.Average, 1e-9)
	assert.Equal(t, "★★★★★", summary.Stars)
}

func TestRateRecipeUnknownRecipe(t *testing.T) {
	repo, _, cleanup := newTestRepo(t)
	defer cleanup()
	registerTestUser(t, repo, "alice")

	svc := NewRatingService(repo)
	err := svc.RateRecipe("alice", 42, 3)
	assert.ErrorIs(t, err, shared.ErrRecipeNotFound)

	_, err = svc.RatingsForRecipe(42)
	assert.ErrorIs(t, err, shared.ErrRecipeNotFound)
}
