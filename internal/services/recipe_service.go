// filepath: internal/services/recipe_service.go
package services

import (
	"fmt"
	"strings"

	"recipehub/internal/logging"
	"recipehub/internal/models"
	"recipehub/internal/repository"
	"recipehub/internal/shared"
)

// Compile-time check to ensure interface is implemented
var _ RecipeService = (*recipeService)(nil)

// RecipeSubmission is the raw form input of a recipe submission: scalar
// fields, a step list and the positionally paired ingredient name/amount
// lists.
type RecipeSubmission struct {
	Name              string   `json:"name"`
	DishCategory      string   `json:"dish_category"`
	Cuisine           string   `json:"cuisine"`
	Hours             int      `json:"cooking_time_hours"`
	Minutes           int      `json:"cooking_time_minutes"`
	Steps             []string `json:"steps"`
	IngredientNames   []string `json:"ingredient_names"`
	IngredientAmounts []string `json:"ingredient_amounts"`
}

// recipeService assembles and stores recipe submissions and serves recipe
// reads and suggestion queries.
type recipeService struct {
	Repo   *repository.Repository
	Rating RatingService
}

// NewRecipeService creates a new RecipeService.
func NewRecipeService(repo *repository.Repository, rating RatingService) *recipeService {
	return &recipeService{Repo: repo, Rating: rating}
}

// SubmitRecipe validates and normalizes a submission, then inserts the
// recipe and its ingredient lines in one transaction. The owner comes from
// the authenticated session, never from the submission itself.
func (s *recipeService) SubmitRecipe(owner string, submission RecipeSubmission) (*models.Recipe, error) {
	if submission.Name == "" {
		return nil, fmt.Errorf("%w: name is required", shared.ErrValidation)
	}
	if submission.DishCategory == "" {
		return nil, fmt.Errorf("%w: dish_category is required", shared.ErrValidation)
	}
	if submission.Cuisine == "" {
		return nil, fmt.Errorf("%w: cuisine is required", shared.ErrValidation)
	}
	if submission.Hours < 0 || submission.Minutes < 0 {
		return nil, fmt.Errorf("%w: cooking time must not be negative", shared.ErrValidation)
	}

	recipe := &models.Recipe{
		Name:         submission.Name,
		DishCategory: submission.DishCategory,
		Cuisine:      submission.Cuisine,
		CookingTime:  submission.Hours*60 + submission.Minutes,
		RecipeSteps:  buildStepsText(submission.Steps),
		UserID:       owner,
	}

	created, err := s.Repo.CreateRecipe(recipe, zipIngredients(submission.IngredientNames, submission.IngredientAmounts))
	if err != nil {
		logging.Log.Errorf("RecipeService: Failed to store submission '%s' by '%s': %v", submission.Name, owner, err)
		return nil, fmt.Errorf("failed to store recipe")
	}
	return created, nil
}

// buildStepsText joins step descriptions into one text blob, one line per
// step, each prefixed with its 1-based position.
func buildStepsText(steps []string) string {
	lines := make([]string, len(steps))
	for i, step := range steps {
		lines[i] = fmt.Sprintf("Step %d: %s", i+1, step)
	}
	return strings.Join(lines, "\n")
}

// zipIngredients pairs names and amounts positionally. Entries beyond the
// shorter list are dropped; the two lists are expected to be equal length
// but that is the client's job.
func zipIngredients(names, amounts []string) []models.IngredientLine {
	n := len(names)
	if len(amounts) < n {
		n = len(amounts)
	}
	lines := make([]models.IngredientLine, 0, n)
	for i := 0; i < n; i++ {
		lines = append(lines, models.IngredientLine{Name: names[i], Amount: amounts[i]})
	}
	return lines
}

// GetRecipe retrieves one recipe with its ingredient lines and aggregated
// rating.
func (s *recipeService) GetRecipe(id int64) (*models.RecipeDetail, error) {
	recipe, err := s.Repo.GetRecipe(id)
	if err != nil {
		return nil, err
	}
	ingredients, err := s.Repo.GetRecipeIngredients(id)
	if err != nil {
		return nil, err
	}
	summary, err := s.Rating.Aggregate(id)
	if err != nil {
		return nil, err
	}

	return &models.RecipeDetail{
		Recipe:      *recipe,
		Ingredients: ingredients,
		Rating:      summary,
	}, nil
}

// GetRecipes retrieves all recipes.
func (s *recipeService) GetRecipes() ([]models.Recipe, error) {
	return s.Repo.GetRecipes()
}

// GetIngredients retrieves all known ingredients.
func (s *recipeService) GetIngredients() ([]models.Ingredient, error) {
	return s.Repo.GetIngredients()
}

// IngredientSuggestions returns ingredient names containing the query,
// case-insensitively. An empty query yields an empty list.
func (s *recipeService) IngredientSuggestions(query string) ([]string, error) {
	if query == "" {
		return []string{}, nil
	}
	return s.Repo.IngredientSuggestions(query)
}

// CategorySuggestions returns distinct dish categories containing the query.
func (s *recipeService) CategorySuggestions(query string) ([]string, error) {
	if query == "" {
		return []string{}, nil
	}
	return s.Repo.CategorySuggestions(query)
}

// CuisineSuggestions returns distinct cuisines containing the query.
func (s *recipeService) CuisineSuggestions(query string) ([]string, error) {
	if query == "" {
		return []string{}, nil
	}
	return s.Repo.CuisineSuggestions(query)
}
