// filepath: internal/services/interfaces.go
package services

import (
	"context"
	"io"

	"recipehub/internal/models"
	"recipehub/internal/repository"
)

// Auditor defines the interface for recording security-relevant events.
type Auditor interface {
	// Log records an event.
	// ctx: context to trace request IDs (if available)
	// action: what happened (e.g., "user.register", "snapshot.import")
	// actor: who did it (username, or "-" when unauthenticated)
	// resource: what was affected (e.g., "Recipe:12")
	// details: structured metadata about the event
	Log(ctx context.Context, action string, actor string, resource string, details map[string]interface{})
}

// InfoService defines the interface for the info service.
type InfoService interface {
	GetInfo() models.Info
}

// UserService defines the interface for the user service.
type UserService interface {
	Register(args repository.UserCreateArgs) (*models.User, error)
	Authenticate(username, password string) (*models.User, error)
	GetUserByUsername(username string) (*models.User, error)
	GetUsers() ([]models.User, error)
	GetUserRecipes(username string) ([]models.Recipe, error)
}

// RecipeService defines the interface for the recipe service.
type RecipeService interface {
	SubmitRecipe(owner string, submission RecipeSubmission) (*models.Recipe, error)
	GetRecipe(id int64) (*models.RecipeDetail, error)
	GetRecipes() ([]models.Recipe, error)
	GetIngredients() ([]models.Ingredient, error)
	IngredientSuggestions(query string) ([]string, error)
	CategorySuggestions(query string) ([]string, error)
	CuisineSuggestions(query string) ([]string, error)
}

// RatingService defines the interface for the rating service.
type RatingService interface {
	RateRecipe(username string, recipeID int64, value int) error
	RatingsForRecipe(recipeID int64) ([]models.Rating, error)
	Aggregate(recipeID int64) (models.RatingSummary, error)
}

// SnapshotService defines the interface for the snapshot service.
type SnapshotService interface {
	Export(w io.Writer) error
	ExportToFile() (string, error)
	Import() error
	ImportIfPresent() error
	Wipe() error
}
