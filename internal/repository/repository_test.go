// filepath: internal/repository/repository_test.go
package repository

import (
	"os"
	"testing"

	"github.com/pressly/goose/v3"
	"github.com/stretchr/testify/assert"

	"recipehub/internal/config"
	"recipehub/internal/db/migrations"
	"recipehub/internal/models"
	"recipehub/internal/shared"
)

func applyTestMigrations(t *testing.T, repo *Repository) {
	t.Helper()
	goose.SetBaseFS(migrations.FS)
	if err := goose.SetDialect("sqlite3"); err != nil {
		t.Fatalf("Failed to set goose dialect: %v", err)
	}
	if err := goose.Up(repo.DB, "."); err != nil {
		t.Fatalf("Failed to apply test migrations: %v", err)
	}
}

func setupTestDB(t *testing.T) (*Repository, func()) {
	t.Helper()
	const dbPath = "test_repository.db"

	os.Remove(dbPath)

	dummyCfg := &config.Config{
		Database: config.DatabaseConfig{
			Path: dbPath,
		},
	}

	repo, err := NewRepository(dummyCfg)
	if err != nil {
		t.Fatalf("Failed to create new repository: %v", err)
	}

	applyTestMigrations(t, repo)

	cleanup := func() {
		repo.Close()
		os.Remove(dbPath)
	}

	return repo, cleanup
}

// createTestUser inserts a user and returns it.
func createTestUser(t *testing.T, repo *Repository, username string) *models.User {
	t.Helper()
	user, err := repo.CreateUser(&UserCreateArgs{
		Username: username,
		Name:     "Test " + username,
		Password: "password123",
	})
	if err != nil {
		t.Fatalf("Failed to create test user '%s': %v", username, err)
	}
	return user
}

// createTestRecipe inserts a recipe with two ingredient lines.
func createTestRecipe(t *testing.T, repo *Repository, owner, name string) *models.Recipe {
	t.Helper()
	recipe, err := repo.CreateRecipe(&models.Recipe{
		Name:         name,
		DishCategory: "Main",
		Cuisine:      "Italian",
		CookingTime:  45,
		RecipeSteps:  "Step 1: Boil water\nStep 2: Add pasta",
		UserID:       owner,
	}, []models.IngredientLine{
		{Name: "Pasta", Amount: "500g"},
		{Name: "Salt", Amount: "1 tsp"},
	})
	if err != nil {
		t.Fatalf("Failed to create test recipe '%s': %v", name, err)
	}
	return recipe
}

func TestNewRepository(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()
	tables := []string{"users", "recipes", "ingredients", "recipe_ingredients", "favourites", "ratings", "refresh_tokens"}
	for _, table := range tables {
		var name string
		err := repo.DB.QueryRow("SELECT name FROM sqlite_master WHERE type='table' AND name=?", table).Scan(&name)
		if err != nil {
			t.Errorf("Table '%s' was not created: %v", table, err)
		}
	}
}

func TestUserCreateAndConflict(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	user := createTestUser(t, repo, "alice")
	assert.Equal(t, "alice", user.Username)
	assert.NotEmpty(t, user.PasswordHash)
	assert.NotEqual(t, "password123", user.PasswordHash, "Password must be stored hashed")

	_, err := repo.CreateUser(&UserCreateArgs{Username: "alice", Name: "Other", Password: "x"})
	assert.ErrorIs(t, err, shared.ErrUserExists)

	read, err := repo.GetUserByUsername("alice")
	assert.NoError(t, err)
	assert.Equal(t, user.Username, read.Username)

	_, err = repo.GetUserByUsername("nobody")
	assert.ErrorIs(t, err, shared.ErrUserNotFound)

	users, err := repo.GetUsers()
	assert.NoError(t, err)
	assert.Len(t, users, 1)
}

func TestUserExists(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	exists, err := repo.UserExists("alice")
	assert.NoError(t, err)
	assert.False(t, exists)

	createTestUser(t, repo, "alice")

	exists, err = repo.UserExists("alice")
	assert.NoError(t, err)
	assert.True(t, exists)
}

func TestCreateRecipeSharesIngredients(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()
	createTestUser(t, repo, "alice")

	first := createTestRecipe(t, repo, "alice", "Spaghetti")
	assert.NotZero(t, first.ID)

	// Second recipe reuses "salt" with different casing; the NOCASE
	// collation must map it onto the existing ingredient row.
	_, err := repo.CreateRecipe(&models.Recipe{
		Name:         "Soup",
		DishCategory: "Starter",
		Cuisine:      "French",
		CookingTime:  30,
		RecipeSteps:  "Step 1: Simmer",
		UserID:       "alice",
	}, []models.IngredientLine{
		{Name: "salt", Amount: "a pinch"},
		{Name: "Onion", Amount: "2"},
	})
	assert.NoError(t, err)

	ingredients, err := repo.GetIngredients()
	assert.NoError(t, err)
	assert.Len(t, ingredients, 3, "Salt must not be duplicated across casings")

	lines, err := repo.GetRecipeIngredients(first.ID)
	assert.NoError(t, err)
	assert.Len(t, lines, 2)
	assert.Equal(t, "Pasta", lines[0].IngredientName)
	assert.Equal(t, "500g", lines[0].Amount)
}

func TestCreateRecipeDuplicateLines(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()
	createTestUser(t, repo, "alice")

	// The same ingredient twice in one submission stays two lines.
	recipe, err := repo.CreateRecipe(&models.Recipe{
		Name:         "Salty",
		DishCategory: "Main",
		Cuisine:      "Other",
		CookingTime:  5,
		RecipeSteps:  "Step 1: Salt it",
		UserID:       "alice",
	}, []models.IngredientLine{
		{Name: "Salt", Amount: "1 tsp"},
		{Name: "Salt", Amount: "another tsp"},
	})
	assert.NoError(t, err)

	lines, err := repo.GetRecipeIngredients(recipe.ID)
	assert.NoError(t, err)
	assert.Len(t, lines, 2)
}

func TestGetRecipesByUser(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()
	createTestUser(t, repo, "alice")
	createTestUser(t, repo, "bob")
	createTestRecipe(t, repo, "alice", "Spaghetti")
	createTestRecipe(t, repo, "alice", "Lasagne")
	createTestRecipe(t, repo, "bob", "Stew")

	recipes, err := repo.GetRecipesByUser("alice")
	assert.NoError(t, err)
	assert.Len(t, recipes, 2)

	all, err := repo.GetRecipes()
	assert.NoError(t, err)
	assert.Len(t, all, 3)

	_, err = repo.GetRecipe(9999)
	assert.ErrorIs(t, err, shared.ErrRecipeNotFound)
}

func TestRatingUpsert(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()
	createTestUser(t, repo, "alice")
	recipe := createTestRecipe(t, repo, "alice", "Spaghetti")

	assert.NoError(t, repo.UpsertRating("alice", recipe.ID, 3))
	assert.NoError(t, repo.UpsertRating("alice", recipe.ID, 5))

	ratings, err := repo.GetRatingsForRecipe(recipe.ID)
	assert.NoError(t, err)
	assert.Len(t, ratings, 1, "Re-rating must overwrite, not add a row")
	assert.Equal(t, 5, ratings[0].Rating)
}

func TestSuggestions(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()
	createTestUser(t, repo, "alice")
	createTestRecipe(t, repo, "alice", "Spaghetti")
	createTestRecipe(t, repo, "alice", "Lasagne")

	// Both recipes are Italian mains; distinct projection collapses them.
	cuisines, err := repo.CuisineSuggestions("ital")
	assert.NoError(t, err)
	assert.Equal(t, []string{"Italian"}, cuisines)

	categories, err := repo.CategorySuggestions("MAIN")
	assert.NoError(t, err)
	assert.Equal(t, []string{"Main"}, categories)

	none, err := repo.CuisineSuggestions("sushi")
	assert.NoError(t, err)
	assert.Empty(t, none)

	names, err := repo.IngredientSuggestions("pas")
	assert.NoError(t, err)
	assert.Equal(t, []string{"Pasta"}, names)
}

func TestSnapshotRoundTrip(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()
	createTestUser(t, repo, "alice")
	recipe := createTestRecipe(t, repo, "alice", "Spaghetti")
	assert.NoError(t, repo.UpsertRating("alice", recipe.ID, 4))

	snap, err := repo.ExportSnapshot()
	assert.NoError(t, err)
	assert.Len(t, snap.Users, 1)
	assert.Len(t, snap.Recipes, 1)
	assert.Len(t, snap.Ingredients, 2)
	assert.Len(t, snap.RecipeIngredients, 2)
	assert.Len(t, snap.Ratings, 1)

	// Wipe, restore, re-export: the store must be equivalent.
	assert.NoError(t, repo.Wipe())
	empty, err := repo.ExportSnapshot()
	assert.NoError(t, err)
	assert.Empty(t, empty.Users)

	assert.NoError(t, repo.RestoreSnapshot(snap))
	restored, err := repo.ExportSnapshot()
	assert.NoError(t, err)
	assert.Equal(t, snap, restored)
}

func TestRestoreSnapshotAbortKeepsStore(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()
	createTestUser(t, repo, "alice")
	createTestRecipe(t, repo, "alice", "Spaghetti")

	before, err := repo.ExportSnapshot()
	assert.NoError(t, err)

	// A recipe referencing a user missing from the document violates the
	// foreign key mid-restore; the transaction must roll back.
	bad := &models.Snapshot{
		Users:   []models.User{{Username: "bob", Name: "Bob", PasswordHash: "x"}},
		Recipes: []models.Recipe{{ID: 1, Name: "Ghost", DishCategory: "Main", Cuisine: "Other", UserID: "nobody"}},
	}
	err = repo.RestoreSnapshot(bad)
	assert.Error(t, err)

	after, err := repo.ExportSnapshot()
	assert.NoError(t, err)
	assert.Equal(t, before, after, "Failed restore must leave the store untouched")
}

func TestWipeResetsSequencesAndSessions(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()
	user := createTestUser(t, repo, "alice")
	createTestRecipe(t, repo, "alice", "Spaghetti")
	assert.NoError(t, repo.StoreRefreshToken(user.Username, "somehash", futureExpiry()))

	assert.NoError(t, repo.Wipe())

	var count int
	for _, table := range []string{"users", "recipes", "ingredients", "recipe_ingredients", "ratings", "refresh_tokens"} {
		assert.NoError(t, repo.DB.QueryRow("SELECT COUNT(*) FROM "+table).Scan(&count))
		assert.Zero(t, count, "table %s should be empty after wipe", table)
	}

	// IDs restart from 1 after a wipe.
	createTestUser(t, repo, "bob")
	recipe := createTestRecipe(t, repo, "bob", "Stew")
	assert.Equal(t, int64(1), recipe.ID)
}
