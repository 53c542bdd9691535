// filepath: internal/services/snapshot_service_test.go
package services

import (
	"encoding/json"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"

	"recipehub/internal/shared"
)

// validSnapshotDoc is a minimal well-formed snapshot document.
const validSnapshotDoc = `{
	"users": [{"username": "alice", "name": "Alice", "password_hash": "h"}],
	"recipes": [{"id": 1, "name": "Stew", "dish_category": "Main", "cuisine": "Irish", "cooking_time": 120, "recipe_steps": "Step 1: Simmer", "user_id": "alice"}],
	"ingredients": [{"name": "Onion"}],
	"recipe_ingredients": [{"id": 1, "recipe_id": 1, "ingredient_name": "Onion", "amount": "2"}],
	"favourites": [],
	"ratings": [{"id": 1, "user_id": "alice", "recipe_id": 1, "rating": 4}]
}`

func TestParseSnapshotValid(t *testing.T) {
	snap, err := ParseSnapshot([]byte(validSnapshotDoc))
	assert.NoError(t, err)
	assert.Len(t, snap.Users, 1)
	assert.Len(t, snap.Recipes, 1)
	assert.Equal(t, "alice", snap.Recipes[0].UserID)
}

func TestParseSnapshotRejectsMalformedDocuments(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(doc map[string]json.RawMessage)
	}{
		{"missing section", func(doc map[string]json.RawMessage) {
			delete(doc, "ratings")
		}},
		{"unknown section", func(doc map[string]json.RawMessage) {
			doc["comments"] = json.RawMessage(`[]`)
		}},
		{"row missing column", func(doc map[string]json.RawMessage) {
			doc["users"] = json.RawMessage(`[{"username": "alice", "name": "Alice"}]`)
		}},
		{"row with unknown column", func(doc map[string]json.RawMessage) {
			doc["ingredients"] = json.RawMessage(`[{"name": "Onion", "organic": true}]`)
		}},
		{"recipe references unknown user", func(doc map[string]json.RawMessage) {
			doc["recipes"] = json.RawMessage(`[{"id": 1, "name": "Stew", "dish_category": "Main", "cuisine": "Irish", "cooking_time": 120, "recipe_steps": "", "user_id": "ghost"}]`)
		}},
		{"line references unknown ingredient", func(doc map[string]json.RawMessage) {
			doc["recipe_ingredients"] = json.RawMessage(`[{"id": 1, "recipe_id": 1, "ingredient_name": "Garlic", "amount": "2"}]`)
		}},
		{"duplicate username", func(doc map[string]json.RawMessage) {
			doc["users"] = json.RawMessage(`[
				{"username": "alice", "name": "A", "password_hash": "h"},
				{"username": "alice", "name": "B", "password_hash": "h"}
			]`)
		}},
		{"duplicate recipe id", func(doc map[string]json.RawMessage) {
			doc["recipes"] = json.RawMessage(`[
				{"id": 1, "name": "Stew", "dish_category": "Main", "cuisine": "Irish", "cooking_time": 120, "recipe_steps": "", "user_id": "alice"},
				{"id": 1, "name": "Soup", "dish_category": "Starter", "cuisine": "French", "cooking_time": 30, "recipe_steps": "", "user_id": "alice"}
			]`)
		}},
		{"ingredients differing only by case", func(doc map[string]json.RawMessage) {
			doc["ingredients"] = json.RawMessage(`[{"name": "Onion"}, {"name": "ONION"}]`)
		}},
		{"duplicate recipe ingredient id", func(doc map[string]json.RawMessage) {
			doc["recipe_ingredients"] = json.RawMessage(`[
				{"id": 1, "recipe_id": 1, "ingredient_name": "Onion", "amount": "2"},
				{"id": 1, "recipe_id": 1, "ingredient_name": "Onion", "amount": "3"}
			]`)
		}},
		{"duplicate favourite id", func(doc map[string]json.RawMessage) {
			doc["favourites"] = json.RawMessage(`[
				{"id": 1, "user_id": "alice", "recipe_id": 1},
				{"id": 1, "user_id": "alice", "recipe_id": 1}
			]`)
		}},
		{"duplicate rating id", func(doc map[string]json.RawMessage) {
			doc["ratings"] = json.RawMessage(`[
				{"id": 1, "user_id": "alice", "recipe_id": 1, "rating": 4},
				{"id": 1, "user_id": "alice", "recipe_id": 1, "rating": 5}
			]`)
		}},
		{"user rating a recipe twice", func(doc map[string]json.RawMessage) {
			doc["ratings"] = json.RawMessage(`[
				{"id": 1, "user_id": "alice", "recipe_id": 1, "rating": 4},
				{"id": 2, "user_id": "alice", "recipe_id": 1, "rating": 5}
			]`)
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var doc map[string]json.RawMessage
			assert.NoError(t, json.Unmarshal([]byte(validSnapshotDoc), &doc))
			tt.mutate(doc)
			data, err := json.Marshal(doc)
			assert.NoError(t, err)

			_, err = ParseSnapshot(data)
			assert.ErrorIs(t, err, shared.ErrSnapshotFormat)
		})
	}

	_, err := ParseSnapshot([]byte("not json"))
	assert.ErrorIs(t, err, shared.ErrSnapshotFormat)
}

func TestParseSnapshotIngredientCaseInsensitive(t *testing.T) {
	var doc map[string]json.RawMessage
	assert.NoError(t, json.Unmarshal([]byte(validSnapshotDoc), &doc))
	doc["recipe_ingredients"] = json.RawMessage(`[{"id": 1, "recipe_id": 1, "ingredient_name": "ONION", "amount": "2"}]`)
	data, err := json.Marshal(doc)
	assert.NoError(t, err)

	_, err = ParseSnapshot(data)
	assert.NoError(t, err, "Ingredient references match case-insensitively, like the store")
}

func TestExportImportRoundTrip(t *testing.T) {
	repo, cfg, cleanup := newTestRepo(t)
	defer cleanup()
	registerTestUser(t, repo, "alice")

	recipeSvc := NewRecipeService(repo, NewRatingService(repo))
	recipe, err := recipeSvc.SubmitRecipe("alice", RecipeSubmission{
		Name: "Stew", DishCategory: "Main", Cuisine: "Irish", Hours: 2,
		Steps:             []string{"Simmer"},
		IngredientNames:   []string{"Onion"},
		IngredientAmounts: []string{"2"},
	})
	assert.NoError(t, err)
	assert.NoError(t, NewRatingService(repo).RateRecipe("alice", recipe.ID, 4))

	svc := NewSnapshotService(repo, cfg)

	path, err := svc.ExportToFile()
	assert.NoError(t, err)
	assert.FileExists(t, path)

	// The written document parses under the strict importer rules.
	data, err := os.ReadFile(path)
	assert.NoError(t, err)
	_, err = ParseSnapshot(data)
	assert.NoError(t, err)

	// Wipe, then import: the store comes back.
	assert.NoError(t, svc.Wipe())
	assert.NoError(t, svc.Import())

	restored, err := repo.ExportSnapshot()
	assert.NoError(t, err)
	assert.Len(t, restored.Users, 1)
	assert.Len(t, restored.Recipes, 1)
	assert.Len(t, restored.Ratings, 1)

	// A restored account still authenticates with its original password.
	userSvc := NewUserService(repo)
	_, err = userSvc.Authenticate("alice", "password123")
	assert.NoError(t, err)
}

func TestExportToFileKeepsLastGoodSnapshot(t *testing.T) {
	repo, cfg, cleanup := newTestRepo(t)
	defer cleanup()
	registerTestUser(t, repo, "alice")

	svc := NewSnapshotService(repo, cfg)

	path, err := svc.ExportToFile()
	assert.NoError(t, err)
	good, err := os.ReadFile(path)
	assert.NoError(t, err)

	// Break the store so the next export fails mid-way.
	assert.NoError(t, repo.DB.Close())

	_, err = svc.ExportToFile()
	assert.Error(t, err)

	// The earlier document survives untouched and still parses.
	after, err := os.ReadFile(path)
	assert.NoError(t, err)
	assert.Equal(t, good, after, "A failed export must not clobber the snapshot file")
	_, err = ParseSnapshot(after)
	assert.NoError(t, err)
}

func TestImportMissingFile(t *testing.T) {
	repo, cfg, cleanup := newTestRepo(t)
	defer cleanup()

	svc := NewSnapshotService(repo, cfg)

	err := svc.Import()
	assert.ErrorIs(t, err, shared.ErrSnapshotMissing)

	// ImportIfPresent swallows the missing-file case.
	assert.NoError(t, svc.ImportIfPresent())
}

func TestImportMalformedFileKeepsStore(t *testing.T) {
	repo, cfg, cleanup := newTestRepo(t)
	defer cleanup()
	registerTestUser(t, repo, "alice")

	assert.NoError(t, os.WriteFile(cfg.Snapshot.Path, []byte(`{"users": []}`), 0644))

	svc := NewSnapshotService(repo, cfg)
	err := svc.Import()
	assert.ErrorIs(t, err, shared.ErrSnapshotFormat)

	users, err := repo.GetUsers()
	assert.NoError(t, err)
	assert.Len(t, users, 1, "Rejected import must not touch the store")
}
