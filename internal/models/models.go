// filepath: internal/models/models.go
package models

import "time"

// User is an account identified by its username. PasswordHash is a bcrypt
// hash; handlers blank it before writing a user to a response.
type User struct {
	Username     string `json:"username"`
	Name         string `json:"name"`
	PasswordHash string `json:"password_hash"`
}

// Recipe is a submitted recipe. CookingTime is the total time in minutes.
// RecipeSteps holds the numbered step lines joined with newlines.
type Recipe struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	DishCategory string `json:"dish_category"`
	Cuisine      string `json:"cuisine"`
	CookingTime  int    `json:"cooking_time"`
	RecipeSteps  string `json:"recipe_steps"`
	UserID       string `json:"user_id"`
}

// Ingredient is a reusable ingredient name, created lazily on first use and
// matched case-insensitively thereafter.
type Ingredient struct {
	Name string `json:"name"`
}

// RecipeIngredient links one ingredient line of a submission to its recipe.
// Duplicate (recipe, ingredient) pairs are allowed; one row per line.
type RecipeIngredient struct {
	ID             int64  `json:"id"`
	RecipeID       int64  `json:"recipe_id"`
	IngredientName string `json:"ingredient_name"`
	Amount         string `json:"amount"`
}

// Favourite marks a recipe as a favourite of a user. The table is part of
// the schema and the snapshot document but has no routes yet.
type Favourite struct {
	ID       int64  `json:"id"`
	UserID   string `json:"user_id"`
	RecipeID int64  `json:"recipe_id"`
}

// Rating is one user's 1-5 rating of a recipe. At most one row exists per
// (user, recipe) pair; re-rating overwrites the value.
type Rating struct {
	ID       int64  `json:"id"`
	UserID   string `json:"user_id"`
	RecipeID int64  `json:"recipe_id"`
	Rating   int    `json:"rating"`
}

// IngredientLine is one (name, amount) pair of a recipe submission.
type IngredientLine struct {
	Name   string `json:"name"`
	Amount string `json:"amount"`
}

// RatingSummary is the aggregated rating of a recipe: the arithmetic mean of
// all rating values and its five-position star rendering.
type RatingSummary struct {
	Average float64 `json:"average"`
	Stars   string  `json:"stars"`
	Count   int     `json:"count"`
}

// RecipeDetail is the per-recipe view: the recipe, its ingredient lines and
// its aggregated rating.
type RecipeDetail struct {
	Recipe      Recipe             `json:"recipe"`
	Ingredients []RecipeIngredient `json:"ingredients"`
	Rating      RatingSummary      `json:"rating"`
}

// Snapshot is the whole-store export document. Keys and per-row field names
// are fixed; the importer rejects documents that deviate from them.
type Snapshot struct {
	Users             []User             `json:"users"`
	Recipes           []Recipe           `json:"recipes"`
	Ingredients       []Ingredient       `json:"ingredients"`
	RecipeIngredients []RecipeIngredient `json:"recipe_ingredients"`
	Favourites        []Favourite        `json:"favourites"`
	Ratings           []Rating           `json:"ratings"`
}

// Info describes the running service.
type Info struct {
	ServiceName string    `json:"service_name"`
	Version     string    `json:"version"`
	UptimeSince time.Time `json:"uptime_since"`
}
