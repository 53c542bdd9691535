// filepath: internal/api/handlers/recipe_handler.go
package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"recipehub/internal/logging"
	"recipehub/internal/services"
	"recipehub/internal/shared"
)

// @Summary List recipes
// @Description Lists all recipes without their ingredient lines or ratings.
// @Tags Recipes
// @Produce json
// @Success 200 {array} models.Recipe
// @Router /recipes [get]
func (h *Handlers) GetRecipes(w http.ResponseWriter, r *http.Request) {
	recipes, err := h.Recipe.GetRecipes()
	if err != nil {
		logging.Log.Errorf("GetRecipes: %v", err)
		respondWithError(w, http.StatusInternalServerError, "Failed to list recipes")
		return
	}
	respondWithJSON(w, http.StatusOK, recipes)
}

// @Summary Get one recipe
// @Description Gets one recipe with its ingredient lines and aggregated rating.
// @Tags Recipes
// @Produce json
// @Param id path int true "Recipe ID"
// @Success 200 {object} models.RecipeDetail
// @Failure 404 {object} ErrorResponse "Recipe not found"
// @Router /recipe/{id} [get]
func (h *Handlers) GetRecipe(w http.ResponseWriter, r *http.Request) {
	id, err := recipeIDFromRequest(r)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid recipe id")
		return
	}

	detail, err := h.Recipe.GetRecipe(id)
	if err != nil {
		if errors.Is(err, shared.ErrRecipeNotFound) {
			respondWithError(w, http.StatusNotFound, "Recipe not found")
			return
		}
		logging.Log.Errorf("GetRecipe: Failed to load recipe %d: %v", id, err)
		respondWithError(w, http.StatusInternalServerError, "Failed to get recipe")
		return
	}

	respondWithJSON(w, http.StatusOK, detail)
}

// @Summary Submit a recipe
// @Description Creates a recipe owned by the authenticated user. Ingredient names and amounts are paired positionally; steps are numbered in submission order.
// @Tags Recipes
// @Accept json
// @Produce json
// @Param recipe body services.RecipeSubmission true "Recipe submission"
// @Success 201 {object} models.Recipe
// @Failure 400 {object} ErrorResponse "Invalid submission"
// @Failure 401 {object} ErrorResponse "Authentication required"
// @Security BearerAuth
// @Router /recipe [post]
func (h *Handlers) CreateRecipe(w http.ResponseWriter, r *http.Request) {
	var submission services.RecipeSubmission
	if err := json.NewDecoder(r.Body).Decode(&submission); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	// Ownership comes from the session, never from the body.
	owner := getUserFromContext(r)

	recipe, err := h.Recipe.SubmitRecipe(owner, submission)
	if err != nil {
		if errors.Is(err, shared.ErrValidation) {
			respondWithError(w, http.StatusBadRequest, err.Error())
			return
		}
		respondWithError(w, http.StatusInternalServerError, "Failed to store recipe")
		return
	}

	h.Auditor.Log(r.Context(), "recipe.create", owner, fmt.Sprintf("Recipe:%d", recipe.ID), map[string]interface{}{
		"name": recipe.Name,
	})

	respondWithJSON(w, http.StatusCreated, recipe)
}
