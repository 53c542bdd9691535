// filepath: internal/api/handlers/ingredient_handler.go
package handlers

import (
	"net/http"

	"recipehub/internal/logging"
)

// @Summary List ingredients
// @Description Lists every ingredient any recipe has ever referenced.
// @Tags Ingredients
// @Produce json
// @Success 200 {array} models.Ingredient
// @Router /ingredients [get]
func (h *Handlers) GetIngredients(w http.ResponseWriter, r *http.Request) {
	ingredients, err := h.Recipe.GetIngredients()
	if err != nil {
		logging.Log.Errorf("GetIngredients: %v", err)
		respondWithError(w, http.StatusInternalServerError, "Failed to list ingredients")
		return
	}
	respondWithJSON(w, http.StatusOK, ingredients)
}

// suggest runs one of the suggestion queries and writes the result list.
// An empty q yields an empty list, not an error.
func (h *Handlers) suggest(w http.ResponseWriter, r *http.Request, query func(string) ([]string, error)) {
	suggestions, err := query(r.URL.Query().Get("q"))
	if err != nil {
		logging.Log.Errorf("Suggestions: %v", err)
		respondWithError(w, http.StatusInternalServerError, "Failed to compute suggestions")
		return
	}
	respondWithJSON(w, http.StatusOK, suggestions)
}

// @Summary Suggest ingredients
// @Description Returns ingredient names containing the query, case-insensitively.
// @Tags Suggestions
// @Produce json
// @Param q query string false "Substring to match"
// @Success 200 {array} string
// @Router /suggestions/ingredients [get]
func (h *Handlers) SuggestIngredients(w http.ResponseWriter, r *http.Request) {
	h.suggest(w, r, h.Recipe.IngredientSuggestions)
}

// @Summary Suggest dish categories
// @Description Returns the distinct dish categories containing the query, case-insensitively.
// @Tags Suggestions
// @Produce json
// @Param q query string false "Substring to match"
// @Success 200 {array} string
// @Router /suggestions/categories [get]
func (h *Handlers) SuggestCategories(w http.ResponseWriter, r *http.Request) {
	h.suggest(w, r, h.Recipe.CategorySuggestions)
}

// @Summary Suggest cuisines
// @Description Returns the distinct cuisines containing the query, case-insensitively.
// @Tags Suggestions
// @Produce json
// @Param q query string false "Substring to match"
// @Success 200 {array} string
// @Router /suggestions/cuisines [get]
func (h *Handlers) SuggestCuisines(w http.ResponseWriter, r *http.Request) {
	h.suggest(w, r, h.Recipe.CuisineSuggestions)
}
