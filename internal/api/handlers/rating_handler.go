// filepath: internal/api/handlers/rating_handler.go
package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"recipehub/internal/logging"
	"recipehub/internal/models"
	"recipehub/internal/shared"
)

// RatingRequest is a DTO for submitting a rating.
type RatingRequest struct {
	Rating int `json:"rating"`
}

// RatingsResponse pairs the individual ratings of a recipe with their
// aggregate.
type RatingsResponse struct {
	Ratings []models.Rating      `json:"ratings"`
	Summary models.RatingSummary `json:"summary"`
}

// @Summary Rate a recipe
// @Description Records the authenticated user's rating of a recipe. Rating the same recipe again overwrites the earlier value.
// @Tags Ratings
// @Accept json
// @Produce json
// @Param id path int true "Recipe ID"
// @Param rating body RatingRequest true "Rating value (1-5)"
// @Success 200 {object} models.RatingSummary
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 401 {object} ErrorResponse "Authentication required"
// @Failure 404 {object} ErrorResponse "Recipe not found"
// @Security BearerAuth
// @Router /recipe/{id}/rating [post]
func (h *Handlers) RateRecipe(w http.ResponseWriter, r *http.Request) {
	id, err := recipeIDFromRequest(r)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid recipe id")
		return
	}

	var req RatingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	username := getUserFromContext(r)

	if err := h.Rating.RateRecipe(username, id, req.Rating); err != nil {
		if errors.Is(err, shared.ErrRecipeNotFound) {
			respondWithError(w, http.StatusNotFound, "Recipe not found")
			return
		}
		logging.Log.Errorf("RateRecipe: Failed to store rating by '%s' for recipe %d: %v", username, id, err)
		respondWithError(w, http.StatusInternalServerError, "Failed to store rating")
		return
	}

	h.Auditor.Log(r.Context(), "recipe.rate", username, fmt.Sprintf("Recipe:%d", id), map[string]interface{}{
		"rating": req.Rating,
	})

	summary, err := h.Rating.Aggregate(id)
	if err != nil {
		logging.Log.Errorf("RateRecipe: Failed to aggregate ratings for recipe %d: %v", id, err)
		respondWithError(w, http.StatusInternalServerError, "Failed to aggregate ratings")
		return
	}
	respondWithJSON(w, http.StatusOK, summary)
}

// @Summary Get a recipe's ratings
// @Description Lists the individual ratings of a recipe together with the aggregated mean and star rendering.
// @Tags Ratings
// @Produce json
// @Param id path int true "Recipe ID"
// @Success 200 {object} RatingsResponse
// @Failure 404 {object} ErrorResponse "Recipe not found"
// @Router /recipe/{id}/ratings [get]
func (h *Handlers) GetRecipeRatings(w http.ResponseWriter, r *http.Request) {
	id, err := recipeIDFromRequest(r)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid recipe id")
		return
	}

	ratings, err := h.Rating.RatingsForRecipe(id)
	if err != nil {
		if errors.Is(err, shared.ErrRecipeNotFound) {
			respondWithError(w, http.StatusNotFound, "Recipe not found")
			return
		}
		logging.Log.Errorf("GetRecipeRatings: Failed to load ratings for recipe %d: %v", id, err)
		respondWithError(w, http.StatusInternalServerError, "Failed to get ratings")
		return
	}

	summary, err := h.Rating.Aggregate(id)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "Failed to aggregate ratings")
		return
	}

	respondWithJSON(w, http.StatusOK, RatingsResponse{Ratings: ratings, Summary: summary})
}
