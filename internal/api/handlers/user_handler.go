// filepath: internal/api/handlers/user_handler.go
package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"recipehub/internal/logging"
	"recipehub/internal/models"
	"recipehub/internal/repository"
	"recipehub/internal/shared"
)

// RegisterRequest is a DTO for creating a new account.
type RegisterRequest struct {
	Username string `json:"username"`
	Name     string `json:"name"`
	Password string `json:"password"`
}

// UserResponse is a user without their credential material.
type UserResponse struct {
	Username string `json:"username"`
	Name     string `json:"name"`
}

// UserDetailResponse is a user together with their recipes.
type UserDetailResponse struct {
	UserResponse
	Recipes []models.Recipe `json:"recipes"`
}

func sanitizeUser(user *models.User) UserResponse {
	return UserResponse{Username: user.Username, Name: user.Name}
}

// @Summary Register a new account
// @Description Creates a new account from a unique username, a display name and a password. This is a public endpoint.
// @Tags Users
// @Accept json
// @Produce json
// @Param account body RegisterRequest true "Account details"
// @Success 201 {object} UserResponse
// @Failure 400 {object} ErrorResponse "Missing fields"
// @Failure 409 {object} ErrorResponse "Username already taken"
// @Router /register [post]
func (h *Handlers) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	user, err := h.User.Register(repository.UserCreateArgs{
		Username: req.Username,
		Name:     req.Name,
		Password: req.Password,
	})
	if err != nil {
		switch {
		case errors.Is(err, shared.ErrUserExists):
			respondWithError(w, http.StatusConflict, "Username already taken")
		case errors.Is(err, shared.ErrValidation):
			respondWithError(w, http.StatusBadRequest, err.Error())
		default:
			respondWithError(w, http.StatusInternalServerError, "Failed to register user")
		}
		return
	}

	logging.Log.Infof("Register: New account '%s'", user.Username)
	h.Auditor.Log(r.Context(), "user.register", user.Username, "User:"+user.Username, nil)

	respondWithJSON(w, http.StatusCreated, sanitizeUser(user))
}

// @Summary List users
// @Description Lists all registered users without credential material.
// @Tags Users
// @Produce json
// @Success 200 {array} UserResponse
// @Router /users [get]
func (h *Handlers) GetUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.User.GetUsers()
	if err != nil {
		logging.Log.Errorf("GetUsers: %v", err)
		respondWithError(w, http.StatusInternalServerError, "Failed to list users")
		return
	}

	response := make([]UserResponse, 0, len(users))
	for i := range users {
		response = append(response, sanitizeUser(&users[i]))
	}
	respondWithJSON(w, http.StatusOK, response)
}

// @Summary Get one user
// @Description Gets one user's details together with the recipes they submitted.
// @Tags Users
// @Produce json
// @Param username path string true "Username"
// @Success 200 {object} UserDetailResponse
// @Failure 404 {object} ErrorResponse "User not found"
// @Router /user/{username} [get]
func (h *Handlers) GetUser(w http.ResponseWriter, r *http.Request) {
	username := mux.Vars(r)["username"]

	user, err := h.User.GetUserByUsername(username)
	if err != nil {
		if errors.Is(err, shared.ErrUserNotFound) {
			respondWithError(w, http.StatusNotFound, "User not found")
			return
		}
		respondWithError(w, http.StatusInternalServerError, "Failed to get user")
		return
	}

	recipes, err := h.User.GetUserRecipes(username)
	if err != nil {
		logging.Log.Errorf("GetUser: Failed to load recipes for '%s': %v", username, err)
		respondWithError(w, http.StatusInternalServerError, "Failed to get user")
		return
	}

	respondWithJSON(w, http.StatusOK, UserDetailResponse{
		UserResponse: sanitizeUser(user),
		Recipes:      recipes,
	})
}
