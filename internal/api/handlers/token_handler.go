// filepath: internal/api/handlers/token_handler.go
package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"recipehub/internal/logging"
	"recipehub/internal/shared"
)

// loginRequest is the JSON body for the token endpoint.
type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// tokenRequest is the JSON body for refresh and logout endpoints.
type tokenRequest struct {
	RefreshToken string `json:"refresh_token"`
}

// tokenResponse is the JSON body returned on successful token generation.
type tokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// @Summary Get JWT tokens
// @Description Authenticate with username and password to receive an access and refresh token.
// @Tags Auth
// @Accept   json
// @Produce  json
// @Param   credentials  body  loginRequest  true  "Credentials"
// @Success 200 {object} tokenResponse
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 401 {object} ErrorResponse "Authentication failed"
// @Failure 500 {object} ErrorResponse "Token generation failed"
// @Router /token [post]
func (h *Handlers) GetToken(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	// One generic failure message; do not reveal whether the username exists.
	user, err := h.User.Authenticate(req.Username, req.Password)
	if err != nil {
		if errors.Is(err, shared.ErrInvalidCredentials) {
			h.Auditor.Log(r.Context(), "user.login_failed", "-", "User:"+req.Username, nil)
			respondWithError(w, http.StatusUnauthorized, "Authentication failed")
			return
		}
		logging.Log.Errorf("GetToken: Authentication error for '%s': %v", req.Username, err)
		respondWithError(w, http.StatusInternalServerError, "Authentication failed")
		return
	}

	// Generate tokens (stateful)
	accessToken, refreshToken, err := h.Token.GenerateTokens(user)
	if err != nil {
		logging.Log.Errorf("Token generation failed for %s: %v", user.Username, err)
		respondWithError(w, http.StatusInternalServerError, "Could not generate tokens")
		return
	}

	h.Auditor.Log(r.Context(), "user.login", user.Username, "User:"+user.Username, nil)

	respondWithJSON(w, http.StatusOK, tokenResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	})
}

// @Summary Refresh JWT access token
// @Description Provide a valid refresh token to receive a new access token. The old refresh token is revoked.
// @Tags Auth
// @Accept   json
// @Produce  json
// @Param   token  body  tokenRequest  true  "Refresh Token"
// @Success 200 {object} tokenResponse
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 401 {object} ErrorResponse "Invalid or expired token"
// @Failure 500 {object} ErrorResponse "Token generation failed"
// @Router /token/refresh [post]
func (h *Handlers) RefreshToken(w http.ResponseWriter, r *http.Request) {
	var req tokenRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	// Validate the refresh token (checks signature and DB)
	user, err := h.Token.ValidateRefreshToken(req.RefreshToken)
	if err != nil {
		respondWithError(w, http.StatusUnauthorized, "Invalid or expired refresh token")
		return
	}

	// Token Rotation: Invalidate the old refresh token immediately
	if err := h.Token.Logout(req.RefreshToken); err != nil {
		logging.Log.Warnf("Failed to invalidate old refresh token during refresh for user %s: %v", user.Username, err)
		// We can continue, but it's a potential security risk
	}

	// Issue new token pair
	accessToken, refreshToken, err := h.Token.GenerateTokens(user)
	if err != nil {
		logging.Log.Errorf("Token refresh failed for %s: %v", user.Username, err)
		respondWithError(w, http.StatusInternalServerError, "Could not generate tokens")
		return
	}

	respondWithJSON(w, http.StatusOK, tokenResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	})
}

// @Summary Logout
// @Description Invalidates a refresh token. This endpoint is protected by an Access Token.
// @Tags Auth
// @Accept   json
// @Produce  json
// @Param   token  body  tokenRequest  true  "Refresh Token to invalidate"
// @Success 200 {object} MessageResponse
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 401 {object} ErrorResponse "Authentication required (invalid access token)"
// @Failure 500 {object} ErrorResponse "Could not process token"
// @Security BearerAuth
// @Router /logout [post]
func (h *Handlers) Logout(w http.ResponseWriter, r *http.Request) {
	var req tokenRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.Token.Logout(req.RefreshToken); err != nil {
		logging.Log.Errorf("Logout failed: %v", err)
		respondWithError(w, http.StatusInternalServerError, "Failed to logout")
		return
	}

	h.Auditor.Log(r.Context(), "user.logout", getUserFromContext(r), "User:"+getUserFromContext(r), nil)

	respondWithJSON(w, http.StatusOK, MessageResponse{Message: "Logged out successfully."})
}
