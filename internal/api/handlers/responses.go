// filepath: internal/api/handlers/responses.go
package handlers

import (
	"encoding/json"
	"net/http"
)

// ErrorResponse carries a single error message to the client.
type ErrorResponse struct {
	Error string `json:"error"`
}

// MessageResponse carries a single confirmation message to the client.
type MessageResponse struct {
	Message string `json:"message"`
}

// respondWithError writes an ErrorResponse with the given status code.
func respondWithError(w http.ResponseWriter, code int, message string) {
	respondWithJSON(w, code, ErrorResponse{Error: message})
}

// respondWithJSON marshals payload and writes it with the given status code.
func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	response, err := json.Marshal(payload)
	if err != nil {
		http.Error(w, `{"error":"Failed to marshal JSON response"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	w.Write(response)
}
