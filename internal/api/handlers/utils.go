// filepath: internal/api/handlers/utils.go
package handlers

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
)

// getUserFromContext returns the authenticated username, or "-" on public
// routes where the auth middleware never ran.
func getUserFromContext(r *http.Request) string {
	if username, ok := r.Context().Value("user").(string); ok {
		return username
	}
	return "-"
}

// recipeIDFromRequest parses the {id} path variable of recipe routes.
func recipeIDFromRequest(r *http.Request) (int64, error) {
	return strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
}
