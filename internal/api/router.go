// filepath: internal/api/router.go
package api

import (
	"github.com/gorilla/mux"
	httpSwagger "github.com/swaggo/http-swagger"

	"recipehub/internal/api/handlers"
	"recipehub/internal/services/auth"

	_ "recipehub/docs" // swagger document, registered via init
)

// SetupRouter configures the main router and its sub-routers.
// Reads are public; everything that writes to the store (except
// registration and login) requires a Bearer token.
func SetupRouter(h *handlers.Handlers, am *auth.Middleware) *mux.Router {
	r := mux.NewRouter()

	// Public Endpoints
	r.HandleFunc("/health", handlers.HealthCheck).Methods("GET")
	r.HandleFunc("/api/info", h.GetInfo).Methods("GET")
	r.PathPrefix("/swagger/").Handler(httpSwagger.WrapHandler)

	// Public Account Endpoints (Not protected by authMiddleware)
	r.HandleFunc("/api/register", h.Register).Methods("POST")
	r.HandleFunc("/api/token", h.GetToken).Methods("POST")
	r.HandleFunc("/api/token/refresh", h.RefreshToken).Methods("POST")

	// Public Read Endpoints
	r.HandleFunc("/api/users", h.GetUsers).Methods("GET")
	r.HandleFunc("/api/user/{username}", h.GetUser).Methods("GET")
	r.HandleFunc("/api/recipes", h.GetRecipes).Methods("GET")
	r.HandleFunc("/api/recipe/{id:[0-9]+}", h.GetRecipe).Methods("GET")
	r.HandleFunc("/api/recipe/{id:[0-9]+}/ratings", h.GetRecipeRatings).Methods("GET")
	r.HandleFunc("/api/ingredients", h.GetIngredients).Methods("GET")
	r.HandleFunc("/api/suggestions/ingredients", h.SuggestIngredients).Methods("GET")
	r.HandleFunc("/api/suggestions/categories", h.SuggestCategories).Methods("GET")
	r.HandleFunc("/api/suggestions/cuisines", h.SuggestCuisines).Methods("GET")
	r.HandleFunc("/api/export", h.ExportSnapshot).Methods("GET")

	// Authenticated API Routes
	apiRouter := r.PathPrefix("/api").Subrouter()
	apiRouter.Use(am.AuthMiddleware)

	apiRouter.HandleFunc("/logout", h.Logout).Methods("POST")
	apiRouter.HandleFunc("/recipe", h.CreateRecipe).Methods("POST")
	apiRouter.HandleFunc("/recipe/{id:[0-9]+}/rating", h.RateRecipe).Methods("POST")
	apiRouter.HandleFunc("/import", h.ImportSnapshot).Methods("POST")
	apiRouter.HandleFunc("/wipe", h.WipeStore).Methods("POST")

	return r
}
