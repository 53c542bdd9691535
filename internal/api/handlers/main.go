// filepath: internal/api/handlers/main.go
package handlers

import (
	"recipehub/internal/config"
	"recipehub/internal/services"
	"recipehub/internal/services/auth"
)

// Handlers provides a struct to hold shared dependencies for API handlers.
type Handlers struct {
	// --- Depend on interfaces, not concrete structs ---
	Info     services.InfoService
	User     services.UserService
	Recipe   services.RecipeService
	Rating   services.RatingService
	Snapshot services.SnapshotService
	Token    auth.TokenService
	Auditor  services.Auditor

	Cfg *config.Config
}

// NewHandlers creates a new instance of Handlers with its dependencies.
// --- Accept interfaces as parameters ---
func NewHandlers(
	info services.InfoService,
	user services.UserService,
	recipe services.RecipeService,
	rating services.RatingService,
	snapshot services.SnapshotService,
	token auth.TokenService,
	auditor services.Auditor,
	cfg *config.Config,
) *Handlers {
	return &Handlers{
		Info:     info,
		User:     user,
		Recipe:   recipe,
		Rating:   rating,
		Snapshot: snapshot,
		Token:    token,
		Auditor:  auditor,
		Cfg:      cfg,
	}
}
