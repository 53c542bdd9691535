// filepath: cmd/recipehub/main.go
package main

import (
	"recipehub/internal/cli"
)

// @title RecipeHub API
// @version 1.0.0
// @description A REST API for sharing recipes: accounts, submissions, ratings and full-store snapshots.
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and a JWT token.

func main() {
	// Delegate all execution to the CLI package
	cli.Execute()
}
