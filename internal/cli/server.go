// filepath: internal/cli/server.go
package cli

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"recipehub/internal/api"
	"recipehub/internal/api/handlers"
	"recipehub/internal/audit"
	"recipehub/internal/config"
	"recipehub/internal/housekeeping"
	"recipehub/internal/logging"
	"recipehub/internal/repository"
	"recipehub/internal/services"
	"recipehub/internal/services/auth"
)

// runServer contains the logic to start the HTTP server with graceful shutdown.
func runServer() error {
	// Handle JWT Secret
	if cfg.JWTSecret == "" {
		if cfg.JWT.Secret != "" {
			logging.Log.Info("Using JWT secret loaded from config.toml.")
			cfg.JWTSecret = cfg.JWT.Secret
		} else {
			logging.Log.Info("Generating new random JWT secret...")
			newSecret, err := auth.GenerateSecret()
			if err != nil {
				return fmt.Errorf("failed to generate JWT secret: %w", err)
			}
			cfg.JWT.Secret = newSecret
			cfg.JWTSecret = newSecret
			if err := config.SaveConfig(cfgFile, cfg); err != nil {
				logging.Log.Warnf("Failed to save new JWT secret to %s: %v", cfgFile, err)
			} else {
				logging.Log.Infof("New JWT secret saved to %s.", cfgFile)
			}
		}
	}

	repo, err := repository.NewRepository(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize repository: %w", err)
	}
	defer repo.Close()

	// --- Auto-migrate on startup ---
	if err := repo.EnsureSchemaBootstrapped(); err != nil {
		logging.Log.Errorf("Failed to bootstrap database: %v", err)
		return err
	}

	// Service Initialization
	infoService := services.NewInfoService()
	userService := services.NewUserService(repo)
	tokenService := auth.NewTokenService(cfg, userService, repo)
	ratingService := services.NewRatingService(repo)
	recipeService := services.NewRecipeService(repo, ratingService)
	snapshotService := services.NewSnapshotService(repo, cfg)

	// Auditor Initialization
	loggerAuditor := audit.NewLoggerAuditor(cfg.Logging.AuditEnabled)

	authMiddleware := auth.NewMiddleware(tokenService)

	// Reload the store from the snapshot document, when enabled and present.
	if cfg.Snapshot.ImportOnStart {
		if err := snapshotService.ImportIfPresent(); err != nil {
			return fmt.Errorf("startup snapshot import failed: %w", err)
		}
	}

	housekeepingService, err := housekeeping.NewService(snapshotService, cfg.Snapshot.AutoExportInterval)
	if err != nil {
		return fmt.Errorf("invalid auto-export interval: %w", err)
	}
	housekeepingService.Start()
	// No defer stop here, we stop explicitly during graceful shutdown

	h := handlers.NewHandlers(
		infoService,
		userService,
		recipeService,
		ratingService,
		snapshotService,
		tokenService,
		loggerAuditor,
		cfg,
	)

	r := api.SetupRouter(h, authMiddleware)

	serverAddr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:    serverAddr,
		Handler: r,
	}

	// --- Graceful Shutdown Setup ---
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		logging.Log.Infof("Server starting on %s", serverAddr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logging.Log.Fatalf("Server failed to start: %v", err)
		}
	}()

	<-stop
	logging.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	// Stop background services
	housekeepingService.Stop()

	if err := srv.Shutdown(ctx); err != nil {
		logging.Log.Errorf("Server forced to shutdown: %v", err)
		return err
	}

	logging.Log.Info("Server exiting")
	return nil
}
