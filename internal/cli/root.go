// filepath: internal/cli/root.go
package cli

import (
	"fmt"
	"os"

	"github.com/pressly/goose/v3"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"recipehub/internal/config"
	"recipehub/internal/logging"
)

var (
	// Global config object populated by flags/env/file
	cfg *config.Config

	// Flags
	cfgFile       string
	host          string
	port          int
	dbPath        string
	snapshotPath  string
	importOnStart bool
	logLevel      string
	jwtSecret     string
	auditEnabled  bool
)

// RootCmd represents the base command when called without any subcommands.
// It starts the HTTP server.
var RootCmd = &cobra.Command{
	Use:   "recipehub",
	Short: "RecipeHub API",
	Long:  `A REST API for sharing recipes: accounts, submissions, ratings and full-store snapshots.`,
	// PersistentPreRunE loads the configuration before any command runs.
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initializeConfig(cmd)
	},
	// RunE executes the main server logic.
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServer()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	// Env overrides carry the RECIPEHUB_ prefix; flags take precedence.
	viper.SetEnvPrefix("recipehub")
	viper.AutomaticEnv()

	RootCmd.PersistentFlags().StringVar(&cfgFile, "config_path", "config.toml", "Path to the base configuration file. (Env: RECIPEHUB_CONFIG_PATH)")
	RootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Logging level (debug, info, warn, error). (Env: RECIPEHUB_LOG_LEVEL)")
	RootCmd.PersistentFlags().StringVar(&dbPath, "db-path", "", "Path to the SQLite database file. (Env: RECIPEHUB_DATABASE_PATH)")
	RootCmd.PersistentFlags().StringVar(&snapshotPath, "snapshot-path", "", "Path to the snapshot document. (Env: RECIPEHUB_SNAPSHOT_PATH)")

	// Server-specific flags
	RootCmd.Flags().StringVar(&host, "host", "", "Bind address for the HTTP server. (Env: RECIPEHUB_HOST)")
	RootCmd.Flags().IntVar(&port, "port", 0, "Port for the HTTP server. (Env: RECIPEHUB_PORT)")
	RootCmd.Flags().StringVar(&jwtSecret, "jwt-secret", "", "Secret key for signing JWTs. (Env: RECIPEHUB_JWT_SECRET)")
	RootCmd.Flags().BoolVar(&auditEnabled, "audit-enabled", false, "Enable detailed audit logging. (Env: RECIPEHUB_AUDIT_ENABLED=true)")
	RootCmd.Flags().BoolVar(&importOnStart, "import-on-start", true, "Restore the store from the snapshot file on startup when one exists. (Env: RECIPEHUB_IMPORT_ON_START)")
}

// initializeConfig loads and overrides configuration values.
func initializeConfig(cmd *cobra.Command) error {
	// 1. Check environment variable for config path first
	if envPath := viper.GetString("config_path"); envPath != "" && cfgFile == "config.toml" {
		cfgFile = envPath
	}

	var err error
	cfg, err = config.LoadConfig(cfgFile)
	if err != nil {
		if os.IsNotExist(err) {
			// Create empty config if not found, rely on defaults/flags
			cfg = &config.Config{}
			cfg.Snapshot.ImportOnStart = true
		} else {
			return fmt.Errorf("failed to load configuration from %s: %w", cfgFile, err)
		}
	}

	// 2. Apply Overrides (Env Vars and CLI Flags)
	applyOverrides(cfg, cmd)

	// 3. Validate
	if err := cfg.ParseAndValidate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	// 4. Initialize Logging
	logging.Init(cfg.Logging.Level)
	goose.SetLogger(logging.Log)

	return nil
}

func applyOverrides(c *config.Config, cmd *cobra.Command) {
	// --- 1. Environment Variables ---
	if v := viper.GetString("host"); v != "" {
		c.Server.Host = v
	}
	if v := viper.GetInt("port"); v != 0 {
		c.Server.Port = v
	}
	if v := viper.GetString("database_path"); v != "" {
		c.Database.Path = v
	}
	if v := viper.GetString("snapshot_path"); v != "" {
		c.Snapshot.Path = v
	}
	if viper.IsSet("import_on_start") {
		c.Snapshot.ImportOnStart = viper.GetBool("import_on_start")
	}
	if v := viper.GetString("log_level"); v != "" {
		c.Logging.Level = v
	}
	if viper.IsSet("audit_enabled") {
		c.Logging.AuditEnabled = viper.GetBool("audit_enabled")
	}
	if v := viper.GetString("jwt_secret"); v != "" {
		c.JWTSecret = v
	}

	// --- 2. CLI Flags (Take precedence) ---
	if host != "" {
		c.Server.Host = host
	}
	if port != 0 {
		c.Server.Port = port
	}
	if dbPath != "" {
		c.Database.Path = dbPath
	}
	if snapshotPath != "" {
		c.Snapshot.Path = snapshotPath
	}
	if cmd.Flags().Changed("import-on-start") {
		c.Snapshot.ImportOnStart = importOnStart
	}
	if logLevel != "" {
		c.Logging.Level = logLevel
	}
	// Check if flag was explicitly set
	if cmd.Flags().Changed("audit-enabled") {
		c.Logging.AuditEnabled = auditEnabled
	}
	if jwtSecret != "" {
		c.JWTSecret = jwtSecret
	}

	// --- 3. Defaults ---
	if c.Server.Host == "" {
		c.Server.Host = "0.0.0.0"
	}
	if c.Server.Port == 0 {
		c.Server.Port = 8080
	}
	if c.Database.Path == "" {
		c.Database.Path = "recipehub.db"
	}
	if c.Snapshot.Path == "" {
		c.Snapshot.Path = "db_export.json"
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.JWT.AccessDurationMin == 0 {
		c.JWT.AccessDurationMin = 5
	}
	if c.JWT.RefreshDurationHours == 0 {
		c.JWT.RefreshDurationHours = 24
	}
}
