// filepath: internal/cli/root.go
package cli

import (
	"embed"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"podscope/internal/config"
)

var (
	// Version info
	Version   = "1.0.0"
	StartTime time.Time

	// Global config object populated by flags/env/file
	cfg *config.Config

	// Flags
	cfgFile    string
	port       int
	logLevel   string
	readyAfter string
)

// RootCmd represents the base command when called without any subcommands.
// It starts the HTTP server.
var RootCmd = &cobra.Command{
	Use:   "podscope",
	Short: "Pod identity and probe inspector",
	Long: `An HTTP service for container-orchestration demos. It reports pod identity,
counts home page visits per replica, and gates readiness on a configurable
warmup period after process start.`,
	// PersistentPreRunE loads the configuration before any command runs.
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initializeConfig(cmd)
	},
	// RunE executes the main server logic.
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServer()
	},
}

// templatesFS holds the embedded dashboard templates.
var templatesFS embed.FS

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute(fs embed.FS) {
	templatesFS = fs // Store for use in runServer
	StartTime = time.Now()

	if err := RootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	// Define flags.
	RootCmd.PersistentFlags().StringVar(&cfgFile, "config_path", "config.toml", "Path to the base configuration file. (Env: PODSCOPE_CONFIG_PATH)")
	RootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Logging level (debug, info, warn, error). (Env: PODSCOPE_LOG_LEVEL)")

	// Server-specific flags
	RootCmd.Flags().IntVar(&port, "port", 0, "Port for the HTTP server. (Env: PORT)")
	RootCmd.Flags().StringVar(&readyAfter, "ready-after", "", "Warmup period in seconds before the readiness probe succeeds. (Env: READY_AFTER)")
}

// initializeConfig loads and overrides configuration values.
func initializeConfig(cmd *cobra.Command) error {
	// A local .env mirrors the env injection a pod would get from its
	// manifest. Missing files are fine.
	_ = godotenv.Load()

	// 1. Check environment variable for config path first
	if envPath := os.Getenv("PODSCOPE_CONFIG_PATH"); envPath != "" && cfgFile == "config.toml" {
		cfgFile = envPath
	}

	var err error
	cfg, err = config.LoadConfig(cfgFile)
	if err != nil {
		if os.IsNotExist(err) {
			// Create empty config if not found, rely on defaults/flags
			cfg = &config.Config{}
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

	return nil
}

// applyOverrides layers environment variables over file values and CLI flags
// over both. The identity and readiness variables keep their unprefixed
// names because Kubernetes manifests inject them via the downward API.
func applyOverrides(c *config.Config, cmd *cobra.Command) {
	// --- 1. Environment Variables ---
	if v := os.Getenv("PORT"); v != "" {
		if p, err := strconv.Atoi(v); err == nil {
			c.Server.Port = p
		}
	}
	if v := os.Getenv("READY_AFTER"); v != "" {
		c.Readiness.ReadyAfter = v
	}
	if v := os.Getenv("POD_NAME"); v != "" {
		c.Identity.PodName = v
	}
	if v := os.Getenv("NODE_NAME"); v != "" {
		c.Identity.NodeName = v
	}
	if v := os.Getenv("APP_ENV"); v != "" {
		c.Identity.AppEnv = v
	}
	if v := os.Getenv("SERVICE_NAME"); v != "" {
		c.Identity.ServiceName = v
	}
	if v := os.Getenv("CORS_ORIGINS"); v != "" {
		c.CORS.Origins = v
	}
	if v := os.Getenv("PODSCOPE_LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}

	// --- 2. CLI Flags (Take precedence) ---
	if port != 0 {
		c.Server.Port = port
	}
	if logLevel != "" {
		c.Logging.Level = logLevel
	}
	if readyAfter != "" {
		c.Readiness.ReadyAfter = readyAfter
	}
}
