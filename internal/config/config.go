// filepath: internal/config/config.go
package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
)

// DefaultReadyAfterSec is the warmup period substituted whenever the
// configured value cannot be parsed or is negative.
const DefaultReadyAfterSec = 5

// Config holds the application's configuration.
type Config struct {
	Server    ServerConfig    `toml:"server"`
	Readiness ReadinessConfig `toml:"readiness"`
	Identity  IdentityConfig  `toml:"identity"`
	CORS      CORSConfig      `toml:"cors"`
	Logging   LoggingConfig   `toml:"logging"`

	// Runtime computed values, not loaded from file.
	ReadyAfterSec  int      `toml:"-"` // validated warmup period in seconds
	AllowedOrigins []string `toml:"-"` // parsed from CORS.Origins

	// Warnings collected during validation. The config package stays
	// dependency-free, so the caller decides how to log these.
	Warnings []string `toml:"-"`
}

// ServerConfig holds the HTTP server configuration.
type ServerConfig struct {
	Host string `toml:"host"`
	Port int    `toml:"port"`
}

// ReadinessConfig holds the readiness gate configuration.
// ReadyAfter is kept as a string because it usually arrives through the
// READY_AFTER environment variable and bad input must fall back to the
// default instead of failing startup.
type ReadinessConfig struct {
	ReadyAfter string `toml:"ready_after"`
}

// IdentityConfig holds the pod identity values, normally injected by the
// orchestrator via the downward API. Unset fields fall back to "unknown".
type IdentityConfig struct {
	PodName     string `toml:"pod_name"`
	NodeName    string `toml:"node_name"`
	AppEnv      string `toml:"app_env"`
	ServiceName string `toml:"service_name"`
}

// CORSConfig holds the CORS configuration.
type CORSConfig struct {
	Origins string `toml:"origins"` // comma-separated list, "*" allows all
}

// LoggingConfig holds the logging configuration.
type LoggingConfig struct {
	Level string `toml:"level"`
}

// LoadConfig loads the configuration from a TOML file.
func LoadConfig(path string) (*Config, error) {
	var config Config
	if _, err := toml.DecodeFile(path, &config); err != nil {
		return nil, err
	}
	return &config, nil
}

// ParseAndValidate processes configuration strings into runtime values and
// applies defaults. Invalid readiness input is recovered locally: a warning
// is recorded and the default is substituted, so a bad env var never
// prevents the process from starting.
func (c *Config) ParseAndValidate() error {
	if c.Server.Host == "" {
		c.Server.Host = "0.0.0.0"
	}
	if c.Server.Port == 0 {
		c.Server.Port = 8080
	}
	if c.Server.Port < 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.CORS.Origins == "" {
		c.CORS.Origins = "*"
	}

	c.ReadyAfterSec = c.parseReadyAfter()
	c.AllowedOrigins = splitOrigins(c.CORS.Origins)

	return nil
}

// parseReadyAfter converts the raw ready_after value into seconds, falling
// back to DefaultReadyAfterSec on any invalid input.
func (c *Config) parseReadyAfter() int {
	raw := strings.TrimSpace(c.Readiness.ReadyAfter)
	if raw == "" {
		return DefaultReadyAfterSec
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		c.warnf("invalid ready_after value %q, using default: %d", raw, DefaultReadyAfterSec)
		return DefaultReadyAfterSec
	}
	if n < 0 {
		c.warnf("ready_after must be non-negative, using default: %d", DefaultReadyAfterSec)
		return DefaultReadyAfterSec
	}
	return n
}

func (c *Config) warnf(format string, args ...interface{}) {
	c.Warnings = append(c.Warnings, fmt.Sprintf(format, args...))
}

// splitOrigins parses a comma-separated origin list, trimming whitespace and
// dropping empty entries.
func splitOrigins(raw string) []string {
	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			origins = append(origins, trimmed)
		}
	}
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	return origins
}
