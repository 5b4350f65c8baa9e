package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Load loads the configuration from file and environment variables.
// A config file is optional; RADARR_URL and RADARR_API_KEY alone are
// enough to run the server.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	// Set default values
	setDefaults(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		// Look for config in standard locations
		v.SetConfigName("config")
		v.SetConfigType("yaml")

		// Check current directory first
		v.AddConfigPath(".")

		// Check home directory
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".radarr-mcp"))
		}

		// Check /etc
		v.AddConfigPath("/etc/radarr-mcp/")
	}

	// Environment overrides, matching the variable names the upstream
	// ecosystem already uses.
	v.SetEnvPrefix("RADARR_MCP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	bindEnvAliases(v)

	// Read config file if present
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	// Validate configuration
	if err := Validate(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// bindEnvAliases wires the conventional environment variable names onto
// their config keys.
func bindEnvAliases(v *viper.Viper) {
	_ = v.BindEnv("radarr.url", "RADARR_URL")
	_ = v.BindEnv("radarr.api_key", "RADARR_API_KEY")
	_ = v.BindEnv("server.host", "RADARR_MCP_HOST")
	_ = v.BindEnv("server.port", "RADARR_MCP_PORT")
	_ = v.BindEnv("logging.level", "LOG_LEVEL")
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	// Radarr defaults
	v.SetDefault("radarr.url", "http://localhost:7878")

	// Server defaults
	v.SetDefault("server.host", "127.0.0.1")
	v.SetDefault("server.port", 4200)
	v.SetDefault("server.path", "/mcp")

	// Logging defaults
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
	v.SetDefault("logging.color", true)
}

// Validate checks if the configuration is valid
func Validate(cfg *Config) error {
	if cfg.Radarr.URL == "" {
		return fmt.Errorf("radarr.url is required")
	}

	if cfg.Radarr.APIKey == "" || cfg.Radarr.APIKey == "your-api-key-here" {
		return fmt.Errorf("radarr.api_key must be set to a valid API key")
	}

	if cfg.Server.Port <= 0 || cfg.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", cfg.Server.Port)
	}

	if !strings.HasPrefix(cfg.Server.Path, "/") {
		return fmt.Errorf("server.path must start with '/': %s", cfg.Server.Path)
	}

	// Validate logging level
	validLevels := map[string]bool{
		"trace": true,
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLevels[cfg.Logging.Level] {
		return fmt.Errorf("invalid logging level: %s", cfg.Logging.Level)
	}

	// Validate logging format
	validFormats := map[string]bool{
		"console": true,
		"json":    true,
	}
	if !validFormats[cfg.Logging.Format] {
		return fmt.Errorf("invalid logging format: %s", cfg.Logging.Format)
	}

	return nil
}
