// Package common provides configuration management and HTTP endpoint
// utilities for the BaSyx AAS explorer. It includes support for YAML
// configuration files, environment variable overrides, CORS setup and
// health endpoints.
package common

import (
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/spf13/viper"
)

// Config represents the complete configuration structure for the explorer
// service. It combines server settings, the upstream AAS repository
// endpoint, explorer behaviour tuning, the optional submodel cache and the
// CORS policy.
type Config struct {
	Server     ServerConfig   `yaml:"server"`   // HTTP server configuration
	Upstream   UpstreamConfig `yaml:"upstream"` // Upstream AAS repository endpoint
	Explorer   ExplorerConfig `yaml:"explorer"` // Tree/pagination behaviour
	Cache      CacheConfig    `yaml:"cache"`    // Optional submodel body cache
	CorsConfig CorsConfig     `yaml:"cors"`     // CORS policy configuration
}

// ServerConfig contains HTTP server configuration parameters.
type ServerConfig struct {
	Port        int    `yaml:"port"`        // HTTP server port (default: 5010)
	ContextPath string `yaml:"contextPath"` // Base path for all endpoints
}

// UpstreamConfig locates the AAS repository the explorer consumes.
type UpstreamConfig struct {
	BaseURL        string `yaml:"baseURL"`        // Repository base URL
	TimeoutSeconds int    `yaml:"timeoutSeconds"` // Per-request timeout
}

// ExplorerConfig tunes tree assembly and pagination behaviour.
type ExplorerConfig struct {
	AutoLoadPages int    `yaml:"autoLoadPages"` // Background pages loaded after page 1
	PageSize      int    `yaml:"pageSize"`      // Display window size
	Language      string `yaml:"language"`      // Preferred display language
}

// CacheConfig controls the on-disk read-through cache for submodel bodies.
type CacheConfig struct {
	Enabled bool   `yaml:"enabled"` // Enable/disable the cache
	Path    string `yaml:"path"`    // bbolt database file path
}

// CorsConfig contains Cross-Origin Resource Sharing (CORS) policy settings.
type CorsConfig struct {
	AllowedOrigins   []string `yaml:"allowedOrigins"`   // Allowed origin domains
	AllowedMethods   []string `yaml:"allowedMethods"`   // Allowed HTTP methods
	AllowedHeaders   []string `yaml:"allowedHeaders"`   // Allowed request headers
	AllowCredentials bool     `yaml:"allowCredentials"` // Allow credentials in requests
}

// LoadConfig loads the configuration from YAML files and environment variables.
//
// The function supports multiple configuration sources with the following precedence:
// 1. Environment variables (highest priority)
// 2. Configuration file (if provided)
// 3. Default values (lowest priority)
//
// Environment variables should use underscore notation (e.g., UPSTREAM_BASEURL
// for upstream.baseURL).
func LoadConfig(configPath string) (*Config, error) {
	v := viper.New()

	// Set default values
	setDefaults(v)

	if configPath != "" {
		log.Printf("📁 Loading config from file: %s", configPath)
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
	} else {
		log.Println("📁 No config file provided — loading from environment variables only")
	}

	// Override config with environment variables
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := new(Config)
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	log.Println("✅ Configuration loaded successfully")
	PrintConfiguration(cfg)
	return cfg, nil
}

// setDefaults configures sensible default values for all configuration
// options so the service runs in development environments without a config
// file. Production deployments override these through configuration files or
// environment variables.
func setDefaults(v *viper.Viper) {
	// Server defaults
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 5010)
	v.SetDefault("server.contextPath", "")

	// Upstream repository defaults
	v.SetDefault("upstream.baseURL", "http://localhost:8081/api")
	v.SetDefault("upstream.timeoutSeconds", 30)

	// Explorer defaults
	v.SetDefault("explorer.autoLoadPages", 10)
	v.SetDefault("explorer.pageSize", 10)
	v.SetDefault("explorer.language", "en")

	// Cache defaults
	v.SetDefault("cache.enabled", false)
	v.SetDefault("cache.path", "data/submodel-cache.db")

	// CORS defaults
	v.SetDefault("cors.allowedOrigins", []string{"*"})
	v.SetDefault("cors.allowedMethods", []string{"GET", "POST", "DELETE", "OPTIONS"})
	v.SetDefault("cors.allowedHeaders", []string{"*"})
	v.SetDefault("cors.allowCredentials", true)
}

// PrintConfiguration prints the current configuration to the console with
// the upstream location redacted, so service logs do not leak internal
// repository addresses.
func PrintConfiguration(cfg *Config) {
	// Create a copy of the config to avoid modifying the original
	cfgCopy := *cfg

	if cfg.Upstream.BaseURL != "" {
		cfgCopy.Upstream.BaseURL = "****"
	}

	// Convert to JSON for pretty printing
	configJSON, err := json.MarshalIndent(cfgCopy, "", "  ")
	if err != nil {
		log.Printf("Unable to marshal configuration to JSON: %v", err)
		return
	}

	log.Printf("📜 Loaded configuration:\n%s", string(configJSON))
}

// AddCors configures Cross-Origin Resource Sharing (CORS) middleware for the
// router based on the provided configuration.
func AddCors(r *chi.Mux, config *Config) {
	c := cors.New(cors.Options{
		AllowedOrigins:   config.CorsConfig.AllowedOrigins,
		AllowedMethods:   config.CorsConfig.AllowedMethods,
		AllowedHeaders:   config.CorsConfig.AllowedHeaders,
		AllowCredentials: config.CorsConfig.AllowCredentials,
	})
	r.Use(c.Handler)
}
