// Package config loads svcdoc settings from defaults, a YAML file, a .env
// file and SVCDOC_* environment variables, in increasing priority.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config holds the application settings.
type Config struct {
	Log     LogConfig     `yaml:"log"`
	Convert ConvertConfig `yaml:"convert"`
	Server  ServerConfig  `yaml:"server"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// ConvertConfig configures conversions.
type ConvertConfig struct {
	// Template is "auto", "v1" or "v2".
	Template    string `yaml:"template"`
	Concurrency int    `yaml:"concurrency"`
}

// ServerConfig configures the HTTP server.
type ServerConfig struct {
	Addr string `yaml:"addr"`
	// MaxUploadMB bounds the size of uploaded workbooks.
	MaxUploadMB int `yaml:"max_upload_mb"`
	// AllowedOrigin is sent as Access-Control-Allow-Origin.
	AllowedOrigin string `yaml:"allowed_origin"`
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
		Convert: ConvertConfig{
			Template:    "auto",
			Concurrency: 1,
		},
		Server: ServerConfig{
			Addr:          "127.0.0.1:3006",
			MaxUploadMB:   32,
			AllowedOrigin: "*",
		},
	}
}

// Load builds the configuration. Both paths are optional; a missing .env
// file is not an error, a missing YAML file named explicitly is.
func Load(yamlPath, envFilePath string) (*Config, error) {
	cfg := Default()

	if yamlPath != "" {
		data, err := os.ReadFile(yamlPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", yamlPath, err)
		}
	}

	if envFilePath != "" {
		if err := godotenv.Load(envFilePath); err != nil && !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to load .env file: %w", err)
		}
	}

	cfg.Log.Level = getEnv("SVCDOC_LOG_LEVEL", cfg.Log.Level)
	cfg.Log.Format = getEnv("SVCDOC_LOG_FORMAT", cfg.Log.Format)
	cfg.Convert.Template = getEnv("SVCDOC_TEMPLATE", cfg.Convert.Template)
	cfg.Convert.Concurrency = getEnvAsInt("SVCDOC_CONCURRENCY", cfg.Convert.Concurrency)
	cfg.Server.Addr = getEnv("SVCDOC_ADDR", cfg.Server.Addr)
	cfg.Server.MaxUploadMB = getEnvAsInt("SVCDOC_MAX_UPLOAD_MB", cfg.Server.MaxUploadMB)
	cfg.Server.AllowedOrigin = getEnv("SVCDOC_ALLOWED_ORIGIN", cfg.Server.AllowedOrigin)

	return cfg, nil
}

// getEnv returns the variable's value, or defaultValue when unset or empty.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsInt returns the variable as an int, or defaultValue when unset or
// not a number.
func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}
