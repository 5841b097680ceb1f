package config

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds all application configuration
type Config struct {
	DatabaseURL   string
	WorkbookPath  string
	ImageDir      string
	Port          string
	GoEnv         string
	AdminPasscode string
	PublicMode    bool
	SessionSecret string
}

// Load loads the configuration from environment variables
// It automatically determines which .env file to load based on GO_ENV
func Load() (*Config, error) {
	// Determine which environment file to load
	env := os.Getenv("GO_ENV")
	if env == "" {
		env = "development"
	}

	// Try to load environment-specific file first
	envFile := fmt.Sprintf(".env.%s", env)
	if err := godotenv.Load(envFile); err != nil {
		// If environment-specific file doesn't exist, try .env
		if err := godotenv.Load(); err != nil {
			// In production, environment variables are set directly
			// so it's okay if .env files don't exist
			log.Printf("No .env file found, using system environment variables")
		}
	} else {
		log.Printf("Loaded configuration from %s", envFile)
	}

	config := &Config{
		DatabaseURL:   getEnv("DATABASE_URL", ""),
		WorkbookPath:  getEnv("WORKBOOK_PATH", "./jyogi_data.db"),
		ImageDir:      getEnv("IMAGE_DIR", "./images"),
		Port:          getEnv("PORT", "8080"),
		GoEnv:         getEnv("GO_ENV", "development"),
		AdminPasscode: strings.TrimSpace(getEnv("ADMIN_PASSCODE", "")),
		PublicMode:    ParseBool(getEnv("PUBLIC_MODE", "false"), false),
		SessionSecret: getEnv("SESSION_SECRET", ""),
	}

	// Sessions must be signable even when only the passcode is configured
	if config.SessionSecret == "" {
		config.SessionSecret = config.AdminPasscode
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Validate checks that all required configuration values are set
func (c *Config) Validate() error {
	if c.WorkbookPath == "" && c.DatabaseURL == "" {
		return fmt.Errorf("WORKBOOK_PATH or DATABASE_URL is required")
	}
	if c.ImageDir == "" {
		return fmt.Errorf("IMAGE_DIR is required")
	}
	return nil
}

// AdminUnlockEnabled reports whether admin login is possible at all.
// An empty passcode disables the unlock entirely.
func (c *Config) AdminUnlockEnabled() bool {
	return c.AdminPasscode != ""
}

// IsProduction returns true if the application is running in production mode
func (c *Config) IsProduction() bool {
	return c.GoEnv == "production"
}

// IsTest returns true if the application is running in test mode
func (c *Config) IsTest() bool {
	return c.GoEnv == "test"
}

// IsDevelopment returns true if the application is running in development mode
func (c *Config) IsDevelopment() bool {
	return c.GoEnv == "development"
}

// ParseBool interprets a settings flag the way the admin writes them:
// 1/true/yes/y/on are true, anything else falls back to the default.
func ParseBool(value string, defaultValue bool) bool {
	v := strings.ToLower(strings.TrimSpace(value))
	if v == "" {
		return defaultValue
	}
	switch v {
	case "1", "true", "yes", "y", "on":
		return true
	case "0", "false", "no", "n", "off":
		return false
	}
	return defaultValue
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
