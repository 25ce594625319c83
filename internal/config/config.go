package config

import (
	"os" // For environment variables

	"github.com/joho/godotenv" // For loading .env files
)

// Config holds the application configuration
type Config struct {
	AppPort     string // Application port
	DatabaseURI string // Postgres connection string
	JWTSecret   string // JWT secret key
	IsProd      bool   // Is production environment
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	_ = godotenv.Load() // Load .env file if present
	port := os.Getenv("PORT")
	if port == "" {
		port = "3000" // Default port if unset
	}
	return &Config{
		AppPort:     port,                           // Application port
		DatabaseURI: os.Getenv("POSTGRES_URI"),      // Postgres connection string
		JWTSecret:   os.Getenv("JWT_SECRET"),        // JWT secret key
		IsProd:      os.Getenv("IS_PROD") == "true", // Is production environment
	}
}
