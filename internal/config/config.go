package config

import (
	"os"
	"strconv"
)

// StorageConfig holds settings for the local file storage directory.
type StorageConfig struct {
	Dir            string
	MaxUploadBytes int
}

// AppConfig is the centralized configuration struct for the application.
// It is built once at startup and passed by reference into middleware and
// handlers; request logic never reads environment variables directly.
type AppConfig struct {
	Port    string
	APIKey  string
	Storage StorageConfig
}

// Load reads configuration from environment variables.
// A .env file can be auto-loaded by importing: _ "github.com/joho/godotenv/autoload"
// This function does not require a .env file; real environment variables take precedence.
func Load() *AppConfig {
	return &AppConfig{
		Port:   getEnv("PORT", "8080"), // default only for non-sensitive value
		APIKey: getEnv("API_KEY", ""),
		Storage: StorageConfig{
			Dir:            getEnv("STORAGE_DIR", "files"),
			MaxUploadBytes: getEnvInt("MAX_UPLOAD_BYTES", 32<<20),
		},
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		i, err := strconv.Atoi(v)
		if err == nil {
			return i
		}
	}
	return def
}
