// Package config loads service configuration from environment variables and the mounted password secret.
package config

import (
	"fmt"
	"os"
	"strings"
)

// Config holds application configuration. It is built once by Load and not mutated afterwards.
type Config struct {
	ContainerName string
	DBHost        string
	DBPort        string
	DBUser        string
	DBName        string
	DBPassword    string

	APIHost  string
	APIPort  string
	LogLevel string
	DBPool   bool
}

// Load reads configuration from environment variables and reads the
// database password from the file named by DB_PASSWORD_FILE.
func Load() (*Config, error) {
	password, err := ReadPassword(os.Getenv("DB_PASSWORD_FILE"))
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		ContainerName: os.Getenv("CONTAINER_NAME"),
		DBHost:        os.Getenv("DB_HOST"),
		DBPort:        os.Getenv("DB_PORT"),
		DBUser:        os.Getenv("DB_USER"),
		DBName:        os.Getenv("DB_NAME"),
		DBPassword:    password,
		APIHost:       getEnv("API_HOST", "0.0.0.0"),
		APIPort:       getEnv("API_PORT", "5001"),
		LogLevel:      getEnv("LOG_LEVEL", "info"),
		DBPool:        strings.ToLower(os.Getenv("DB_POOL")) == "true",
	}

	return cfg, nil
}

// ReadPassword returns the trimmed contents of the secret file at path.
func ReadPassword(path string) (string, error) {
	if path == "" {
		return "", fmt.Errorf("DB_PASSWORD_FILE is required")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read password file: %w", err)
	}

	return strings.TrimSpace(string(data)), nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
