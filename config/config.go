// Package config loads server configuration from the environment, with an
// optional .env file for local development. Every setting has a default;
// nothing is required.
package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds the server settings.
type Config struct {
	Addr           string
	DBPath         string
	AllowedOrigins []string
}

// Load reads configuration from the environment. A .env file in the
// working directory is applied first when present.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		Addr:   getEnv("HR_ADDR", ":8080"),
		DBPath: getEnv("HR_DB", "hr.db"),
		AllowedOrigins: splitOrigins(getEnv("HR_ALLOWED_ORIGINS",
			"http://localhost:5173,http://localhost:8080")),
	}
}

func getEnv(key, fallback string) string {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	return value
}

func splitOrigins(raw string) []string {
	var origins []string
	for _, o := range strings.Split(raw, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	return origins
}
