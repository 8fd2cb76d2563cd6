// Package config resolves runtime settings from the environment and an
// optional .env file, plus the startup seed catalog.
package config

import (
	"log/slog"
	"os"
	"strings"
)

const (
	defaultPort        = "8080"
	defaultCORSOrigins = "http://localhost:5173,http://127.0.0.1:5173"
)

type Config struct {
	Port        string
	CORSOrigins []string
}

// Load reads settings from the environment, falling back to local-dev
// defaults with a warning.
func Load(logger *slog.Logger) Config {
	LoadEnvFile(logger)

	port := os.Getenv("PORT")
	if port == "" {
		logger.Warn("PORT not set, using default", "port", defaultPort)
		port = defaultPort
	}

	corsEnv := os.Getenv("CORS_ORIGINS")
	if corsEnv == "" {
		logger.Warn("CORS_ORIGINS not set, using default local origins")
		corsEnv = defaultCORSOrigins
	}

	return Config{
		Port:        port,
		CORSOrigins: parseCSV(corsEnv),
	}
}

func parseCSV(input string) []string {
	if input == "" {
		return nil
	}
	parts := strings.Split(input, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		out = append(out, part)
	}
	return out
}
