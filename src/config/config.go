// Package config loads application configuration from the environment.
package config

import (
	"os"
	"strings"
)

// Config holds all application configuration.
type Config struct {
	Environment  string
	Addr         string
	DataSource   string
	TemplatePath string
	CorsOrigins  []string
}

// Load reads configuration from environment variables with defaults suitable
// for local development. DataSource may be a file path or an http(s) URL.
func Load() Config {
	return Config{
		Environment:  getEnv("SIGNMAP_ENV", "development"),
		Addr:         getEnv("SIGNMAP_ADDR", ":8888"),
		DataSource:   getEnv("SIGNMAP_DATA", "./materials/venues.tsv"),
		TemplatePath: getEnv("SIGNMAP_TEMPLATE", "./src/templates/template.html"),
		CorsOrigins:  getEnvSlice("SIGNMAP_CORS_ORIGINS", []string{"*"}),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvSlice(key string, fallback []string) []string {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	parts := strings.Split(v, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}
