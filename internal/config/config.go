// Package config loads service configuration from the environment, with an
// optional YAML catalog override for the event knowledge base.
package config

import (
	"os"
	"strings"
)

// Config is the service configuration.
type Config struct {
	// Port the HTTP server listens on.
	Port string
	// DashboardURL is the base URL of the dashboard service collaborator.
	DashboardURL string
	// EventServiceURL is the base URL of the bookable-events collaborator.
	EventServiceURL string
	// CatalogPath optionally points to a YAML file replacing the built-in
	// event catalog.
	CatalogPath string
	// AllowedOrigins for CORS, comma separated in the environment.
	AllowedOrigins []string
	// DetectionCacheSize caps the intent detection cache.
	DetectionCacheSize int64
}

// FromEnv reads configuration from the environment with defaults.
func FromEnv() Config {
	origins := []string{"*"}
	if raw := os.Getenv("ALLOWED_ORIGINS"); raw != "" {
		origins = origins[:0]
		for _, o := range strings.Split(raw, ",") {
			if o = strings.TrimSpace(o); o != "" {
				origins = append(origins, o)
			}
		}
	}
	return Config{
		Port:               getEnv("PORT", "9100"),
		DashboardURL:       getEnv("DASHBOARD_URL", "http://localhost:5000"),
		EventServiceURL:    getEnv("EVENT_SERVICE_URL", "http://localhost:5000"),
		CatalogPath:        os.Getenv("CATALOG_PATH"),
		AllowedOrigins:     origins,
		DetectionCacheSize: 4096,
	}
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
