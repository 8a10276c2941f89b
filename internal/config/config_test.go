package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromEnvDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("ALLOWED_ORIGINS", "")

	cfg := FromEnv()
	assert.Equal(t, "9100", cfg.Port)
	assert.Equal(t, []string{"*"}, cfg.AllowedOrigins)
	assert.Equal(t, int64(4096), cfg.DetectionCacheSize)
}

func TestFromEnvOverrides(t *testing.T) {
	t.Setenv("PORT", "8088")
	t.Setenv("ALLOWED_ORIGINS", "https://srijan.example, https://app.example ,")
	t.Setenv("CATALOG_PATH", "/etc/citro/catalog.yaml")

	cfg := FromEnv()
	assert.Equal(t, "8088", cfg.Port)
	assert.Equal(t, []string{"https://srijan.example", "https://app.example"}, cfg.AllowedOrigins)
	assert.Equal(t, "/etc/citro/catalog.yaml", cfg.CatalogPath)
}
