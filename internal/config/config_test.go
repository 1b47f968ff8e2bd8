package config_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"

	"product-catalog/internal/config"
)

func TestLoadConfigDefaults(t *testing.T) {
	for _, key := range []string{"PORT", "CATALOG_FILE", "UPLOAD_DIR"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}

	cfg := config.LoadConfig()

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "data/catalog.json", cfg.CatalogFile)
	assert.Equal(t, "uploads", cfg.UploadDir)
}

func TestLoadConfigFromEnvironment(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("CATALOG_FILE", "/var/lib/catalog/products.json")
	t.Setenv("UPLOAD_DIR", "/var/lib/catalog/uploads")

	cfg := config.LoadConfig()

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "/var/lib/catalog/products.json", cfg.CatalogFile)
	assert.Equal(t, "/var/lib/catalog/uploads", cfg.UploadDir)
}
