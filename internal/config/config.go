package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	CatalogFile string
	UploadDir   string
	GinMode     string
}

func LoadConfig() *Config {
	// .env is only present in local development; deployed environments
	// provide real environment variables.
	if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(); err != nil {
			log.Println("error loading .env file:", err)
		}
	}

	return &Config{
		Port:        getEnv("PORT", "8080"),
		CatalogFile: getEnv("CATALOG_FILE", "data/catalog.json"),
		UploadDir:   getEnv("UPLOAD_DIR", "uploads"),
		GinMode:     getEnv("GIN_MODE", ""),
	}
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}
