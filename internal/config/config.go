package config

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	DatabaseURL  string
	DatabaseName string
	CatalogPath  string
	Port         string
}

// Load reads configuration from the environment, pulling in a .env file
// first when one exists. A missing DATABASE_URL is a startup error.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is required")
	}

	return &Config{
		DatabaseURL:  dbURL,
		DatabaseName: getEnv("DB_NAME", "testiq_db"),
		CatalogPath:  getEnv("CATALOG_PATH", "data/questions.json"),
		Port:         getEnv("PORT", "8080"),
	}, nil
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}
