package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Port          string
	DBDSN         string
	UploadDir     string
	PublicBaseURL string
	LogFile       string
}

func Load() Config {
	// A .env in the working directory overrides nothing already exported.
	_ = godotenv.Load()

	cfg := Config{
		Port:          getenv("PORT", "3000"),
		DBDSN:         getenv("DB_DSN", "lookdehoje.db"), // sqlite file in project root
		UploadDir:     getenv("UPLOAD_DIR", "./uploads"),
		PublicBaseURL: getenv("PUBLIC_BASE_URL", "http://localhost:3000"),
		LogFile:       getenv("LOG_FILE", ""),
	}
	log.Printf("[config] PORT=%s DB_DSN=%s UPLOAD_DIR=%s PUBLIC_BASE_URL=%s",
		cfg.Port, cfg.DBDSN, cfg.UploadDir, cfg.PublicBaseURL)
	return cfg
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
