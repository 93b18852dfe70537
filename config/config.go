package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type AppConfig struct {
	Port        string
	DBPath      string
	DataDir     string // extracted bundles and export scratch space
	MaxUploadMB int64
	StaticDir   string
}

func Load() AppConfig {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Printf("[cfg] No .env file found or error loading: %v", err)
	}

	get := func(k, def string) string {
		if v := os.Getenv(k); v != "" {
			return v
		}
		return def
	}
	maxUpload, err := strconv.ParseInt(get("MAX_UPLOAD_MB", "64"), 10, 64)
	if err != nil || maxUpload <= 0 {
		maxUpload = 64
	}
	cfg := AppConfig{
		Port:        get("PORT", "8080"),
		DBPath:      get("DB_PATH", "cereagis.db"),
		DataDir:     get("DATA_DIR", "data"),
		MaxUploadMB: maxUpload,
		StaticDir:   get("STATIC_DIR", "static"),
	}
	log.Printf("[cfg] %+v", cfg)
	return cfg
}
