package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	DBDSN         string
	ServerPort    string
	SessionSecret string

	// Local directory for uploaded inspection reports, served under
	// /static/reports.
	UploadDir string

	TemplatesGlob string

	// S3-compatible mirror for attachments. Mirroring is enabled when
	// StorageEndpoint is set; otherwise report links point at the
	// local directory only.
	StorageEndpoint  string
	StorageAccessKey string
	StorageSecretKey string
	StorageBucket    string
	StorageBaseURL   string
	StorageUseSSL    bool

	AdminUsername string
	AdminPassword string
}

func Load() *Config {
	_ = godotenv.Load()

	cfg := &Config{
		DBDSN:            os.Getenv("DB_DSN"),
		ServerPort:       os.Getenv("SERVER_PORT"),
		SessionSecret:    os.Getenv("SESSION_SECRET"),
		UploadDir:        os.Getenv("UPLOAD_DIR"),
		StorageEndpoint:  os.Getenv("STORAGE_ENDPOINT"),
		StorageAccessKey: os.Getenv("STORAGE_ACCESS_KEY"),
		StorageSecretKey: os.Getenv("STORAGE_SECRET_KEY"),
		StorageBucket:    os.Getenv("STORAGE_BUCKET"),
		StorageBaseURL:   os.Getenv("STORAGE_BASE_URL"),
		StorageUseSSL:    os.Getenv("STORAGE_USE_SSL") == "true",
		AdminUsername:    os.Getenv("ADMIN_USERNAME"),
		AdminPassword:    os.Getenv("ADMIN_PASSWORD"),
	}

	if cfg.DBDSN == "" {
		log.Fatal("DB_DSN is not set")
	}
	if cfg.ServerPort == "" {
		cfg.ServerPort = "8080"
	}
	if cfg.SessionSecret == "" {
		log.Fatal("SESSION_SECRET is not set")
	}
	if cfg.UploadDir == "" {
		cfg.UploadDir = "static/reports"
	}
	if cfg.TemplatesGlob == "" {
		cfg.TemplatesGlob = "web/templates/*.html"
	}
	if cfg.StorageEndpoint != "" {
		if cfg.StorageBucket == "" {
			log.Fatal("STORAGE_BUCKET is not set")
		}
		if cfg.StorageBaseURL == "" {
			log.Fatal("STORAGE_BASE_URL is not set")
		}
	}

	return cfg
}

// MirrorEnabled reports whether attachments are re-uploaded to the
// remote object store.
func (c *Config) MirrorEnabled() bool {
	return c.StorageEndpoint != ""
}
