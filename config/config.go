package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerPort    string
	TemplateDir   string
	MaxUploadSize int64
}

func LoadConfig() *Config {
	// Best effort: a missing .env is fine, plain env vars still apply.
	_ = godotenv.Load()

	serverPort := os.Getenv("SERVER_PORT")
	if serverPort == "" {
		serverPort = "8080"
	}

	templateDir := os.Getenv("TEMPLATE_DIR")
	if templateDir == "" {
		templateDir = "."
	}

	maxUploadSize := int64(10 * 1024 * 1024) // 10 MB
	if v := os.Getenv("MAX_UPLOAD_SIZE"); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil && n > 0 {
			maxUploadSize = n
		}
	}

	return &Config{
		ServerPort:    serverPort,
		TemplateDir:   templateDir,
		MaxUploadSize: maxUploadSize,
	}
}
