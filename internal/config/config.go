package config

import (
	"log"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	APIBaseURL  string
	SessionFile string
	DatabaseURL string // optional; switches the session store to Postgres
	PageSize    int
	HTTPTimeout time.Duration
}

func LoadConfig() (*Config, error) {
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found or error loading it, relying on environment variables")
	}

	baseURL := os.Getenv("PORTAL_API_URL")
	if baseURL == "" {
		baseURL = "http://localhost:5000/api"
	}

	sessionFile := os.Getenv("SESSION_FILE")
	if sessionFile == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			home = "."
		}
		sessionFile = filepath.Join(home, ".portalctl", "session.json")
	}

	pageSize, err := strconv.Atoi(os.Getenv("PAGE_SIZE"))
	if err != nil || pageSize <= 0 {
		pageSize = 3
	}

	timeoutSeconds, err := strconv.Atoi(os.Getenv("HTTP_TIMEOUT_SECONDS"))
	if err != nil || timeoutSeconds <= 0 {
		timeoutSeconds = 15
	}

	return &Config{
		APIBaseURL:  baseURL,
		SessionFile: sessionFile,
		DatabaseURL: os.Getenv("DATABASE_URL"),
		PageSize:    pageSize,
		HTTPTimeout: time.Duration(timeoutSeconds) * time.Second,
	}, nil
}
