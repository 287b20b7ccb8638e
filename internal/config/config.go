package config

import (
	"os"
	"strings"
)

// Config holds the configuration for the service.
type Config struct {
	Addr           string
	DataDir        string
	AllowedOrigins []string
	// CrawlerCmd is the external crawler command line, empty when no
	// crawler is wired up.
	CrawlerCmd []string
}

// NewFromEnv creates a Config from environment variables, with defaults
// suitable for local development.
func NewFromEnv() *Config {
	addr := os.Getenv("SCHEDULER_ADDR")
	if addr == "" {
		addr = ":5000"
	}

	dataDir := os.Getenv("SCHEDULER_DATA_DIR")
	if dataDir == "" {
		dataDir = "generated/json"
	}

	origins := os.Getenv("ALLOWED_ORIGINS")
	if origins == "" {
		origins = "http://localhost:5173,http://localhost:5174"
	}

	return &Config{
		Addr:           addr,
		DataDir:        dataDir,
		AllowedOrigins: strings.Split(origins, ","),
		CrawlerCmd:     strings.Fields(os.Getenv("SCHEDULER_CRAWLER_CMD")),
	}
}
