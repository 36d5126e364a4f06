package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds everything the CLI surfaces need. The analysis core takes
// no configuration; these settings belong to the recorder and logging.
type Config struct {
	// APIBaseURL is the transactions backend, e.g. "http://localhost:5000/api".
	APIBaseURL string
	// APIToken is the bearer token for the backend; empty means
	// unauthenticated (the backend will reject writes).
	APIToken string
	// LogLevel is the minimum zerolog level for CLI output.
	LogLevel string
	// HTTPTimeout bounds each transaction submission.
	HTTPTimeout time.Duration
	// RulesPath optionally points at a YAML category rules file.
	RulesPath string
}

// Load reads configuration from the environment, after loading a .env
// file when one is present. A missing .env is not an error; plain env
// vars work on their own, which keeps container deployments simple.
func Load() *Config {
	for _, envFile := range []string{".env", "../.env"} {
		if err := godotenv.Load(envFile); err == nil {
			break
		}
	}

	timeoutSec, err := strconv.Atoi(getEnv("TAXWISE_HTTP_TIMEOUT", "15"))
	if err != nil || timeoutSec <= 0 {
		timeoutSec = 15
	}

	return &Config{
		APIBaseURL:  getEnv("TAXWISE_API_URL", "http://localhost:5000/api"),
		APIToken:    os.Getenv("TAXWISE_API_TOKEN"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		HTTPTimeout: time.Duration(timeoutSec) * time.Second,
		RulesPath:   os.Getenv("TAXWISE_CATEGORY_RULES"),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
