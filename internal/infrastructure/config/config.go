package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// ProgressBackend selects the durable store for attempt history.
const (
	ProgressBackendSQLite   = "sqlite"
	ProgressBackendJSONFile = "jsonfile"
)

type Config struct {
	ServerAddress   string
	ShutdownTimeout time.Duration

	// Question bank
	QuestionBankPath string

	// Progress history
	ProgressBackend string // "sqlite" or "jsonfile"
	ProgressPath    string // db file or json file, per backend

	// Selection policy
	ShuffleCategoryPractice bool
}

func Load() *Config {
	// Load .env file if it exists
	_ = godotenv.Load()
	return &Config{
		ServerAddress:           mustGetenv("SERVER_ADDRESS"),
		ShutdownTimeout:         mustGetDuration("SHUTDOWN_TIMEOUT"),
		QuestionBankPath:        getenvDefault("QUESTION_BANK_PATH", "questions.json"),
		ProgressBackend:         getenvDefault("PROGRESS_BACKEND", ProgressBackendSQLite),
		ProgressPath:            getenvDefault("PROGRESS_PATH", "progress.db"),
		ShuffleCategoryPractice: getenvBool("SHUFFLE_CATEGORY_PRACTICE", true),
	}
}

func mustGetenv(k string) string {
	v := os.Getenv(k)
	if v == "" {
		log.Fatalf("config: required environment variable %s is not set", k)
	}
	return v
}

func mustGetDuration(k string) time.Duration {
	v := os.Getenv(k)
	if v == "" {
		log.Fatalf("config: required environment variable %s is not set", k)
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		log.Fatalf("config: %s=%q is not a valid duration: %v", k, v, err)
	}
	return d
}

func getenvDefault(k, fallback string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return fallback
}

func getenvBool(k string, fallback bool) bool {
	v := os.Getenv(k)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		log.Fatalf("config: %s=%q is not a valid boolean: %v", k, v, err)
	}
	return b
}
