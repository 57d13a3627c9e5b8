package config

import (
	"os"
	"strconv"
)

// Config holds all runtime settings. Every value can be overridden via
// environment variables; a .env file is honoured by the entrypoint.
type Config struct {
	AppAddr        string
	SQLitePath     string
	BackendURL     string
	SessionSealKey string
	DefaultBatchID int64
	BillID         int64
}

func Load() Config {
	return Config{
		AppAddr:        getenv("APP_ADDR", ":8080"),
		SQLitePath:     getenv("SQLITE_PATH", "herbadmin.db"),
		BackendURL:     getenv("BACKEND_URL", "http://localhost:9000"),
		SessionSealKey: getenv("SESSION_SEAL_KEY", ""),
		DefaultBatchID: getenvInt64("DEFAULT_BATCH_ID", 42),
		BillID:         getenvInt64("BILL_ID", 42),
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getenvInt64(key string, fallback int64) int64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return fallback
	}
	return n
}
