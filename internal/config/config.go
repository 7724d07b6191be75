package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Config holds application level configuration loaded from environment variables.
type Config struct {
	ServerPort    string
	UserDBPath    string
	TrainDBPath   string
	ReserveDBPath string
	SessionSecret string
}

// Load builds Config from environment with sensible defaults.
// A local .env file is applied first when present.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		ServerPort:    getEnv("SERVER_PORT", "8080"),
		UserDBPath:    getEnv("USER_DB_PATH", "member.db"),
		TrainDBPath:   getEnv("TRAIN_DB_PATH", "new_train_data.db"),
		ReserveDBPath: getEnv("RESERVE_DB_PATH", "reserve.db"),
		SessionSecret: getEnv("SESSION_SECRET", "change-me"),
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
