package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	AppPort string

	DatabaseDSN  string
	DatabaseName string

	RedisAddr     string
	RedisPassword string

	// SessionStoreSecret seals session payloads at rest;
	// SessionSigningSecret signs the cookie value.
	SessionStoreSecret   string
	SessionSigningSecret string

	SessionTTL   time.Duration
	StoreTimeout time.Duration
}

// Load reads configuration from the environment. A .env file, when
// present, is loaded first; real environment variables win.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		AppPort: getEnv("APP_PORT", "8080"),

		DatabaseDSN:  os.Getenv("DATABASE_DSN"),
		DatabaseName: os.Getenv("DATABASE_NAME"),

		RedisAddr:     getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),

		SessionStoreSecret:   os.Getenv("SESSION_STORE_SECRET"),
		SessionSigningSecret: os.Getenv("SESSION_SIGNING_SECRET"),

		SessionTTL:   getEnvAsDuration("SESSION_TTL", time.Hour),
		StoreTimeout: getEnvAsDuration("STORE_TIMEOUT", 5*time.Second),
	}
}

func getEnv(key string, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := time.ParseDuration(valueStr)
	if err != nil || value <= 0 {
		return defaultValue
	}
	return value
}
