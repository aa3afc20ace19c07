// Package config centralizes environment-driven settings for the service.
package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the runtime settings for the face authentication service.
type Config struct {
	Port         string
	DatabaseDSN  string
	RedisAddr    string
	EmbedderAddr string

	JWTSecret   string
	JWTAudience string
	JWTTTL      time.Duration

	MatchThreshold   float64
	WarmupAttempts   int
	ModelWaitTimeout time.Duration
	MaxImageBytes    int

	Debug bool
}

// Load reads environment variables, optionally from a .env file if present.
func Load() Config {
	// Try to load .env if it exists; ignore error if file not found
	_ = godotenv.Load()

	return Config{
		Port:         getEnv("PORT", "8080"),
		DatabaseDSN:  getEnv("DATABASE_DSN", "host=postgres user=postgres password=postgres dbname=faceauth port=5432 sslmode=disable"),
		RedisAddr:    getEnv("REDIS_ADDR", "redis:6379"),
		EmbedderAddr: getEnv("EMBEDDER_ADDR", "face-embedder:50051"),

		JWTSecret:   getEnv("JWT_SECRET", "dev-secret"),
		JWTAudience: getEnv("JWT_AUDIENCE", ""),
		JWTTTL:      time.Duration(getEnvInt("JWT_TTL_MINUTES", 60)) * time.Minute,

		MatchThreshold:   getEnvFloat("MATCH_THRESHOLD", 0.4),
		WarmupAttempts:   getEnvInt("MODEL_WARMUP_ATTEMPTS", 5),
		ModelWaitTimeout: time.Duration(getEnvInt("MODEL_WAIT_TIMEOUT_MS", 5000)) * time.Millisecond,
		MaxImageBytes:    getEnvInt("MAX_IMAGE_BYTES", 6<<20),

		Debug: getEnvBool("DEBUG", false),
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func getEnvFloat(key string, def float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return def
}
