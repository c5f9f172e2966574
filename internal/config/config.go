package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Environment   string
	HTTPAddr      string
	JWTSecret     string
	ReceiptsDir   string
	MigrationsDir string

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	RedisAddr string
}

// Load reads configuration from the environment, after loading .env if one
// exists next to the binary.
func Load() (*Config, error) {
	_ = godotenv.Load(".env")

	cfg := &Config{
		Environment:   getenv("ENV", "development"),
		HTTPAddr:      getenv("HTTP_ADDR", ":8080"),
		JWTSecret:     os.Getenv("JWT_SECRET"),
		ReceiptsDir:   getenv("RECEIPTS_DIR", "public/receipts"),
		MigrationsDir: getenv("MIGRATIONS_DIR", "migrations"),

		DBHost:     getenv("DB_HOST", "localhost"),
		DBPort:     getenv("DB_PORT", "5432"),
		DBUser:     getenv("DB_USER", "postgres"),
		DBPassword: os.Getenv("DB_PASSWORD"),
		DBName:     getenv("DB_NAME", "koshunter"),
		DBSSLMode:  getenv("DB_SSLMODE", "disable"),

		RedisAddr: getenv("REDIS_ADDR", "localhost:6379"),
	}

	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required but not set")
	}

	return cfg, nil
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
