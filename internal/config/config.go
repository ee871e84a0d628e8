package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	DBHost     string
	DBUser     string
	DBPassword string
	DBName     string
	DBPort     string
	AppPort    string
	AppEnv     string
	JWTSecret  string

	// StrictTransitions makes the lifecycle engine reject out-of-sequence
	// status jumps instead of accepting any canonical status.
	StrictTransitions bool

	// Poll periods for the customer board and the staff queue.
	BoardPollInterval time.Duration
	QueuePollInterval time.Duration
}

func LoadConfig() *Config {
	_ = godotenv.Load()

	cfg := &Config{
		DBHost:            os.Getenv("DB_HOST"),
		DBUser:            os.Getenv("DB_USER"),
		DBPassword:        os.Getenv("DB_PASSWORD"),
		DBName:            os.Getenv("DB_NAME"),
		DBPort:            os.Getenv("DB_PORT"),
		AppPort:           os.Getenv("APP_PORT"),
		AppEnv:            os.Getenv("APP_ENV"),
		JWTSecret:         os.Getenv("JWT_SECRET"),
		StrictTransitions: envBool("ORDER_STRICT_TRANSITIONS", false),
		BoardPollInterval: envDuration("BOARD_POLL_INTERVAL", 2*time.Second),
		QueuePollInterval: envDuration("QUEUE_POLL_INTERVAL", 3*time.Second),
	}

	if cfg.DBHost == "" {
		log.Fatal("Environment variables not loaded properly")
	}

	return cfg
}

// LoadClientConfig reads the subset of settings the client-side tools
// need. Unlike LoadConfig it does not require any database variables.
func LoadClientConfig() *Config {
	_ = godotenv.Load()

	return &Config{
		AppEnv:            os.Getenv("APP_ENV"),
		StrictTransitions: envBool("ORDER_STRICT_TRANSITIONS", false),
		BoardPollInterval: envDuration("BOARD_POLL_INTERVAL", 2*time.Second),
		QueuePollInterval: envDuration("QUEUE_POLL_INTERVAL", 3*time.Second),
	}
}

func envBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return b
}

func envDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return d
}
