package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server     ServerConfig
	Database   DatabaseConfig
	Chaos      ChaosConfig
	Pagination PaginationConfig
}

type ServerConfig struct {
	Port string
	Env  string
}

type DatabaseConfig struct {
	Path string
}

// ChaosConfig tunes the fault/latency injector on mutating endpoints.
type ChaosConfig struct {
	Enabled     bool
	MinLatency  time.Duration
	MaxLatency  time.Duration
	FailureRate float64
}

type PaginationConfig struct {
	JobPageSize       int
	CandidatePageSize int
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found. Using default values.")
	}

	return &Config{
		Server: ServerConfig{
			Port: getEnv("PORT", "3000"),
			Env:  getEnv("ENV", "development"),
		},
		Database: DatabaseConfig{
			Path: getEnv("DB_PATH", "talentflow.db"),
		},
		Chaos: ChaosConfig{
			Enabled:     getEnvAsBool("CHAOS_ENABLED", true),
			MinLatency:  getEnvAsDuration("CHAOS_MIN_LATENCY", "200ms"),
			MaxLatency:  getEnvAsDuration("CHAOS_MAX_LATENCY", "1200ms"),
			FailureRate: getEnvAsFloat("CHAOS_FAILURE_RATE", 0.15),
		},
		Pagination: PaginationConfig{
			JobPageSize:       getEnvAsInt("JOB_PAGE_SIZE", 10),
			CandidatePageSize: getEnvAsInt("CANDIDATE_PAGE_SIZE", 50),
		},
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseFloat(valueStr, 64); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseBool(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue string) time.Duration {
	valueStr := getEnv(key, defaultValue)
	if duration, err := time.ParseDuration(valueStr); err == nil {
		return duration
	}
	duration, _ := time.ParseDuration(defaultValue)
	return duration
}
