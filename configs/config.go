package configs

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server  ServerConfig
	Backend BackendConfig
	Query   QueryConfig
	Log     LogConfig
}

type ServerConfig struct {
	Host         string
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

// BackendConfig points at the consumed REST backend. MockListenAddr is only
// read by the fixture backend binary.
type BackendConfig struct {
	BaseURL        string
	RequestTimeout time.Duration
	MockListenAddr string
}

// QueryConfig carries the stale-while-revalidate policy knobs.
type QueryConfig struct {
	FreshFor     time.Duration
	RetainFor    time.Duration
	RetryCount   int
	ReapInterval time.Duration
}

type LogConfig struct {
	Level  string
	Format string // json or text
}

func Load() (*Config, error) {
	// Load .env file if it exists
	_ = godotenv.Load()

	cfg := &Config{
		Server: ServerConfig{
			Host:         getEnv("SERVER_HOST", "0.0.0.0"),
			Port:         getEnv("SERVER_PORT", "8080"),
			ReadTimeout:  getDurationEnv("SERVER_READ_TIMEOUT", 30*time.Second),
			WriteTimeout: getDurationEnv("SERVER_WRITE_TIMEOUT", 30*time.Second),
			IdleTimeout:  getDurationEnv("SERVER_IDLE_TIMEOUT", 120*time.Second),
		},
		Backend: BackendConfig{
			BaseURL:        getEnv("API_BASE_URL", "http://localhost:3001"),
			RequestTimeout: getDurationEnv("API_REQUEST_TIMEOUT", 10*time.Second),
			MockListenAddr: getEnv("MOCK_LISTEN_ADDR", ":3001"),
		},
		Query: QueryConfig{
			FreshFor:     getDurationEnv("QUERY_FRESH_FOR", time.Minute),
			RetainFor:    getDurationEnv("QUERY_RETAIN_FOR", 5*time.Minute),
			RetryCount:   getIntEnv("QUERY_RETRY_COUNT", 1),
			ReapInterval: getDurationEnv("QUERY_REAP_INTERVAL", 30*time.Second),
		},
		Log: LogConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "json"),
		},
	}

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
