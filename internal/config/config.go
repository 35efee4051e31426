package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// DefaultFeedURL is the static feed the reader loads when FEED_URL is unset
const DefaultFeedURL = "https://candidate-test-data-moengage.s3.amazonaws.com/Android/news-api-feed/staticResponse.json"

// Config holds all configuration for the application
type Config struct {
	Env string `json:"env"`

	// Feed configuration
	FeedURL      string        `json:"feed_url" validate:"required"`
	FetchTimeout time.Duration `json:"fetch_timeout" validate:"gte=0"`

	// Preference storage
	PrefsBackend string `json:"prefs_backend" validate:"oneof=file redis memory"`
	PrefsPath    string `json:"prefs_path" validate:"required_if=PrefsBackend file"`

	// Redis configuration
	RedisURL    string `json:"redis_url" validate:"required_if=PrefsBackend redis"`
	RedisPrefix string `json:"redis_prefix"`

	// S3 configuration, used for s3:// feed URLs
	AWSRegion   string `json:"aws_region"`
	S3Endpoint  string `json:"s3_endpoint" validate:"omitempty,url"`
	S3AccessKey string `json:"s3_access_key"`
	S3SecretKey string `json:"s3_secret_key" validate:"required_with=S3AccessKey"`

	// Push webhook
	PushEnabled     bool          `json:"push_enabled"`
	PushAddr        string        `json:"push_addr" validate:"required_if=PushEnabled true"`
	PushAPIKey      string        `json:"push_api_key"`
	DesktopNotify   bool          `json:"desktop_notify"`
	ShutdownTimeout time.Duration `json:"shutdown_timeout"`

	// Logging
	LogLevel string `json:"log_level"`
	LogFile  string `json:"log_file"`
}

// Load loads configuration from the environment (and .env if present) and validates it
func Load() (*Config, error) {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("Warning: Error loading .env file: %v", err)
	}

	cfg := &Config{
		Env: getEnv("APP_ENV", "development"),

		FeedURL:      getEnv("FEED_URL", DefaultFeedURL),
		FetchTimeout: getEnvAsDuration("FETCH_TIMEOUT", 0),

		PrefsBackend: getEnv("PREFS_BACKEND", "file"),
		PrefsPath:    getEnv("PREFS_PATH", "./data/preferences.json"),

		RedisURL:    getEnv("REDIS_URL", "redis://localhost:6379/0"),
		RedisPrefix: getEnv("REDIS_PREFIX", "headlines:"),

		AWSRegion:   getEnv("AWS_REGION", "us-east-1"),
		S3Endpoint:  getEnv("S3_ENDPOINT", ""),
		S3AccessKey: getEnv("S3_ACCESS_KEY", ""),
		S3SecretKey: getEnv("S3_SECRET_ACCESS_KEY", ""),

		PushEnabled:     getEnvAsBool("PUSH_ENABLED", false),
		PushAddr:        getEnv("PUSH_ADDR", ":8080"),
		PushAPIKey:      getEnv("PUSH_API_KEY", ""),
		DesktopNotify:   getEnvAsBool("DESKTOP_NOTIFY", true),
		ShutdownTimeout: getEnvAsDuration("SHUTDOWN_TIMEOUT", 10*time.Second),

		LogLevel: getEnv("LOG_LEVEL", "info"),
		LogFile:  getEnv("LOG_FILE", "./data/headlines.log"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

// Helper functions for environment variable handling
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsBool(name string, defaultVal bool) bool {
	valueStr := getEnv(name, "")
	if valueStr == "" {
		return defaultVal
	}
	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		log.Printf("Invalid %s value: %v, using default: %t", name, err, defaultVal)
		return defaultVal
	}
	return value
}

func getEnvAsDuration(name string, defaultVal time.Duration) time.Duration {
	valueStr := getEnv(name, "")
	if valueStr == "" {
		return defaultVal
	}
	value, err := time.ParseDuration(valueStr)
	if err != nil {
		log.Printf("Invalid %s value: %v, using default: %v", name, err, defaultVal)
		return defaultVal
	}
	return value
}
