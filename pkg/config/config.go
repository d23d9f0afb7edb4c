package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	TransportStdio = "stdio"
	TransportHTTP  = "http"
)

type Config struct {
	APIKey          string
	BaseURLOverride string
	Timeout         time.Duration
	MaxRetries      int
	RateLimit       float64
	RateBurst       int
	LogLevel        string
	Transport       string
	HTTPAddr        string
	AuditDSN        string
}

func Load() (*Config, error) {
	// Try to load .env file, but don't fail if it doesn't exist
	_ = godotenv.Load()

	cfg := &Config{
		APIKey:          strings.TrimSpace(os.Getenv("MAILCHIMP_API_KEY")),
		BaseURLOverride: strings.TrimRight(os.Getenv("MAILCHIMP_BASE_URL"), "/"),
		LogLevel:        getEnv("LOG_LEVEL", "info"),
		Transport:       getEnv("MCP_TRANSPORT", TransportStdio),
		HTTPAddr:        getEnv("MCP_HTTP_ADDR", ":8080"),
		AuditDSN:        os.Getenv("AUDIT_DATABASE_URL"),
	}

	var err error
	if cfg.Timeout, err = getDuration("MAILCHIMP_TIMEOUT", 30*time.Second); err != nil {
		return nil, err
	}
	if cfg.MaxRetries, err = getInt("MAILCHIMP_MAX_RETRIES", 3); err != nil {
		return nil, err
	}
	if cfg.RateBurst, err = getInt("MAILCHIMP_RATE_BURST", 10); err != nil {
		return nil, err
	}
	if cfg.RateLimit, err = getFloat("MAILCHIMP_RATE_LIMIT", 10); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.APIKey == "" {
		return fmt.Errorf("MAILCHIMP_API_KEY is required")
	}
	if c.BaseURLOverride == "" && c.DataCenter() == "" {
		return fmt.Errorf("MAILCHIMP_API_KEY must end with a data center suffix (e.g. -us1)")
	}
	if c.MaxRetries < 0 {
		return fmt.Errorf("MAILCHIMP_MAX_RETRIES must not be negative")
	}
	if c.RateLimit < 0 {
		return fmt.Errorf("MAILCHIMP_RATE_LIMIT must not be negative")
	}
	switch c.Transport {
	case TransportStdio, TransportHTTP:
	default:
		return fmt.Errorf("MCP_TRANSPORT must be %q or %q, got %q", TransportStdio, TransportHTTP, c.Transport)
	}
	// AUDIT_DATABASE_URL is optional, so we don't validate it
	return nil
}

// DataCenter returns the data center suffix of the API key (the text after
// the last dash), e.g. "us6" for "0123abcd-us6".
func (c *Config) DataCenter() string {
	i := strings.LastIndex(c.APIKey, "-")
	if i < 0 || i == len(c.APIKey)-1 {
		return ""
	}
	return c.APIKey[i+1:]
}

// BaseURL returns the Marketing API root for the configured key.
func (c *Config) BaseURL() string {
	if c.BaseURLOverride != "" {
		return c.BaseURLOverride
	}
	return fmt.Sprintf("https://%s.api.mailchimp.com/3.0", c.DataCenter())
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getInt(key string, defaultValue int) (int, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer: %w", key, err)
	}
	return v, nil
}

func getFloat(key string, defaultValue float64) (float64, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("%s must be a number: %w", key, err)
	}
	return v, nil
}

func getDuration(key string, defaultValue time.Duration) (time.Duration, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue, nil
	}
	v, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("%s must be a duration: %w", key, err)
	}
	return v, nil
}
