package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("MAILCHIMP_API_KEY", "0123456789abcdef-us6")
	t.Setenv("MAILCHIMP_BASE_URL", "")
	t.Setenv("MAILCHIMP_TIMEOUT", "")
	t.Setenv("MAILCHIMP_MAX_RETRIES", "")
	t.Setenv("MAILCHIMP_RATE_LIMIT", "")
	t.Setenv("MAILCHIMP_RATE_BURST", "")
	t.Setenv("MCP_TRANSPORT", "")
	t.Setenv("LOG_LEVEL", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.DataCenter() != "us6" {
		t.Errorf("expected data center us6, got %q", cfg.DataCenter())
	}
	if got := cfg.BaseURL(); got != "https://us6.api.mailchimp.com/3.0" {
		t.Errorf("unexpected base URL %q", got)
	}
	if cfg.Timeout != 30*time.Second {
		t.Errorf("expected 30s timeout, got %v", cfg.Timeout)
	}
	if cfg.MaxRetries != 3 {
		t.Errorf("expected 3 retries, got %d", cfg.MaxRetries)
	}
	if cfg.Transport != TransportStdio {
		t.Errorf("expected stdio transport, got %q", cfg.Transport)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("expected info log level, got %q", cfg.LogLevel)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("MAILCHIMP_API_KEY", "key-us1")
	t.Setenv("MAILCHIMP_BASE_URL", "http://127.0.0.1:9999/3.0/")
	t.Setenv("MAILCHIMP_TIMEOUT", "5s")
	t.Setenv("MAILCHIMP_MAX_RETRIES", "0")
	t.Setenv("MAILCHIMP_RATE_LIMIT", "2.5")
	t.Setenv("MCP_TRANSPORT", "http")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if got := cfg.BaseURL(); got != "http://127.0.0.1:9999/3.0" {
		t.Errorf("override should win and drop trailing slash, got %q", got)
	}
	if cfg.Timeout != 5*time.Second || cfg.MaxRetries != 0 || cfg.RateLimit != 2.5 {
		t.Errorf("unexpected overrides: %+v", cfg)
	}
	if cfg.Transport != TransportHTTP {
		t.Errorf("expected http transport, got %q", cfg.Transport)
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{"missing key", map[string]string{"MAILCHIMP_API_KEY": ""}},
		{"no data center", map[string]string{"MAILCHIMP_API_KEY": "abcdef"}},
		{"trailing dash", map[string]string{"MAILCHIMP_API_KEY": "abcdef-"}},
		{"bad retries", map[string]string{"MAILCHIMP_API_KEY": "k-us1", "MAILCHIMP_MAX_RETRIES": "many"}},
		{"negative retries", map[string]string{"MAILCHIMP_API_KEY": "k-us1", "MAILCHIMP_MAX_RETRIES": "-1"}},
		{"bad timeout", map[string]string{"MAILCHIMP_API_KEY": "k-us1", "MAILCHIMP_TIMEOUT": "soon"}},
		{"bad transport", map[string]string{"MAILCHIMP_API_KEY": "k-us1", "MCP_TRANSPORT": "sse"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, k := range []string{"MAILCHIMP_BASE_URL", "MAILCHIMP_MAX_RETRIES", "MAILCHIMP_TIMEOUT", "MCP_TRANSPORT", "MAILCHIMP_RATE_LIMIT", "MAILCHIMP_RATE_BURST"} {
				t.Setenv(k, "")
			}
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			if _, err := Load(); err == nil {
				t.Fatal("expected error")
			}
		})
	}
}
