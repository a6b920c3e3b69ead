package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds application level configuration loaded from the environment
// and an optional .env file.
type Config struct {
	BaseURL            string
	APIKey             string
	HTTPTimeout        time.Duration
	PageSize           int
	OrdersPollInterval time.Duration
	SearchDebounce     time.Duration
	LogLevel           string
}

const (
	defaultBaseURL            = "http://exam-api-courses.std-900.ist.mospolytech.ru/api"
	defaultHTTPTimeout        = 10 * time.Second
	defaultPageSize           = 5
	defaultOrdersPollInterval = 30 * time.Second
	defaultSearchDebounce     = 300 * time.Millisecond
	defaultLogLevel           = "info"
)

// Load reads configuration from a .env file (when present) and environment
// variables.
func Load() (*Config, error) {
	_ = godotenv.Load()
	return load(os.LookupEnv)
}

type envLookup func(string) (string, bool)

func load(lookup envLookup) (*Config, error) {
	cfg := &Config{
		BaseURL:            getString(lookup, "COURSEDESK_BASE_URL", defaultBaseURL),
		APIKey:             getString(lookup, "COURSEDESK_API_KEY", ""),
		HTTPTimeout:        getDuration(lookup, "COURSEDESK_HTTP_TIMEOUT", defaultHTTPTimeout),
		PageSize:           getInt(lookup, "COURSEDESK_PAGE_SIZE", defaultPageSize),
		OrdersPollInterval: getDuration(lookup, "COURSEDESK_POLL_INTERVAL", defaultOrdersPollInterval),
		SearchDebounce:     getDuration(lookup, "COURSEDESK_SEARCH_DEBOUNCE", defaultSearchDebounce),
		LogLevel:           getString(lookup, "COURSEDESK_LOG_LEVEL", defaultLogLevel),
	}

	if keyFile, ok := lookup("COURSEDESK_API_KEY_FILE"); ok && keyFile != "" {
		content, err := os.ReadFile(keyFile)
		if err != nil {
			return nil, fmt.Errorf("read api key file: %w", err)
		}
		cfg.APIKey = strings.TrimSpace(string(content))
	}

	if cfg.PageSize <= 0 {
		cfg.PageSize = defaultPageSize
	}

	if cfg.HTTPTimeout <= 0 {
		cfg.HTTPTimeout = defaultHTTPTimeout
	}

	if cfg.OrdersPollInterval <= 0 {
		cfg.OrdersPollInterval = defaultOrdersPollInterval
	}

	if cfg.SearchDebounce <= 0 {
		cfg.SearchDebounce = defaultSearchDebounce
	}

	parsed, err := url.Parse(cfg.BaseURL)
	if err != nil || !parsed.IsAbs() {
		return nil, fmt.Errorf("base URL must be absolute: %q", cfg.BaseURL)
	}

	if cfg.APIKey == "" {
		return nil, fmt.Errorf("API key must be provided")
	}

	return cfg, nil
}

func getString(lookup envLookup, key, def string) string {
	if v, ok := lookup(key); ok && v != "" {
		return v
	}
	return def
}

func getInt(lookup envLookup, key string, def int) int {
	if v, ok := lookup(key); ok && v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func getDuration(lookup envLookup, key string, def time.Duration) time.Duration {
	if v, ok := lookup(key); ok && v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}
