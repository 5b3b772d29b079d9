package client

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config is the environment-derived client configuration. The base URL is
// owned by deployment configuration, not code; everything else has a default
// matching New.
type Config struct {
	BaseURL     string        `envconfig:"PRAXIS_BASE_URL" required:"true"`
	HTTPTimeout time.Duration `envconfig:"PRAXIS_HTTP_TIMEOUT" default:"30s"`
	MaxRetries  int           `envconfig:"PRAXIS_MAX_RETRIES" default:"2"`
	RetryDelay  time.Duration `envconfig:"PRAXIS_RETRY_DELAY" default:"500ms"`
	CacheTTL    time.Duration `envconfig:"PRAXIS_CACHE_TTL" default:"5m"`
}

// LoadConfig reads Config from the environment.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// NewFromEnv constructs a Client from environment configuration. Options
// passed here are applied after the environment-derived ones, so explicit
// code wins over deployment defaults.
func NewFromEnv(opts ...Option) (*Client, error) {
	cfg, err := LoadConfig()
	if err != nil {
		return nil, err
	}
	base := []Option{
		WithHTTPTimeout(cfg.HTTPTimeout),
		WithRetry(cfg.MaxRetries, cfg.RetryDelay),
		WithCacheTTL(cfg.CacheTTL),
	}
	return New(cfg.BaseURL, append(base, opts...)...), nil
}
