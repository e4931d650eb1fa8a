package whoisapi

import (
	"os"
	"time"

	"github.com/effective-security/x/configloader"
)

const (
	// EnvBaseURL overrides the default WHOIS API base URL.
	EnvBaseURL = "WHOIS_API_BASE"

	// DefaultBaseURL is used when WHOIS_API_BASE is not set.
	DefaultBaseURL = "http://localhost:3001"

	// DefaultTimeout bounds a single lookup, including connect time.
	DefaultTimeout = 30 * time.Second
)

// Config specifies the WHOIS API client options.
type Config struct {
	// BaseURL of the WHOIS API service, without a trailing slash.
	BaseURL string `json:"base_url,omitempty" yaml:"base_url,omitempty"`
	// Timeout for a single lookup request.
	Timeout time.Duration `json:"timeout,omitempty" yaml:"timeout,omitempty"`
}

// NewConfig returns the config from the process environment,
// falling back to defaults.
func NewConfig() *Config {
	cfg := &Config{
		BaseURL: os.Getenv(EnvBaseURL),
	}
	return cfg.withDefaults()
}

// LoadConfig from file.
// An empty file name returns the environment-based config.
func LoadConfig(file string) (*Config, error) {
	if file == "" {
		return NewConfig(), nil
	}

	cfg := new(Config)
	err := configloader.UnmarshalAndExpand(file, cfg)
	if err != nil {
		return nil, err
	}
	return cfg.withDefaults(), nil
}

func (c *Config) withDefaults() *Config {
	if c.BaseURL == "" {
		c.BaseURL = DefaultBaseURL
	}
	if c.Timeout == 0 {
		c.Timeout = DefaultTimeout
	}
	return c
}
