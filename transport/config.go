package transport

import (
	"fmt"
	"net/url"
	"time"

	"github.com/rs/zerolog"

	"github.com/summitpt/summit-go/credentials"
)

const defaultTimeout = 30 * time.Second

// Config configures the transport client.
type Config struct {
	// BaseURL is the base URL prepended to all request paths.
	BaseURL string

	// Timeout is the default request timeout. Defaults to 30s.
	Timeout time.Duration

	// Credentials supplies the bearer token, resolved once per request.
	// May be nil; authenticated requests then fail with
	// credentials.ErrNoSession before any network I/O.
	Credentials credentials.TokenSource

	// Headers are default headers applied to all requests.
	Headers map[string]string

	// UserAgent is sent as the User-Agent header when set.
	UserAgent string

	// Logger receives per-request logs. Nil disables logging.
	Logger *zerolog.Logger
}

// ApplyDefaults fills in zero-value fields with sensible defaults.
func (c *Config) ApplyDefaults() {
	if c.Timeout <= 0 {
		c.Timeout = defaultTimeout
	}
}

// Validate checks that the configuration is valid.
func (c *Config) Validate() error {
	if c.Timeout <= 0 {
		return fmt.Errorf("transport: timeout must be positive")
	}
	if c.BaseURL != "" {
		if _, err := url.Parse(c.BaseURL); err != nil {
			return fmt.Errorf("transport: invalid base URL %q: %w", c.BaseURL, err)
		}
	}
	return nil
}
