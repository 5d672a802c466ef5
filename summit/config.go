package summit

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"

	"github.com/summitpt/summit-go/credentials"
)

// DefaultBaseURL is the local development address of the backend.
const DefaultBaseURL = "http://localhost:8000"

// Environment variables read by FromEnv.
const (
	EnvBaseURL = "SUMMIT_API_URL"
	EnvToken   = "SUMMIT_API_TOKEN"
	EnvTimeout = "SUMMIT_API_TIMEOUT"
)

// Config configures the Summit API client.
type Config struct {
	// BaseURL is the backend address. Defaults to DefaultBaseURL.
	BaseURL string

	// Timeout is the per-request timeout. Defaults to 30s.
	Timeout time.Duration

	// Credentials supplies the bearer token for authenticated endpoints,
	// resolved once per request. Typically a closure over the identity
	// provider's session; see package credentials.
	Credentials credentials.TokenSource

	// Headers are default headers applied to every request.
	Headers map[string]string

	// UserAgent overrides the default summit-go/<version> User-Agent.
	UserAgent string

	// Logger receives per-request logs. Nil disables logging.
	Logger *zerolog.Logger
}

// ApplyDefaults fills in zero-value fields with sensible defaults.
func (c *Config) ApplyDefaults() {
	if c.BaseURL == "" {
		c.BaseURL = DefaultBaseURL
	}
	if c.UserAgent == "" {
		c.UserAgent = "summit-go/" + Version
	}
}

// Validate checks that the configuration is valid.
func (c *Config) Validate() error {
	if c.BaseURL == "" {
		return fmt.Errorf("summit: base URL must not be empty")
	}
	return nil
}

// FromEnv builds a Config from the environment. A .env file in the working
// directory is loaded first when present; real environment variables win.
//
//	SUMMIT_API_URL      backend address (default http://localhost:8000)
//	SUMMIT_API_TOKEN    static bearer token, wired into credentials.Static
//	SUMMIT_API_TIMEOUT  per-request timeout as a Go duration, e.g. "10s"
func FromEnv() (Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetEnvPrefix("summit")
	v.AutomaticEnv()

	cfg := Config{
		BaseURL: v.GetString("api_url"),
	}
	if raw := v.GetString("api_timeout"); raw != "" {
		d, err := time.ParseDuration(raw)
		if err != nil {
			return Config{}, fmt.Errorf("summit: parse %s: %w", EnvTimeout, err)
		}
		cfg.Timeout = d
	}
	if token := v.GetString("api_token"); token != "" {
		cfg.Credentials = credentials.Static(token)
	}
	cfg.ApplyDefaults()
	return cfg, nil
}
