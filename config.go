package lnpulse

import (
	"fmt"
	"net/http"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Doer issues a single HTTP request. *http.Client satisfies it; tests and
// callers with custom transports inject their own.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Config configures the LNPulse client. It is copied at construction and
// never mutated afterwards, so a single client is safe for concurrent use.
type Config struct {
	// BaseURL is the API root, e.g. "https://api.lnpulse.io". Trailing
	// slashes are stripped at construction.
	BaseURL string `mapstructure:"base_url" validate:"required,url"`

	// APIKey is the bearer credential. When empty, no Authorization
	// header is sent.
	APIKey string `mapstructure:"api_key"`

	// L402 is an optional paywall credential. When set it takes
	// precedence over APIKey.
	L402 *L402Token `mapstructure:"-" validate:"-"`

	// HTTPClient issues requests. Defaults to http.DefaultClient.
	HTTPClient Doer `mapstructure:"-" validate:"-"`

	// Headers are extra headers applied to every request.
	Headers map[string]string `mapstructure:"headers"`

	// Logger receives debug-level request and stream logs. The zero
	// value is disabled.
	Logger zerolog.Logger `mapstructure:"-" validate:"-"`
}

// ApplyDefaults fills in zero-value fields with sensible defaults.
func (c *Config) ApplyDefaults() {
	if c.HTTPClient == nil {
		c.HTTPClient = http.DefaultClient
	}
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("lnpulse: invalid config: %w", err)
	}
	return nil
}

// ConfigFromEnv builds a Config from LNPULSE_* environment variables,
// loading a .env file from the working directory first when one exists.
// Recognized variables: LNPULSE_BASE_URL, LNPULSE_API_KEY.
func ConfigFromEnv() (Config, error) {
	if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(); err != nil {
			return Config{}, fmt.Errorf("lnpulse: load .env: %w", err)
		}
	}

	v := viper.New()
	v.SetEnvPrefix("LNPULSE")
	v.AutomaticEnv()
	for _, key := range []string{"base_url", "api_key"} {
		if err := v.BindEnv(key); err != nil {
			return Config{}, fmt.Errorf("lnpulse: bind env %s: %w", key, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("lnpulse: unmarshal config: %w", err)
	}
	return cfg, nil
}

// validateParams validates an outbound request payload before it is sent.
func validateParams(params any) error {
	if err := validate.Struct(params); err != nil {
		return fmt.Errorf("lnpulse: invalid params: %w", err)
	}
	return nil
}
