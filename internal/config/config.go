package config

import (
	"errors"
	"fmt"
	"net/url"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	keyAPIBaseURL      = "API_BASE_URL"
	keyAPITimeout      = "API_TIMEOUT_SEC"
	keyAppPort         = "APP_PORT"
	keySessionSecret   = "SESSION_SECRET"
	keyLogLevel        = "LOG_LEVEL"
	keyLogFormat       = "LOG_FORMAT"
	keyShutdownTimeout = "SHUTDOWN_TIMEOUT_SEC"
	keyServiceName     = "OTEL_SERVICE_NAME"
	keyOtelEndpoint    = "OTEL_EXPORTER_OTLP_ENDPOINT"
	keyOtelInsecure    = "OTEL_EXPORTER_INSECURE"
)

// Config holds everything the console reads from the environment.
type Config struct {
	// Upstream productos API
	APIBaseURL string
	APITimeout time.Duration

	// Console HTTP server
	Port            string
	SessionSecret   string
	ShutdownTimeout time.Duration

	// Logging
	LogLevel  string
	LogFormat string

	// Tracing; an empty endpoint leaves the global no-op provider in place.
	ServiceName  string
	OtelEndpoint string
	OtelInsecure bool
}

func setDefaults(v *viper.Viper) {
	v.SetDefault(keyAPIBaseURL, "http://127.0.0.1:5000")
	v.SetDefault(keyAPITimeout, 30)
	v.SetDefault(keyAppPort, "8080")
	v.SetDefault(keySessionSecret, "dev_fallback_secret")
	v.SetDefault(keyLogLevel, "info")
	v.SetDefault(keyLogFormat, "text")
	v.SetDefault(keyShutdownTimeout, 10)
	v.SetDefault(keyServiceName, "productos-admin")
	v.SetDefault(keyOtelEndpoint, "")
	v.SetDefault(keyOtelInsecure, false)
}

// Load reads .env files (current dir, parent, repo root when started from
// cmd/server) into the process environment and builds a validated Config.
func Load() (*Config, error) {
	_ = godotenv.Overload(".env", "../.env", "../../.env")
	return FromViper(newViper())
}

func newViper() *viper.Viper {
	v := viper.New()
	setDefaults(v)
	v.AutomaticEnv()
	return v
}

// FromViper builds a Config from an already populated viper instance.
func FromViper(v *viper.Viper) (*Config, error) {
	c := &Config{
		APIBaseURL:      strings.TrimRight(v.GetString(keyAPIBaseURL), "/"),
		APITimeout:      time.Duration(v.GetInt(keyAPITimeout)) * time.Second,
		Port:            v.GetString(keyAppPort),
		SessionSecret:   v.GetString(keySessionSecret),
		ShutdownTimeout: time.Duration(v.GetInt(keyShutdownTimeout)) * time.Second,
		LogLevel:        strings.ToLower(v.GetString(keyLogLevel)),
		LogFormat:       strings.ToLower(v.GetString(keyLogFormat)),
		ServiceName:     v.GetString(keyServiceName),
		OtelEndpoint:    v.GetString(keyOtelEndpoint),
		OtelInsecure:    v.GetBool(keyOtelInsecure),
	}
	if errs := c.Validate(); len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return c, nil
}

// problems collects validation failures as "<field>: <message>" errors.
type problems []error

func (p *problems) add(field, format string, args ...any) {
	*p = append(*p, fmt.Errorf("%s: %s", field, fmt.Sprintf(format, args...)))
}

var (
	logLevels  = []string{"debug", "info", "warn", "error"}
	logFormats = []string{"text", "json"}
)

// Validate returns every problem found, not just the first one.
func (c *Config) Validate() []error {
	var errs problems

	if u, err := url.Parse(c.APIBaseURL); err != nil || u.Scheme == "" || u.Host == "" {
		errs.add("APIBaseURL", "must be an absolute URL")
	}
	if port, err := strconv.Atoi(c.Port); err != nil || port < 1 || port > 65535 {
		errs.add("Port", "must be between 1 and 65535")
	}
	if c.SessionSecret == "" {
		errs.add("SessionSecret", "cannot be empty")
	}
	if !slices.Contains(logLevels, c.LogLevel) {
		errs.add("LogLevel", "must be one of: %v", logLevels)
	}
	if !slices.Contains(logFormats, c.LogFormat) {
		errs.add("LogFormat", "must be one of: %v", logFormats)
	}
	if c.APITimeout < 0 || c.APITimeout > 10*time.Minute {
		errs.add("APITimeout", "must be between %v and %v", time.Duration(0), 10*time.Minute)
	}
	if c.ShutdownTimeout < 0 || c.ShutdownTimeout > 5*time.Minute {
		errs.add("ShutdownTimeout", "must be between %v and %v", time.Duration(0), 5*time.Minute)
	}
	if c.ServiceName == "" {
		errs.add("ServiceName", "cannot be empty")
	}
	return errs
}
