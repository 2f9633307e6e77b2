package config

import (
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/getmockd/ews/pkg/ews"
	"github.com/getmockd/ews/pkg/logging"
	"github.com/getmockd/ews/pkg/soap"
)

// Source values recorded in Config.Sources.
const (
	SourceDefault = "default"
	SourceFile    = "file"
	SourceEnv     = "env"
	SourceFlag    = "flag"
)

// Config is the connection profile of an EWS client.
type Config struct {
	// Endpoint is the URL of the Exchange.asmx endpoint.
	Endpoint string `yaml:"endpoint"`

	// Username and Password select basic authentication.
	Username string `yaml:"username,omitempty"`
	Password string `yaml:"password,omitempty"`

	// Token selects bearer authentication and takes precedence over basic.
	Token string `yaml:"token,omitempty"`

	// ServerVersion is sent as RequestServerVersion.
	ServerVersion string `yaml:"serverVersion"`

	// Impersonate is the primary SMTP address to act as, if any.
	Impersonate string `yaml:"impersonate,omitempty"`

	// Timeout bounds one HTTP round trip.
	Timeout time.Duration `yaml:"timeout"`

	Log LogConfig `yaml:"log"`

	// Sources tracks where each value came from, keyed by YAML path.
	Sources map[string]string `yaml:"-"`
}

// LogConfig selects the log level and format.
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Default returns a Config with defaults and no endpoint.
func Default() *Config {
	return &Config{
		ServerVersion: string(ews.Exchange2013SP1),
		Timeout:       100 * time.Second,
		Log:           LogConfig{Level: "warn", Format: string(logging.FormatText)},
		Sources: map[string]string{
			"serverVersion": SourceDefault,
			"timeout":       SourceDefault,
			"log.level":     SourceDefault,
			"log.format":    SourceDefault,
		},
	}
}

// Logger builds the logger the config describes, writing to w.
func (c *Config) Logger(w io.Writer) *slog.Logger {
	cfg := logging.DefaultConfig()
	cfg.Level = logging.ParseLevel(c.Log.Level)
	cfg.Format = logging.ParseFormat(c.Log.Format)
	cfg.Output = w
	return logging.New(cfg)
}

// Transport builds an HTTP transport for the endpoint.
func (c *Config) Transport() *soap.HTTPTransport {
	opts := []soap.TransportOption{soap.WithUserAgent("ewsctl")}
	if c.Timeout > 0 {
		opts = append(opts, soap.WithHTTPClient(&http.Client{Timeout: c.Timeout}))
	}
	switch {
	case c.Token != "":
		opts = append(opts, soap.WithBearerToken(c.Token))
	case c.Username != "":
		opts = append(opts, soap.WithBasicAuth(c.Username, c.Password))
	}
	return soap.NewHTTPTransport(c.Endpoint, opts...)
}

// ServiceOptions returns the ews options the config describes.
func (c *Config) ServiceOptions(logger *slog.Logger) []ews.Option {
	opts := []ews.Option{
		ews.WithServerVersion(ews.ServerVersion(c.ServerVersion)),
		ews.WithLogger(logger),
	}
	if c.Impersonate != "" {
		opts = append(opts, ews.WithImpersonation(c.Impersonate))
	}
	return opts
}
