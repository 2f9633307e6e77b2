package config

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/getmockd/ews/pkg/ews"
	"github.com/getmockd/ews/pkg/logging"
)

// ValidationError is a single problem with a config value.
type ValidationError struct {
	Path    string // YAML path, e.g. "log.level"
	Message string
}

func (e ValidationError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s: %s", e.Path, e.Message)
	}
	return e.Message
}

// ValidationResult collects every problem found in a Config.
type ValidationResult struct {
	Errors []ValidationError
}

// IsValid returns true if there are no validation errors.
func (r *ValidationResult) IsValid() bool {
	return len(r.Errors) == 0
}

// Error returns the errors one per line.
func (r *ValidationResult) Error() string {
	if r.IsValid() {
		return ""
	}
	msgs := make([]string, len(r.Errors))
	for i, e := range r.Errors {
		msgs[i] = e.Error()
	}
	return strings.Join(msgs, "\n")
}

// AddError adds a validation error.
func (r *ValidationResult) AddError(path, message string) {
	r.Errors = append(r.Errors, ValidationError{Path: path, Message: message})
}

// Validate checks cfg and returns all errors found.
func Validate(cfg *Config) *ValidationResult {
	result := &ValidationResult{}

	if cfg.Endpoint == "" {
		result.AddError("endpoint", "required")
	} else if u, err := url.Parse(cfg.Endpoint); err != nil || u.Host == "" {
		result.AddError("endpoint", fmt.Sprintf("invalid URL %q", cfg.Endpoint))
	} else if u.Scheme != "http" && u.Scheme != "https" {
		result.AddError("endpoint", fmt.Sprintf("unsupported scheme %q, expected http or https", u.Scheme))
	}

	if cfg.Password != "" && cfg.Username == "" {
		result.AddError("username", "required when password is set")
	}
	if cfg.Token != "" && cfg.Username != "" {
		result.AddError("token", "cannot be combined with username")
	}

	if !ews.ServerVersion(cfg.ServerVersion).Valid() {
		result.AddError("serverVersion", fmt.Sprintf("unsupported version %q", cfg.ServerVersion))
	}
	if cfg.Impersonate != "" && !strings.Contains(cfg.Impersonate, "@") {
		result.AddError("impersonate", "must be an SMTP address")
	}
	if cfg.Timeout < 0 {
		result.AddError("timeout", "must not be negative")
	}

	if _, err := logging.ParseLevelStrict(cfg.Log.Level); err != nil {
		result.AddError("log.level", err.Error())
	}
	if _, err := logging.ParseFormatStrict(cfg.Log.Format); err != nil {
		result.AddError("log.format", err.Error())
	}

	return result
}
