package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Common errors for configuration loading.
var (
	ErrFileNotFound     = errors.New("configuration file not found")
	ErrPermissionDenied = errors.New("permission denied")
	ErrInvalidYAML      = errors.New("invalid YAML syntax")
	ErrEmptyFile        = errors.New("configuration file is empty")
)

// Environment variable names.
const (
	EnvEndpoint      = "EWS_ENDPOINT"
	EnvUsername      = "EWS_USERNAME"
	EnvPassword      = "EWS_PASSWORD"
	EnvToken         = "EWS_TOKEN"
	EnvServerVersion = "EWS_SERVER_VERSION"
	EnvImpersonate   = "EWS_IMPERSONATE"
	EnvTimeout       = "EWS_TIMEOUT"
	EnvLogLevel      = "EWS_LOG_LEVEL"
	EnvConfig        = "EWS_CONFIG"
)

// LookupFunc reads an environment variable. os.LookupEnv satisfies it.
type LookupFunc func(key string) (string, bool)

// LoadFromFile reads a YAML profile over the defaults.
func LoadFromFile(path string) (*Config, error) {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		if os.IsPermission(err) {
			return nil, fmt.Errorf("%w: %s", ErrPermissionDenied, path)
		}
		return nil, fmt.Errorf("failed to stat file: %w", err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("path is a directory, not a file: %s", path)
	}

	file, err := os.Open(path)
	if err != nil {
		if os.IsPermission(err) {
			return nil, fmt.Errorf("%w: %s", ErrPermissionDenied, path)
		}
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrEmptyFile, path)
	}
	cfg, err := ParseYAML(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// ParseYAML decodes data over the defaults. Unknown keys are rejected so a
// misspelled option does not go unnoticed.
func ParseYAML(data []byte) (*Config, error) {
	cfg := Default()
	var node yaml.Node
	if err := yaml.Unmarshal(data, &node); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidYAML, err)
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: %v", ErrInvalidYAML, err)
	}
	markFileSources(cfg, &node)
	return cfg, nil
}

// markFileSources records every key present in the document as coming from
// the file.
func markFileSources(cfg *Config, doc *yaml.Node) {
	if len(doc.Content) == 0 || doc.Content[0].Kind != yaml.MappingNode {
		return
	}
	var walk func(prefix string, m *yaml.Node)
	walk = func(prefix string, m *yaml.Node) {
		for i := 0; i+1 < len(m.Content); i += 2 {
			key := prefix + m.Content[i].Value
			if v := m.Content[i+1]; v.Kind == yaml.MappingNode {
				walk(key+".", v)
				continue
			}
			cfg.Sources[key] = SourceFile
		}
	}
	walk("", doc.Content[0])
}

// ApplyEnv overrides cfg with the EWS_* variables lookup reports. Only
// variables that are set and non-empty take effect. A malformed EWS_TIMEOUT
// is returned as an error and leaves the timeout unchanged.
func ApplyEnv(cfg *Config, lookup LookupFunc) error {
	if cfg.Sources == nil {
		cfg.Sources = make(map[string]string)
	}
	str := func(env, key string, dst *string) {
		if v, ok := lookup(env); ok && v != "" {
			*dst = v
			cfg.Sources[key] = SourceEnv
		}
	}
	str(EnvEndpoint, "endpoint", &cfg.Endpoint)
	str(EnvUsername, "username", &cfg.Username)
	str(EnvPassword, "password", &cfg.Password)
	str(EnvToken, "token", &cfg.Token)
	str(EnvServerVersion, "serverVersion", &cfg.ServerVersion)
	str(EnvImpersonate, "impersonate", &cfg.Impersonate)
	str(EnvLogLevel, "log.level", &cfg.Log.Level)

	if v, ok := lookup(EnvTimeout); ok && v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvTimeout, err)
		}
		cfg.Timeout = d
		cfg.Sources["timeout"] = SourceEnv
	}
	return nil
}

// Load resolves the profile: defaults, then the file at path (or the one
// EWS_CONFIG names when path is empty), then environment overrides.
func Load(path string, lookup LookupFunc) (*Config, error) {
	if path == "" {
		path, _ = lookup(EnvConfig)
	}
	cfg := Default()
	if path != "" {
		var err error
		if cfg, err = LoadFromFile(path); err != nil {
			return nil, err
		}
	}
	if err := ApplyEnv(cfg, lookup); err != nil {
		return nil, err
	}
	return cfg, nil
}
