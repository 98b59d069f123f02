package facade

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/tailored-agentic-units/puremvc/observability"
)

// Config selects the key and event observer of a core.
type Config struct {
	Key      string `json:"key,omitempty"`
	Observer string `json:"observer,omitempty"`
}

// DefaultConfig returns the configuration of the default core reporting to
// slog.
func DefaultConfig() Config {
	return Config{
		Key:      DefaultKey,
		Observer: "slog",
	}
}

// Merge applies non-zero values from source into c.
func (c *Config) Merge(source *Config) {
	if source.Key != "" {
		c.Key = source.Key
	}
	if source.Observer != "" {
		c.Observer = source.Observer
	}
}

// LoadConfig reads a JSON config file, merges it with defaults, and returns
// the resulting Config.
func LoadConfig(filename string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var loaded Config
	if err := json.Unmarshal(data, &loaded); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	cfg.Merge(&loaded)
	return &cfg, nil
}

// NewFromConfig creates the core described by cfg. The observer is resolved
// by name from the observability registry; opts are applied after it.
func NewFromConfig(cfg *Config, opts ...observability.Option) (*Facade, error) {
	obs, err := observability.GetObserver(cfg.Observer)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve observer: %w", err)
	}

	all := append([]observability.Option{observability.WithObserver(obs)}, opts...)
	return New(cfg.Key, all...)
}
