package main

import (
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds the tunables the CLI and server read from a YAML file.
// Every field has a working default so the file is optional.
type Config struct {
	Addr          string
	FetchTimeout  time.Duration
	UserAgent     string
	RatePerDomain float64
}

// UnmarshalYAML decodes fetch_timeout from a duration string ("3s")
// since the YAML decoder has no native duration support. Fields absent
// from the document keep their current values.
func (c *Config) UnmarshalYAML(value *yaml.Node) error {
	var aux struct {
		Addr          string   `yaml:"addr"`
		FetchTimeout  string   `yaml:"fetch_timeout"`
		UserAgent     string   `yaml:"user_agent"`
		RatePerDomain *float64 `yaml:"rate_per_domain"`
	}
	if err := value.Decode(&aux); err != nil {
		return err
	}

	if aux.Addr != "" {
		c.Addr = aux.Addr
	}
	if aux.FetchTimeout != "" {
		d, err := time.ParseDuration(aux.FetchTimeout)
		if err != nil {
			return err
		}
		c.FetchTimeout = d
	}
	if aux.UserAgent != "" {
		c.UserAgent = aux.UserAgent
	}
	if aux.RatePerDomain != nil {
		c.RatePerDomain = *aux.RatePerDomain
	}
	return nil
}

// DefaultConfig returns a Config with defaults applied.
func DefaultConfig() Config {
	return Config{
		Addr:          ":3000",
		FetchTimeout:  10 * time.Second,
		RatePerDomain: 1.0,
	}
}

// LoadConfig reads a YAML config file, overlaying values on the
// defaults. A missing file is not an error.
func LoadConfig(path string) (Config, error) {
	config := DefaultConfig()
	if path == "" {
		return config, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return config, nil
		}
		return config, err
	}

	if err := yaml.Unmarshal(data, &config); err != nil {
		return config, err
	}
	return config, nil
}
