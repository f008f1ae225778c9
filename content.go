package workout

import (
	"embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed etc/packages.yaml
var Content embed.FS

// DefaultConfig returns the embedded sample packages
func DefaultConfig() (*Config, error) {
	val, err := Content.ReadFile("etc/packages.yaml")
	if err != nil {
		return nil, err
	}
	return LoadConfig(val)
}

// LoadConfig parses a YAML (or JSON) package list
func LoadConfig(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	for i, pkg := range cfg.Packages {
		if pkg.Code == "" {
			return nil, fmt.Errorf("package %d: missing code", i)
		}
	}
	return &cfg, nil
}
