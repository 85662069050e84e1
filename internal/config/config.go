// Package config loads the resolver's ambient options. It plays the role
// funvibe-funxy/internal/ext/config.go plays for that project's extension
// host: a small YAML document, decoded with gopkg.in/yaml.v3, that tunes
// behavior the core itself has no opinion about.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// AnalyzerConfig tunes the resolver run: a per-pass diagnostic bound and a
// stricter visibility-check mode, both optional.
type AnalyzerConfig struct {
	// StrictMode, when true, still evaluates a VisibilityViolation check
	// at a lookup site even after that lookup has already failed with
	// UndefinedName/UnknownType, so both diagnostics surface together
	// instead of the first one suppressing the second.
	StrictMode bool `yaml:"strict_mode"`

	// MaxDiagnosticsPerPass caps how many diagnostics a single pass
	// records before it stops accumulating more (0 means unbounded).
	MaxDiagnosticsPerPass int `yaml:"max_diagnostics_per_pass"`
}

// Default returns the configuration used when no file is supplied.
func Default() *AnalyzerConfig {
	return &AnalyzerConfig{StrictMode: false, MaxDiagnosticsPerPass: 0}
}

// Load reads and decodes a YAML configuration document from path.
func Load(path string) (*AnalyzerConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: reading %s: %w", path, err)
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parsing %s: %w", path, err)
	}
	return cfg, nil
}
