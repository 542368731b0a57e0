package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const configFileName = "turnbounce.yaml"

// Load loads the Turn & Bounce configuration.
// Search order: customPath -> ~/.turnbounce/configs/turnbounce.yaml ->
// ./configs/turnbounce.yaml -> embedded default.
// Files only need to set the keys they change; the rest keep default values.
func Load(customPath string) (TurnBounceConfig, error) {
	return load(customPath, searchPaths())
}

// load implements Load with an explicit candidate list.
func load(customPath string, candidates []string) (TurnBounceConfig, error) {
	// Try custom path first; failures here are the caller's problem
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return DefaultTurnBounceConfig(), fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := parse(data)
		if err != nil {
			return DefaultTurnBounceConfig(), fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Unreadable or broken files in the search path are skipped
	for _, path := range candidates {
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if cfg, err := parse(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := parse(defaultTurnBounceYAML)
	if err != nil {
		return DefaultTurnBounceConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// parse decodes YAML over the built-in defaults and validates the result.
func parse(data []byte) (TurnBounceConfig, error) {
	cfg := DefaultTurnBounceConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// searchPaths lists the non-explicit config locations in priority order.
func searchPaths() []string {
	var paths []string
	if p := userConfigPath(configFileName); p != "" {
		paths = append(paths, p)
	}
	return append(paths, filepath.Join("configs", configFileName))
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".turnbounce", "configs", filename)
}
