package config

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	ktoml "github.com/knadh/koanf/parsers/toml"
	kyaml "github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

//go:embed embedded/defaults.toml
var defaultConfig []byte

// EnvConfigDir overrides the directory searched for the user config file
const EnvConfigDir = "CLAUDE_BRIDGE_CONFIG_DIR"

// User config file names tried in order; first hit wins
var userConfigFiles = []string{"config.toml", "config.yaml"}

// rawBytesProvider implements koanf provider for raw bytes
type rawBytesProvider struct{ bytes []byte }

func (r *rawBytesProvider) ReadBytes() ([]byte, error) { return r.bytes, nil }
func (r *rawBytesProvider) Read() (map[string]interface{}, error) {
	return nil, errors.New("not implemented")
}

// Load merges configuration from, in increasing precedence:
// embedded defaults, the user config file, and CLAUDE_BRIDGE_* env vars.
func Load() (*Config, error) {
	k := koanf.New(".")

	// 1. Load embedded defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, ktoml.Parser()); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	// 2. Load the user config file if one exists
	if path, parser := findUserConfig(); path != "" {
		if err := k.Load(file.Provider(path), parser); err != nil {
			return nil, fmt.Errorf("failed to load config from %s: %w", path, err)
		}
	}

	// 3. Load env var overrides
	if err := k.Load(env.Provider("CLAUDE_BRIDGE_", ".", envKeyMap), nil); err != nil {
		return nil, fmt.Errorf("failed to load env vars: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	return &cfg, nil
}

// ConfigDir returns the directory searched for the user config file
func ConfigDir() string {
	if dir := os.Getenv(EnvConfigDir); dir != "" {
		return dir
	}
	return filepath.Join(xdg.ConfigHome, "claude-bridge")
}

// findUserConfig locates the user config file and the parser matching its
// extension. Returns an empty path when no file exists.
func findUserConfig() (string, koanf.Parser) {
	dir := ConfigDir()
	for _, name := range userConfigFiles {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err == nil {
			if strings.HasSuffix(name, ".yaml") {
				return path, kyaml.Parser()
			}
			return path, ktoml.Parser()
		}
	}
	return "", nil
}

// envKeyMap maps CLAUDE_BRIDGE_* variables onto config keys.
// Unknown variables are dropped.
func envKeyMap(s string) string {
	switch strings.TrimPrefix(s, "CLAUDE_BRIDGE_") {
	case "MARKETPLACE_DIR":
		return "paths.marketplace_dir"
	case "PLUGINS_DIR":
		return "paths.plugins_dir"
	case "WORKFLOWS_DIR":
		return "paths.workflows_dir"
	default:
		return ""
	}
}
