package config

// PathsConfig holds the three root directories the bridge operates on.
// Empty values fall back to the built-in home-relative locations
// resolved by pkg/paths.
type PathsConfig struct {
	MarketplaceDir string `koanf:"marketplace_dir" toml:"marketplace_dir"`
	PluginsDir     string `koanf:"plugins_dir" toml:"plugins_dir"`
	WorkflowsDir   string `koanf:"workflows_dir" toml:"workflows_dir"`
}

// ScanConfig holds user extensions to the plugin classifier
type ScanConfig struct {
	ExtraExclude    []string `koanf:"extra_exclude" toml:"extra_exclude"`
	ExtraIndicators []string `koanf:"extra_indicators" toml:"extra_indicators"`
}

// Config is the merged claude-bridge configuration
type Config struct {
	Paths PathsConfig `koanf:"paths" toml:"paths"`
	Scan  ScanConfig  `koanf:"scan" toml:"scan"`
}

// Default returns the built-in configuration with no user overrides applied
func Default() *Config {
	return &Config{
		Scan: ScanConfig{
			ExtraExclude:    []string{},
			ExtraIndicators: []string{},
		},
	}
}

// DefaultTOML returns the embedded defaults file content, used by gen-config
func DefaultTOML() string {
	return string(defaultConfig)
}
