// Package config loads the claude-bridge configuration by merging embedded
// defaults, an optional user config file (TOML or YAML) under the XDG config
// directory, and CLAUDE_BRIDGE_* environment variable overrides.
package config
