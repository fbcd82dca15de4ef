package marketplace

import (
	"path/filepath"
	"strings"

	"github.com/arthur-debert/claude-bridge/pkg/types"
)

// PluginIndicators are the entries whose presence marks a directory as a
// meaningful Claude Code plugin.
var PluginIndicators = []string{
	"plugin.json",
	"skills",
	"hooks",
	"agents",
	"commands",
	"README.md",
}

// ExcludedNames are directory names that are never treated as plugins
var ExcludedNames = []string{
	".git",
	".github",
	".claude",
	".claude-plugin",
	"node_modules",
	"__pycache__",
	".venv",
	"tests",
	"test",
	"docs",
	"doc",
	"src",
	"dist",
	"build",
}

// Classifier decides whether a directory qualifies as a plugin.
// It is a pure predicate with no ordering dependency.
type Classifier struct {
	exclude    map[string]struct{}
	indicators []string
}

// NewClassifier builds a classifier from the built-in sets plus any
// user-configured extras
func NewClassifier(extraExclude, extraIndicators []string) *Classifier {
	exclude := make(map[string]struct{}, len(ExcludedNames)+len(extraExclude))
	for _, name := range ExcludedNames {
		exclude[name] = struct{}{}
	}
	for _, name := range extraExclude {
		exclude[name] = struct{}{}
	}

	indicators := make([]string, 0, len(PluginIndicators)+len(extraIndicators))
	indicators = append(indicators, PluginIndicators...)
	indicators = append(indicators, extraIndicators...)

	return &Classifier{exclude: exclude, indicators: indicators}
}

// IsPluginDir reports whether the directory at path looks like a plugin.
// Hidden and excluded names are rejected outright; otherwise at least one
// indicator entry must exist directly inside.
func (c *Classifier) IsPluginDir(fs types.FS, path string) bool {
	name := filepath.Base(path)
	if strings.HasPrefix(name, ".") {
		return false
	}
	if _, excluded := c.exclude[name]; excluded {
		return false
	}

	for _, indicator := range c.indicators {
		if _, err := fs.Lstat(filepath.Join(path, indicator)); err == nil {
			return true
		}
	}
	return false
}
