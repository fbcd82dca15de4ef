// Package paths provides centralized path handling for claude-bridge.
// It resolves the marketplace source root and the two bridge destination
// directories from configuration, with sensible home-relative defaults.
package paths

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/arthur-debert/claude-bridge/pkg/config"
	"github.com/arthur-debert/claude-bridge/pkg/errors"
)

// Default locations, relative to the user's home directory.
// These mirror the layouts of the two tools being bridged and are not
// claude-bridge's to restructure.
const (
	// DefaultMarketplaceDir is where Claude Code keeps installed marketplaces
	DefaultMarketplaceDir = ".claude/plugins/marketplaces"

	// DefaultPluginsDir is where bridged plugin links are materialized
	DefaultPluginsDir = ".gemini/antigravity/skills/claude-bridge/plugins"

	// DefaultWorkflowsDir is the shared global workflows directory
	DefaultWorkflowsDir = ".gemini/antigravity/global_workflows"

	// BridgeDirName is the directory name for claude-bridge state files
	BridgeDirName = "claude-bridge"

	// LogFileName is the name of the log file
	LogFileName = "claude-bridge.log"
)

// Paths provides centralized path management for claude-bridge
type Paths interface {
	// MarketplaceDir is the source root scanned for plugins
	MarketplaceDir() string

	// BridgePluginsDir is the destination for plugin directory links
	BridgePluginsDir() string

	// WorkflowsDir is the shared destination for workflow file links
	WorkflowsDir() string

	// LogFilePath is the append-only log file location
	LogFilePath() string
}

type paths struct {
	marketplaceDir string
	pluginsDir     string
	workflowsDir   string
}

// New resolves all bridge paths from the given configuration.
// Empty config values fall back to the defaults under the home directory.
func New(cfg *config.Config) (Paths, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrFileAccess, "cannot determine home directory")
	}

	p := &paths{
		marketplaceDir: resolve(cfg.Paths.MarketplaceDir, home, DefaultMarketplaceDir),
		pluginsDir:     resolve(cfg.Paths.PluginsDir, home, DefaultPluginsDir),
		workflowsDir:   resolve(cfg.Paths.WorkflowsDir, home, DefaultWorkflowsDir),
	}
	return p, nil
}

func (p *paths) MarketplaceDir() string   { return p.marketplaceDir }
func (p *paths) BridgePluginsDir() string { return p.pluginsDir }
func (p *paths) WorkflowsDir() string     { return p.workflowsDir }

func (p *paths) LogFilePath() string {
	return filepath.Join(xdg.StateHome, BridgeDirName, LogFileName)
}

// resolve picks the configured value (with ~ expansion) or the default
// under home
func resolve(configured, home, fallback string) string {
	if configured != "" {
		return expandHome(configured, home)
	}
	return filepath.Join(home, filepath.FromSlash(fallback))
}

// expandHome replaces a leading ~/ with the home directory
func expandHome(path, home string) string {
	if path == "~" {
		return home
	}
	if strings.HasPrefix(path, "~/") {
		return filepath.Join(home, path[2:])
	}
	return path
}
