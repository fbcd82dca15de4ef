// Package bridge ties discovery and reconciliation together: one sync pass
// mirrors every valid marketplace plugin into the bridge plugins directory
// and every plugin command file into the shared workflows directory. It also
// provides the read paths the CLI consumes: resolving a plugin by name and
// listing what is bridged.
package bridge

import (
	"strings"

	"github.com/arthur-debert/claude-bridge/pkg/errors"
	"github.com/arthur-debert/claude-bridge/pkg/link"
	"github.com/arthur-debert/claude-bridge/pkg/logging"
	"github.com/arthur-debert/claude-bridge/pkg/marketplace"
	"github.com/arthur-debert/claude-bridge/pkg/paths"
	"github.com/arthur-debert/claude-bridge/pkg/reconcile"
	"github.com/arthur-debert/claude-bridge/pkg/types"
)

// Sync scans the marketplace and reconciles both destinations against the
// result. A missing marketplace root is a warning and a no-op, not an
// error. Individual link failures are reported through the returned counts.
func Sync(fsys types.FS, linker link.Linker, scanner *marketplace.Scanner, p paths.Paths) (types.SyncResult, error) {
	logger := logging.GetLogger("bridge.sync")
	var result types.SyncResult

	plugins, workflows, err := scanner.Scan(p.MarketplaceDir())
	if err != nil {
		if errors.IsErrorCode(err, errors.ErrNotFound) {
			logger.Warn().Str("path", p.MarketplaceDir()).
				Msg("Claude marketplace not found, nothing to sync")
			return result, nil
		}
		return result, err
	}

	result.Plugins, err = reconcile.Run(fsys, linker, p.BridgePluginsDir(),
		pluginCandidates(plugins), reconcile.RemoveAny)
	if err != nil {
		return result, err
	}

	// The workflows directory is shared with unrelated content; only
	// entries carrying the ownership prefix are ever removed there.
	result.Workflows, err = reconcile.Run(fsys, linker, p.WorkflowsDir(),
		workflowCandidates(workflows), isManagedWorkflow)
	if err != nil {
		return result, err
	}

	logger.Info().
		Int("plugins", result.Plugins.Total()).
		Int("workflows", result.Workflows.Total()).
		Msg("Sync complete")

	return result, nil
}

func pluginCandidates(plugins []types.PluginCandidate) []reconcile.Candidate {
	cs := make([]reconcile.Candidate, 0, len(plugins))
	for _, p := range plugins {
		cs = append(cs, reconcile.Candidate{
			Name:       p.BridgeName,
			SourcePath: p.SourcePath,
			Kind:       reconcile.DirLink,
		})
	}
	return cs
}

func workflowCandidates(workflows []types.WorkflowCandidate) []reconcile.Candidate {
	cs := make([]reconcile.Candidate, 0, len(workflows))
	for _, w := range workflows {
		cs = append(cs, reconcile.Candidate{
			Name:       w.BridgeName,
			SourcePath: w.SourcePath,
			Kind:       reconcile.FileLink,
		})
	}
	return cs
}

// isManagedWorkflow is the cleanup predicate for the shared workflows
// destination
func isManagedWorkflow(name string) bool {
	return strings.HasPrefix(name, marketplace.WorkflowPrefix)
}
