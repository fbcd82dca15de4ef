package types

// PluginCandidate is a marketplace plugin directory discovered by the scanner,
// paired with the bridge name its destination link will carry.
type PluginCandidate struct {
	// MarketplaceName is the name of the marketplace entry the plugin came from
	MarketplaceName string

	// PluginName is the plugin's own directory name
	PluginName string

	// SourcePath is the absolute path to the plugin directory
	SourcePath string

	// BridgeName is the canonical destination name, marketplace__plugin
	BridgeName string
}

// WorkflowCandidate is a single command file discovered inside a plugin's
// commands directory, mirrored as an individually linked workflow file.
type WorkflowCandidate struct {
	// BridgeName is the canonical destination name, cb__marketplace__plugin__file.md
	BridgeName string

	// SourcePath is the absolute path to the command file
	SourcePath string
}

// ReconcileStats reports the outcome of one reconciliation pass over a
// destination directory.
type ReconcileStats struct {
	// Linked is the number of links created this pass
	Linked int

	// Existing is the number of candidates whose destination entry already existed
	Existing int

	// Removed is the number of stale entries removed this pass
	Removed int

	// Failed is the number of link operations that failed (create or remove)
	Failed int
}

// Total returns the number of candidates accounted for by this pass
func (s ReconcileStats) Total() int {
	return s.Linked + s.Existing
}

// SyncResult aggregates the plugin and workflow reconciliation outcomes for
// one sync invocation.
type SyncResult struct {
	Plugins   ReconcileStats
	Workflows ReconcileStats
}

// PluginInfo describes one bridged plugin link for listing output
type PluginInfo struct {
	// Name is the bridge link name, marketplace__plugin
	Name string

	// Path is the absolute path of the link entry
	Path string

	// Resources lists the conventional entries present in the plugin
	// (skills, hooks, agents, commands, readme)
	Resources []string
}
