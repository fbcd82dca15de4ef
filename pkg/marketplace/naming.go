package marketplace

import "strings"

// Naming convention for destination links. The composite names flatten the
// marketplace/plugin hierarchy into a single collision-free string key, and
// the cb__ prefix marks workflow entries owned by claude-bridge.
const (
	// Separator joins name components in a bridge name
	Separator = "__"

	// WorkflowPrefix marks workflow links as claude-bridge managed
	WorkflowPrefix = "cb__"
)

// BridgeName returns the canonical destination name for a plugin link
func BridgeName(marketplaceName, pluginName string) string {
	return marketplaceName + Separator + pluginName
}

// WorkflowName returns the canonical destination name for a workflow link
func WorkflowName(marketplaceName, pluginName, fileName string) string {
	return WorkflowPrefix + marketplaceName + Separator + pluginName + Separator + fileName
}

// SplitBridgeName recovers (marketplaceName, pluginName) from a bridge name.
// The reverse mapping is only unambiguous when neither component contains
// the separator, which validName enforces at scan time.
func SplitBridgeName(bridgeName string) (marketplaceName, pluginName string, ok bool) {
	parts := strings.SplitN(bridgeName, Separator, 2)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", false
	}
	return parts[0], parts[1], true
}

// validName reports whether a name component can be embedded in a bridge
// name without breaking reverse parsing
func validName(name string) bool {
	return name != "" && !strings.Contains(name, Separator)
}
