// Package marketplace discovers plugins under the Claude Code marketplace
// layout. The classifier decides which directories qualify as plugins, the
// scanner walks the tree in deterministic order, and the naming helpers
// derive the canonical destination link names.
package marketplace
