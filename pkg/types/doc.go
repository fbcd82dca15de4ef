// Package types defines the shared data types and interfaces used across
// claude-bridge: scan candidates, reconciliation counts, and the filesystem
// abstraction that keeps the core unit-testable.
package types
