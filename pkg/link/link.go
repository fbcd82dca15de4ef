// Package link provides the platform link primitives: creating and removing
// the directory and file links that materialize the bridge. The mechanism is
// selected once at startup; Unix uses symbolic links while Windows uses
// directory junctions and hard links, neither of which needs elevation.
package link

import "runtime"

// Linker creates and removes single link entries. Implementations catch the
// underlying I/O failure and surface it as an error; callers log it, count
// it, and continue with the remaining candidates.
type Linker interface {
	// CreateDirLink links the directory dest to source
	CreateDirLink(source, dest string) error

	// CreateFileLink links the file dest to source
	CreateFileLink(source, dest string) error

	// Remove deletes a previously created link entry. It never recurses
	// into a real directory: non-link directories are only removed when
	// empty, which is what a junction mount point looks like.
	Remove(path string) error
}

// New selects the link mechanism for the current platform
func New() Linker {
	if runtime.GOOS == "windows" {
		return &windowsLinker{}
	}
	return &unixLinker{}
}
