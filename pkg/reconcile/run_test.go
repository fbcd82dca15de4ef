// pkg/reconcile/run_test.go
// TEST TYPE: Integration Test
// DEPENDENCIES: Real filesystem and real link primitives
// PURPOSE: Test the full reconciliation pass: idempotence and convergence

package reconcile_test

import (
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"testing"

	"github.com/arthur-debert/claude-bridge/pkg/filesystem"
	"github.com/arthur-debert/claude-bridge/pkg/link"
	"github.com/arthur-debert/claude-bridge/pkg/reconcile"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func skipOnWindows(t *testing.T) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("uses unix symlinks directly")
	}
}

func destNames(t *testing.T, dir string) []string {
	t.Helper()
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	var names []string
	for _, e := range entries {
		names = append(names, e.Name())
	}
	sort.Strings(names)
	return names
}

func makeSource(t *testing.T, base, name string) reconcile.Candidate {
	t.Helper()
	src := filepath.Join(base, name)
	require.NoError(t, os.MkdirAll(src, 0755))
	return reconcile.Candidate{Name: "mkt__" + name, SourcePath: src, Kind: reconcile.DirLink}
}

func TestRunCreatesDestination(t *testing.T) {
	skipOnWindows(t)
	tempDir := t.TempDir()
	dest := filepath.Join(tempDir, "bridge", "plugins") // does not exist yet

	c := makeSource(t, tempDir, "demo")
	stats, err := reconcile.Run(filesystem.NewOS(), link.New(), dest, []reconcile.Candidate{c}, reconcile.RemoveAny)
	require.NoError(t, err)

	assert.Equal(t, 1, stats.Linked)
	assert.Equal(t, 0, stats.Existing)
	assert.Equal(t, []string{"mkt__demo"}, destNames(t, dest))
}

func TestRunIdempotence(t *testing.T) {
	skipOnWindows(t)
	tempDir := t.TempDir()
	dest := filepath.Join(tempDir, "dest")
	fs := filesystem.NewOS()
	linker := link.New()

	candidates := []reconcile.Candidate{
		makeSource(t, tempDir, "a"),
		makeSource(t, tempDir, "b"),
	}

	first, err := reconcile.Run(fs, linker, dest, candidates, reconcile.RemoveAny)
	require.NoError(t, err)
	assert.Equal(t, 2, first.Linked)

	before := destNames(t, dest)

	second, err := reconcile.Run(fs, linker, dest, candidates, reconcile.RemoveAny)
	require.NoError(t, err)
	assert.Equal(t, 0, second.Linked)
	assert.Equal(t, 0, second.Removed)
	assert.Equal(t, 2, second.Existing)
	assert.Equal(t, before, destNames(t, dest))
}

func TestRunConvergence(t *testing.T) {
	skipOnWindows(t)
	tempDir := t.TempDir()
	dest := filepath.Join(tempDir, "dest")
	fs := filesystem.NewOS()
	linker := link.New()

	a := makeSource(t, tempDir, "a")
	b := makeSource(t, tempDir, "b")

	_, err := reconcile.Run(fs, linker, dest, []reconcile.Candidate{a, b}, reconcile.RemoveAny)
	require.NoError(t, err)

	// b disappears, c appears
	c := makeSource(t, tempDir, "c")
	stats, err := reconcile.Run(fs, linker, dest, []reconcile.Candidate{a, c}, reconcile.RemoveAny)
	require.NoError(t, err)

	assert.Equal(t, 1, stats.Linked)
	assert.Equal(t, 1, stats.Existing)
	assert.Equal(t, 1, stats.Removed)
	assert.Equal(t, []string{"mkt__a", "mkt__c"}, destNames(t, dest))
}

func TestRunLinkFailureDoesNotAbort(t *testing.T) {
	skipOnWindows(t)
	tempDir := t.TempDir()
	dest := filepath.Join(tempDir, "dest")
	require.NoError(t, os.MkdirAll(dest, 0755))

	good := makeSource(t, tempDir, "good")
	// Occupy bad's destination with a real populated directory: creation
	// fails there, removal refuses to destroy it
	blocked := filepath.Join(dest, "blocked")
	require.NoError(t, os.Mkdir(blocked, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(blocked, "data"), []byte("x"), 0644))

	stats, err := reconcile.Run(filesystem.NewOS(), link.New(), dest, []reconcile.Candidate{good}, reconcile.RemoveAny)
	require.NoError(t, err)

	assert.Equal(t, 1, stats.Linked)
	assert.Equal(t, 0, stats.Removed)
	assert.Equal(t, 1, stats.Failed)
	// The populated directory survives the failed removal
	_, statErr := os.Stat(filepath.Join(blocked, "data"))
	assert.NoError(t, statErr)
}
