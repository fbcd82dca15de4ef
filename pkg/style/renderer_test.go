// pkg/style/renderer_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: None
// PURPOSE: Test terminal rendering of plugin lists and sync counts

package style

import (
	"testing"

	"github.com/arthur-debert/claude-bridge/pkg/types"
	"github.com/stretchr/testify/assert"
)

func TestRenderPluginList(t *testing.T) {
	r := NewTerminalRenderer()

	t.Run("empty", func(t *testing.T) {
		out := r.RenderPluginList(nil)
		assert.Contains(t, out, "No plugins bridged yet")
	})

	t.Run("resources_and_minimal_tag", func(t *testing.T) {
		out := r.RenderPluginList([]types.PluginInfo{
			{Name: "mkt1__full", Resources: []string{"skills", "commands"}},
			{Name: "mkt1__bare"},
		})

		assert.Contains(t, out, "2 bridged plugins")
		assert.Contains(t, out, "mkt1__full")
		assert.Contains(t, out, "skills, commands")
		assert.Contains(t, out, "[minimal]")
	})
}

func TestRenderSyncResult(t *testing.T) {
	r := NewTerminalRenderer()

	out := r.RenderSyncResult(types.SyncResult{
		Plugins:   types.ReconcileStats{Linked: 2, Existing: 3, Removed: 1},
		Workflows: types.ReconcileStats{Existing: 4, Failed: 1},
	})

	assert.Contains(t, out, "Sync complete")
	assert.Contains(t, out, "Plugins   5 bridged (2 new, 3 existing, 1 removed)")
	assert.Contains(t, out, "Workflows 4 bridged (0 new, 4 existing, 0 removed)")
	assert.Contains(t, out, "1 failed")
}
