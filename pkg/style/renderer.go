package style

import (
	"fmt"
	"strings"

	"github.com/arthur-debert/claude-bridge/pkg/types"
	"github.com/pterm/pterm"
)

// Renderer defines the interface for rendering bridge output
type Renderer interface {
	RenderPluginList(plugins []types.PluginInfo) string
	RenderSyncResult(result types.SyncResult) string
}

// TerminalRenderer implements Renderer with rich terminal output
type TerminalRenderer struct{}

// NewTerminalRenderer creates a new terminal renderer
func NewTerminalRenderer() *TerminalRenderer {
	return &TerminalRenderer{}
}

// RenderPluginList renders the bridged plugins with their resource tags
func (r *TerminalRenderer) RenderPluginList(plugins []types.PluginInfo) string {
	if len(plugins) == 0 {
		return MutedStyle.Render("No plugins bridged yet. Run 'sync' first.")
	}

	var result strings.Builder
	result.WriteString(TitleStyle.Render(fmt.Sprintf("%d bridged plugins", len(plugins))) + "\n\n")

	for _, plugin := range plugins {
		tag := "minimal"
		if len(plugin.Resources) > 0 {
			tag = strings.Join(plugin.Resources, ", ")
		}

		result.WriteString(fmt.Sprintf("%s %s  %s\n",
			pterm.Info.Prefix.Text,
			pterm.Bold.Sprint(plugin.Name),
			MutedStyle.Render("["+tag+"]")))
	}

	return strings.TrimRight(result.String(), "\n")
}

// RenderSyncResult renders the per-destination reconciliation counts
func (r *TerminalRenderer) RenderSyncResult(result types.SyncResult) string {
	var out strings.Builder
	out.WriteString(SuccessIndicator + " " + TitleStyle.Render("Sync complete") + "\n")
	out.WriteString(renderStats("Plugins", result.Plugins))
	out.WriteString(renderStats("Workflows", result.Workflows))
	return strings.TrimRight(out.String(), "\n")
}

func renderStats(label string, stats types.ReconcileStats) string {
	line := fmt.Sprintf("  %-9s %d bridged (%d new, %d existing, %d removed)",
		label, stats.Total(), stats.Linked, stats.Existing, stats.Removed)
	if stats.Failed > 0 {
		line += " " + ErrorStyle.Render(fmt.Sprintf("%d failed", stats.Failed))
	}
	return line + "\n"
}
