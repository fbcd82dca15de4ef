package claudebridge

import (
	"fmt"

	"github.com/arthur-debert/claude-bridge/pkg/bridge"
	"github.com/arthur-debert/claude-bridge/pkg/logging"
	"github.com/arthur-debert/claude-bridge/pkg/style"
	"github.com/spf13/cobra"
)

func newSyncCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sync",
		Short: MsgSyncShort,
		Long:  MsgSyncLong,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := logging.GetLogger("cmd.sync")

			e, err := newEnv()
			if err != nil {
				return err
			}

			logger.Info().
				Str("marketplace", e.paths.MarketplaceDir()).
				Str("plugins", e.paths.BridgePluginsDir()).
				Str("workflows", e.paths.WorkflowsDir()).
				Msg("Starting sync")

			fmt.Fprintln(cmd.OutOrStdout(), style.TitleStyle.Render("Claude-Antigravity Bridge Sync"))
			fmt.Fprintf(cmd.OutOrStdout(), "  Source   : %s\n", style.PathStyle.Render(e.paths.MarketplaceDir()))
			fmt.Fprintf(cmd.OutOrStdout(), "  Plugins  : %s\n", style.PathStyle.Render(e.paths.BridgePluginsDir()))
			fmt.Fprintf(cmd.OutOrStdout(), "  Workflows: %s\n\n", style.PathStyle.Render(e.paths.WorkflowsDir()))

			result, err := bridge.Sync(e.fs, e.linker, e.scanner(), e.paths)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), style.NewTerminalRenderer().RenderSyncResult(result))
			return nil
		},
	}
}
