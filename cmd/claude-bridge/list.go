package claudebridge

import (
	stderrors "errors"
	"fmt"
	"io/fs"

	"github.com/arthur-debert/claude-bridge/pkg/bridge"
	"github.com/arthur-debert/claude-bridge/pkg/style"
	"github.com/spf13/cobra"
)

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: MsgListShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := newEnv()
			if err != nil {
				return err
			}

			plugins, err := bridge.List(e.fs, e.paths.BridgePluginsDir())
			if err != nil {
				// No destination directory means nothing has been synced yet
				if stderrors.Is(err, fs.ErrNotExist) {
					fmt.Fprintln(cmd.OutOrStdout(), style.MutedStyle.Render("No plugins bridged yet. Run 'sync' first."))
					return nil
				}
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), style.NewTerminalRenderer().RenderPluginList(plugins))
			return nil
		},
	}
}
