package claudebridge

import (
	"os"

	"github.com/arthur-debert/claude-bridge/pkg/bridge"
	"github.com/arthur-debert/claude-bridge/pkg/runner"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func newRunCmd() *cobra.Command {
	var (
		plugin     string
		script     string
		projectDir string
		stdinData  string
	)

	cmd := &cobra.Command{
		Use:   "run --plugin <name> --script <path> [-- args...]",
		Short: MsgRunShort,
		Long:  MsgRunLong,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := newEnv()
			if err != nil {
				return err
			}

			pluginPath, err := bridge.Resolve(e.fs, e.paths.BridgePluginsDir(), plugin)
			if err != nil {
				return err
			}

			code, err := runner.Run(runner.Options{
				PluginRoot: pluginPath,
				Script:     script,
				ProjectDir: projectDir,
				StdinData:  stdinData,
				ExtraArgs:  args,
			})
			if err != nil {
				return err
			}
			if code != 0 {
				log.Debug().Int("exit_code", code).Msg("Script exited non-zero")
				os.Exit(code)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&plugin, "plugin", "", MsgFlagPlugin)
	cmd.Flags().StringVar(&script, "script", "", MsgFlagScript)
	cmd.Flags().StringVar(&projectDir, "project-dir", "", MsgFlagProjectDir)
	cmd.Flags().StringVar(&stdinData, "stdin-data", "", MsgFlagStdinData)
	_ = cmd.MarkFlagRequired("plugin")
	_ = cmd.MarkFlagRequired("script")

	return cmd
}
