package claudebridge

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/arthur-debert/claude-bridge/pkg/config"
	"github.com/arthur-debert/claude-bridge/pkg/errors"
	"github.com/arthur-debert/claude-bridge/pkg/style"
	toml "github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"
)

func newGenConfigCmd() *cobra.Command {
	var (
		write     bool
		effective bool
	)

	cmd := &cobra.Command{
		Use:   "gen-config",
		Short: MsgGenConfigShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			content := config.DefaultTOML()

			if effective {
				cfg, err := config.Load()
				if err != nil {
					return err
				}
				data, err := toml.Marshal(cfg)
				if err != nil {
					return errors.Wrap(err, errors.ErrInternal, "cannot marshal configuration")
				}
				content = string(data)
			}

			if !write {
				fmt.Fprint(cmd.OutOrStdout(), content)
				return nil
			}

			dir := config.ConfigDir()
			if err := os.MkdirAll(dir, 0755); err != nil {
				return errors.Wrap(err, errors.ErrDirCreate, "cannot create config directory").
					WithDetail("path", dir)
			}

			target := filepath.Join(dir, "config.toml")
			if _, err := os.Stat(target); err == nil {
				return errors.New(errors.ErrInvalidInput, "config file already exists").
					WithDetail("path", target)
			}

			if err := os.WriteFile(target, []byte(content), 0644); err != nil {
				return errors.Wrap(err, errors.ErrFileAccess, "cannot write config file").
					WithDetail("path", target)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s Wrote %s\n",
				style.SuccessIndicator, style.PathStyle.Render(target))
			return nil
		},
	}

	cmd.Flags().BoolVar(&write, "write", false, MsgFlagWrite)
	cmd.Flags().BoolVar(&effective, "effective", false, MsgFlagEffective)

	return cmd
}
