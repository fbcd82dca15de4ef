package claudebridge

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/arthur-debert/claude-bridge/pkg/errors"
	"github.com/arthur-debert/claude-bridge/pkg/style"
	"github.com/spf13/cobra"
)

func newTranslateReadmeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "translate-readme",
		Short: MsgTranslateShort,
		Long: `Translate-readme prepares the translation of the repository README into
README_en.md. The command only stages the context; the actual translation
is performed by the agent that observes its output.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cwd, err := os.Getwd()
			if err != nil {
				return errors.Wrap(err, errors.ErrFileAccess, "cannot determine working directory")
			}

			source := filepath.Join(cwd, "README.md")
			target := filepath.Join(cwd, "README_en.md")

			if _, err := os.Stat(source); err != nil {
				return errors.New(errors.ErrNotFound, "README.md not found").
					WithDetail("path", source)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, style.TitleStyle.Render("Automated translation"))
			fmt.Fprintf(out, "  Source: %s\n", style.PathStyle.Render(source))
			fmt.Fprintf(out, "  Target: %s\n", style.PathStyle.Render(target))
			fmt.Fprintln(out)
			fmt.Fprintf(out, "%s Prepared translation context.\n", style.SuccessIndicator)
			fmt.Fprintf(out, "%s Waiting for the agent to perform the translation.\n", style.WarningIndicator)
			return nil
		},
	}
}
