package claudebridge

import (
	"fmt"

	"github.com/arthur-debert/claude-bridge/internal/version"
	"github.com/arthur-debert/claude-bridge/pkg/config"
	"github.com/arthur-debert/claude-bridge/pkg/filesystem"
	"github.com/arthur-debert/claude-bridge/pkg/link"
	"github.com/arthur-debert/claude-bridge/pkg/logging"
	"github.com/arthur-debert/claude-bridge/pkg/marketplace"
	"github.com/arthur-debert/claude-bridge/pkg/paths"
	"github.com/arthur-debert/claude-bridge/pkg/types"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"
)

// env bundles the collaborators every command needs
type env struct {
	cfg    *config.Config
	paths  paths.Paths
	fs     types.FS
	linker link.Linker
}

// newEnv loads configuration and wires the shared collaborators
func newEnv() (*env, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	p, err := paths.New(cfg)
	if err != nil {
		return nil, err
	}
	return &env{
		cfg:    cfg,
		paths:  p,
		fs:     filesystem.NewOS(),
		linker: link.New(),
	}, nil
}

// scanner builds the marketplace scanner with the configured classifier
// extensions
func (e *env) scanner() *marketplace.Scanner {
	classifier := marketplace.NewClassifier(e.cfg.Scan.ExtraExclude, e.cfg.Scan.ExtraIndicators)
	return marketplace.NewScanner(e.fs, classifier)
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	var verbosity int

	initTemplateFormatting()

	rootCmd := &cobra.Command{
		Use:     "claude-bridge",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			_ = cmd.Help()
			return fmt.Errorf("no command specified")
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", MsgFlagVerbose)

	rootCmd.AddCommand(newSyncCmd())
	rootCmd.AddCommand(newListCmd())
	rootCmd.AddCommand(newInfoCmd())
	rootCmd.AddCommand(newRunCmd())
	rootCmd.AddCommand(newGenConfigCmd())
	rootCmd.AddCommand(newTranslateReadmeCmd())
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCompletionCmd())
	rootCmd.AddCommand(newManCmd())

	return rootCmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: MsgVersionShort,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("claude-bridge version %s\n", version.Version)
			fmt.Printf("  commit: %s\n", version.Commit)
			fmt.Printf("  built:  %s\n", version.Date)
		},
	}
}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:                   "completion [bash|zsh|fish|powershell]",
		Short:                 MsgCompletionShort,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		Run: func(cmd *cobra.Command, args []string) {
			switch args[0] {
			case "bash":
				if err := cmd.Root().GenBashCompletion(cmd.OutOrStdout()); err != nil {
					log.Error().Err(err).Msg("Failed to generate bash completion")
				}
			case "zsh":
				if err := cmd.Root().GenZshCompletion(cmd.OutOrStdout()); err != nil {
					log.Error().Err(err).Msg("Failed to generate zsh completion")
				}
			case "fish":
				if err := cmd.Root().GenFishCompletion(cmd.OutOrStdout(), true); err != nil {
					log.Error().Err(err).Msg("Failed to generate fish completion")
				}
			case "powershell":
				if err := cmd.Root().GenPowerShellCompletionWithDesc(cmd.OutOrStdout()); err != nil {
					log.Error().Err(err).Msg("Failed to generate powershell completion")
				}
			}
		},
	}
}

func newManCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "man",
		Short: MsgManShort,
		RunE: func(cmd *cobra.Command, args []string) error {
			header := &doc.GenManHeader{
				Title:   "CLAUDE-BRIDGE",
				Section: "1",
			}
			return doc.GenManTree(cmd.Root(), header, "/tmp")
		},
	}
}
