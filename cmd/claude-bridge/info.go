package claudebridge

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/arthur-debert/claude-bridge/pkg/bridge"
	"github.com/arthur-debert/claude-bridge/pkg/errors"
	"github.com/arthur-debert/claude-bridge/pkg/hooks"
	"github.com/arthur-debert/claude-bridge/pkg/style"
	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"
)

func newInfoCmd() *cobra.Command {
	var showReadme bool

	cmd := &cobra.Command{
		Use:   "info <plugin>",
		Short: MsgInfoShort,
		Long:  MsgInfoLong,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := newEnv()
			if err != nil {
				return err
			}

			pluginPath, err := bridge.Resolve(e.fs, e.paths.BridgePluginsDir(), args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, style.TitleStyle.Render(filepath.Base(pluginPath)))
			fmt.Fprintln(out, style.PathStyle.Render(pluginPath))
			fmt.Fprintln(out)

			printStructure(cmd, e, pluginPath)
			printHooks(cmd, e, pluginPath)

			if showReadme {
				return printReadme(cmd, e, pluginPath)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&showReadme, "readme", false, MsgFlagReadme)

	return cmd
}

// printStructure lists the plugin's top-level entries, directories first
func printStructure(cmd *cobra.Command, e *env, pluginPath string) {
	out := cmd.OutOrStdout()

	entries, err := e.fs.ReadDir(pluginPath)
	if err != nil {
		fmt.Fprintln(out, style.MutedStyle.Render("  (unreadable)"))
		return
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].IsDir() != entries[j].IsDir() {
			return entries[i].IsDir()
		}
		return entries[i].Name() < entries[j].Name()
	})

	fmt.Fprintln(out, "Structure:")
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() {
			name += "/"
			if count := childCount(e, filepath.Join(pluginPath, entry.Name())); count > 0 {
				name += style.MutedStyle.Render(fmt.Sprintf(" (%d entries)", count))
			}
		}
		fmt.Fprintf(out, "  %s %s\n", style.InfoIndicator, name)
	}
	fmt.Fprintln(out)
}

func childCount(e *env, dir string) int {
	entries, err := e.fs.ReadDir(dir)
	if err != nil {
		return 0
	}
	return len(entries)
}

// printHooks summarizes the hooks descriptor when the plugin carries one
func printHooks(cmd *cobra.Command, e *env, pluginPath string) {
	out := cmd.OutOrStdout()

	file, err := hooks.Load(e.fs, pluginPath)
	if err != nil {
		if errors.IsErrorCode(err, errors.ErrNotFound) {
			return
		}
		fmt.Fprintf(out, "Hooks: %s\n\n", style.WarningStyle.Render("unreadable descriptor"))
		return
	}

	fmt.Fprintln(out, "Hooks:")
	for _, event := range file.EventNames() {
		var commands []string
		for _, matcher := range file.Events[event] {
			for _, hook := range matcher.Hooks {
				if hook.Command != "" {
					commands = append(commands, filepath.Base(hook.Command))
				}
			}
		}
		fmt.Fprintf(out, "  %s %s", style.InfoIndicator, event)
		if len(commands) > 0 {
			fmt.Fprintf(out, " %s", style.MutedStyle.Render("→ "+strings.Join(commands, ", ")))
		}
		fmt.Fprintln(out)
	}
	fmt.Fprintln(out)
}

// printReadme renders the plugin README through the markdown renderer
func printReadme(cmd *cobra.Command, e *env, pluginPath string) error {
	data, err := e.fs.ReadFile(filepath.Join(pluginPath, "README.md"))
	if err != nil {
		fmt.Fprintln(cmd.OutOrStdout(), style.MutedStyle.Render("No README.md in this plugin."))
		return nil
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(100),
	)
	if err != nil {
		return errors.Wrap(err, errors.ErrInternal, "cannot build markdown renderer")
	}

	rendered, err := renderer.Render(string(data))
	if err != nil {
		return errors.Wrap(err, errors.ErrInternal, "cannot render README")
	}

	fmt.Fprint(cmd.OutOrStdout(), rendered)
	return nil
}
