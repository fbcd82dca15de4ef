package claudebridge

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort = "Bridge Claude Code marketplace plugins into Antigravity"
	MsgRootLong = `claude-bridge mirrors plugins installed through the Claude Code
marketplace into Antigravity's skills directory, and exposes each plugin
command file as a global workflow. Everything is materialized as filesystem
links; re-running sync converges the destinations onto the current
marketplace contents.`

	MsgSyncShort = "Sync plugins and workflows from the Claude marketplace"
	MsgSyncLong = `Sync scans the Claude marketplace, links every recognized plugin into
the bridge plugins directory and every plugin command file into the global
workflows directory, then removes links whose source has disappeared.

Sync is idempotent: re-running it with no marketplace changes performs no
link operations.`

	MsgListShort = "List all bridged plugins"
	MsgInfoShort = "Show details of a specific plugin"
	MsgInfoLong = `Info resolves a plugin by full or partial name and shows its directory
structure, its hooks summary when a hooks descriptor is present and,
with --readme, its rendered README.`

	MsgRunShort = "Execute a plugin script with env bridging"
	MsgRunLong = `Run resolves a plugin, then executes a script inside it with
CLAUDE_PLUGIN_ROOT and CLAUDE_PROJECT_DIR set, choosing the interpreter
by the script's file extension. The script's exit code is forwarded.`

	MsgGenConfigShort = "Print or write the default configuration file"
	MsgTranslateShort = "Translate README.md to README_en.md"

	MsgVersionShort    = "Print version information"
	MsgCompletionShort = "Generate shell completion script"
	MsgManShort        = "Generate man page"

	// Flag descriptions
	MsgFlagVerbose    = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagPlugin     = "Plugin name (full or partial)"
	MsgFlagScript     = "Relative path to script in the plugin"
	MsgFlagProjectDir = "Override project directory"
	MsgFlagStdinData  = "Data to pipe to script stdin"
	MsgFlagReadme     = "Render the plugin README"
	MsgFlagWrite      = "Write the config file instead of printing it"
	MsgFlagEffective  = "Show the effective merged configuration"
)
