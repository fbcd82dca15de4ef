// Package runner executes a plugin script with the bridged environment: a
// thin wrapper that copies the environment, injects the plugin root and
// project directory variables, picks an interpreter by file extension,
// spawns the process and forwards its exit code.
package runner

import (
	stderrors "errors"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/arthur-debert/claude-bridge/pkg/errors"
	"github.com/arthur-debert/claude-bridge/pkg/logging"
)

// Environment variables injected into the child process
const (
	EnvPluginRoot = "CLAUDE_PLUGIN_ROOT"
	EnvProjectDir = "CLAUDE_PROJECT_DIR"
)

// Options configures one script execution
type Options struct {
	// PluginRoot is the resolved absolute plugin directory
	PluginRoot string

	// Script is the script path relative to PluginRoot
	Script string

	// ProjectDir is the working directory for the child; empty means the
	// current directory
	ProjectDir string

	// StdinData, when non-empty, is piped to the child's stdin
	StdinData string

	// ExtraArgs are passed through to the script
	ExtraArgs []string
}

// Run executes the script and returns its exit code
func Run(opts Options) (int, error) {
	logger := logging.GetLogger("runner")

	scriptPath := filepath.Join(opts.PluginRoot, opts.Script)
	if _, err := os.Stat(scriptPath); err != nil {
		return 0, errors.Wrap(err, errors.ErrScriptNotFound, "script not found").
			WithDetail("path", scriptPath)
	}

	projectDir := opts.ProjectDir
	if projectDir == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return 0, errors.Wrap(err, errors.ErrFileAccess, "cannot determine working directory")
		}
		projectDir = cwd
	}
	projectDir, err := filepath.Abs(projectDir)
	if err != nil {
		return 0, errors.Wrap(err, errors.ErrFileAccess, "cannot resolve project directory")
	}

	argv := commandFor(scriptPath, opts.ExtraArgs)
	logger.Debug().
		Strs("argv", argv).
		Str("projectDir", projectDir).
		Msg("Executing plugin script")

	cmd := exec.Command(argv[0], argv[1:]...)
	cmd.Dir = projectDir
	cmd.Env = append(os.Environ(),
		EnvPluginRoot+"="+opts.PluginRoot,
		EnvProjectDir+"="+projectDir,
	)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if opts.StdinData != "" {
		cmd.Stdin = strings.NewReader(opts.StdinData)
	} else {
		cmd.Stdin = os.Stdin
	}

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if stderrors.As(err, &exitErr) {
			return exitErr.ExitCode(), nil
		}
		return 0, errors.Wrap(err, errors.ErrInternal, "failed to start script")
	}
	return 0, nil
}

// commandFor picks the interpreter for a script by file extension
func commandFor(scriptPath string, extraArgs []string) []string {
	var argv []string

	switch strings.ToLower(filepath.Ext(scriptPath)) {
	case ".sh", "":
		argv = []string{bashExecutable(), scriptPath}
	case ".py":
		argv = []string{"python3", scriptPath}
	case ".ps1":
		argv = []string{"powershell", "-ExecutionPolicy", "Bypass", "-File", scriptPath}
	default:
		argv = []string{scriptPath}
	}

	return append(argv, extraArgs...)
}

// bashExecutable prefers Git Bash on Windows, where bash is not on the
// default PATH
func bashExecutable() string {
	if runtime.GOOS != "windows" {
		return "bash"
	}
	programFiles := os.Getenv("ProgramFiles")
	if programFiles == "" {
		programFiles = `C:\Program Files`
	}
	gitBash := filepath.Join(programFiles, "Git", "bin", "bash.exe")
	if _, err := os.Stat(gitBash); err == nil {
		return gitBash
	}
	return "bash"
}
