package marketplace

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/arthur-debert/claude-bridge/pkg/errors"
	"github.com/arthur-debert/claude-bridge/pkg/logging"
	"github.com/arthur-debert/claude-bridge/pkg/types"
)

// Scanner walks the marketplace tree and produces the ordered candidate
// sequences that drive reconciliation
type Scanner struct {
	fs         types.FS
	classifier *Classifier
}

// NewScanner creates a scanner over the given filesystem and classifier
func NewScanner(filesystem types.FS, classifier *Classifier) *Scanner {
	return &Scanner{fs: filesystem, classifier: classifier}
}

// Scan walks marketplaceRoot and returns plugin and workflow candidates in
// deterministic order: marketplace entries, plugin directories and command
// files each sorted lexicographically. It fails only when the root itself is
// unreadable; per-entry errors are logged and the entry skipped.
func (s *Scanner) Scan(marketplaceRoot string) ([]types.PluginCandidate, []types.WorkflowCandidate, error) {
	logger := logging.GetLogger("marketplace.scanner")

	entries, err := s.fs.ReadDir(marketplaceRoot)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil, errors.Wrap(err, errors.ErrNotFound, "marketplace root does not exist").
				WithDetail("path", marketplaceRoot)
		}
		return nil, nil, errors.Wrap(err, errors.ErrSourceRead, "cannot read marketplace root").
			WithDetail("path", marketplaceRoot)
	}

	var plugins []types.PluginCandidate
	var workflows []types.WorkflowCandidate

	for _, entry := range sortedDirs(entries) {
		marketplaceName := entry.Name()
		if strings.HasPrefix(marketplaceName, ".") {
			continue
		}
		if !validName(marketplaceName) {
			logger.Warn().Str("marketplace", marketplaceName).
				Msg("Marketplace name contains the separator sequence, skipping")
			continue
		}

		logger.Debug().Str("marketplace", marketplaceName).Msg("Scanning marketplace")

		pluginBase := filepath.Join(marketplaceRoot, marketplaceName)
		if info, err := s.fs.Stat(filepath.Join(pluginBase, "plugins")); err == nil && info.IsDir() {
			pluginBase = filepath.Join(pluginBase, "plugins")
		}

		pluginEntries, err := s.fs.ReadDir(pluginBase)
		if err != nil {
			logger.Warn().Err(err).Str("path", pluginBase).Msg("Cannot read marketplace entry, skipping")
			continue
		}

		for _, pluginEntry := range sortedDirs(pluginEntries) {
			pluginName := pluginEntry.Name()
			sourcePath := filepath.Join(pluginBase, pluginName)
			if !s.classifier.IsPluginDir(s.fs, sourcePath) {
				continue
			}
			if !validName(pluginName) {
				logger.Warn().Str("plugin", pluginName).
					Msg("Plugin name contains the separator sequence, skipping")
				continue
			}

			plugins = append(plugins, types.PluginCandidate{
				MarketplaceName: marketplaceName,
				PluginName:      pluginName,
				SourcePath:      sourcePath,
				BridgeName:      BridgeName(marketplaceName, pluginName),
			})

			workflows = append(workflows, s.scanCommands(marketplaceName, pluginName, sourcePath)...)
		}
	}

	logger.Info().
		Int("plugins", len(plugins)).
		Int("workflows", len(workflows)).
		Msg("Marketplace scan complete")

	return plugins, workflows, nil
}

// scanCommands collects the *.md command files of one plugin as workflow
// candidates
func (s *Scanner) scanCommands(marketplaceName, pluginName, pluginPath string) []types.WorkflowCandidate {
	logger := logging.GetLogger("marketplace.scanner")

	commandsDir := filepath.Join(pluginPath, "commands")
	info, err := s.fs.Stat(commandsDir)
	if err != nil || !info.IsDir() {
		return nil
	}

	entries, err := s.fs.ReadDir(commandsDir)
	if err != nil {
		logger.Warn().Err(err).Str("path", commandsDir).Msg("Cannot read commands directory, skipping")
		return nil
	}

	var workflows []types.WorkflowCandidate
	for _, entry := range sortedFiles(entries) {
		name := entry.Name()
		if filepath.Ext(name) != ".md" {
			continue
		}
		workflows = append(workflows, types.WorkflowCandidate{
			BridgeName: WorkflowName(marketplaceName, pluginName, name),
			SourcePath: filepath.Join(commandsDir, name),
		})
	}
	return workflows
}

// sortedDirs returns the directory entries sorted by name
func sortedDirs(entries []fs.DirEntry) []fs.DirEntry {
	var dirs []fs.DirEntry
	for _, entry := range entries {
		if entry.IsDir() {
			dirs = append(dirs, entry)
		}
	}
	sort.Slice(dirs, func(i, j int) bool { return dirs[i].Name() < dirs[j].Name() })
	return dirs
}

// sortedFiles returns the non-directory entries sorted by name
func sortedFiles(entries []fs.DirEntry) []fs.DirEntry {
	var files []fs.DirEntry
	for _, entry := range entries {
		if !entry.IsDir() {
			files = append(files, entry)
		}
	}
	sort.Slice(files, func(i, j int) bool { return files[i].Name() < files[j].Name() })
	return files
}
