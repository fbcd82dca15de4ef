// Package reconcile brings a destination directory into agreement with the
// currently valid link candidates. Planning is a pure function over the
// candidate list and the destination's current names, which keeps the core
// unit-testable; applying the plan is the only effectful step. The
// filesystem itself is the sole source of truth: every run recomputes
// validity from scratch, so an interrupted pass is repaired by the next one.
//
// Concurrent runs against the same destination are not synchronized and
// are unsupported.
package reconcile

import (
	"os"
	"path/filepath"
	"sort"

	"github.com/arthur-debert/claude-bridge/pkg/errors"
	"github.com/arthur-debert/claude-bridge/pkg/link"
	"github.com/arthur-debert/claude-bridge/pkg/logging"
	"github.com/arthur-debert/claude-bridge/pkg/types"
	"github.com/rs/zerolog"
)

// LinkKind selects the link primitive used for a candidate
type LinkKind int

const (
	// DirLink links a whole plugin directory
	DirLink LinkKind = iota

	// FileLink links a single workflow file
	FileLink
)

// Candidate is the reconciler's view of one valid source: the destination
// name it must appear under, where it points, and which link primitive
// realizes it.
type Candidate struct {
	Name       string
	SourcePath string
	Kind       LinkKind
}

// Plan holds the actions computed for one destination: links to create in
// scan order, names already present, and stale names to remove.
type Plan struct {
	Create []Candidate
	Exists []string
	Remove []string
}

// RemoveAny is the cleanup predicate for destinations wholly owned by the
// bridge, where every non-valid entry is stale
func RemoveAny(string) bool { return true }

// Compute derives the plan from the valid candidates and the destination's
// current entry names. Only names accepted by removable are eligible for
// cleanup; everything else is foreign and left alone. Pure.
func Compute(candidates []Candidate, existing []string, removable func(name string) bool) Plan {
	valid := make(map[string]struct{}, len(candidates))
	existingSet := make(map[string]struct{}, len(existing))
	for _, name := range existing {
		existingSet[name] = struct{}{}
	}

	var plan Plan
	for _, c := range candidates {
		if _, seen := valid[c.Name]; seen {
			continue
		}
		valid[c.Name] = struct{}{}

		if _, present := existingSet[c.Name]; present {
			plan.Exists = append(plan.Exists, c.Name)
		} else {
			plan.Create = append(plan.Create, c)
		}
	}

	for _, name := range existing {
		if _, ok := valid[name]; ok {
			continue
		}
		if removable(name) {
			plan.Remove = append(plan.Remove, name)
		}
	}
	sort.Strings(plan.Remove)

	return plan
}

// Run reconciles destRoot against the candidates: it ensures the destination
// exists, plans against its current contents, then creates missing links and
// removes stale ones. Individual link failures are logged and counted but
// never abort the pass; the returned error covers only an unusable
// destination.
func Run(fsys types.FS, linker link.Linker, destRoot string, candidates []Candidate, removable func(name string) bool) (types.ReconcileStats, error) {
	logger := logging.GetLogger("reconcile")
	var stats types.ReconcileStats

	if err := fsys.MkdirAll(destRoot, 0755); err != nil {
		return stats, errors.Wrap(err, errors.ErrDirCreate, "cannot create destination directory").
			WithDetail("path", destRoot)
	}

	existing, err := listNames(fsys, destRoot)
	if err != nil {
		return stats, errors.Wrap(err, errors.ErrFileAccess, "cannot list destination directory").
			WithDetail("path", destRoot)
	}

	plan := Compute(candidates, existing, removable)
	return apply(fsys, linker, destRoot, plan, logger), nil
}

// listNames returns the entry names at destRoot. Lstat semantics apply:
// dangling links are present, so a broken link at a valid name counts as
// already existing and is left for the user to repair by removing it.
func listNames(fsys types.FS, destRoot string) ([]string, error) {
	entries, err := fsys.ReadDir(destRoot)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		names = append(names, entry.Name())
	}
	return names, nil
}

// apply executes the plan: creation first for log readability, then cleanup.
// The two act on disjoint name sets by construction.
func apply(fsys types.FS, linker link.Linker, destRoot string, plan Plan, logger zerolog.Logger) types.ReconcileStats {
	stats := types.ReconcileStats{Existing: len(plan.Exists)}

	for _, c := range plan.Create {
		dest := filepath.Join(destRoot, c.Name)

		var err error
		switch c.Kind {
		case FileLink:
			err = linker.CreateFileLink(c.SourcePath, dest)
		default:
			err = linker.CreateDirLink(c.SourcePath, dest)
		}
		if err != nil {
			logger.Error().Err(err).Str("name", c.Name).Msg("Failed to create link")
			stats.Failed++
			continue
		}

		logger.Info().Str("name", c.Name).Str("source", c.SourcePath).Msg("Linked")
		stats.Linked++
	}

	for _, name := range plan.Remove {
		if err := linker.Remove(filepath.Join(destRoot, name)); err != nil {
			logger.Error().Err(err).Str("name", name).Msg("Failed to remove stale link")
			stats.Failed++
			continue
		}

		logger.Info().Str("name", name).Msg("Removed stale link")
		stats.Removed++
	}

	return stats
}
