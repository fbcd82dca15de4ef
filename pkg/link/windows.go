package link

import (
	"os"
	"os/exec"

	"github.com/arthur-debert/claude-bridge/pkg/errors"
)

// windowsLinker uses directory junctions for directories and hard links for
// files. Both work without administrator rights, unlike Windows symbolic
// links. A hard link shares inode-level content rather than resolving by
// path, which is acceptable because workflow files are never edited in
// place by the bridge.
type windowsLinker struct{}

func (l *windowsLinker) CreateDirLink(source, dest string) error {
	cmd := exec.Command("cmd", "/c", "mklink", "/J", dest, source)
	if output, err := cmd.CombinedOutput(); err != nil {
		return errors.Wrap(err, errors.ErrLinkCreate, "failed to create directory junction").
			WithDetail("source", source).
			WithDetail("dest", dest).
			WithDetail("output", string(output))
	}
	return nil
}

func (l *windowsLinker) CreateFileLink(source, dest string) error {
	cmd := exec.Command("cmd", "/c", "mklink", "/H", dest, source)
	if output, err := cmd.CombinedOutput(); err != nil {
		return errors.Wrap(err, errors.ErrLinkCreate, "failed to create hard link").
			WithDetail("source", source).
			WithDetail("dest", dest).
			WithDetail("output", string(output))
	}
	return nil
}

func (l *windowsLinker) Remove(path string) error {
	info, err := os.Lstat(path)
	if err != nil {
		return errors.Wrap(err, errors.ErrLinkRemove, "cannot stat link entry").
			WithDetail("path", path)
	}

	// A junction presents as a directory; removing it as an empty directory
	// detaches the mount point without touching the target's contents.
	if info.IsDir() {
		if err := os.Remove(path); err != nil {
			return errors.Wrap(err, errors.ErrLinkRemove, "failed to remove junction").
				WithDetail("path", path)
		}
		return nil
	}

	if err := os.Remove(path); err != nil {
		return errors.Wrap(err, errors.ErrLinkRemove, "failed to remove link").
			WithDetail("path", path)
	}
	return nil
}
