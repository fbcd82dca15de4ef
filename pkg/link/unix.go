package link

import (
	"os"

	"github.com/arthur-debert/claude-bridge/pkg/errors"
)

// unixLinker uses symbolic links for both directories and files, which are
// unprivileged on every Unix-like platform
type unixLinker struct{}

func (l *unixLinker) CreateDirLink(source, dest string) error {
	if err := os.Symlink(source, dest); err != nil {
		return errors.Wrap(err, errors.ErrLinkCreate, "failed to create directory link").
			WithDetail("source", source).
			WithDetail("dest", dest)
	}
	return nil
}

func (l *unixLinker) CreateFileLink(source, dest string) error {
	if err := os.Symlink(source, dest); err != nil {
		return errors.Wrap(err, errors.ErrLinkCreate, "failed to create file link").
			WithDetail("source", source).
			WithDetail("dest", dest)
	}
	return nil
}

func (l *unixLinker) Remove(path string) error {
	info, err := os.Lstat(path)
	if err != nil {
		return errors.Wrap(err, errors.ErrLinkRemove, "cannot stat link entry").
			WithDetail("path", path)
	}

	// os.Remove unlinks symlinks and files, and only deletes directories
	// when empty, so a real populated directory is never destroyed here.
	if info.Mode()&os.ModeSymlink == 0 && info.IsDir() {
		if err := os.Remove(path); err != nil {
			return errors.Wrap(err, errors.ErrLinkRemove, "refusing to remove non-empty directory").
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
