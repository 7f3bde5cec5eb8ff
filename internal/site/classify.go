package site

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	serrors "git.home.luguber.info/inful/sitegen/internal/errors"
	"git.home.luguber.info/inful/sitegen/internal/logfields"
)

// Classify lists dir and every real subdirectory below it, returning one flat,
// lexically ordered list of pages, files and symlinked directories. Real
// directories are descended into rather than returned. A nil skip uses
// DefaultSkip. Any I/O failure aborts the walk and no entries are returned.
func Classify(dir string, skip SkipFunc) ([]Entry, error) {
	if skip == nil {
		skip = DefaultSkip
	}
	var entries []Entry
	if err := classifyDir(dir, skip, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

func classifyDir(dir string, skip SkipFunc, out *[]Entry) error {
	dirEntries, err := os.ReadDir(dir)
	if err != nil {
		return serrors.IOFailed("read directory", dir, err)
	}

	for _, de := range dirEntries {
		name := de.Name()
		path := filepath.Join(dir, name)

		if skip(name) {
			slog.Debug("Ignoring entry", logfields.Path(path))
			continue
		}

		// The suffix wins over whatever the entry actually is on disk.
		if IsPage(name) {
			*out = append(*out, Entry{Kind: KindPage, Path: path})
			continue
		}

		mode := de.Type()
		switch {
		case mode.IsDir():
			if err := classifyDir(path, skip, out); err != nil {
				return err
			}
		case mode.IsRegular():
			*out = append(*out, Entry{Kind: KindFile, Path: path})
		case mode&fs.ModeSymlink != 0:
			kind, err := classifySymlink(path)
			if err != nil {
				return err
			}
			*out = append(*out, Entry{Kind: kind, Path: path})
		default:
			slog.Debug("Ignoring special file", logfields.Path(path), slog.String("mode", mode.String()))
		}
	}
	return nil
}

// classifySymlink labels a link by the type of its canonical target. The
// caller keeps the link path as the entry's identity.
func classifySymlink(path string) (Kind, error) {
	target, err := filepath.EvalSymlinks(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return 0, serrors.IOFailed("resolve symlink", path, fmt.Errorf("%w: %w", ErrDanglingSymlink, err))
		}
		return 0, serrors.IOFailed("resolve symlink", path, err)
	}

	info, err := os.Stat(target)
	if err != nil {
		return 0, serrors.IOFailed("stat symlink target", target, err)
	}

	switch {
	case info.Mode().IsRegular():
		return KindFile, nil
	case info.IsDir():
		return KindDir, nil
	default:
		return 0, serrors.Unexpected("unsupported symlink target", ErrUnsupportedSymlinkTarget).
			WithContext("path", path).
			WithContext("target", target)
	}
}
