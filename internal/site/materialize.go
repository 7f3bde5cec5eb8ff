package site

import (
	"bytes"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/natefinch/atomic"

	serrors "git.home.luguber.info/inful/sitegen/internal/errors"
	"git.home.luguber.info/inful/sitegen/internal/logfields"
	"git.home.luguber.info/inful/sitegen/internal/templates"
)

const (
	dirMode  fs.FileMode = 0o755
	pageMode fs.FileMode = 0o644
)

// Materializer writes classified entries into the output tree.
type Materializer struct {
	srcRoot string
	outRoot string
	engine  templates.Engine
	logger  *slog.Logger
}

// NewMaterializer creates a Materializer mirroring srcRoot into outRoot.
// Pages are looked up in engine by their slash-separated path relative to srcRoot.
func NewMaterializer(srcRoot, outRoot string, engine templates.Engine, logger *slog.Logger) *Materializer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Materializer{
		srcRoot: srcRoot,
		outRoot: outRoot,
		engine:  engine,
		logger:  logger,
	}
}

// Materialize performs the action matching the entry's kind and returns the
// destination path.
func (m *Materializer) Materialize(e Entry) (string, error) {
	switch e.Kind {
	case KindPage:
		return m.RenderPage(e.Path)
	case KindFile:
		return m.CopyFile(e.Path)
	case KindDir:
		return m.CopyDir(e.Path)
	default:
		return "", serrors.Unexpected(fmt.Sprintf("unknown entry kind %d", e.Kind), nil).
			WithContext("path", e.Path)
	}
}

// RenderPage renders the page template at path with an empty context. The
// output is only written, atomically, once rendering succeeded.
func (m *Materializer) RenderPage(path string) (string, error) {
	dst, err := OutputPath(m.srcRoot, m.outRoot, path)
	if err != nil {
		return "", err
	}
	if err := ensureParentDir(dst); err != nil {
		return "", err
	}

	rel, err := relativeTo(m.srcRoot, path)
	if err != nil {
		return "", err
	}
	name := filepath.ToSlash(rel)

	tpl, err := m.engine.Lookup(name)
	if err != nil {
		return "", serrors.TemplateLookupFailed(name, err)
	}

	var buf bytes.Buffer
	if err := tpl.Render(&buf); err != nil {
		return "", serrors.RenderFailed(name, err)
	}

	if err := atomic.WriteFile(dst, &buf); err != nil {
		return "", serrors.IOFailed("write page", dst, err)
	}
	// #nosec G302 -- published site content is world-readable.
	if err := os.Chmod(dst, pageMode); err != nil {
		return "", serrors.IOFailed("chmod page", dst, err)
	}

	m.logger.Info("Rendered page", logfields.Template(name), logfields.Output(dst))
	return dst, nil
}

// CopyFile copies the file at path byte for byte, overwriting the destination.
func (m *Materializer) CopyFile(path string) (string, error) {
	dst, err := OutputPath(m.srcRoot, m.outRoot, path)
	if err != nil {
		return "", err
	}
	if err := ensureParentDir(dst); err != nil {
		return "", err
	}
	if err := copyFile(path, dst); err != nil {
		return "", err
	}

	m.logger.Info("Copied file", logfields.Path(path), logfields.Output(dst))
	return dst, nil
}

// CopyDir mirrors the directory at path into the output tree. Nothing below
// it is skipped or rendered.
func (m *Materializer) CopyDir(path string) (string, error) {
	dst, err := OutputPath(m.srcRoot, m.outRoot, path)
	if err != nil {
		return "", err
	}
	if err := ensureParentDir(dst); err != nil {
		return "", err
	}
	outReal, err := canonical(m.outRoot)
	if err != nil {
		return "", serrors.IOFailed("resolve output directory", m.outRoot, err)
	}
	c := &treeCopier{outRoot: outReal, logger: m.logger}
	if err := c.copyTree(path, dst, nil); err != nil {
		return "", err
	}

	m.logger.Info("Copied directory", logfields.Path(path), logfields.Output(dst))
	return dst, nil
}

func ensureParentDir(path string) error {
	parent := filepath.Dir(path)
	// #nosec G301 -- published site directories are world-readable.
	if err := os.MkdirAll(parent, dirMode); err != nil {
		return serrors.IOFailed("create directory", parent, err)
	}
	return nil
}

// treeCopier mirrors a directory tree, following symlinks. It refuses to
// descend into a directory already on the current copy path or overlapping
// the output root.
type treeCopier struct {
	outRoot string
	logger  *slog.Logger
}

// copyTree recursively copies src to dst. ancestors holds the resolved paths
// of the directories being copied above src. Entries that are neither
// directories nor regular files are left out.
func (c *treeCopier) copyTree(src, dst string, ancestors []string) error {
	resolved, err := canonical(src)
	if err != nil {
		return serrors.IOFailed("resolve directory", src, err)
	}
	if slices.Contains(ancestors, resolved) || within(resolved, c.outRoot) || within(c.outRoot, resolved) {
		return symlinkCycle(src, resolved)
	}
	ancestors = append(ancestors, resolved)

	// #nosec G301 -- published site directories are world-readable.
	if err := os.MkdirAll(dst, dirMode); err != nil {
		return serrors.IOFailed("create directory", dst, err)
	}

	entries, err := os.ReadDir(src)
	if err != nil {
		return serrors.IOFailed("read directory", src, err)
	}

	for _, entry := range entries {
		srcPath := filepath.Join(src, entry.Name())
		dstPath := filepath.Join(dst, entry.Name())

		mode := entry.Type()
		if mode&fs.ModeSymlink != 0 {
			info, err := os.Stat(srcPath)
			if err != nil {
				return serrors.IOFailed("resolve symlink", srcPath, err)
			}
			mode = info.Mode().Type()
		}

		switch {
		case mode.IsDir():
			if err := c.copyTree(srcPath, dstPath, ancestors); err != nil {
				return err
			}
		case mode.IsRegular():
			if err := copyFile(srcPath, dstPath); err != nil {
				return err
			}
		default:
			c.logger.Debug("Not copying special file", logfields.Path(srcPath), slog.String("mode", mode.String()))
		}
	}
	return nil
}

func symlinkCycle(path, target string) error {
	return serrors.Unexpected("symlink cycle in copied directory",
		fmt.Errorf("%w: %s resolves to %s", ErrSymlinkCycle, path, target)).
		WithContext("path", path).
		WithContext("target", target)
}

// canonical resolves every symlink in path and makes it absolute.
func canonical(path string) (string, error) {
	resolved, err := filepath.EvalSymlinks(path)
	if err != nil {
		return "", err
	}
	return filepath.Abs(resolved)
}

// within reports whether path is base or lies below it. Both must be clean
// absolute paths.
func within(base, path string) bool {
	rel, err := filepath.Rel(base, path)
	if err != nil {
		return false
	}
	return rel == "." || (rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator)))
}

// copyFile copies a single file from src to dst and preserves its permissions.
func copyFile(src, dst string) error {
	// #nosec G304 -- src comes from walking the source tree.
	srcFile, err := os.Open(src)
	if err != nil {
		return serrors.IOFailed("open file", src, err)
	}
	defer func() {
		_ = srcFile.Close()
	}()

	srcInfo, err := srcFile.Stat()
	if err != nil {
		return serrors.IOFailed("stat file", src, err)
	}

	// #nosec G304 -- dst is derived from the output root.
	dstFile, err := os.Create(dst)
	if err != nil {
		return serrors.IOFailed("create file", dst, err)
	}
	defer func() {
		_ = dstFile.Close()
	}()

	if _, err := io.Copy(dstFile, srcFile); err != nil {
		return serrors.IOFailed("copy file", dst, err)
	}
	if err := dstFile.Close(); err != nil {
		return serrors.IOFailed("close file", dst, err)
	}

	if err := os.Chmod(dst, srcInfo.Mode().Perm()); err != nil {
		return serrors.IOFailed("chmod file", dst, err)
	}
	return nil
}
