//go:build unix

package site

import (
	"os"
	"path/filepath"
	"syscall"
	"testing"

	"github.com/stretchr/testify/require"

	serrors "git.home.luguber.info/inful/sitegen/internal/errors"
)

func TestClassify_SymlinkToSpecialFileIsTypedError(t *testing.T) {
	src := t.TempDir()
	fifo := filepath.Join(t.TempDir(), "pipe")
	require.NoError(t, syscall.Mkfifo(fifo, 0o600))
	require.NoError(t, os.Symlink(fifo, filepath.Join(src, "pipe-link")))

	_, err := Classify(src, nil)
	require.Error(t, err)
	require.ErrorIs(t, err, ErrUnsupportedSymlinkTarget)
	require.True(t, serrors.IsCategory(err, serrors.CategoryInternal))
}

func TestClassify_IgnoresSpecialFiles(t *testing.T) {
	src := t.TempDir()
	require.NoError(t, syscall.Mkfifo(filepath.Join(src, "pipe"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(src, "a.txt"), []byte("a"), 0o600))

	entries, err := Classify(src, nil)
	require.NoError(t, err)
	require.Equal(t, []Entry{{Kind: KindFile, Path: filepath.Join(src, "a.txt")}}, entries)
}
