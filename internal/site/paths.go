package site

import (
	"fmt"
	"path/filepath"
	"strings"

	serrors "git.home.luguber.info/inful/sitegen/internal/errors"
)

// OutputPath maps input, a path below srcRoot, to its location below outRoot.
// The relative structure is preserved; when the last segment ends in
// TemplateExt that extension is dropped, so "a/page.html.jinja" becomes
// "a/page.html". Paths outside srcRoot yield an error wrapping ErrNotUnderRoot.
func OutputPath(srcRoot, outRoot, input string) (string, error) {
	rel, err := relativeTo(srcRoot, input)
	if err != nil {
		return "", err
	}

	base := filepath.Base(rel)
	if ext := filepath.Ext(base); ext == TemplateExt && len(base) > len(ext) {
		return filepath.Join(outRoot, filepath.Dir(rel), strings.TrimSuffix(base, ext)), nil
	}
	return filepath.Join(outRoot, rel), nil
}

// relativeTo strips root from path. Unlike filepath.Rel it refuses to climb
// out of root.
func relativeTo(root, path string) (string, error) {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return "", serrors.PathNotUnderRoot(root, path, fmt.Errorf("%w: %w", ErrNotUnderRoot, err))
	}
	if rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", serrors.PathNotUnderRoot(root, path, ErrNotUnderRoot)
	}
	return rel, nil
}
