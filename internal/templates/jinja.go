package templates

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/flosch/pongo2/v6"
)

// JinjaEngine loads Jinja/Django-syntax templates from a directory using pongo2.
// Includes and extends resolve against the same root directory.
type JinjaEngine struct {
	root string
	set  *pongo2.TemplateSet
}

// NewJinjaEngine creates an engine whose template search path is root.
func NewJinjaEngine(root string) (*JinjaEngine, error) {
	if err := registerFilters(); err != nil {
		return nil, err
	}
	loader, err := pongo2.NewLocalFileSystemLoader(root)
	if err != nil {
		return nil, fmt.Errorf("create template loader for %s: %w", root, err)
	}
	return &JinjaEngine{
		root: root,
		set:  pongo2.NewSet("sitegen", loader),
	}, nil
}

// Root returns the engine's template search path.
func (e *JinjaEngine) Root() string {
	return e.root
}

// Lookup compiles the template stored at name, relative to the engine root.
func (e *JinjaEngine) Lookup(name string) (Template, error) {
	clean := path.Clean(name)
	if clean == "." || path.IsAbs(clean) || clean == ".." || strings.HasPrefix(clean, "../") {
		return nil, fmt.Errorf("%w: %q is not a relative template name", ErrTemplateNotFound, name)
	}

	full := filepath.Join(e.root, filepath.FromSlash(clean))
	info, err := os.Stat(full)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return nil, fmt.Errorf("%w: %s", ErrTemplateNotFound, clean)
	case err != nil:
		return nil, fmt.Errorf("stat template %s: %w", clean, err)
	case info.IsDir():
		return nil, fmt.Errorf("%w: %s is a directory", ErrTemplateNotFound, clean)
	}

	tpl, err := e.set.FromFile(clean)
	if err != nil {
		return nil, fmt.Errorf("parse template %s: %w", clean, err)
	}
	return &jinjaTemplate{name: clean, tpl: tpl}, nil
}

type jinjaTemplate struct {
	name string
	tpl  *pongo2.Template
}

// Render implements Template.
func (t *jinjaTemplate) Render(w io.Writer) error {
	// ExecuteWriter buffers internally and only writes on success.
	if err := t.tpl.ExecuteWriter(pongo2.Context{}, w); err != nil {
		return fmt.Errorf("render template %s: %w", t.name, err)
	}
	return nil
}
