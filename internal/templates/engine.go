// Package templates adapts a template engine to the two operations page
// rendering needs: look a template up by its slash-separated path relative to
// the site root, and render it with an empty context.
package templates

import (
	"errors"
	"io"
)

// ErrTemplateNotFound is returned by Lookup when no template exists under the given name.
var ErrTemplateNotFound = errors.New("template not found")

// Engine resolves templates by name. Names are slash-separated and relative to
// the engine's root directory.
type Engine interface {
	Lookup(name string) (Template, error)
}

// Template is a compiled template ready to be rendered.
type Template interface {
	// Render executes the template with an empty variable context and writes
	// the result to w. Nothing is written when rendering fails.
	Render(w io.Writer) error
}
