package site

import (
	"fmt"
	"strings"

	"github.com/gobwas/glob"
)

// SkipFunc reports whether an entry with the given file name is excluded from
// the site. It only ever sees the base name, never a path.
type SkipFunc func(name string) bool

// DefaultSkip excludes version control metadata (.git, .gitignore, ...), the
// output directory, editor backup files and partial templates (leading
// underscore), which are only meant to be included by other templates.
func DefaultSkip(name string) bool {
	return strings.HasPrefix(name, ".git") ||
		name == OutputDirName ||
		strings.HasSuffix(name, "~") ||
		strings.HasPrefix(name, "_")
}

// SkipPatterns extends DefaultSkip with filename glob patterns. Patterns use
// github.com/gobwas/glob syntax (*, ?, [abc], [!abc], {a,b}) and are compiled
// once up front.
func SkipPatterns(patterns []string) (SkipFunc, error) {
	if len(patterns) == 0 {
		return DefaultSkip, nil
	}
	globs, err := compilePatterns(patterns)
	if err != nil {
		return nil, err
	}
	return func(name string) bool {
		return DefaultSkip(name) || matchesAnyGlob(name, globs)
	}, nil
}

// compilePatterns compiles filename globs, failing on the first malformed one.
func compilePatterns(patterns []string) ([]glob.Glob, error) {
	compiled := make([]glob.Glob, 0, len(patterns))
	for _, p := range patterns {
		g, err := glob.Compile(p)
		if err != nil {
			return nil, fmt.Errorf("invalid exclude pattern %q: %w", p, err)
		}
		compiled = append(compiled, g)
	}
	return compiled, nil
}

func matchesAnyGlob(name string, globs []glob.Glob) bool {
	for _, g := range globs {
		if g.Match(name) {
			return true
		}
	}
	return false
}
