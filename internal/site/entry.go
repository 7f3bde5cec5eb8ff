package site

import "strings"

// Kind labels a classified entry.
type Kind int

const (
	// KindPage is a template rendered into its output file.
	KindPage Kind = iota
	// KindFile is copied byte for byte.
	KindFile
	// KindDir is a subtree copied verbatim, without skip rules or page detection.
	KindDir
)

func (k Kind) String() string {
	switch k {
	case KindPage:
		return "page"
	case KindFile:
		return "file"
	case KindDir:
		return "dir"
	default:
		return "unknown"
	}
}

// Entry is a classified filesystem entry. Path is the path as found under the
// source root; for symlinks it is the link itself, not its target, so that it
// stays relative to the source root.
type Entry struct {
	Kind Kind
	Path string
}

const (
	// PageSuffix marks a file as a page template.
	PageSuffix = ".html.jinja"
	// TemplateExt is dropped from the last path segment when mapping to the output tree.
	TemplateExt = ".jinja"
	// OutputDirName is the output directory created inside the source root.
	OutputDirName = "dist"
)

// IsPage reports whether name carries the page template suffix.
func IsPage(name string) bool {
	return strings.HasSuffix(name, PageSuffix)
}
