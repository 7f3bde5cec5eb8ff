// Package site turns a source directory into a static site.
//
// Generation is a single sequential pass in two steps. Classify walks the
// source tree and labels every visible entry as a page (a template to render),
// a file (copied verbatim) or a directory (a symlinked subtree copied
// verbatim). A Materializer then maps each entry to its location under the
// output root with OutputPath and performs the matching action.
//
// The classifier and the directory copy are deliberately separate walks: the
// classifier applies skip rules and page detection, while everything below a
// copied directory is mirrored as-is, including files that look like pages.
package site
