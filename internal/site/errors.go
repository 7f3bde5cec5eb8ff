package site

import "errors"

var (
	// ErrNotUnderRoot indicates an input path does not live below the source root.
	ErrNotUnderRoot = errors.New("path is not under the source root")

	// ErrDanglingSymlink indicates a symlink whose target does not exist.
	ErrDanglingSymlink = errors.New("dangling symlink")

	// ErrUnsupportedSymlinkTarget indicates a symlink resolving to something
	// other than a regular file or a directory (device, socket, pipe).
	ErrUnsupportedSymlinkTarget = errors.New("symlink target is neither a file nor a directory")

	// ErrSymlinkCycle indicates a directory copy that would descend into one
	// of its own ancestors or into the output directory.
	ErrSymlinkCycle = errors.New("symlink cycle")
)
