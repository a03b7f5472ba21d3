package nri

import "strings"

// Path string helpers. These operate purely on the textual shape of a
// slash-joined path and never touch the filesystem, so they apply equally to
// bundle paths, absolute file paths and remote locations.

// Filename returns the last "/"-delimited component of path. An empty path
// yields "".
func Filename(path string) string {
	if idx := strings.LastIndex(path, "/"); idx >= 0 {
		return path[idx+1:]
	}
	return path
}

// FilenameWithoutExtension returns the filename of path up to its last ".".
// A filename with no "." is returned whole.
func FilenameWithoutExtension(path string) string {
	name := Filename(path)
	if idx := strings.LastIndex(name, "."); idx >= 0 {
		return name[:idx]
	}
	return name
}

// Extension returns the text after the last "." of the filename of path, or
// "" when the filename contains no ".".
func Extension(path string) string {
	name := Filename(path)
	if idx := strings.LastIndex(name, "."); idx >= 0 {
		return name[idx+1:]
	}
	return ""
}

// Filename returns the last segment of the identifier's path.
func (id Identifier) Filename() string {
	return Filename(id.Path())
}

// FilenameWithoutExtension returns the identifier's filename up to its last
// ".".
func (id Identifier) FilenameWithoutExtension() string {
	return FilenameWithoutExtension(id.Path())
}

// Extension returns the extension of the identifier's filename, without the
// ".".
func (id Identifier) Extension() string {
	return Extension(id.Path())
}
