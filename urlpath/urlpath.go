// Package urlpath models the path component of an incoming request as a
// sequence of segments, distinguishing paths that name a file (the last
// segment has an extension) from paths that name a directory. Paths are
// immutable; operations return new values.
package urlpath

import (
	"errors"
	"io/fs"
	"path"
	"strings"
)

// ErrEscapesRoot is returned by File when the normalized path would
// resolve outside the root of the file system.
var ErrEscapesRoot = errors.New("urlpath: path escapes root")

// Path is a parsed request path. The zero value is the root path.
type Path struct {
	segments []string
	name     string // file name without extension; empty for directories
	ext      string // file extension without the dot; empty for directories
}

// Parse splits a raw URL path into segments. Empty segments produced by
// leading, trailing, or repeated slashes are discarded. If the last segment
// contains a dot and splitting it on dots yields at least two non-empty
// parts, the path is file-shaped; otherwise it is directory-shaped.
// Parse never fails; an empty or "/" input yields the root path.
func Parse(raw string) Path {
	var p Path
	for _, seg := range strings.Split(raw, "/") {
		if seg != "" {
			p.segments = append(p.segments, seg)
		}
	}
	if len(p.segments) > 0 {
		p.name, p.ext = splitFile(p.segments[len(p.segments)-1])
	}
	return p
}

// splitFile classifies a single segment. A segment is a file name only when
// every dot-separated part is non-empty and there are at least two parts,
// so ".git" and "README." stay directory-shaped.
func splitFile(seg string) (name, ext string) {
	parts := strings.Split(seg, ".")
	if len(parts) < 2 {
		return "", ""
	}
	for _, part := range parts {
		if part == "" {
			return "", ""
		}
	}
	return strings.Join(parts[:len(parts)-1], "."), parts[len(parts)-1]
}

// IsFile reports whether the path names a file rather than a directory.
func (p Path) IsFile() bool {
	return p.ext != ""
}

// IsRoot reports whether the path has no segments.
func (p Path) IsRoot() bool {
	return len(p.segments) == 0
}

// Name returns the file name without its extension, or "" for a directory.
func (p Path) Name() string {
	return p.name
}

// Ext returns the file extension without the dot, or "" for a directory.
func (p Path) Ext() string {
	return p.ext
}

// Append returns a copy of p with one more segment. The result is
// reclassified, so appending "index.html" yields a file-shaped path.
func (p Path) Append(seg string) Path {
	segments := make([]string, 0, len(p.segments)+1)
	segments = append(segments, p.segments...)
	segments = append(segments, seg)
	name, ext := splitFile(seg)
	return Path{segments: segments, name: name, ext: ext}
}

// Parent returns the path with its last segment removed. The second return
// is false when p is already the root.
func (p Path) Parent() (Path, bool) {
	if len(p.segments) == 0 {
		return Path{}, false
	}
	segments := p.segments[:len(p.segments)-1]
	parent := Path{segments: make([]string, len(segments))}
	copy(parent.segments, segments)
	return parent, true
}

// String renders the canonical slash-prefixed form, suitable for a
// Location header. The root path renders as "/".
func (p Path) String() string {
	return "/" + strings.Join(p.segments, "/")
}

// File returns the root-relative file system path for p, in the form
// expected by fs.FS. Dot and dot-dot segments are resolved first; if the
// cleaned path would ascend above the root, File returns ErrEscapesRoot.
func (p Path) File() (string, error) {
	name := path.Join(p.segments...)
	if name == "" {
		name = "."
	}
	if !fs.ValidPath(name) {
		return "", ErrEscapesRoot
	}
	return name, nil
}
