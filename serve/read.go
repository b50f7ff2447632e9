package serve

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/rgualdi/statico/urlpath"
)

// AccessError reports a candidate that cannot be served: the file does not
// exist, is a directory, is hidden, the process lacks permission, or the
// path would resolve outside the root. All of these look the same to a
// client (not found), so they share one error type.
type AccessError struct {
	Path string // canonical request form of the candidate
	Err  error  // underlying cause
}

func (e *AccessError) Error() string {
	return fmt.Sprintf("cannot access %s: %s", e.Path, e.Err)
}

func (e *AccessError) Unwrap() error { return e.Err }

// UnknownError reports a read failure that is not an access problem, such
// as an I/O error from the underlying file system. It still results in a
// not-found response but remains distinguishable for diagnostics.
type UnknownError struct {
	Path string
	Err  error
}

func (e *UnknownError) Error() string {
	return fmt.Sprintf("cannot read %s: %s", e.Path, e.Err)
}

func (e *UnknownError) Unwrap() error { return e.Err }

// hiddenFiles are served-root entries that must never be readable over HTTP.
var hiddenFiles = []string{
	ConfigFile,
}

// isHiddenPath reports whether name contains a path element starting with a
// period, or names one of the hidden files. The name is assumed to be
// delimited by forward slashes, as guaranteed by the fs.FS interface.
func isHiddenPath(name string) bool {
	for _, part := range strings.Split(name, "/") {
		if strings.HasPrefix(part, ".") && part != "." {
			return true
		}
		for _, s := range hiddenFiles {
			if part == s {
				return true
			}
		}
	}
	return false
}

// errIsDirectory marks a candidate that names a directory rather than a file.
var errIsDirectory = errors.New("is a directory")

// readFile reads the candidate from fsys and returns its contents, or a
// classified error. There is no retry here; retry policy belongs to the
// caller.
func readFile(fsys fs.FS, p urlpath.Path) ([]byte, error) {
	name, err := p.File()
	if err != nil {
		// a path that escapes the root must be indistinguishable from a
		// missing file
		return nil, &AccessError{Path: p.String(), Err: err}
	}
	if isHiddenPath(name) {
		return nil, &AccessError{Path: p.String(), Err: fs.ErrNotExist}
	}
	info, err := fs.Stat(fsys, name)
	if err != nil {
		return nil, classify(p.String(), err)
	}
	if info.IsDir() {
		return nil, &AccessError{Path: p.String(), Err: errIsDirectory}
	}
	b, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, classify(p.String(), err)
	}
	return b, nil
}

// classify wraps a read failure as an AccessError or an UnknownError.
func classify(path string, err error) error {
	switch {
	case errors.Is(err, fs.ErrNotExist),
		errors.Is(err, fs.ErrPermission),
		errors.Is(err, fs.ErrInvalid):
		return &AccessError{Path: path, Err: err}
	}
	return &UnknownError{Path: path, Err: err}
}
