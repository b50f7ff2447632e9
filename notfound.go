package main

import (
	"errors"
	"fmt"
	"html/template"
	"io/fs"
)

// defaultNotFound is used when the site does not provide its own page.
const defaultNotFound = `<!DOCTYPE html>
<html>
<head><title>Not Found</title></head>
<body><h1>Not Found</h1><p>The page you requested does not exist.</p></body>
</html>
`

// loadNotFound parses the 404 page template. name comes from the site
// config and is relative to the served folder; when it is empty or the
// file does not exist, a plain built-in page is used. The second return
// reports whether the site's own page was found.
func loadNotFound(fsys fs.FS, name string) (*template.Template, bool, error) {
	if name != "" {
		b, err := fs.ReadFile(fsys, name)
		if err == nil {
			tpl, err := template.New("notfound").Parse(string(b))
			return tpl, true, err
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, false, fmt.Errorf("cannot read not-found page %q: %w", name, err)
		}
	}
	tpl, err := template.New("notfound").Parse(defaultNotFound)
	return tpl, false, err
}
