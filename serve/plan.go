package serve

import (
	"github.com/rgualdi/statico/urlpath"
)

// indexFile is the conventional directory index document.
const indexFile = "index.html"

// Plan describes one resolution attempt: the path to read, an optional
// redirect to issue when the read succeeds, and an optional plan to try
// instead when it fails. Plans are pure data; planFor does no I/O.
type Plan struct {
	// Candidate is the file to attempt to read, relative to the root.
	Candidate urlpath.Path
	// Redirect, when set, turns a successful read into a permanent
	// redirect to this path instead of a body response.
	Redirect *urlpath.Path
	// Fallback, when set, is tried once if reading Candidate fails.
	// A fallback plan never carries a further fallback.
	Fallback *Plan
}

// planFor maps a request path to a Plan under the given mode. The cases
// are mutually exclusive and exhaustive over (mode, path shape); the first
// matching case wins.
func planFor(mode Mode, p urlpath.Path) Plan {
	switch {
	case mode == ModePrettyURL && !p.IsFile():
		// /about -> about/index.html
		return Plan{Candidate: p.Append(indexFile)}

	case mode == ModePrettyURL && isIndex(p):
		// /about/index.html -> serve, then steer clients to /about
		redirect := parentOrRoot(p)
		return Plan{Candidate: p, Redirect: &redirect}

	case mode == ModeSinglePageApp && !p.IsFile():
		// every route serves the application shell
		return Plan{Candidate: rootIndex()}

	case mode == ModeSinglePageApp && isIndex(p) && atRoot(p):
		// /index.html -> serve the shell, steer clients to /
		redirect := urlpath.Path{}
		return Plan{Candidate: rootIndex(), Redirect: &redirect}

	case mode == ModeSinglePageApp:
		// a real asset is served directly; anything missing falls back
		// to the shell, exactly once
		fallback := planFor(mode, urlpath.Path{})
		return Plan{Candidate: p, Fallback: &fallback}

	default:
		// ModeNormal, and PrettyURL file paths that are not an index
		return Plan{Candidate: p}
	}
}

// isIndex reports whether p names exactly index.html.
func isIndex(p urlpath.Path) bool {
	return p.Name() == "index" && p.Ext() == "html"
}

// atRoot reports whether p names a file directly under the root.
func atRoot(p urlpath.Path) bool {
	parent, ok := p.Parent()
	return ok && parent.IsRoot()
}

// parentOrRoot returns the directory containing p, or the root path.
func parentOrRoot(p urlpath.Path) urlpath.Path {
	if parent, ok := p.Parent(); ok {
		return parent
	}
	return urlpath.Path{}
}

// rootIndex returns the path of the root-level index.html.
func rootIndex() urlpath.Path {
	return urlpath.Path{}.Append(indexFile)
}
