/*
Package serve resolves request paths to files beneath a root file system
and assembles the HTTP response, according to one of three serving modes.

In ModeNormal a path maps directly to the file of the same name. In
ModePrettyURL a directory path is served from its index.html, and an
explicit request for an index.html is answered with a permanent redirect to
the directory form, so each page has exactly one canonical URL. In
ModeSinglePageApp any path that does not name a real file is served from
the root index.html, leaving routing to the client-side application.

The root is a boundary: a request can never read a file outside the fs.FS
it is given, and paths that try are answered exactly like missing files.
*/
package serve

import (
	"bytes"
	"errors"
	"html/template"
	"io/fs"
	"log"
	"net/http"

	"github.com/rgualdi/statico/urlpath"
)

// ConfigFile is the name of the optional TOML configuration file at the
// root of the served folder. It is hidden from requests.
const ConfigFile = "statico.cfg"

// Config adjusts how a Server answers requests. The zero value serves in
// ModeNormal with empty 404 bodies.
type Config struct {
	// Mode selects the path resolution strategy.
	Mode Mode
	// NotFound, if set, renders the body of every 404 response. It is
	// executed with no data.
	NotFound *template.Template
}

// Server resolves request paths against a file system. It is read-only
// after New and safe for concurrent use; each request works on its own
// plan and response values.
type Server struct {
	fsys     fs.FS
	mode     Mode
	notFound []byte
}

// New creates a Server over fsys. cfg may be nil.
func New(fsys fs.FS, cfg *Config) (*Server, error) {
	srv := &Server{fsys: fsys}
	if cfg == nil {
		return srv, nil
	}
	srv.mode = cfg.Mode
	if cfg.NotFound != nil {
		var buf bytes.Buffer
		if err := cfg.NotFound.Execute(&buf, nil); err != nil {
			return nil, err
		}
		srv.notFound = buf.Bytes()
	}
	return srv, nil
}

// Resolve maps a raw request path to a Response, or to a classified error
// (*AccessError or *UnknownError) when no file can be served. The
// SinglePageApp fallback is applied here, at most once: the fallback plan
// never carries a further fallback, so the loop runs at most twice.
func (s *Server) Resolve(rawPath string) (*Response, error) {
	plan := planFor(s.mode, urlpath.Parse(rawPath))
	for {
		b, err := readFile(s.fsys, plan.Candidate)
		if err != nil {
			if plan.Fallback != nil {
				plan = *plan.Fallback
				continue
			}
			return nil, err
		}
		if plan.Redirect != nil {
			return redirectResponse(*plan.Redirect), nil
		}
		return okResponse(plan.Candidate, b), nil
	}
}

// Respond is like Resolve but maps every failure to the 404 response, for
// callers that always want a Response to send.
func (s *Server) Respond(rawPath string) *Response {
	resp, err := s.Resolve(rawPath)
	if err != nil {
		var unknown *UnknownError
		if errors.As(err, &unknown) {
			// access failures are routine; anything else deserves a trace
			log.Printf("serve: %s", unknown)
		}
		return notFoundResponse(s.notFound)
	}
	return resp
}

// ServeHTTP answers GET and HEAD requests from the file system and
// rejects every other method. Cancelled or failed reads surface as 404,
// the same as any other unresolved path.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		w.Header().Set("Allow", "GET, HEAD")
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}
	resp := s.Respond(r.URL.Path)
	if err := resp.Write(w, r.Method == http.MethodHead); err != nil {
		log.Printf("serve: write %s: %s", r.URL.Path, err)
	}
}
