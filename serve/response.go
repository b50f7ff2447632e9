package serve

import (
	"mime"
	"net/http"
	"strconv"

	"github.com/rgualdi/statico/urlpath"
)

// fallbackType is used when the extension has no registered mime type.
const fallbackType = "application/octet-stream"

// Response is a fully assembled HTTP response: status, headers, and body.
// It is built once per request and handed to the embedding HTTP layer.
type Response struct {
	Status int
	Header http.Header
	Body   []byte
}

// Write sends the response. When head is true the body is suppressed but
// the headers, including Content-Length, are kept.
func (resp *Response) Write(w http.ResponseWriter, head bool) error {
	for k, vv := range resp.Header {
		for _, v := range vv {
			w.Header().Add(k, v)
		}
	}
	if len(resp.Body) > 0 {
		w.Header().Set("Content-Length", strconv.Itoa(len(resp.Body)))
	}
	w.WriteHeader(resp.Status)
	if head || len(resp.Body) == 0 {
		return nil
	}
	_, err := w.Write(resp.Body)
	return err
}

// okResponse builds a 200 carrying the file contents, typed by the
// candidate's extension.
func okResponse(p urlpath.Path, body []byte) *Response {
	return &Response{
		Status: http.StatusOK,
		Header: http.Header{"Content-Type": {typeByExt(p.Ext())}},
		Body:   body,
	}
}

// redirectResponse builds a permanent redirect to the canonical form of
// target. 308 preserves the request method, unlike 301. The bytes read to
// prove the file exists are deliberately not included.
func redirectResponse(target urlpath.Path) *Response {
	return &Response{
		Status: http.StatusPermanentRedirect,
		Header: http.Header{"Location": {target.String()}},
	}
}

// notFoundResponse builds a 404 with the given body, which may be nil. The
// response never says why the path could not be served.
func notFoundResponse(body []byte) *Response {
	resp := &Response{
		Status: http.StatusNotFound,
		Header: http.Header{},
		Body:   body,
	}
	if len(body) > 0 {
		resp.Header.Set("Content-Type", "text/html; charset=utf-8")
		resp.Header.Set("X-Content-Type-Options", "nosniff")
	}
	return resp
}

// typeByExt looks up the content type for a file extension given without
// its dot.
func typeByExt(ext string) string {
	if t := mime.TypeByExtension("." + ext); t != "" {
		return t
	}
	return fallbackType
}
