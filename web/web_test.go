package web

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestHeaderHandler(t *testing.T) {
	h := HeaderHandler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}), map[string]string{"X-Frame-Options": "DENY", "Server": "statico"})

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	if got := rec.Result().Header.Get("X-Frame-Options"); got != "DENY" {
		t.Errorf("X-Frame-Options = %q, want %q", got, "DENY")
	}
	if got := rec.Result().Header.Get("Server"); got != "statico" {
		t.Errorf("Server = %q, want %q", got, "statico")
	}
	if rec.Result().StatusCode != http.StatusNoContent {
		t.Errorf("status = %d, want %d", rec.Result().StatusCode, http.StatusNoContent)
	}
}

func TestLogHandlerStatus(t *testing.T) {
	var tests = []struct {
		name   string
		h      http.HandlerFunc
		expect int
	}{
		{"explicit", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusNotFound) }, http.StatusNotFound},
		{"implicit", func(w http.ResponseWriter, r *http.Request) { w.Write([]byte("ok")) }, http.StatusOK},
		{"empty", func(w http.ResponseWriter, r *http.Request) {}, http.StatusOK},
	}
	for _, tt := range tests {
		rec := httptest.NewRecorder()
		var captured int
		inner := &statusWriter{ResponseWriter: rec}
		tt.h.ServeHTTP(inner, httptest.NewRequest(http.MethodGet, "/", nil))
		captured = inner.status()
		if captured != tt.expect {
			t.Errorf("%s: status = %d, want %d", tt.name, captured, tt.expect)
		}
	}
}
