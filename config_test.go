package main

import (
	"testing"
	"testing/fstest"

	"github.com/rgualdi/statico/serve"
)

func TestLoadSiteConfig(t *testing.T) {
	fsys := fstest.MapFS{
		"statico.cfg": {Data: []byte(`
mode = "prettyurl"
notfound = "404.html"

[headers]
"X-Frame-Options" = "DENY"
`)},
	}
	cfg, err := loadSiteConfig(fsys)
	if err != nil {
		t.Fatal(err)
	}
	if cfg == nil {
		t.Fatal("Expected config")
	}
	if cfg.Mode == nil || *cfg.Mode != serve.ModePrettyURL {
		t.Errorf("Mode = %v, want prettyurl", cfg.Mode)
	}
	if cfg.NotFound != "404.html" {
		t.Errorf("NotFound = %q, want %q", cfg.NotFound, "404.html")
	}
	if cfg.Headers["X-Frame-Options"] != "DENY" {
		t.Errorf("Headers = %v", cfg.Headers)
	}
}

func TestLoadSiteConfigMissing(t *testing.T) {
	cfg, err := loadSiteConfig(fstest.MapFS{})
	if err != nil {
		t.Fatal(err)
	}
	if cfg != nil {
		t.Errorf("Expected no config, got %+v", cfg)
	}
}

func TestLoadSiteConfigBad(t *testing.T) {
	fsys := fstest.MapFS{
		"statico.cfg": {Data: []byte(`mode = what`)},
	}
	_, err := loadSiteConfig(fsys)
	if err == nil {
		t.Error("Expected parse error")
	}
}

func TestLoadNotFound(t *testing.T) {
	fsys := fstest.MapFS{
		"404.html": {Data: []byte("<html>custom</html>")},
	}
	tpl, own, err := loadNotFound(fsys, "404.html")
	if err != nil {
		t.Fatal(err)
	}
	if !own || tpl == nil {
		t.Errorf("Expected site page, got own=%v", own)
	}

	tpl, own, err = loadNotFound(fsys, "missing.html")
	if err != nil {
		t.Fatal(err)
	}
	if own || tpl == nil {
		t.Errorf("Expected built-in page, got own=%v", own)
	}

	tpl, own, err = loadNotFound(fsys, "")
	if err != nil {
		t.Fatal(err)
	}
	if own || tpl == nil {
		t.Errorf("Expected built-in page, got own=%v", own)
	}
}
