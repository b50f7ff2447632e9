package main

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/pelletier/go-toml/v2"

	"github.com/rgualdi/statico/serve"
)

// siteConfig contains per-site settings from the statico.cfg file at the
// root of the served folder. The file itself is never served.
type siteConfig struct {
	Mode     *serve.Mode       `toml:"mode"`
	Headers  map[string]string `toml:"headers"`
	NotFound string            `toml:"notfound"`
}

// loadSiteConfig reads statico.cfg from the served folder. It is not an
// error if the file does not exist.
func loadSiteConfig(fsys fs.FS) (*siteConfig, error) {
	cfgBytes, err := fs.ReadFile(fsys, serve.ConfigFile)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("cannot read config file: %w", err)
	}
	var cfg siteConfig
	err = toml.Unmarshal(cfgBytes, &cfg)
	if err != nil {
		return nil, fmt.Errorf("cannot parse config file: %w", err)
	}
	return &cfg, nil
}
