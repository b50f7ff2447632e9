package serve

import "fmt"

// Mode selects the strategy used to map request paths to files.
type Mode int

const (
	// ModeNormal serves the requested path as-is.
	ModeNormal Mode = iota
	// ModePrettyURL serves directory paths from their index.html and
	// redirects explicit index.html requests to the directory form.
	ModePrettyURL
	// ModeSinglePageApp serves the root index.html for any path that does
	// not name an existing file, so client-side routing can take over.
	ModeSinglePageApp
)

// String returns the configuration name of the mode.
func (m Mode) String() string {
	switch m {
	case ModeNormal:
		return "normal"
	case ModePrettyURL:
		return "prettyurl"
	case ModeSinglePageApp:
		return "spa"
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// MarshalText implements encoding.TextMarshaler.
func (m Mode) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler so a Mode can be set
// from a flag value or a TOML configuration file.
func (m *Mode) UnmarshalText(text []byte) error {
	switch string(text) {
	case "normal", "":
		*m = ModeNormal
	case "prettyurl":
		*m = ModePrettyURL
	case "spa":
		*m = ModeSinglePageApp
	default:
		return fmt.Errorf("unknown serving mode %q", text)
	}
	return nil
}
