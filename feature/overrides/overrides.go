// Package overrides maps generated wiki link titles to the real article titles
// where the two differ (e.g. guns known on the wiki under a different designation).
package overrides

import (
	"os"

	"gopkg.in/yaml.v3"
)

// Map is link title -> replacement link title.
type Map map[string]string

// Defaults are used when no overrides file is present.
func Defaults() Map {
	return Map{
		"38 cm/52 SK C/34 (380 mm)": "SK L/45 (380 mm)",
	}
}

// Load reads a YAML mapping from path. A missing file (or empty path) yields Defaults.
func Load(path string) (Map, error) {
	if path == "" {
		return Defaults(), nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Defaults(), nil
		}
		return nil, err
	}
	out := make(Map)
	if err := yaml.Unmarshal(b, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Resolve returns the replacement for link, or link itself.
func (m Map) Resolve(link string) string {
	if v, ok := m[link]; ok {
		return v
	}
	return link
}
