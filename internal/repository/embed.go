package repository

import (
	"embed"
	"encoding/json"
	"fmt"
)

// Static catalog data shipped with the binary. The data files are the only
// source of records; nothing is persisted at runtime.
//
//go:embed data/*.json
var dataFS embed.FS

// loadJSON decodes one embedded data file into dst
func loadJSON(name string, dst interface{}) error {
	raw, err := dataFS.ReadFile("data/" + name)
	if err != nil {
		return fmt.Errorf("failed to read embedded data file %s: %w", name, err)
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return fmt.Errorf("failed to parse %s: %w", name, err)
	}
	return nil
}
