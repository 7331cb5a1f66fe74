package data

import (
	"encoding/json"
	"fmt"
	"os"
)

// LibraryItem is one catalog entry a caller can turn into an Equipment.
type LibraryItem struct {
	Name        string  `json:"name"`
	Power       int     `json:"power"`
	Time        float64 `json:"time"`
	Description string  `json:"description,omitempty"`
}

// LibraryCategory groups catalog entries (kitchen, lighting, ...).
type LibraryCategory struct {
	Name  string        `json:"name"`
	Icon  string        `json:"icon,omitempty"`
	Items []LibraryItem `json:"items"`
}

// Library is the static equipment catalog. The engine never interprets it
// beyond decoding; turning an item into an Equipment is the caller's job.
type Library struct {
	Categories map[string]LibraryCategory `json:"categories"`
}

// LoadLibrary reads the equipment catalog from a JSON file. A missing file
// yields an empty library, not an error.
func LoadLibrary(path string) (*Library, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Library{Categories: map[string]LibraryCategory{}}, nil
		}
		return nil, fmt.Errorf("failed to read equipment library: %w", err)
	}
	var lib Library
	if err := json.Unmarshal(raw, &lib); err != nil {
		return nil, fmt.Errorf("failed to parse equipment library: %w", err)
	}
	if lib.Categories == nil {
		lib.Categories = map[string]LibraryCategory{}
	}
	return &lib, nil
}

// GetDefaultLibraryPath returns the path of the equipment catalog file.
func GetDefaultLibraryPath() string {
	if path := os.Getenv("LIBRARY_FILE"); path != "" {
		return path
	}
	return "./equipment_library.json"
}
