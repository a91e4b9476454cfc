package registry

import (
	"encoding/json"
	"fmt"
	"os"
)

// LoadLookupTable loads the chemical-elements lookup table from
// elements.json, keyed by element symbol. The whole file is parsed in one
// shot; there is no partial result. Returns a NotFoundError when no tier has
// the file and a MalformedLookupError when the content is not valid JSON.
func (r *Registry) LoadLookupTable() (map[string]map[string]any, error) {
	path, ok := r.resolve(LookupFile)
	if !ok {
		return nil, &NotFoundError{Filename: LookupFile}
	}

	data, err := os.ReadFile(path) //nolint:gosec // G304: path is inside a resolved data root
	if err != nil {
		return nil, fmt.Errorf("reading lookup table: %w", err)
	}

	var table map[string]map[string]any
	if err := json.Unmarshal(data, &table); err != nil {
		return nil, &MalformedLookupError{Path: path, Err: err}
	}
	return table, nil
}
