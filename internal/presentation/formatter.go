package presentation

import (
	"encoding/json"
	"io"
)

// Formatter handles output formatting
type Formatter struct {
	writer io.Writer
}

// NewFormatter creates a new formatter
func NewFormatter(writer io.Writer) *Formatter {
	return &Formatter{
		writer: writer,
	}
}

// FormatSources formats the validated source list as JSON
func (f *Formatter) FormatSources(dto SourcesDTO) error {
	return f.encode(dto)
}

// FormatDefaults formats a source's file list as JSON
func (f *Formatter) FormatDefaults(dto DefaultsDTO) error {
	return f.encode(dto)
}

// FormatResolvedPath formats a resolved path as JSON
func (f *Formatter) FormatResolvedPath(dto ResolvedPathDTO) error {
	return f.encode(dto)
}

// FormatElements formats lookup-table records as JSON
func (f *Formatter) FormatElements(table map[string]map[string]any) error {
	return f.encode(table)
}

func (f *Formatter) encode(v any) error {
	encoder := json.NewEncoder(f.writer)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}
