package registry

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BeppeMagro/gomkm/internal/log"
)

// AvailableSources lists every source subdirectory that qualifies as a valid
// registry entry: it carries the marker file and every .txt directly inside
// it declares the required header keys. Validity is re-derived on every call.
//
// Enumeration is fail-fast: the first source with a malformed .txt aborts the
// whole call with a MalformedSourceError, even when other sources are valid.
// Order follows directory iteration and callers must not rely on it beyond
// being stable for one filesystem state.
func (r *Registry) AvailableSources() ([]string, error) {
	root, err := r.DefaultsRoot()
	if err != nil {
		return nil, err
	}

	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, fmt.Errorf("reading default sources: %w", err)
	}

	var sources []string
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		dir := filepath.Join(root, entry.Name())

		// Subdirectories without the marker are not registry sources.
		if _, err := os.Stat(filepath.Join(dir, MarkerFile)); err != nil {
			log.Debug(log.CatRegistry, "skipping unmarked directory", "dir", entry.Name())
			continue
		}

		if err := validateSource(dir, entry.Name()); err != nil {
			return nil, err
		}
		sources = append(sources, entry.Name())
	}
	return sources, nil
}

// AvailableDefaults lists the .txt files directly inside a named source.
// Headers are not re-validated here; that is AvailableSources' job.
// Returns a NotFoundError when no tier has the source directory.
func (r *Registry) AvailableDefaults(source string) ([]string, error) {
	dir, ok := r.resolve(DefaultsDir, source)
	if !ok {
		return nil, &NotFoundError{Source: source}
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading source %q: %w", source, err)
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != TxtExt {
			continue
		}
		files = append(files, entry.Name())
	}
	return files, nil
}

// validateSource checks the header contract of every .txt directly inside dir.
func validateSource(dir, name string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("reading source %q: %w", name, err)
	}
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != TxtExt {
			continue
		}
		header, err := readHeader(filepath.Join(dir, entry.Name()))
		if err != nil {
			return fmt.Errorf("reading source %q: %w", name, err)
		}
		if missing := missingKeys(header); len(missing) > 0 {
			return &MalformedSourceError{Source: name, File: entry.Name(), Missing: missing}
		}
	}
	return nil
}

func readHeader(path string) (map[string]string, error) {
	f, err := os.Open(path) //nolint:gosec // G304: path is inside a resolved data root
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()
	return ParseHeader(f)
}
