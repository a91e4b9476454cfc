package registry

import (
	"os"
	"path/filepath"

	"github.com/BeppeMagro/gomkm/internal/log"
)

// On-disk registry layout.
const (
	// DefaultsDir is the subdirectory of a data root holding one tree per source.
	DefaultsDir = "defaults"
	// MarkerFile marks a subdirectory as a registry source.
	MarkerFile = ".source"
	// LookupFile is the element-properties lookup table.
	LookupFile = "elements.json"
	// TxtExt is the extension of stopping-power data files.
	TxtExt = ".txt"
)

// Registry resolves and validates the bundled reference data files across an
// ordered chain of providers. Construct with New or Default; the zero value
// has no tiers and resolves nothing.
type Registry struct {
	providers []Provider
}

// New builds a registry over an explicit provider chain, tried in order.
func New(providers ...Provider) *Registry {
	return &Registry{providers: providers}
}

// Default builds the standard two-tier chain: the installed data tree first,
// the local development tree second. Either argument may be empty.
func Default(dataDir, localBase string) *Registry {
	return New(InstallDir{Dir: dataDir}, LocalDir{Base: localBase})
}

// DefaultTxtPath locates a default .txt file for a given source and filename.
// Returns a NotFoundError when no tier has the file.
func (r *Registry) DefaultTxtPath(source, filename string) (string, error) {
	path, ok := r.resolve(DefaultsDir, source, filename)
	if !ok {
		return "", &NotFoundError{Source: source, Filename: filename}
	}
	return path, nil
}

// DefaultsRoot resolves the defaults directory itself: the first tier
// holding a defaults tree wins. Returns ErrRegistryUnavailable when no tier
// holds one.
func (r *Registry) DefaultsRoot() (string, error) {
	root, ok := r.resolve(DefaultsDir)
	if !ok {
		return "", ErrRegistryUnavailable
	}
	return root, nil
}

// resolve joins elem under each provider root in turn and returns the first
// path that exists on disk. Probe failures in a tier mean "try the next
// tier", never a final error.
func (r *Registry) resolve(elem ...string) (string, bool) {
	for _, p := range r.providers {
		root, err := p.Resolve()
		if err != nil {
			log.Debug(log.CatRegistry, "tier not applicable", "provider", p.Name(), "error", err.Error())
			continue
		}
		path := filepath.Join(append([]string{root}, elem...)...)
		if _, err := os.Stat(path); err != nil {
			log.Debug(log.CatRegistry, "tier miss", "provider", p.Name(), "path", path)
			continue
		}
		return path, true
	}
	return "", false
}
