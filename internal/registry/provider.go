package registry

import (
	"errors"
	"os"
	"path/filepath"
)

// ErrNotApplicable signals that a provider's storage layout is absent on this
// machine. The resolution chain treats it as "try the next tier".
var ErrNotApplicable = errors.New("provider not applicable")

// A Provider locates the data root of one storage layout.
type Provider interface {
	// Name identifies the provider in logs.
	Name() string

	// Resolve returns the absolute path of the provider's data root.
	// Returns ErrNotApplicable when the layout cannot be located.
	Resolve() (string, error)
}

// EnvDataDir overrides the installed data tree location.
const EnvDataDir = "GOMKM_DATA_DIR"

// InstallDir resolves the installed data tree: Dir when set (config
// data_dir), then $GOMKM_DATA_DIR, then ~/.gomkm/data. This is the tree
// `gomkm data:install` materializes the embedded bundle into.
type InstallDir struct {
	Dir string
}

func (p InstallDir) Name() string { return "install" }

func (p InstallDir) Resolve() (string, error) {
	if p.Dir != "" {
		return absOrNotApplicable(p.Dir)
	}
	if dir := os.Getenv(EnvDataDir); dir != "" {
		return absOrNotApplicable(dir)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", ErrNotApplicable
	}
	return filepath.Join(home, ".gomkm", "data"), nil
}

// LocalDir resolves the development data tree: <Base>/data.
type LocalDir struct {
	// Base is the directory containing the data tree.
	// Empty means the working directory.
	Base string
}

func (p LocalDir) Name() string { return "local" }

func (p LocalDir) Resolve() (string, error) {
	base := p.Base
	if base == "" {
		base = "."
	}
	return absOrNotApplicable(filepath.Join(base, "data"))
}

func absOrNotApplicable(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", ErrNotApplicable
	}
	return abs, nil
}
