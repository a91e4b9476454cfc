package data

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/BeppeMagro/gomkm/internal/log"
)

// Install materializes the embedded bundle into dst, creating the installed
// data tree. Existing files are left alone unless force is set. Returns the
// number of files written.
func Install(dst string, force bool) (int, error) {
	written := 0
	err := fs.WalkDir(bundle, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		target := filepath.Join(dst, filepath.FromSlash(path))
		if d.IsDir() {
			if err := os.MkdirAll(target, 0o750); err != nil {
				return fmt.Errorf("creating %s: %w", target, err)
			}
			return nil
		}

		if !force {
			if _, err := os.Stat(target); err == nil {
				log.Debug(log.CatData, "keeping existing file", "path", target)
				return nil
			}
		}

		content, err := fs.ReadFile(bundle, path)
		if err != nil {
			return fmt.Errorf("reading bundled %s: %w", path, err)
		}
		if err := os.WriteFile(target, content, 0o600); err != nil {
			return fmt.Errorf("writing %s: %w", target, err)
		}
		written++
		return nil
	})
	if err != nil {
		return written, err
	}

	log.Info(log.CatData, "installed bundled data", "dst", dst, "files", written)
	return written, nil
}
