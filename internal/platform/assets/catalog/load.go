package catalog

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// Load reads and validates the asset catalog at path.
//
// A directory is read as an Xcode asset catalog; a file is parsed according
// to its extension (see Parse).
func Load(path string) (Manifest, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return Manifest{}, fmt.Errorf("%w: path is required", ErrManifestNotFound)
	}
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Manifest{}, fmt.Errorf("%w: %s", ErrManifestNotFound, path)
		}
		return Manifest{}, fmt.Errorf("stat catalog: %w", err)
	}

	var manifest Manifest
	if info.IsDir() {
		manifest, err = LoadXCAssets(os.DirFS(path), manifestID(path))
	} else {
		var data []byte
		data, err = os.ReadFile(path)
		if err != nil {
			return Manifest{}, fmt.Errorf("read catalog: %w", err)
		}
		manifest, err = Parse(filepath.Base(path), data)
	}
	if err != nil {
		return Manifest{}, err
	}
	if err := manifest.Validate(); err != nil {
		return Manifest{}, fmt.Errorf("validate %s: %w", path, err)
	}
	return manifest, nil
}

// manifestID names a catalog after its file or directory without extension.
func manifestID(path string) string {
	base := filepath.Base(filepath.Clean(path))
	return strings.TrimSuffix(base, filepath.Ext(base))
}
