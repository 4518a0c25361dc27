package catalog

import (
	"errors"
	"fmt"
	"io/fs"
	"path"
	"strings"

	"github.com/goccy/go-json"
)

const (
	contentsFile = "Contents.json"
	imageSetExt  = ".imageset"
	namespaceSep = "/"
)

// contentsJSON is the subset of an asset catalog Contents.json we read.
type contentsJSON struct {
	Images     []imageJSON    `json:"images"`
	Properties propertiesJSON `json:"properties"`
}

type imageJSON struct {
	Filename string `json:"filename"`
	Idiom    string `json:"idiom"`
	Scale    string `json:"scale"`
}

type propertiesJSON struct {
	ProvidesNamespace bool `json:"provides-namespace"`
}

// LoadXCAssets reads the image sets of an Xcode asset catalog rooted at fsys.
//
// Folders are walked recursively in name order. A folder whose Contents.json
// sets provides-namespace prefixes the keys beneath it. Sets other than image
// sets (colors, app icons, data) are skipped.
func LoadXCAssets(fsys fs.FS, id string) (Manifest, error) {
	entries := []Entry{}
	if err := walkXCAssets(fsys, ".", "", &entries); err != nil {
		return Manifest{}, err
	}
	return Manifest{ID: strings.TrimSpace(id), Entries: entries}, nil
}

func walkXCAssets(fsys fs.FS, dir, namespace string, entries *[]Entry) error {
	items, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return fmt.Errorf("%w: read %s: %w", ErrManifestMalformed, dir, err)
	}
	for _, item := range items {
		if !item.IsDir() {
			continue
		}
		name := item.Name()
		child := path.Join(dir, name)
		ext := path.Ext(name)
		switch {
		case ext == imageSetExt:
			entry, err := readImageSet(fsys, child, namespace)
			if err != nil {
				return err
			}
			*entries = append(*entries, entry)
		case ext != "":
			continue
		default:
			contents, ok, err := readContents(fsys, child)
			if err != nil {
				return err
			}
			childNamespace := namespace
			if ok && contents.Properties.ProvidesNamespace {
				childNamespace = joinNamespace(namespace, name)
			}
			if err := walkXCAssets(fsys, child, childNamespace, entries); err != nil {
				return err
			}
		}
	}
	return nil
}

func readImageSet(fsys fs.FS, dir, namespace string) (Entry, error) {
	contents, ok, err := readContents(fsys, dir)
	if err != nil {
		return Entry{}, err
	}
	if !ok {
		return Entry{}, fmt.Errorf("%w: %s has no %s", ErrManifestMalformed, dir, contentsFile)
	}
	stem := strings.TrimSuffix(path.Base(dir), imageSetExt)
	files := make([]string, 0, len(contents.Images))
	for _, image := range contents.Images {
		if filename := strings.TrimSpace(image.Filename); filename != "" {
			files = append(files, filename)
		}
	}
	return Entry{
		Key:       joinNamespace(namespace, stem),
		Namespace: namespace,
		Files:     files,
	}, nil
}

// readContents decodes dir/Contents.json, reporting ok=false when it is absent.
func readContents(fsys fs.FS, dir string) (contentsJSON, bool, error) {
	name := path.Join(dir, contentsFile)
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return contentsJSON{}, false, nil
		}
		return contentsJSON{}, false, fmt.Errorf("read %s: %w", name, err)
	}
	var contents contentsJSON
	if err := json.Unmarshal(data, &contents); err != nil {
		return contentsJSON{}, false, fmt.Errorf("%w: %s: %w", ErrManifestMalformed, name, err)
	}
	return contents, true, nil
}

func joinNamespace(namespace, name string) string {
	if namespace == "" {
		return name
	}
	return namespace + namespaceSep + name
}
