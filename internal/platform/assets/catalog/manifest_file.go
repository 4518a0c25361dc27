package catalog

import (
	"bufio"
	"bytes"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/goccy/go-json"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"gopkg.in/yaml.v3"
)

// manifestDocument is the YAML/JSON manifest shape.
type manifestDocument struct {
	ID     string   `json:"id" yaml:"id"`
	Images []string `json:"images" yaml:"images"`
}

// hclManifest is the HCL manifest shape:
//
//	id = "sgfplayer"
//	image "board_kaya" {
//	  files = ["board_kaya.png"]
//	}
type hclManifest struct {
	ID     string     `hcl:"id,optional"`
	Images []hclImage `hcl:"image,block"`
}

type hclImage struct {
	Key   string   `hcl:"key,label"`
	Files []string `hcl:"files,optional"`
}

// Parse decodes a manifest file by extension: .yaml/.yml, .json, .hcl or
// .txt (one key per line, '#' starts a comment). The manifest ID defaults to
// the file name without extension.
func Parse(name string, data []byte) (Manifest, error) {
	var (
		manifest Manifest
		err      error
	)
	switch ext := strings.ToLower(filepath.Ext(name)); ext {
	case ".yaml", ".yml":
		manifest, err = parseYAML(data)
	case ".json":
		manifest, err = parseJSON(data)
	case ".hcl":
		manifest, err = parseHCL(name, data)
	case ".txt":
		manifest, err = parseText(data)
	default:
		return Manifest{}, fmt.Errorf("%w: unsupported manifest extension %q", ErrManifestMalformed, ext)
	}
	if err != nil {
		return Manifest{}, fmt.Errorf("%w: %s: %w", ErrManifestMalformed, name, err)
	}
	if manifest.ID == "" {
		manifest.ID = manifestID(name)
	}
	return manifest, nil
}

func parseYAML(data []byte) (Manifest, error) {
	var doc manifestDocument
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return Manifest{}, err
	}
	return doc.manifest(), nil
}

func parseJSON(data []byte) (Manifest, error) {
	var doc manifestDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return Manifest{}, err
	}
	return doc.manifest(), nil
}

func parseHCL(name string, data []byte) (Manifest, error) {
	file, diags := hclparse.NewParser().ParseHCL(data, name)
	if diags.HasErrors() {
		return Manifest{}, diags
	}
	var doc hclManifest
	if diags := gohcl.DecodeBody(file.Body, nil, &doc); diags.HasErrors() {
		return Manifest{}, diags
	}
	manifest := Manifest{
		ID:      strings.TrimSpace(doc.ID),
		Entries: make([]Entry, 0, len(doc.Images)),
	}
	for _, image := range doc.Images {
		manifest.Entries = append(manifest.Entries, Entry{
			Key:   strings.TrimSpace(image.Key),
			Files: append([]string(nil), image.Files...),
		})
	}
	return manifest, nil
}

func parseText(data []byte) (Manifest, error) {
	manifest := Manifest{Entries: []Entry{}}
	scanner := bufio.NewScanner(bytes.NewReader(data))
	for scanner.Scan() {
		line := scanner.Text()
		if idx := strings.IndexByte(line, '#'); idx >= 0 {
			line = line[:idx]
		}
		key := strings.TrimSpace(line)
		if key == "" {
			continue
		}
		manifest.Entries = append(manifest.Entries, Entry{Key: key})
	}
	if err := scanner.Err(); err != nil {
		return Manifest{}, err
	}
	return manifest, nil
}

func (d manifestDocument) manifest() Manifest {
	manifest := Manifest{
		ID:      strings.TrimSpace(d.ID),
		Entries: make([]Entry, 0, len(d.Images)),
	}
	for _, key := range d.Images {
		manifest.Entries = append(manifest.Entries, Entry{Key: strings.TrimSpace(key)})
	}
	return manifest
}
