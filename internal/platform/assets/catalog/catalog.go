package catalog

import (
	"errors"
	"fmt"
	"hash/fnv"
	"sort"
	"strconv"
	"strings"
)

const defaultAlgorithm = "asset-default-v1"

var (
	ErrManifestNotFound  = errors.New("asset catalog not found")
	ErrManifestMalformed = errors.New("asset catalog is malformed")
	ErrManifestEmpty     = errors.New("asset catalog has no image entries")
	ErrKeyEmpty          = errors.New("catalog key is empty")
	ErrKeyDuplicate      = errors.New("catalog key is duplicated")
	ErrVariantsNotFound  = errors.New("no numbered variants for stem")
	ErrEntityID          = errors.New("entity id is required")
	ErrEntityType        = errors.New("entity type is required")
)

// Entry is one image resource in an asset catalog.
type Entry struct {
	// Key resolves the image at runtime; namespaced entries include their
	// folder prefix ("Stones/stone_black").
	Key       string
	Namespace string
	Files     []string
}

// Manifest is a loaded asset catalog in source order.
type Manifest struct {
	ID      string
	Entries []Entry
}

// PickerInput identifies the entity and variant stem used for deterministic picks.
type PickerInput struct {
	EntityType string
	EntityID   string
	Stem       string
	Algorithm  string
}

// Keys returns every catalog key in source order.
func (m Manifest) Keys() []string {
	keys := make([]string, 0, len(m.Entries))
	for _, entry := range m.Entries {
		keys = append(keys, entry.Key)
	}
	return keys
}

// Entry returns the entry registered under key.
func (m Manifest) Entry(key string) (Entry, bool) {
	for _, entry := range m.Entries {
		if entry.Key == key {
			return copyEntry(entry), true
		}
	}
	return Entry{}, false
}

// Validate reports every empty or duplicated key in the manifest.
func (m Manifest) Validate() error {
	if len(m.Entries) == 0 {
		return ErrManifestEmpty
	}
	var errs []error
	seen := make(map[string]struct{}, len(m.Entries))
	for i, entry := range m.Entries {
		if strings.TrimSpace(entry.Key) == "" {
			errs = append(errs, fmt.Errorf("%w: entry %d", ErrKeyEmpty, i))
			continue
		}
		if _, ok := seen[entry.Key]; ok {
			errs = append(errs, fmt.Errorf("%w: %q", ErrKeyDuplicate, entry.Key))
			continue
		}
		seen[entry.Key] = struct{}{}
	}
	return errors.Join(errs...)
}

// Variants returns the keys shaped "<stem>_<n>" ordered by n.
func (m Manifest) Variants(stem string) []string {
	stem = strings.TrimSpace(stem)
	if stem == "" {
		return []string{}
	}
	type variant struct {
		key   string
		index int
	}
	prefix := stem + "_"
	variants := []variant{}
	for _, entry := range m.Entries {
		suffix, ok := strings.CutPrefix(entry.Key, prefix)
		if !ok || !isDigits(suffix) {
			continue
		}
		index, err := strconv.Atoi(suffix)
		if err != nil {
			continue
		}
		variants = append(variants, variant{key: entry.Key, index: index})
	}
	sort.SliceStable(variants, func(i, j int) bool {
		if variants[i].index != variants[j].index {
			return variants[i].index < variants[j].index
		}
		return variants[i].key < variants[j].key
	})
	keys := make([]string, 0, len(variants))
	for _, v := range variants {
		keys = append(keys, v.key)
	}
	return keys
}

// DeterministicAsset chooses a stable variant of stem for one entity.
func (m Manifest) DeterministicAsset(input PickerInput) (string, error) {
	entityType := strings.TrimSpace(input.EntityType)
	if entityType == "" {
		return "", ErrEntityType
	}
	entityID := strings.TrimSpace(input.EntityID)
	if entityID == "" {
		return "", ErrEntityID
	}
	stem := strings.TrimSpace(input.Stem)
	variants := m.Variants(stem)
	if len(variants) == 0 {
		return "", fmt.Errorf("%w: %q", ErrVariantsNotFound, stem)
	}
	algorithm := strings.TrimSpace(input.Algorithm)
	if algorithm == "" {
		algorithm = defaultAlgorithm
	}
	hasher := fnv.New64a()
	_, _ = hasher.Write([]byte(entityType))
	_, _ = hasher.Write([]byte{0})
	_, _ = hasher.Write([]byte(entityID))
	_, _ = hasher.Write([]byte{0})
	_, _ = hasher.Write([]byte(stem))
	_, _ = hasher.Write([]byte{0})
	_, _ = hasher.Write([]byte(algorithm))
	index := hasher.Sum64() % uint64(len(variants))
	return variants[index], nil
}

func isDigits(value string) bool {
	if value == "" {
		return false
	}
	for _, r := range value {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func copyEntry(source Entry) Entry {
	return Entry{
		Key:       source.Key,
		Namespace: source.Namespace,
		Files:     append([]string(nil), source.Files...),
	}
}
