package imagename

import (
	"github.com/louisbranch/sgfplayer/internal/platform/assets/catalog"
)

// Variant stems present in the catalog.
const (
	StemClam  = "clam"
	StemGoLid = "go_lid"
)

var manifest = newManifest()

func newManifest() catalog.Manifest {
	m := catalog.Manifest{ID: "imagename", Entries: make([]catalog.Entry, 0, len(all))}
	for _, name := range all {
		m.Entries = append(m.Entries, catalog.Entry{Key: name.Key()})
	}
	return m
}

// Variants returns the numbered images sharing stem ("clam" yields Clam01
// through Clam05) in numeric order.
func Variants(stem string) []Name {
	keys := manifest.Variants(stem)
	names := make([]Name, 0, len(keys))
	for _, key := range keys {
		names = append(names, Name(key))
	}
	return names
}

// PickVariant chooses one variant of stem for an entity, e.g. the bowl lid
// shown for a given game record. The same entity always gets the same image.
func PickVariant(stem, entityType, entityID string) (Name, error) {
	key, err := manifest.DeterministicAsset(catalog.PickerInput{
		EntityType: entityType,
		EntityID:   entityID,
		Stem:       stem,
	})
	if err != nil {
		return "", err
	}
	return Name(key), nil
}
