package imagename

import (
	"context"
	"errors"
	"testing"

	"github.com/louisbranch/sgfplayer/internal/platform/assets/catalog"
	"github.com/louisbranch/sgfplayer/internal/tools/assetsymgen"
)

func TestAllKeysAreNonEmptyAndUnique(t *testing.T) {
	names := All()
	if len(names) == 0 {
		t.Fatal("expected catalog to include image names")
	}
	seen := make(map[string]Name, len(names))
	for _, name := range names {
		key := name.Key()
		if key == "" {
			t.Fatalf("image name %v resolves to an empty key", name)
		}
		if prior, ok := seen[key]; ok {
			t.Fatalf("key %q shared by %v and %v", key, prior, name)
		}
		seen[key] = name
	}
}

func TestKeysMatchCatalogVerbatim(t *testing.T) {
	tests := map[Name]string{
		BoardKaya:  "board_kaya",
		Clam01:     "clam_01",
		Clam05:     "clam_05",
		GoLid1:     "go_lid_1",
		GoLid2:     "go_lid_2",
		StoneBlack: "stone_black",
		Tatami:     "tatami",
	}
	for name, want := range tests {
		if got := name.Key(); got != want {
			t.Fatalf("%v.Key() = %q, want %q", name, got, want)
		}
	}
}

func TestAllReturnsCopy(t *testing.T) {
	names := All()
	names[0] = "mutated"
	if All()[0] != BoardKaya {
		t.Fatalf("All() exposed internal state: %v", All()[0])
	}
}

func TestParseAndValid(t *testing.T) {
	name, ok := Parse("stone_black")
	if !ok || name != StoneBlack {
		t.Fatalf("Parse(stone_black) = %v, %v", name, ok)
	}
	if _, ok := Parse("stone_white"); ok {
		t.Fatal("expected unknown key to be rejected")
	}
	if !Tatami.Valid() {
		t.Fatal("expected Tatami to be valid")
	}
	if Name("tatami ").Valid() {
		t.Fatal("expected padded key to be invalid")
	}
}

func TestGeneratedFileIsUpToDate(t *testing.T) {
	err := assetsymgen.Run(context.Background(), assetsymgen.Config{
		Manifest: "Assets.xcassets",
		Out:      "imagename_gen.go",
		Package:  "imagename",
		TypeName: "Name",
		Reserved: "Variants,PickVariant,StemClam,StemGoLid",
		Check:    true,
	}, nil)
	if err != nil {
		t.Fatalf("imagename_gen.go is stale, run go generate: %v", err)
	}
}

func TestCatalogMatchesRegistry(t *testing.T) {
	manifest, err := catalog.Load("Assets.xcassets")
	if err != nil {
		t.Fatalf("load catalog: %v", err)
	}
	if len(manifest.Entries) != len(All()) {
		t.Fatalf("catalog has %d entries, registry has %d", len(manifest.Entries), len(All()))
	}
	for _, entry := range manifest.Entries {
		if _, ok := Parse(entry.Key); !ok {
			t.Fatalf("catalog key %q missing from registry", entry.Key)
		}
		if len(entry.Files) == 0 {
			t.Fatalf("catalog entry %q has no image file", entry.Key)
		}
	}
}

func TestVariants(t *testing.T) {
	got := Variants(StemClam)
	want := []Name{Clam01, Clam02, Clam03, Clam04, Clam05}
	if len(got) != len(want) {
		t.Fatalf("Variants(clam) = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Variants(clam) = %v, want %v", got, want)
		}
	}
	if got := Variants(StemGoLid); len(got) != 2 || got[0] != GoLid1 || got[1] != GoLid2 {
		t.Fatalf("Variants(go_lid) = %v", got)
	}
	if got := Variants("tatami"); len(got) != 0 {
		t.Fatalf("expected no tatami variants, got %v", got)
	}
}

func TestPickVariantIsDeterministic(t *testing.T) {
	first, err := PickVariant(StemGoLid, "game", "kifu-42")
	if err != nil {
		t.Fatalf("pick variant: %v", err)
	}
	for i := 0; i < 5; i++ {
		next, err := PickVariant(StemGoLid, "game", "kifu-42")
		if err != nil {
			t.Fatalf("pick variant: %v", err)
		}
		if next != first {
			t.Fatalf("pick changed from %v to %v", first, next)
		}
	}
	if first != GoLid1 && first != GoLid2 {
		t.Fatalf("pick %v is not a go lid", first)
	}
}

func TestPickVariantRejectsUnknownStem(t *testing.T) {
	_, err := PickVariant("bowl", "game", "kifu-42")
	if !errors.Is(err, catalog.ErrVariantsNotFound) {
		t.Fatalf("error = %v, want ErrVariantsNotFound", err)
	}
}
