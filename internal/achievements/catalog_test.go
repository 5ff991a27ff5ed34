package achievements

import (
	"testing"

	"grasspit/internal/constants"
)

func TestCatalogIDsAreUnique(t *testing.T) {
	seen := make(map[string]bool)
	for _, a := range Catalog() {
		if a.ID == "" {
			t.Error("catalog entry with empty ID")
		}
		if seen[a.ID] {
			t.Errorf("duplicate catalog ID %q", a.ID)
		}
		seen[a.ID] = true
	}
}

func TestCatalogEntriesAreComplete(t *testing.T) {
	valid := map[constants.Rarity]bool{
		constants.RarityCommon:    true,
		constants.RarityUncommon:  true,
		constants.RarityRare:      true,
		constants.RarityLegendary: true,
		constants.RarityCursed:    true,
	}
	for _, a := range Catalog() {
		if a.Name == "" || a.Description == "" || a.Icon == "" {
			t.Errorf("catalog entry %q is missing display fields", a.ID)
		}
		if !valid[a.Rarity] {
			t.Errorf("catalog entry %q has unknown rarity %q", a.ID, a.Rarity)
		}
	}
}
