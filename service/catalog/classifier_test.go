package catalog

import (
	"testing"

	catalogEntity "github.com/programmer-santosh-main/thapaelectronics/model/entity/catalog"
)

func TestMatchesSection_CategorySubstring(t *testing.T) {
	p := catalogEntity.Product{Category: "Mobile Phones"}
	if !MatchesSection(p, SectionMobile) {
		t.Error("category substring should match mobile")
	}
}

func TestMatchesSection_NameAndDescription(t *testing.T) {
	byName := catalogEntity.Product{Name: "Galaxy S24 smartphone"}
	if !MatchesSection(byName, SectionMobile) {
		t.Error("name keyword should match mobile")
	}
	byDesc := catalogEntity.Product{Description: "A smart bulb for your living room"}
	if !MatchesSection(byDesc, SectionSmartHome) {
		t.Error("description keyword should match smart-home")
	}
}

func TestMatchesSection_TagsExactOnly(t *testing.T) {
	exact := catalogEntity.Product{Tags: []string{"Smartphone"}}
	if !MatchesSection(exact, SectionMobile) {
		t.Error("tag match is case-insensitive exact")
	}
	// Substring inside a tag does not count.
	partial := catalogEntity.Product{Tags: []string{"smartphone-adjacent"}}
	if MatchesSection(partial, SectionMobile) {
		t.Error("partial tag should not match")
	}
}

func TestMatchesSection_AccessoriesAlias(t *testing.T) {
	p := catalogEntity.Product{Category: "Gadgets & More"}
	if !MatchesSection(p, SectionAccessories) {
		t.Error("gadgets category alias should match accessories")
	}
}

func TestMatchesSection_EmptyFieldsNeverMatch(t *testing.T) {
	if MatchesSection(catalogEntity.Product{}, SectionMobile) {
		t.Error("empty product should not match any section")
	}
}

func TestMatchesSection_UnknownSection(t *testing.T) {
	p := catalogEntity.Product{Category: "mobile"}
	if MatchesSection(p, "laptops") {
		t.Error("unknown section should match nothing")
	}
}

func TestForSection_PreservesOrder(t *testing.T) {
	products := []catalogEntity.Product{
		{ID: "1", Category: "mobile"},
		{ID: "2", Category: "kitchen"},
		{ID: "3", Name: "iPhone 15"},
	}
	got := ForSection(products, SectionMobile)
	if len(got) != 2 || got[0].ID != "1" || got[1].ID != "3" {
		t.Errorf("ForSection = %v, want ids 1,3 in order", got)
	}
	if len(products) != 3 {
		t.Error("input mutated")
	}
}

func TestKnownSection(t *testing.T) {
	for _, s := range Sections() {
		if !KnownSection(s) {
			t.Errorf("KnownSection(%q) = false", s)
		}
	}
	if KnownSection("laptops") {
		t.Error("KnownSection(laptops) = true")
	}
}
