package catalog

import (
	"reflect"
	"testing"
)

func testCatalog() *Catalog {
	names := []string{
		"SaveRegular", "SaveFilled",
		"DrinkBeerRegular", "DrinkBeerFilled",
		"DeleteRegular",
		"AgentsRegular", "AgentsFilled", "AgentsColor",
	}
	sizes := map[string][]string{
		"Save":      {"16", "20", "24"},
		"DrinkBeer": {"16", "20"},
	}
	return New(names, sizes)
}

func TestParseName(t *testing.T) {
	testCases := []struct {
		name    string
		base    string
		variant string
	}{
		{"SaveRegular", "Save", VariantRegular},
		{"SaveFilled", "Save", VariantFilled},
		{"AgentsColor", "Agents", VariantColor},
		{"DrinkBeerRegular", "DrinkBeer", VariantRegular},
		// no recognized suffix
		{"Save", "Save", ""},
		{"RegularGrid", "RegularGrid", ""},
	}

	for _, tc := range testCases {
		e := ParseName(tc.name)
		if e.BaseName != tc.base || e.Variant != tc.variant {
			t.Errorf("ParseName(%q) = {%q %q}, want {%q %q}",
				tc.name, e.BaseName, e.Variant, tc.base, tc.variant)
		}
	}
}

func TestCatalogIndexes(t *testing.T) {
	c := testCatalog()

	if c.Len() != 8 {
		t.Fatalf("Len() = %d, want 8", c.Len())
	}
	i, ok := c.Index("SaveFilled")
	if !ok || c.Entry(i).BaseName != "Save" {
		t.Errorf("Index(SaveFilled) = %d, %v", i, ok)
	}
	if got := len(c.EntriesForBase("Agents")); got != 3 {
		t.Errorf("EntriesForBase(Agents) has %d entries, want 3", got)
	}
	if got := c.LowerName(0); got != "saveregular" {
		t.Errorf("LowerName(0) = %q", got)
	}
	if got := c.Sizes("SaveFilled"); !reflect.DeepEqual(got, []string{"16", "20", "24"}) {
		t.Errorf("Sizes(SaveFilled) = %v", got)
	}
	if got := c.Sizes("DeleteRegular"); got != nil {
		t.Errorf("Sizes(DeleteRegular) = %v, want nil", got)
	}
}

func TestCatalogExactSegment(t *testing.T) {
	c := testCatalog()

	beer := c.ExactSegment("beer")
	if len(beer) != 2 {
		t.Fatalf("ExactSegment(beer) = %v, want the two DrinkBeer entries", beer)
	}
	for _, i := range beer {
		if c.Entry(i).BaseName != "DrinkBeer" {
			t.Errorf("ExactSegment(beer) hit %q", c.Entry(i).Name)
		}
	}

	// partial segment text is not an exact segment
	if got := c.ExactSegment("bee"); got != nil {
		t.Errorf("ExactSegment(bee) = %v, want nil", got)
	}
	// case-insensitive lookup
	if got := c.ExactSegment("BEER"); len(got) != 2 {
		t.Errorf("ExactSegment(BEER) = %v", got)
	}
}

func TestCatalogSegmentPrefix(t *testing.T) {
	c := testCatalog()

	// "d" prefixes Drink and Delete segments
	got := c.SegmentPrefix("d")
	want := map[string]bool{"DrinkBeerRegular": true, "DrinkBeerFilled": true, "DeleteRegular": true}
	if len(got) != len(want) {
		t.Fatalf("SegmentPrefix(d) = %v", got)
	}
	for _, i := range got {
		if !want[c.Entry(i).Name] {
			t.Errorf("SegmentPrefix(d) hit unexpected %q", c.Entry(i).Name)
		}
	}
}

func TestCatalogDuplicatesSkipped(t *testing.T) {
	c := New([]string{"SaveRegular", "SaveRegular", ""}, nil)
	if c.Len() != 1 {
		t.Errorf("Len() = %d after duplicate and empty names, want 1", c.Len())
	}
}

func TestDefaultCatalog(t *testing.T) {
	c := Default()
	if c.Len() < 100 {
		t.Fatalf("builtin catalog suspiciously small: %d entries", c.Len())
	}
	for _, name := range []string{"SaveRegular", "DrinkBeerRegular", "DeleteRegular", "AgentsColor"} {
		if _, ok := c.Index(name); !ok {
			t.Errorf("builtin catalog missing %q", name)
		}
	}
	if sizes := c.Sizes("SaveRegular"); len(sizes) == 0 {
		t.Error("builtin catalog has no sizes for SaveRegular")
	}
}
