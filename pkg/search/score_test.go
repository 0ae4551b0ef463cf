package search

import "testing"

func TestCombineCapsEachLayer(t *testing.T) {
	total, b, _ := combine(500, 500, 500, 500, 500, false)

	if b.Substring != capSubstring || b.Fuzzy != capFuzzy || b.Semantic != capSemantic ||
		b.Visual != capVisual || b.Synonym != capSynonym {
		t.Errorf("breakdown not clamped to ceilings: %+v", b)
	}
	if total != capTotal {
		t.Errorf("total = %v, want clamped %v", total, capTotal)
	}
}

func TestCombineSumsBelowCap(t *testing.T) {
	total, b, _ := combine(10, 5, 20, 0, 15, false)

	want := 50.0
	if total != want {
		t.Errorf("total = %v, want %v", total, want)
	}
	if b.Substring != 10 || b.Fuzzy != 5 || b.Semantic != 20 || b.Visual != 0 || b.Synonym != 15 {
		t.Errorf("breakdown altered below ceilings: %+v", b)
	}
}

func TestCombineNegativeClampsToZero(t *testing.T) {
	total, b, _ := combine(-5, 0, 0, 0, 0, false)
	if total != 0 || b.Substring != 0 {
		t.Errorf("negative input leaked: total=%v breakdown=%+v", total, b)
	}
}

func TestDominantLayer(t *testing.T) {
	testCases := []struct {
		sub, fuz, sem, vis, syn float64
		exact                   bool
		want                    string
	}{
		{100, 0, 0, 0, 0, true, LayerExact},
		{15, 5, 0, 0, 0, false, LayerSubstring},
		{0, 14, 0, 0, 0, false, LayerFuzzy},
		{0, 5, 25, 0, 0, false, LayerSemantic},
		{0, 0, 0, 25, 20, false, LayerVisual},
		{0, 0, 0, 0, 20, false, LayerSynonym},
		// ties resolve in ceiling order
		{15, 15, 15, 15, 15, false, LayerSubstring},
		{0, 15, 15, 15, 15, false, LayerSemantic},
		{0, 15, 0, 15, 15, false, LayerSynonym},
		{0, 15, 0, 15, 0, false, LayerVisual},
		// exact flag wins regardless of magnitudes
		{10, 0, 25, 0, 0, true, LayerExact},
	}

	for _, tc := range testCases {
		_, _, got := combine(tc.sub, tc.fuz, tc.sem, tc.vis, tc.syn, tc.exact)
		if got != tc.want {
			t.Errorf("combine(%v,%v,%v,%v,%v,%v) dominant = %q, want %q",
				tc.sub, tc.fuz, tc.sem, tc.vis, tc.syn, tc.exact, got, tc.want)
		}
	}
}
