package fuzzy

import "testing"

var testCorpus = []string{"Save", "Safe", "Settings", "Agents", "Delete", "DrinkBeer"}

func TestDistance(t *testing.T) {
	testCases := []struct {
		a, b        string
		zero        bool
		description string
	}{
		{"save", "save", true, "identical"},
		{"Save", "save", true, "case folded"},
		{"save", "safe", false, "one substitution"},
		{"save", "zzzz", false, "unrelated"},
		{"", "save", false, "empty side"},
	}

	for _, tc := range testCases {
		d := Distance(tc.a, tc.b)
		if d < 0 || d > 1 {
			t.Errorf("%s: Distance(%q, %q) = %v out of [0,1]", tc.description, tc.a, tc.b, d)
		}
		if tc.zero && d != 0 {
			t.Errorf("%s: Distance(%q, %q) = %v, want 0", tc.description, tc.a, tc.b, d)
		}
		if !tc.zero && d == 0 {
			t.Errorf("%s: Distance(%q, %q) = 0, want > 0", tc.description, tc.a, tc.b)
		}
	}

	if Distance("", "") != 0 {
		t.Error("Distance of two empty strings should be 0")
	}
}

func TestMatcherZeroThresholdIsExactOnly(t *testing.T) {
	m := New(testCorpus)

	matches := m.Matches("save", 0)
	if len(matches) != 1 || matches[0].Value != "Save" {
		t.Fatalf("Matches(save, 0) = %v, want exactly [Save]", matches)
	}
	if matches[0].Distance != 0 {
		t.Errorf("exact match distance = %v", matches[0].Distance)
	}

	if got := m.Matches("sav", 0); got != nil {
		t.Errorf("Matches(sav, 0) = %v, want none", got)
	}
}

func TestMatcherThresholdMonotonic(t *testing.T) {
	m := New(testCorpus)
	query := "sav"

	prev := 0
	for _, threshold := range []float64{0, 0.05, 0.1, 0.2, 0.5, 1} {
		got := len(m.Matches(query, threshold))
		if got < prev {
			t.Fatalf("threshold %v yields %d matches, fewer than a tighter threshold's %d",
				threshold, got, prev)
		}
		prev = got
	}
	if got := len(m.Matches(query, 1)); got != len(testCorpus) {
		t.Errorf("threshold 1 admits %d of %d candidates", got, len(testCorpus))
	}
}

func TestMatchesSortedByDistance(t *testing.T) {
	m := New(testCorpus)

	matches := m.Matches("save", 0.5)
	if len(matches) < 2 {
		t.Fatalf("expected multiple matches, got %v", matches)
	}
	for i := 1; i < len(matches); i++ {
		if matches[i].Distance < matches[i-1].Distance {
			t.Fatalf("matches not sorted: %v", matches)
		}
	}
	if matches[0].Value != "Save" {
		t.Errorf("closest match = %q, want Save", matches[0].Value)
	}
}

func TestBest(t *testing.T) {
	m := New(testCorpus)

	best, ok := m.Best("deleet", 0.2)
	if !ok || best.Value != "Delete" {
		t.Errorf("Best(deleet) = %v, %v", best, ok)
	}
	if _, ok := m.Best("xyzzy", 0.1); ok {
		t.Error("Best(xyzzy) should not match")
	}
	if _, ok := m.Best("", 1); ok {
		t.Error("empty query should never match")
	}
}
