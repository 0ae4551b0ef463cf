package search

// Per-layer point ceilings. Only an exact segment match can reach the total
// cap by itself; the partial layers nudge ranking without dominating it.
// Relative ordering of the ceilings (substring > semantic > synonym >
// visual-ish > fuzzy) is part of the ranking contract.
const (
	capSubstring = 100.0
	capFuzzy     = 15.0
	capSemantic  = 25.0
	capVisual    = 25.0
	capSynonym   = 20.0
	capTotal     = 100.0

	pointsExactSegment  = 100.0
	pointsPartialName   = 15.0
	pointsConcept       = 25.0
	pointsConceptFuzzy  = 18.0
	pointsSynonymBridge = 20.0
	pointsSynonymDirect = 14.0
	pointsVisualExact   = 25.0
	pointsVisualFuzzy   = 18.0
)

// Layer labels for the dominant-layer field. An exact whole-segment hit is
// reported distinctly from ordinary partial substring matches.
const (
	LayerExact     = "exact"
	LayerSubstring = "substring"
	LayerFuzzy     = "fuzzy"
	LayerSemantic  = "semantic"
	LayerVisual    = "visual"
	LayerSynonym   = "synonym"
)

// Breakdown holds the per-layer contributions for one entry, each already
// clamped to its ceiling. Computed fresh per query and discarded with the
// response.
type Breakdown struct {
	Substring float64 `msgpack:"sub"`
	Fuzzy     float64 `msgpack:"fuz"`
	Semantic  float64 `msgpack:"sem"`
	Visual    float64 `msgpack:"vis"`
	Synonym   float64 `msgpack:"syn"`
}

// combine folds five layer maxima into the clamped total, the breakdown,
// and the dominant layer label. Pure, so the aggregation rule is testable
// apart from the layers feeding it.
func combine(sub, fuz, sem, vis, syn float64, exactHit bool) (float64, Breakdown, string) {
	b := Breakdown{
		Substring: clamp(sub, capSubstring),
		Fuzzy:     clamp(fuz, capFuzzy),
		Semantic:  clamp(sem, capSemantic),
		Visual:    clamp(vis, capVisual),
		Synonym:   clamp(syn, capSynonym),
	}
	total := b.Substring + b.Fuzzy + b.Semantic + b.Visual + b.Synonym
	if total > capTotal {
		total = capTotal
	}
	return total, b, dominantLayer(b, exactHit)
}

func clamp(v, cap float64) float64 {
	if v < 0 {
		return 0
	}
	if v > cap {
		return cap
	}
	return v
}

// dominantLayer picks the largest contributor. Ties resolve in ceiling
// order so the label is deterministic.
func dominantLayer(b Breakdown, exactHit bool) string {
	if exactHit {
		return LayerExact
	}
	best, label := b.Substring, LayerSubstring
	for _, c := range []struct {
		v     float64
		label string
	}{
		{b.Semantic, LayerSemantic},
		{b.Synonym, LayerSynonym},
		{b.Visual, LayerVisual},
		{b.Fuzzy, LayerFuzzy},
	} {
		if c.v > best {
			best, label = c.v, c.label
		}
	}
	return label
}
