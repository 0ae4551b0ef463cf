package visual

import (
	"regexp"
	"sort"
	"strings"

	"github.com/charmbracelet/log"
)

// Index maps catalog base names to their visual tag index sets and keeps the
// reverse mapping for query-time lookups. Immutable once built.
type Index struct {
	tagsByBase map[string][]int
	basesByTag map[int][]string
}

type compiledRule struct {
	sub  string
	re   *regexp.Regexp
	tags []int
}

func compileRules() []compiledRule {
	compiled := make([]compiledRule, 0, len(tagRules))
	for _, r := range tagRules {
		cr := compiledRule{sub: r.sub}
		if r.re != "" {
			re, err := regexp.Compile(r.re)
			if err != nil {
				// Rule tables are generated; a bad pattern is a build
				// defect, not a query-time failure.
				log.Errorf("skipping visual rule %q: %v", r.re, err)
				continue
			}
			cr.re = re
		}
		for _, tag := range r.tags {
			idx, ok := TagIndex(tag)
			if !ok {
				log.Errorf("visual rule references unknown tag %q", tag)
				continue
			}
			cr.tags = append(cr.tags, idx)
		}
		if len(cr.tags) > 0 {
			compiled = append(compiled, cr)
		}
	}
	return compiled
}

// BuildIndex runs the rule table over every base name and collects the
// deduplicated, index-sorted tag set per base.
func BuildIndex(baseNames []string) *Index {
	rules := compileRules()
	idx := &Index{
		tagsByBase: make(map[string][]int, len(baseNames)),
		basesByTag: make(map[int][]string),
	}
	for _, base := range baseNames {
		seen := map[int]struct{}{}
		var tags []int
		for _, r := range rules {
			if r.re != nil {
				if !r.re.MatchString(base) {
					continue
				}
			} else if !strings.Contains(base, r.sub) {
				continue
			}
			for _, t := range r.tags {
				if _, dup := seen[t]; !dup {
					seen[t] = struct{}{}
					tags = append(tags, t)
				}
			}
		}
		if len(tags) == 0 {
			continue
		}
		sort.Ints(tags)
		idx.tagsByBase[base] = tags
		for _, t := range tags {
			idx.basesByTag[t] = append(idx.basesByTag[t], base)
		}
	}
	log.Debugf("visual index: %d of %d base names tagged", len(idx.tagsByBase), len(baseNames))
	return idx
}

// Tags returns the tag indices for a base name, nil when untagged.
func (x *Index) Tags(base string) []int { return x.tagsByBase[base] }

// BasesFor returns every base name carrying the given tag index.
func (x *Index) BasesFor(tagIdx int) []string { return x.basesByTag[tagIdx] }

// Len returns how many base names carry at least one tag.
func (x *Index) Len() int { return len(x.tagsByBase) }
