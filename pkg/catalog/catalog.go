package catalog

import (
	"sort"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/tchap/go-patricia/v2/patricia"
)

// Catalog is the immutable set of searchable entries, built once at startup.
// It precomputes everything the ranking layers need per entry: lowercase
// names, segment start offsets, and a patricia trie keyed by lowercase
// segment with entry-index postings.
type Catalog struct {
	entries    []Entry
	byName     map[string]int
	byBase     map[string][]int
	baseNames  []string
	lowerNames []string
	segStarts  [][]int
	segTrie    *patricia.Trie
	segVocab   []string
	sizes      map[string][]string
}

// New builds a catalog from an ordered name list and a base-name to size
// labels table. Duplicate names are skipped with a warning since the list is
// a generated artifact that should already be unique.
func New(names []string, sizes map[string][]string) *Catalog {
	c := &Catalog{
		byName:  make(map[string]int, len(names)),
		byBase:  make(map[string][]int),
		segTrie: patricia.NewTrie(),
		sizes:   sizes,
	}
	if c.sizes == nil {
		c.sizes = map[string][]string{}
	}
	for _, name := range names {
		if name == "" {
			continue
		}
		if _, dup := c.byName[name]; dup {
			log.Warnf("duplicate catalog entry %q skipped", name)
			continue
		}
		idx := len(c.entries)
		entry := ParseName(name)
		c.entries = append(c.entries, entry)
		c.byName[name] = idx
		if _, seen := c.byBase[entry.BaseName]; !seen {
			c.baseNames = append(c.baseNames, entry.BaseName)
		}
		c.byBase[entry.BaseName] = append(c.byBase[entry.BaseName], idx)
		c.lowerNames = append(c.lowerNames, strings.ToLower(name))
		c.segStarts = append(c.segStarts, SegmentStarts(name))
		c.indexSegments(name, idx)
	}
	return c
}

func (c *Catalog) indexSegments(name string, idx int) {
	for _, seg := range Segments(name) {
		key := patricia.Prefix(strings.ToLower(seg))
		if item := c.segTrie.Get(key); item != nil {
			postings := item.([]int)
			if postings[len(postings)-1] != idx {
				c.segTrie.Set(key, append(postings, idx))
			}
			continue
		}
		c.segTrie.Insert(key, []int{idx})
		c.segVocab = append(c.segVocab, string(key))
	}
}

// SegmentVocab returns every distinct lowercase segment across the catalog,
// in first-seen order. The concept and synonym layers fuzzy-match name
// fragments against this vocabulary.
func (c *Catalog) SegmentVocab() []string { return c.segVocab }

// Len returns the number of catalog entries.
func (c *Catalog) Len() int { return len(c.entries) }

// Entry returns the entry at index i.
func (c *Catalog) Entry(i int) Entry { return c.entries[i] }

// Names returns the full ordered name list.
func (c *Catalog) Names() []string {
	names := make([]string, len(c.entries))
	for i, e := range c.entries {
		names[i] = e.Name
	}
	return names
}

// BaseNames returns the distinct base names in first-seen order.
func (c *Catalog) BaseNames() []string { return c.baseNames }

// Index returns the entry index for a full name.
func (c *Catalog) Index(name string) (int, bool) {
	i, ok := c.byName[name]
	return i, ok
}

// EntriesForBase returns the indices of all entries sharing a base name.
func (c *Catalog) EntriesForBase(base string) []int { return c.byBase[base] }

// LowerName returns the precomputed lowercase name for entry i.
func (c *Catalog) LowerName(i int) string { return c.lowerNames[i] }

// SegmentStarts returns the segment start offsets for entry i's name.
func (c *Catalog) SegmentOffsets(i int) []int { return c.segStarts[i] }

// ExactSegment returns the indices of entries that contain word as a
// complete PascalCase segment, case-insensitively.
func (c *Catalog) ExactSegment(word string) []int {
	item := c.segTrie.Get(patricia.Prefix(strings.ToLower(word)))
	if item == nil {
		return nil
	}
	return item.([]int)
}

// SegmentPrefix returns the deduplicated, sorted indices of entries with a
// segment that starts with word. This covers the fast path of boundary
// matches; spans across segment joins are resolved by offset scans.
func (c *Catalog) SegmentPrefix(word string) []int {
	var out []int
	seen := map[int]struct{}{}
	err := c.segTrie.VisitSubtree(patricia.Prefix(strings.ToLower(word)), func(p patricia.Prefix, item patricia.Item) error {
		for _, idx := range item.([]int) {
			if _, dup := seen[idx]; !dup {
				seen[idx] = struct{}{}
				out = append(out, idx)
			}
		}
		return nil
	})
	if err != nil {
		log.Errorf("visiting segment trie: %v", err)
	}
	sort.Ints(out)
	return out
}

// Sizes returns the ordered pixel-size labels available for an entry's base
// name. Entries without sized siblings get an empty list.
func (c *Catalog) Sizes(name string) []string {
	i, ok := c.byName[name]
	if !ok {
		return nil
	}
	return c.sizes[c.entries[i].BaseName]
}
