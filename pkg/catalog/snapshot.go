package catalog

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/vmihailenco/msgpack/v5"
)

// Snapshot is the generated catalog artifact on disk: the ordered entry name
// list plus the base-name size table, msgpack encoded.
type Snapshot struct {
	Names []string            `msgpack:"names"`
	Sizes map[string][]string `msgpack:"sizes"`
}

// LoadSnapshot reads a msgpack catalog snapshot and builds a Catalog from
// it. Malformed rows are skipped, not fatal: the snapshot is a build-time
// artifact and query-time validation stays best effort.
func LoadSnapshot(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading catalog snapshot: %w", err)
	}
	var snap Snapshot
	if err := msgpack.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("decoding catalog snapshot %s: %w", path, err)
	}
	if len(snap.Names) == 0 {
		return nil, fmt.Errorf("catalog snapshot %s has no entries", path)
	}
	names := snap.Names[:0:0]
	skipped := 0
	for _, name := range snap.Names {
		if name == "" {
			skipped++
			continue
		}
		names = append(names, name)
	}
	if skipped > 0 {
		log.Warnf("catalog snapshot %s: skipped %d empty names", path, skipped)
	}
	for base, labels := range snap.Sizes {
		if base == "" || len(labels) == 0 {
			delete(snap.Sizes, base)
		}
	}
	log.Debugf("loaded %d catalog entries from %s", len(names), path)
	return New(names, snap.Sizes), nil
}

// WriteSnapshot serializes a catalog back into its snapshot form. The build
// tooling uses this to emit the artifact the server loads.
func WriteSnapshot(c *Catalog, path string) error {
	snap := Snapshot{Names: c.Names(), Sizes: c.sizes}
	data, err := msgpack.Marshal(&snap)
	if err != nil {
		return fmt.Errorf("encoding catalog snapshot: %w", err)
	}
	return os.WriteFile(path, data, 0644)
}
