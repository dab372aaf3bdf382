// Package catalog loads and holds the read-only collection of instruction
// encodings a proposed encoding is checked against.
//
// A catalog is built once from a YAML or JSON file and is an immutable
// snapshot from then on: validation runs borrow entries for comparison and
// never mutate them. Entries whose source data cannot yield a valid
// pattern are excluded at load time and reported as skipped, so the
// comparison logic can assume every entry it sees carries a valid Pattern.
package catalog

import (
	"github.com/danieljhkim/encheck/internal/encoding"
)

// Entry is one cataloged instruction encoding.
type Entry struct {
	// ID is the stable identifier, "extension/name"
	ID string `json:"id"`

	// Extension is the ISA extension the instruction belongs to
	Extension string `json:"extension"`

	// Name is the instruction mnemonic
	Name string `json:"name"`

	// Pattern is the canonical encoding pattern
	Pattern encoding.Pattern `json:"pattern"`
}

// Catalog is an immutable snapshot of cataloged encodings. Iteration order
// is the order entries appeared in the source file.
type Catalog struct {
	entries []Entry
}

// New builds a catalog snapshot from the given entries. The input slice is
// copied so later mutation by the caller cannot affect the snapshot.
func New(entries []Entry) *Catalog {
	snap := make([]Entry, len(entries))
	copy(snap, entries)
	return &Catalog{entries: snap}
}

// Entries returns the cataloged entries in stable order.
// The returned slice is shared; callers must not modify it.
func (c *Catalog) Entries() []Entry {
	return c.entries
}

// Len returns the number of cataloged entries.
func (c *Catalog) Len() int {
	return len(c.entries)
}

// Find returns the entry with the given ID, if present.
func (c *Catalog) Find(id string) (Entry, bool) {
	for _, e := range c.entries {
		if e.ID == id {
			return e, true
		}
	}
	return Entry{}, false
}
