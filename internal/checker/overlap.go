// Package checker decides whether a proposed instruction encoding collides
// with entries of an existing encoding catalog, and classifies each
// collision precisely enough for a human to judge decode ambiguity.
//
// Every decision is over the word sets the patterns denote. Two patterns
// collide exactly when some 32-bit word decodes under both, which reduces
// to one bitwise fact: wherever both patterns fix a bit, they must require
// the same value.
package checker

import (
	"encoding/json"
	"fmt"

	"github.com/danieljhkim/encheck/internal/encoding"
)

// Kind classifies the relationship between a proposed pattern and an
// existing catalog pattern whose decode spaces intersect. Kinds are
// ordered by severity: a conflict report lists identical encodings first
// and partial overlaps last.
type Kind int

const (
	// KindIdentical means the two patterns have the same match and mask.
	KindIdentical Kind = iota

	// KindProposedSubset means every word the proposal decodes is already
	// claimed by the existing entry (the existing entry is more general).
	KindProposedSubset

	// KindExistingSubset means the proposal swallows the existing entry's
	// entire decode space.
	KindExistingSubset

	// KindPartialOverlap means the decode spaces intersect without either
	// containing the other.
	KindPartialOverlap
)

// String returns the stable name of the kind, also used in JSON output.
func (k Kind) String() string {
	switch k {
	case KindIdentical:
		return "identical"
	case KindProposedSubset:
		return "proposed-subset-of-existing"
	case KindExistingSubset:
		return "existing-subset-of-proposed"
	case KindPartialOverlap:
		return "partial-overlap"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// MarshalJSON renders the kind by name rather than ordinal.
func (k Kind) MarshalJSON() ([]byte, error) {
	return json.Marshal(k.String())
}

// Overlaps reports whether the decode spaces of a and b share at least one
// word. Wherever both patterns fix a bit they must require the same value;
// this single expression is the whole test.
func Overlaps(a, b encoding.Pattern) bool {
	return (a.Match^b.Match)&(a.Mask&b.Mask) == 0
}

// subsetOf reports whether every word of a's decode space is also in b's:
// every bit b fixes, a also fixes, and they agree there. Only meaningful
// once the two patterns are known to overlap.
func subsetOf(a, b encoding.Pattern) bool {
	return b.Mask&^a.Mask == 0 && (a.Match^b.Match)&b.Mask == 0
}

// Classify names the relationship between two overlapping patterns.
// Callers must have established Overlaps(proposed, existing) first.
//
// The decision order matters: when both subset directions hold the
// patterns are identical, and that case is taken before either subset
// branch, so exactly one kind applies to every overlapping pair.
func Classify(proposed, existing encoding.Pattern) Kind {
	switch {
	case proposed == existing:
		return KindIdentical
	case subsetOf(proposed, existing):
		return KindProposedSubset
	case subsetOf(existing, proposed):
		return KindExistingSubset
	default:
		return KindPartialOverlap
	}
}

// Witness returns one concrete word decoded by both patterns: a's required
// bits, filled in with the bits only b fixes (which cannot disagree with a
// once overlap holds), all remaining don't-care bits left zero. The choice
// is deterministic so reports are reproducible.
func Witness(a, b encoding.Pattern) uint32 {
	return (a.Match & a.Mask) | (b.Match & (b.Mask &^ a.Mask))
}

// CommonMask returns the bit positions both patterns constrain, the
// positions that explain why the two patterns collide.
func CommonMask(a, b encoding.Pattern) uint32 {
	return a.Mask & b.Mask
}
