// Package encoding defines the canonical bit-pattern form of a 32-bit
// instruction encoding and the conversions between its two source
// representations: a 32-character token string over {0,1,-} and an explicit
// match/mask pair.
//
// A Pattern denotes the set of 32-bit words w satisfying
// (w & Mask) == Match. Every comparison encheck performs is defined purely
// in terms of that set, so normalization must produce exactly one canonical
// Pattern per encoding (or a specific error) before anything else runs.
package encoding

// Width is the number of bit positions in an instruction encoding.
const Width = 32

// Pattern is the canonical form of an instruction encoding.
// A Mask bit of 1 means that bit position is fixed; Match holds the
// required value at fixed positions. Match never carries bits outside
// Mask; constructors enforce this, so two Patterns with equal fields
// denote the same encoding and compare equal with ==.
type Pattern struct {
	Match uint32 `json:"match" yaml:"match"`
	Mask  uint32 `json:"mask" yaml:"mask"`
}

// Matches reports whether the word w decodes under this pattern.
func (p Pattern) Matches(w uint32) bool {
	return w&p.Mask == p.Match
}

// Fixed reports whether bit position pos (0 = least significant) is
// constrained by the pattern.
func (p Pattern) Fixed(pos uint) bool {
	return pos < Width && p.Mask&(1<<pos) != 0
}

// String returns the token form of the pattern.
func (p Pattern) String() string {
	return p.Token()
}
