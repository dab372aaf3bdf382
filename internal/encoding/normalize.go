package encoding

import (
	"strings"
	"unicode"
)

// ParseToken converts a 32-character token string into its canonical
// Pattern. Whitespace anywhere in the string is ignored, so tokens may be
// written with field separators ("0010000 ----- ..."). After whitespace
// removal the token must be exactly Width characters, each one of:
//
//	'-'  don't-care: the bit position is not constrained
//	'0'  the bit position is fixed to 0
//	'1'  the bit position is fixed to 1
//
// The leftmost character maps to bit 31, the rightmost to bit 0.
func ParseToken(token string) (Pattern, error) {
	cleaned := strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, token)

	if len(cleaned) != Width {
		return Pattern{}, &LengthError{Got: len(cleaned), Want: Width}
	}

	var p Pattern
	for i := 0; i < Width; i++ {
		bit := uint32(1) << (Width - 1 - i)
		switch cleaned[i] {
		case '-':
			// don't-care: both match and mask stay 0
		case '0':
			p.Mask |= bit
		case '1':
			p.Mask |= bit
			p.Match |= bit
		default:
			return Pattern{}, &AlphabetError{Char: cleaned[i], Index: i}
		}
	}
	return p, nil
}

// Token renders the pattern in token form. It is total and is the exact
// inverse of ParseToken: the result is always Width characters, with '-'
// at don't-care positions.
func (p Pattern) Token() string {
	var b strings.Builder
	b.Grow(Width)
	for i := 0; i < Width; i++ {
		bit := uint32(1) << (Width - 1 - i)
		switch {
		case p.Mask&bit == 0:
			b.WriteByte('-')
		case p.Match&bit != 0:
			b.WriteByte('1')
		default:
			b.WriteByte('0')
		}
	}
	return b.String()
}

// ParseHex parses a hexadecimal value with an optional case-insensitive
// "0x" prefix, truncating to 32 bits. Empty input is an error; callers
// that treat an empty field as "absent" must check before calling.
func ParseHex(text string) (uint32, error) {
	digits := strings.TrimSpace(text)
	if len(digits) >= 2 && (digits[:2] == "0x" || digits[:2] == "0X") {
		digits = digits[2:]
	}
	if digits == "" {
		return 0, &HexParseError{Text: text}
	}

	var v uint32
	for i := 0; i < len(digits); i++ {
		d, ok := hexDigit(digits[i])
		if !ok {
			return 0, &HexParseError{Text: text}
		}
		// Shifting through a uint32 masks to 32 bits implicitly.
		v = v<<4 | uint32(d)
	}
	return v, nil
}

func hexDigit(c byte) (byte, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}

// New builds a Pattern from an explicit match/mask pair, enforcing the
// invariant that match carries no bits outside mask.
func New(match, mask uint32) (Pattern, error) {
	if match&^mask != 0 {
		return Pattern{}, &IllegalMatchError{Match: match, Mask: mask}
	}
	return Pattern{Match: match, Mask: mask}, nil
}

// FromSources builds the canonical Pattern for an encoding supplied as a
// token string (empty means absent), an explicit match/mask pair
// (explicit=false means absent), or both.
//
// When both sources are present the pattern is derived independently from
// each and the two must agree exactly; a mismatch is a *ConsistencyError
// naming both values. Neither source is ever silently preferred.
func FromSources(token string, match, mask uint32, explicit bool) (Pattern, error) {
	switch {
	case token != "" && explicit:
		derived, err := ParseToken(token)
		if err != nil {
			return Pattern{}, err
		}
		supplied, err := New(match, mask)
		if err != nil {
			return Pattern{}, err
		}
		if derived != supplied {
			return Pattern{}, &ConsistencyError{Derived: derived, Supplied: supplied}
		}
		return derived, nil
	case token != "":
		return ParseToken(token)
	case explicit:
		return New(match, mask)
	default:
		return Pattern{}, ErrNoEncoding
	}
}
