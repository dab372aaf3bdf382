package encoding

import (
	"errors"
	"fmt"
)

// ErrNoEncoding indicates that neither a token string nor an explicit
// match/mask pair was supplied.
var ErrNoEncoding = errors.New("no encoding supplied")

// LengthError reports a token string whose length (after removing
// whitespace) is not the required width.
type LengthError struct {
	Got  int
	Want int
}

func (e *LengthError) Error() string {
	return fmt.Sprintf("encoding token must be %d characters, got %d", e.Want, e.Got)
}

// AlphabetError reports a token character outside the {0,1,-} alphabet.
type AlphabetError struct {
	Char  byte
	Index int
}

func (e *AlphabetError) Error() string {
	return fmt.Sprintf("invalid character %q at position %d: encoding tokens may only contain '0', '1' and '-'", e.Char, e.Index)
}

// HexParseError reports text that is not a valid hexadecimal value.
type HexParseError struct {
	Text string
}

func (e *HexParseError) Error() string {
	return fmt.Sprintf("invalid hexadecimal value %q", e.Text)
}

// IllegalMatchError reports a match value carrying bits outside the mask:
// a required bit value cannot exist at a position the mask leaves unfixed.
type IllegalMatchError struct {
	Match uint32
	Mask  uint32
}

func (e *IllegalMatchError) Error() string {
	return fmt.Sprintf("match 0x%08x has bits set outside mask 0x%08x (offending bits 0x%08x)",
		e.Match, e.Mask, e.Match&^e.Mask)
}

// ConsistencyError reports disagreement between the pattern derived from a
// token string and an explicitly supplied match/mask pair. Both values are
// kept so callers can show the caller exactly what disagreed.
type ConsistencyError struct {
	Derived  Pattern
	Supplied Pattern
}

func (e *ConsistencyError) Error() string {
	return fmt.Sprintf("token-derived match/mask 0x%08x/0x%08x disagrees with supplied match/mask 0x%08x/0x%08x",
		e.Derived.Match, e.Derived.Mask, e.Supplied.Match, e.Supplied.Mask)
}
