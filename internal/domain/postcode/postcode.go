package postcode

import (
	"regexp"
	"strings"
	"unicode"
)

// Outward code: one or two letters, a digit, an optional letter or digit.
// Inward code: a digit followed by two letters. The space is optional so
// both "SW1A 1AA" and "SW1A1AA" pass.
var ukPostcodePattern = regexp.MustCompile(`^[A-Z]{1,2}[0-9][A-Z0-9]? ?[0-9][A-Z]{2}$`)

// MaxLength matches the travel_records column width.
const MaxLength = 10

// Normalize canonicalizes a raw postcode: strips all whitespace, uppercases,
// and inserts a single space before the three-character inward code.
// Inputs of three characters or fewer are returned without an inserted space.
// Normalize is idempotent.
func Normalize(raw string) string {
	var b strings.Builder
	b.Grow(len(raw))
	for _, r := range raw {
		if unicode.IsSpace(r) {
			continue
		}
		b.WriteRune(unicode.ToUpper(r))
	}

	runes := []rune(b.String())
	if len(runes) <= 3 {
		return string(runes)
	}
	return string(runes[:len(runes)-3]) + " " + string(runes[len(runes)-3:])
}

// IsValid reports whether s matches the UK postcode grammar.
// The match is anchored; partial matches are rejected.
func IsValid(s string) bool {
	return ukPostcodePattern.MatchString(s)
}

type Postcode struct {
	value string
}

// New normalizes raw and validates it against the UK postcode grammar.
func New(raw string) (Postcode, error) {
	normalized := Normalize(raw)
	if !IsValid(normalized) {
		return Postcode{}, ErrInvalidPostcode
	}
	if len(normalized) > MaxLength {
		return Postcode{}, ErrInvalidPostcode
	}
	return Postcode{value: normalized}, nil
}

func (p Postcode) String() string { return p.value }
