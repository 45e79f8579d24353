//go:build unit

package postcode_test

import (
	"testing"

	"travel-cost-service/internal/domain/postcode"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{name: "lowercase without space", in: "sw1a1aa", want: "SW1A 1AA"},
		{name: "already normalized", in: "SW1A 1AA", want: "SW1A 1AA"},
		{name: "extra internal whitespace", in: " s w 1a 1 a a ", want: "SW1A 1AA"},
		{name: "short outward code", in: "m11ae", want: "M1 1AE"},
		{name: "tabs and newlines stripped", in: "\tec1a\n1bb", want: "EC1A 1BB"},
		{name: "three characters or fewer keep no space", in: "sw1", want: "SW1"},
		{name: "empty string", in: "", want: ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, postcode.Normalize(tc.in))
		})
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{
		"sw1a1aa", "SW1A 1AA", "m1 1ae", "EC1A1BB", "x", "", "12345", "  b33 8th  ",
		"not a postcode at all",
	}
	for _, in := range inputs {
		once := postcode.Normalize(in)
		assert.Equal(t, once, postcode.Normalize(once), "normalize(%q) is not idempotent", in)
	}
}

func TestIsValid(t *testing.T) {
	valid := []string{"SW1A 1AA", "SW1A1AA", "M1 1AE", "B33 8TH", "CR2 6XH", "DN55 1PT", "W1A 0AX"}
	for _, s := range valid {
		assert.True(t, postcode.IsValid(s), "expected %q to be valid", s)
	}

	invalid := []string{
		"",
		"12345",
		"SW1A 1A",    // inward code too short
		"SW1A 1AAA",  // trailing extra letter
		"1W1A 1AA",   // outward code must start with a letter
		"SW1A  1AA",  // double space
		"sw1a 1aa",   // validation expects normalized input
		"SW1A 1AA X", // anchored match, no trailing content
	}
	for _, s := range invalid {
		assert.False(t, postcode.IsValid(s), "expected %q to be invalid", s)
	}
}

func TestNew(t *testing.T) {
	t.Run("normalizes before validating", func(t *testing.T) {
		p, err := postcode.New("  sw1a1aa ")
		require.NoError(t, err)
		assert.Equal(t, "SW1A 1AA", p.String())
	})

	t.Run("rejects malformed input", func(t *testing.T) {
		_, err := postcode.New("12345")
		assert.ErrorIs(t, err, postcode.ErrInvalidPostcode)
	})

	t.Run("rejects empty input", func(t *testing.T) {
		_, err := postcode.New("")
		assert.ErrorIs(t, err, postcode.ErrInvalidPostcode)
	})
}
