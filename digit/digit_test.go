package digit

import (
	"fmt"
	"testing"

	"github.com/calebcase/oops"
	"github.com/stretchr/testify/require"

	"github.com/calebcase/csd/fault"
)

func TestDigits(t *testing.T) {
	type TC struct {
		c  byte
		d  Digit
		ok bool
	}

	tcs := []TC{
		{c: '+', d: Plus, ok: true},
		{c: '0', d: Zero, ok: true},
		{c: '-', d: Minus, ok: true},
		{c: '.', d: Unknown, ok: false},
		{c: '1', d: Unknown, ok: false},
		{c: 0, d: Unknown, ok: false},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("%02d/%q", i, tc.c), func(t *testing.T) {
			d, ok := Digits.Match(tc.c)
			require.Equal(t, tc.ok, ok)
			require.Equal(t, tc.d, d)
		})
	}

	require.True(t, Plus.NonZero())
	require.True(t, Minus.NonZero())
	require.False(t, Zero.NonZero())
	require.Equal(t, "-", Minus.String())
}

func TestValidate(t *testing.T) {
	type TC struct {
		Input    string
		Kind     fault.Kind
		Position int
		Char     rune
		Mark     error
	}

	tcs := []TC{
		{Input: "+00-00.+0", Mark: oops.New("unexpected")},
		{Input: "0.", Mark: oops.New("unexpected")},
		{Input: "0", Mark: oops.New("unexpected")},
		{Input: "0.-0", Mark: oops.New("unexpected")},
		{Input: ".+", Mark: oops.New("unexpected")},
		{Input: "-0+0-", Mark: oops.New("unexpected")},
		{
			Input: "",
			Kind:  fault.EmptyString,
			Mark:  oops.New("unexpected"),
		},
		{
			Input:    "+00X-00",
			Kind:     fault.InvalidCharacter,
			Position: 3,
			Char:     'X',
			Mark:     oops.New("unexpected"),
		},
		{
			Input:    "+0é",
			Kind:     fault.InvalidCharacter,
			Position: 2,
			Char:     'é',
			Mark:     oops.New("unexpected"),
		},
		{
			Input: "+0.0.0",
			Kind:  fault.InvalidFormat,
			Mark:  oops.New("unexpected"),
		},
		{
			Input: ".",
			Kind:  fault.InvalidFormat,
			Mark:  oops.New("unexpected"),
		},
		{
			Input:    "+0-+0",
			Kind:     fault.ConsecutiveNonZero,
			Position: 3,
			Mark:     oops.New("unexpected"),
		},
		{
			Input:    "0+.-",
			Kind:     fault.ConsecutiveNonZero,
			Position: 3,
			Mark:     oops.New("unexpected"),
		},
		{
			// Character set errors win over adjacency.
			Input:    "++X",
			Kind:     fault.InvalidCharacter,
			Position: 2,
			Char:     'X',
			Mark:     oops.New("unexpected"),
		},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("%02d/%s", i, tc.Input), func(t *testing.T) {
			err := Validate(tc.Input)
			if tc.Kind == fault.Unknown {
				require.NoError(t, err, tc.Mark)

				return
			}

			require.Error(t, err, tc.Mark)
			require.Equal(t, tc.Kind, fault.KindOf(err), tc.Mark)

			f, ok := fault.As(err)
			require.True(t, ok, tc.Mark)

			switch tc.Kind {
			case fault.InvalidCharacter:
				require.Equal(t, tc.Char, f.Char, tc.Mark)
				require.Equal(t, tc.Position, f.Position, tc.Mark)
			case fault.ConsecutiveNonZero:
				require.Equal(t, tc.Position, f.Position, tc.Mark)
			}
		})
	}
}

func TestCountNonZero(t *testing.T) {
	require.Equal(t, 0, CountNonZero(""))
	require.Equal(t, 0, CountNonZero("0.000"))
	require.Equal(t, 3, CountNonZero("+00-00.+0"))
	require.Equal(t, 2, CountNonZero("+0X-"))
}
