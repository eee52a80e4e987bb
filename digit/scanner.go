package digit

import (
	"github.com/calebcase/csd/fault"
)

// Scanner iterates over the digits of a CSD string. It checks the character
// set and the point count as it goes but not adjacency; callers wanting the
// full grammar run Validate first.
type Scanner struct {
	s    string
	next int

	d          Digit
	pos        int
	point      int
	fractional bool

	err error
}

// NewScanner returns a scanner positioned before the first digit of s.
func NewScanner(s string) *Scanner {
	return &Scanner{
		s:     s,
		pos:   -1,
		point: -1,
	}
}

// Next advances to the next digit. It returns false at the end of the input
// or on error; Err distinguishes the two.
func (sc *Scanner) Next() (ok bool) {
	if sc.err != nil {
		return false
	}

	for sc.next < len(sc.s) {
		i := sc.next
		c := sc.s[i]
		sc.next++

		if c == Point {
			if sc.point >= 0 {
				sc.err = fault.NewInvalidFormat("multiple decimal points at position %d", i)

				return false
			}

			sc.point = i
			sc.fractional = true

			continue
		}

		d, ok := Digits.Match(c)
		if !ok {
			sc.err = invalid(sc.s, i)

			return false
		}

		sc.d = d
		sc.pos = i

		return true
	}

	sc.d = Unknown

	return false
}

// Digit returns the current digit.
func (sc *Scanner) Digit() Digit {
	return sc.d
}

// Position returns the byte offset of the current digit.
func (sc *Scanner) Position() int {
	return sc.pos
}

// Fractional reports whether the current digit is right of the point.
func (sc *Scanner) Fractional() bool {
	return sc.fractional
}

// Point returns the byte offset of the point seen so far, or -1.
func (sc *Scanner) Point() int {
	return sc.point
}

func (sc *Scanner) Err() error {
	return sc.err
}
