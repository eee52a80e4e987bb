package digit

import (
	"unicode/utf8"

	"github.com/calebcase/csd/fault"
)

// invalid reports the character starting at byte offset pos of s.
func invalid(s string, pos int) error {
	r, _ := utf8.DecodeRuneInString(s[pos:])

	return fault.NewInvalidCharacter(r, pos)
}

// Validate checks that s is a well formed canonical CSD string.
func Validate(s string) (err error) {
	if s == "" {
		return fault.NewEmptyString()
	}

	var (
		points int
		count  int
	)

	for i := 0; i < len(s); i++ {
		c := s[i]

		if c == Point {
			points++
			if points > 1 {
				return fault.NewInvalidFormat("multiple decimal points at position %d", i)
			}

			continue
		}

		if _, ok := Digits.Match(c); !ok {
			return invalid(s, i)
		}

		count++
	}

	if count == 0 {
		return fault.NewInvalidFormat("no digits in %q", s)
	}

	return Adjacent(s)
}

// Adjacent returns a ConsecutiveNonZero fault for the first digit of s that
// follows a non-zero digit while being non-zero itself. Points are skipped,
// characters outside the alphabet are treated as zero.
func Adjacent(s string) error {
	var prev bool

	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == Point {
			continue
		}

		d, _ := Digits.Match(c)
		if d.NonZero() && prev {
			return fault.NewConsecutiveNonZero(i)
		}

		prev = d.NonZero()
	}

	return nil
}

// CountNonZero returns the number of '+' and '-' digits in s.
func CountNonZero(s string) (n int) {
	for i := 0; i < len(s); i++ {
		if d, ok := Digits.Match(s[i]); ok && d.NonZero() {
			n++
		}
	}

	return n
}
