package digit

// Digit is a single signed binary digit.
type Digit struct {
	Char  byte
	Value int8
	Name  string
}

// Match returns true if this digit is written as c.
func (d Digit) Match(c byte) bool {
	return d.Name != "" && d.Char == c
}

// NonZero reports whether the digit contributes to the value.
func (d Digit) NonZero() bool {
	return d.Value != 0
}

func (d Digit) String() string {
	return string(d.Char)
}

type digits []Digit

func (ds digits) Match(c byte) (d Digit, ok bool) {
	for _, d := range ds {
		if d.Match(c) {
			return d, true
		}
	}

	return d, false
}

// Point separates the integral run from the fractional run.
const Point byte = '.'

var (
	Unknown = Digit{}
	Plus    = Digit{'+', +1, "plus"}
	Zero    = Digit{'0', 0, "zero"}
	Minus   = Digit{'-', -1, "minus"}

	Digits = digits{
		Plus,
		Zero,
		Minus,
	}
)
