// Package csd converts fixed-point numbers to and from Canonical Signed Digit
// strings.
//
// A CSD string is a radix-2 numeral whose digits are '+' (+1), '0' and '-'
// (-1), with at most one '.' separating the integral and fractional runs. No
// two non-zero digits are adjacent, which makes the representation unique and
// minimal in non-zero digits:
//
//  +00-00.+ = 32 - 4 + 0.5 = 28.5
//
// Values are int32, int64, int128 (held in a *big.Int) or float64. A Policy
// selects how many digits are produced: FixedPlaces writes an exact number of
// fractional digits, MaxNonZeros bounds the number of non-zero digits and
// returns the closest value it can reach within that budget.
//
// Every operation has two forms. Encode and Decode return a typed fault (see
// package fault) for bad input; MustEncode and MustDecode panic instead and are
// meant for input the caller already trusts.
//
// The width specific codecs live in packages decimal and integer. This
// package ties them together behind Value and Builder.
package csd
