// Package digit provides the Canonical Signed Digit alphabet and grammar.
//
// A CSD string is a radix-2 number whose digits are drawn from {-1, 0, +1}:
//
//  | Char | Value |
//  |------|-------|
//  | +    | +1    |
//  | 0    |  0    |
//  | -    | -1    |
//  | .    | point |
//  |------|-------|
//
// The point is optional and may appear at most once. Digits left of the point
// form the integral run (most significant first), digits right of it the
// fractional run (2^-1, 2^-2, ...). For example:
//
//  +00-00.+  =  32 - 4 + 0.5  =  28.5
//  0.-0      = -0.5
//
// Canonical strings are in non-adjacent form (NAF): no two neighbouring digit
// positions, ignoring the point, are both non-zero. The encoders only produce
// canonical strings; Validate checks the property for untrusted input.
//
// Validate reports the first grammar violation as a fault: EmptyString,
// InvalidCharacter (with the offending character and its byte offset),
// InvalidFormat (a second point, or no digits at all) and finally
// ConsecutiveNonZero. Character set and point checks run over the whole
// string before adjacency is considered.
//
// Scanner walks the digits of a string one at a time in the manner of a block
// decoder (Next, Digit, Err) and is shared by the float and integer decoders.
package digit
