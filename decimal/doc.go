// Package decimal converts float64 values to and from CSD strings.
//
// The equation for a CSD number with integral digits d[n-1] .. d[0] and
// fractional digits f[1] .. f[m] is:
//
//  number = Σ d[i] * 2^i + Σ f[j] * 2^-j      d, f ∈ {-1, 0, +1}
//
// For example:
//
//  +00-00.+0 = 32 - 4 + 0.5 = 28.5
//
// Encoding
//
// The starting exponent is the smallest n covering the integral digits:
//
//  n = ceil(log2(1.5 * |value|))      for |value| >  2/3
//  n = 0                              otherwise (written as a leading '0')
//
// Digits are then chosen from the most significant position down by comparing
// 1.5 times the residual against the weight of the position (see package
// recode). Both the exponent and the comparisons are exact; neither goes
// through a rounded logarithm or a rounded product. Encode writes a fixed number of fractional digits and always writes
// the point:
//
//  | Value | Places | CSD       |
//  |-------|--------|-----------|
//  | 28.5  | 2      | +00-00.+0 |
//  | -0.5  | 2      | 0.-0      |
//  | 2.5   | 4      | +0.+000   |
//  | 0     | 0      | 0.        |
//  | 0     | 2      | 0.00      |
//  |-------|--------|-----------|
//
// EncodeBounded instead limits the number of non-zero digits. Once the budget
// is spent the remaining integral positions are written as '0' and the
// fractional run ends; the point is only written when a fractional digit
// follows it:
//
//  | Value | Non-zeros | CSD      |
//  |-------|-----------|----------|
//  | 28.5  | 4         | +00-00.+ |
//  | 28.5  | 2         | +00-00   |
//  | 28.5  | 1         | +00000   |
//  | -0.5  | 4         | 0.-      |
//  | 0     | 0         | 0        |
//  |-------|-----------|----------|
//
// Decoding
//
// The integral run is folded left to right (acc = 2*acc + digit) and the
// fractional run accumulated with a halving scale starting at 0.5. Decode
// requires a canonical string; MustDecode only rejects characters outside the
// alphabet and a second point.
package decimal
