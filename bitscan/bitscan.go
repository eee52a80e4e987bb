// Package bitscan finds the most significant set bit of an unsigned integer.
//
// The integer encoders use it to seed the starting digit weight from
// (3·|value|)/2 without any floating point comparison.
//
//  x                  = 0b0010_1010  (42)
//  flood lower bits   = 0b0011_1111
//  x ^ (x >> 1)       = 0b0010_0000  (32)
package bitscan

// HighestPowerOfTwoIn returns the largest power of two less than or equal to
// x, or 0 when x is 0.
func HighestPowerOfTwoIn(x uint32) uint32 {
	x |= x >> 1
	x |= x >> 2
	x |= x >> 4
	x |= x >> 8
	x |= x >> 16

	return x ^ (x >> 1)
}

// HighestPowerOfTwoIn64 is HighestPowerOfTwoIn for 64 bit values.
func HighestPowerOfTwoIn64(x uint64) uint64 {
	x |= x >> 1
	x |= x >> 2
	x |= x >> 4
	x |= x >> 8
	x |= x >> 16
	x |= x >> 32

	return x ^ (x >> 1)
}
