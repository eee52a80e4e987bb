// Package integer converts signed integers to and from CSD strings.
//
// Integer CSD strings have no point. The 32 and 64 bit widths run in native
// arithmetic; the 128 bit width is carried in a *big.Int restricted to
// [-2^127, 2^127-1].
//
// Encoding compares 3·residual against twice the digit weight so the
// threshold test stays integral and exact. The product must not overflow, so
// encoders reject values with 3·|value| above the maximum of the width.
package integer

import (
	"math"
	"math/bits"

	"github.com/calebcase/oops"

	"github.com/calebcase/csd/bitscan"
	"github.com/calebcase/csd/digit"
	"github.com/calebcase/csd/fault"
	"github.com/calebcase/csd/recode"
)

// Signed is the set of native widths.
type Signed interface {
	~int32 | ~int64
}

// width describes the range of one native width.
type width[T Signed] struct {
	name     string
	min, max T
	highest  func(x T) T
}

var (
	int32Width = width[int32]{
		name: "int32",
		min:  math.MinInt32,
		max:  math.MaxInt32,
		highest: func(x int32) int32 {
			return int32(bitscan.HighestPowerOfTwoIn(uint32(x)))
		},
	}
	int64Width = width[int64]{
		name: "int64",
		min:  math.MinInt64,
		max:  math.MaxInt64,
		highest: func(x int64) int64 {
			return int64(bitscan.HighestPowerOfTwoIn64(uint64(x)))
		},
	}
)

type arithmetic[T Signed] struct{}

func (arithmetic[T]) Zero() T           { return 0 }
func (arithmetic[T]) Half(w T) T        { return w / 2 }
func (arithmetic[T]) Above(r, w T) bool { return 3*r > 2*w }
func (arithmetic[T]) Neg(a T) T         { return -a }
func (arithmetic[T]) Add(a, b T) T      { return a + b }
func (arithmetic[T]) Sub(a, b T) T      { return a - b }
func (arithmetic[T]) Settled(r T) bool  { return r == 0 }

func budgetOf(nnz uint) int {
	budget := int(nnz)
	if budget < 0 {
		return recode.Unlimited
	}

	return budget
}

func encode[T Signed](w width[T], v T, budget int) (csd string, err error) {
	if v == 0 {
		return digit.Zero.String(), nil
	}

	if v > w.max/3 || v < -(w.max/3) {
		return "", fault.NewOverflow("3*%d exceeds %s", v, w.name)
	}

	abs := v
	if abs < 0 {
		abs = -abs
	}

	hp := w.highest(abs * 3 / 2)
	exp := bits.Len64(uint64(hp))

	buf := recode.Acquire()
	defer recode.Release(buf)

	r := recode.New[T](arithmetic[T]{}, buf, v, 2*hp, exp, budget)
	r.Integral()

	return buf.String(), nil
}

func encodeBounded[T Signed](w width[T], v T, nnz uint) (csd string, err error) {
	if nnz == 0 && v != 0 {
		return "", fault.NewInvalidFormat("no non-zero digits allowed for non-zero value %d", v)
	}

	return encode(w, v, budgetOf(nnz))
}

// fold accumulates the integral run of s. A fractional run is accepted only
// when every digit in it is zero.
func fold[T Signed](w width[T], s string) (v T, err error) {
	sc := digit.NewScanner(s)
	for sc.Next() {
		d := sc.Digit()

		if sc.Fractional() {
			if d.NonZero() {
				return 0, fault.NewPrecisionLoss("fractional digit at position %d of %q", sc.Position(), s)
			}

			continue
		}

		// 2v+d stays in [min, max] iff v stays in [lo, hi].
		hi, lo := w.max/2, w.min/2
		if d.Value < 0 {
			hi++
			lo++
		}

		if v > hi || v < lo {
			return 0, fault.NewOverflow("%q exceeds %s", s, w.name)
		}

		v = 2*v + T(d.Value)
	}

	err = sc.Err()
	if err != nil {
		return 0, err
	}

	return v, nil
}

func decode[T Signed](w width[T], s string) (v T, err error) {
	err = digit.Validate(s)
	if err != nil {
		return 0, err
	}

	return fold(w, s)
}

func must(err error) {
	if err != nil {
		panic(oops.Trace(err))
	}
}

// EncodeInt32 returns the CSD form of v.
func EncodeInt32(v int32) (string, error) {
	return encode(int32Width, v, recode.Unlimited)
}

// EncodeInt32Bounded returns an approximate CSD form of v with at most nnz
// non-zero digits. The string keeps its full length; positions after the
// budget is spent are '0'.
func EncodeInt32Bounded(v int32, nnz uint) (string, error) {
	return encodeBounded(int32Width, v, nnz)
}

// DecodeInt32 returns the value of the canonical CSD string s.
func DecodeInt32(s string) (int32, error) {
	return decode(int32Width, s)
}

// EncodeInt64 returns the CSD form of v.
func EncodeInt64(v int64) (string, error) {
	return encode(int64Width, v, recode.Unlimited)
}

// EncodeInt64Bounded is EncodeInt32Bounded for int64.
func EncodeInt64Bounded(v int64, nnz uint) (string, error) {
	return encodeBounded(int64Width, v, nnz)
}

// DecodeInt64 returns the value of the canonical CSD string s.
func DecodeInt64(s string) (int64, error) {
	return decode(int64Width, s)
}

// MustEncodeInt32 is EncodeInt32 for trusted input.
func MustEncodeInt32(v int32) string {
	csd, err := EncodeInt32(v)
	must(err)

	return csd
}

// MustEncodeInt32Bounded is EncodeInt32Bounded for trusted input.
func MustEncodeInt32Bounded(v int32, nnz uint) string {
	csd, err := EncodeInt32Bounded(v, nnz)
	must(err)

	return csd
}

// MustDecodeInt32 decodes s without requiring non-adjacent form. It panics on
// characters outside the alphabet, a second point, non-zero fractional digits
// and overflow.
func MustDecodeInt32(s string) int32 {
	v, err := fold(int32Width, s)
	must(err)

	return v
}

// MustEncodeInt64 is EncodeInt64 for trusted input.
func MustEncodeInt64(v int64) string {
	csd, err := EncodeInt64(v)
	must(err)

	return csd
}

// MustEncodeInt64Bounded is EncodeInt64Bounded for trusted input.
func MustEncodeInt64Bounded(v int64, nnz uint) string {
	csd, err := EncodeInt64Bounded(v, nnz)
	must(err)

	return csd
}

// MustDecodeInt64 is MustDecodeInt32 for int64.
func MustDecodeInt64(s string) int64 {
	v, err := fold(int64Width, s)
	must(err)

	return v
}
