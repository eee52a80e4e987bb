package csd

import (
	"github.com/calebcase/oops"
	"go.uber.org/zap"

	"github.com/calebcase/csd/decimal"
	"github.com/calebcase/csd/digit"
	"github.com/calebcase/csd/fault"
	"github.com/calebcase/csd/integer"
)

// DefaultPlaces is the number of fractional digits used when no policy is
// given.
const DefaultPlaces = 4

// Policy selects how Encode bounds its output. It is either FixedPlaces or
// MaxNonZeros.
type Policy interface {
	policy()
}

// FixedPlaces encodes exactly, writing N fractional digits for Float64
// values. Integer values carry no fractional run and ignore N.
type FixedPlaces struct {
	N uint
}

// MaxNonZeros encodes with at most K non-zero digits.
type MaxNonZeros struct {
	K uint
}

func (FixedPlaces) policy() {}
func (MaxNonZeros) policy() {}

// Encode returns the CSD form of v under policy p. A nil policy is
// FixedPlaces{N: DefaultPlaces}.
func Encode(v Value, p Policy) (csd string, err error) {
	if p == nil {
		p = FixedPlaces{N: DefaultPlaces}
	}

	switch p := p.(type) {
	case FixedPlaces:
		switch v.kind {
		case Int32:
			return integer.EncodeInt32(int32(v.i64))
		case Int64:
			return integer.EncodeInt64(v.i64)
		case Int128:
			return integer.EncodeInt128(v.wide)
		case Float64:
			return decimal.Encode(v.f64, p.N)
		}
	case MaxNonZeros:
		switch v.kind {
		case Int32:
			return integer.EncodeInt32Bounded(int32(v.i64), p.K)
		case Int64:
			return integer.EncodeInt64Bounded(v.i64, p.K)
		case Int128:
			return integer.EncodeInt128Bounded(v.wide, p.K)
		case Float64:
			return decimal.EncodeBounded(v.f64, p.K)
		}
	default:
		return "", fault.NewInvalidFormat("unknown policy %T", p)
	}

	return "", fault.NewInvalidFormat("unknown kind %s", v.kind)
}

// MustEncode is Encode for trusted input.
func MustEncode(v Value, p Policy) string {
	csd, err := Encode(v, p)
	if err != nil {
		panic(oops.Trace(err))
	}

	return csd
}

// Decode returns the value of the canonical CSD string s as kind k.
func Decode(s string, k Kind) (v Value, err error) {
	defer func() {
		if err != nil {
			Logger().Debug("decode rejected",
				zap.String("csd", s),
				zap.Stringer("kind", k),
				zap.Error(err),
			)
		}
	}()

	switch k {
	case Int32:
		i, err := integer.DecodeInt32(s)
		if err != nil {
			return Value{}, err
		}

		return FromInt32(i), nil
	case Int64:
		i, err := integer.DecodeInt64(s)
		if err != nil {
			return Value{}, err
		}

		return FromInt64(i), nil
	case Int128:
		i, err := integer.DecodeInt128(s)
		if err != nil {
			return Value{}, err
		}

		return Value{kind: Int128, wide: i}, nil
	case Float64:
		f, err := decimal.Decode(s)
		if err != nil {
			return Value{}, err
		}

		return FromFloat64(f), nil
	}

	return Value{}, fault.NewInvalidFormat("unknown kind %s", k)
}

// MustDecode decodes s as kind k without requiring non-adjacent form. It
// panics on characters outside the alphabet, a second point and values that
// do not fit k.
func MustDecode(s string, k Kind) Value {
	switch k {
	case Int32:
		return FromInt32(integer.MustDecodeInt32(s))
	case Int64:
		return FromInt64(integer.MustDecodeInt64(s))
	case Int128:
		return Value{kind: Int128, wide: integer.MustDecodeInt128(s)}
	case Float64:
		return FromFloat64(decimal.MustDecode(s))
	}

	panic(oops.Trace(fault.NewInvalidFormat("unknown kind %s", k)))
}

// Validate reports whether s is a canonical CSD string.
func Validate(s string) error {
	return digit.Validate(s)
}

// CountNonZero returns the number of non-zero digits in s.
func CountNonZero(s string) int {
	return digit.CountNonZero(s)
}
