package csd

import (
	"math/big"
	"strconv"

	"github.com/calebcase/csd/fault"
	"github.com/calebcase/csd/integer"
)

// Kind is the numeric width of a Value.
type Kind uint8

const (
	Int32 Kind = iota
	Int64
	Int128
	Float64
)

func (k Kind) String() string {
	switch k {
	case Int32:
		return "int32"
	case Int64:
		return "int64"
	case Int128:
		return "int128"
	case Float64:
		return "float64"
	}

	return "kind(" + strconv.Itoa(int(k)) + ")"
}

// ParseKind returns the Kind named s.
func ParseKind(s string) (Kind, error) {
	for _, k := range []Kind{Int32, Int64, Int128, Float64} {
		if k.String() == s {
			return k, nil
		}
	}

	return 0, fault.NewInvalidFormat("unknown kind %q", s)
}

// Value is an immutable number of one of the supported widths.
type Value struct {
	kind Kind

	i64  int64
	f64  float64
	wide *big.Int
}

func FromInt32(v int32) Value { return Value{kind: Int32, i64: int64(v)} }
func FromInt64(v int64) Value { return Value{kind: Int64, i64: v} }

func FromFloat64(v float64) Value { return Value{kind: Float64, f64: v} }

// FromInt128 returns an Int128 value holding a copy of v. v must lie in
// [-2^127, 2^127-1].
func FromInt128(v *big.Int) (Value, error) {
	if v == nil {
		return Value{}, fault.NewInvalidFormat("nil int128 value")
	}

	if !integer.InRange(v) {
		return Value{}, fault.NewOverflow("%s exceeds int128", v)
	}

	return Value{kind: Int128, wide: new(big.Int).Set(v)}, nil
}

func (v Value) Kind() Kind {
	return v.kind
}

// Int32 returns the value of an Int32. It is zero for other kinds.
func (v Value) Int32() int32 {
	if v.kind != Int32 {
		return 0
	}

	return int32(v.i64)
}

// Int64 returns the value of an Int32 or Int64. It is zero for other kinds.
func (v Value) Int64() int64 {
	if v.kind != Int32 && v.kind != Int64 {
		return 0
	}

	return v.i64
}

// Int128 returns a copy of the value of any integer kind. It is nil for
// Float64.
func (v Value) Int128() *big.Int {
	switch v.kind {
	case Int32, Int64:
		return big.NewInt(v.i64)
	case Int128:
		return new(big.Int).Set(v.wide)
	}

	return nil
}

// Float64 returns the value of a Float64. It is zero for other kinds.
func (v Value) Float64() float64 {
	if v.kind != Float64 {
		return 0
	}

	return v.f64
}

func (v Value) String() string {
	switch v.kind {
	case Int32, Int64:
		return strconv.FormatInt(v.i64, 10)
	case Int128:
		if v.wide == nil {
			return "0"
		}

		return v.wide.String()
	case Float64:
		return strconv.FormatFloat(v.f64, 'g', -1, 64)
	}

	return ""
}
