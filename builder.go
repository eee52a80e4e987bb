package csd

import (
	"github.com/calebcase/oops"
	"go.uber.org/zap"
)

// Rounding selects how the last fractional digit is chosen.
type Rounding uint8

const (
	// RoundNearest picks the digit closest to the residual. It is the only
	// strategy the recoder implements.
	RoundNearest Rounding = iota
)

func (r Rounding) String() string {
	if r == RoundNearest {
		return "nearest"
	}

	return "unknown"
}

// Builder collects the options for encoding a float64.
//
//	s, err := csd.NewBuilder(28.5).Places(2).Build()  // "+00-00.+0"
//	s, err := csd.NewBuilder(28.5).MaxNonZeros(2).Build()  // "+00-00"
type Builder struct {
	value    float64
	places   uint
	nnz      uint
	bounded  bool
	rounding Rounding
}

func NewBuilder(v float64) *Builder {
	return &Builder{
		value:  v,
		places: DefaultPlaces,
	}
}

// Places sets the number of fractional digits. Negative counts are treated as
// zero.
func (b *Builder) Places(n int) *Builder {
	if n < 0 {
		n = 0
	}

	b.places = uint(n)

	return b
}

// MaxNonZeros bounds the number of non-zero digits. Once set it takes
// precedence over Places.
func (b *Builder) MaxNonZeros(k uint) *Builder {
	b.nnz = k
	b.bounded = true

	return b
}

// RoundingStrategy records r. RoundNearest is the only strategy, so this does
// not change the output.
func (b *Builder) RoundingStrategy(r Rounding) *Builder {
	b.rounding = r

	return b
}

// Policy returns the policy Build will encode with.
func (b *Builder) Policy() Policy {
	if b.bounded {
		return MaxNonZeros{K: b.nnz}
	}

	return FixedPlaces{N: b.places}
}

func (b *Builder) Build() (string, error) {
	p := b.Policy()

	Logger().Debug("build",
		zap.Float64("value", b.value),
		zap.Any("policy", p),
		zap.Stringer("rounding", b.rounding),
	)

	return Encode(FromFloat64(b.value), p)
}

// MustBuild is Build for trusted input.
func (b *Builder) MustBuild() string {
	s, err := b.Build()
	if err != nil {
		panic(oops.Trace(err))
	}

	return s
}
