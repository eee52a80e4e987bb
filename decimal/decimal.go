package decimal

import (
	"math"

	"github.com/calebcase/oops"

	"github.com/calebcase/csd/digit"
	"github.com/calebcase/csd/fault"
	"github.com/calebcase/csd/recode"
)

// Floor is the residual magnitude below which the bounded encoder stops
// producing fractional digits.
const Floor = 1e-100

// maxExponent is the largest starting exponent whose weight 2^exp is finite.
const maxExponent = 1023

type arithmetic struct{}

func (arithmetic) Zero() float64            { return 0 }
func (arithmetic) Half(w float64) float64   { return w / 2 }
func (arithmetic) Neg(a float64) float64    { return -a }
func (arithmetic) Add(a, b float64) float64 { return a + b }
func (arithmetic) Sub(a, b float64) float64 { return a - b }
func (arithmetic) Settled(r float64) bool   { return math.Abs(r) <= Floor }

// Above uses a fused multiply-add so the sign of 1.5r - w is not rounded
// away when 1.5r is within an ulp of w.
func (arithmetic) Above(r, w float64) bool {
	return math.FMA(1.5, r, -w) > 0
}

// start returns the exponent of the integral run of v. lead is set when v
// needs no integral digit and is written with a leading '0' instead, which
// holds for zero and every |v| <= 2/3.
func start(v float64) (exp int, lead bool, err error) {
	switch {
	case math.IsNaN(v):
		return 0, false, fault.NewInvalidFormat("not a number")
	case math.IsInf(v, 0):
		return 0, false, fault.NewOverflow("infinite value")
	case v == 0:
		return 0, true, nil
	}

	// exp is the smallest e with 1.5|v| <= 2^e. With |v| = frac·2^e and
	// frac in [0.5, 1), that is e, or e+1 when 1.5·frac > 1.
	frac, exp := math.Frexp(math.Abs(v))
	if math.FMA(1.5, frac, -1) > 0 {
		exp++
	}

	if exp > maxExponent {
		return 0, false, fault.NewOverflow("%g exceeds the float64 exponent range", v)
	}

	if exp <= 0 {
		return 0, true, nil
	}

	return exp, false, nil
}

func newRecoder(buf *recode.Buffer, v float64, exp int, lead bool, budget int) *recode.Recoder[float64] {
	if lead {
		buf.Push(digit.Zero)
	}

	return recode.New[float64](arithmetic{}, buf, v, math.Ldexp(1, exp), exp, budget)
}

// Encode returns the CSD form of v with exactly places fractional digits.
// The point is always present, so Encode(0, 0) is "0.".
func Encode(v float64, places uint) (csd string, err error) {
	if places > math.MaxInt {
		return "", fault.NewOverflow("%d places exceeds the digit range", places)
	}

	exp, lead, err := start(v)
	if err != nil {
		return "", err
	}

	buf := recode.Acquire()
	defer recode.Release(buf)

	if v == 0 {
		buf.Push(digit.Zero)
		buf.Point()

		for i := uint(0); i < places; i++ {
			buf.Push(digit.Zero)
		}

		return buf.String(), nil
	}

	r := newRecoder(buf, v, exp, lead, recode.Unlimited)
	r.Fixed(int(places))

	return buf.String(), nil
}

// EncodeBounded returns an approximate CSD form of v using at most nnz
// non-zero digits. Once the budget is spent the rest of the integral run is
// padded with '0' and no fractional run is written. A zero budget is only
// valid for a zero value.
func EncodeBounded(v float64, nnz uint) (csd string, err error) {
	if nnz == 0 && v != 0 {
		return "", fault.NewInvalidFormat("no non-zero digits allowed for non-zero value %g", v)
	}

	exp, lead, err := start(v)
	if err != nil {
		return "", err
	}

	buf := recode.Acquire()
	defer recode.Release(buf)

	budget := int(nnz)
	if budget < 0 {
		budget = recode.Unlimited
	}

	if v == 0 {
		buf.Push(digit.Zero)

		return buf.String(), nil
	}

	r := newRecoder(buf, v, exp, lead, budget)
	r.Bounded()

	return buf.String(), nil
}

// Decode returns the value of the CSD string s. The string must be canonical.
func Decode(s string) (v float64, err error) {
	err = digit.Validate(s)
	if err != nil {
		return 0, err
	}

	return fold(s)
}

func fold(s string) (v float64, err error) {
	var (
		integral float64
		fraction float64
		scale    = 0.5
	)

	sc := digit.NewScanner(s)
	for sc.Next() {
		d := float64(sc.Digit().Value)

		if sc.Fractional() {
			fraction += d * scale
			scale /= 2

			continue
		}

		integral = integral*2 + d
	}

	err = sc.Err()
	if err != nil {
		return 0, err
	}

	v = integral + fraction
	if math.IsInf(v, 0) {
		return 0, fault.NewOverflow("%q exceeds the float64 range", s)
	}

	return v, nil
}

func must(err error) {
	if err != nil {
		panic(oops.Trace(err))
	}
}

// MustEncode is Encode for trusted input. It panics on NaN, infinities and
// values outside the exponent range.
func MustEncode(v float64, places uint) string {
	csd, err := Encode(v, places)
	must(err)

	return csd
}

// MustEncodeBounded is EncodeBounded for trusted input.
func MustEncodeBounded(v float64, nnz uint) string {
	csd, err := EncodeBounded(v, nnz)
	must(err)

	return csd
}

// MustDecode is Decode for trusted input. It panics on characters outside the
// alphabet and on a second point but does not require non-adjacent form. An
// empty string decodes to zero.
func MustDecode(s string) float64 {
	v, err := fold(s)
	must(err)

	return v
}
