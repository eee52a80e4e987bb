package integer

import (
	"math/big"

	"github.com/calebcase/csd/digit"
	"github.com/calebcase/csd/fault"
	"github.com/calebcase/csd/recode"
)

var (
	one   = big.NewInt(1)
	three = big.NewInt(3)

	maxInt128 = new(big.Int).Sub(new(big.Int).Lsh(one, 127), one)
	minInt128 = new(big.Int).Neg(new(big.Int).Lsh(one, 127))
)

// MaxInt128 returns 2^127-1.
func MaxInt128() *big.Int { return new(big.Int).Set(maxInt128) }

// MinInt128 returns -2^127.
func MinInt128() *big.Int { return new(big.Int).Set(minInt128) }

// InRange reports whether v fits in 128 signed bits.
func InRange(v *big.Int) bool {
	return v.Cmp(minInt128) >= 0 && v.Cmp(maxInt128) <= 0
}

// wide never mutates its arguments; the recoder keeps references to them.
type wide struct{}

func (wide) Zero() *big.Int             { return new(big.Int) }
func (wide) Half(w *big.Int) *big.Int   { return new(big.Int).Rsh(w, 1) }
func (wide) Neg(a *big.Int) *big.Int    { return new(big.Int).Neg(a) }
func (wide) Add(a, b *big.Int) *big.Int { return new(big.Int).Add(a, b) }
func (wide) Sub(a, b *big.Int) *big.Int { return new(big.Int).Sub(a, b) }
func (wide) Settled(r *big.Int) bool    { return r.Sign() == 0 }

func (wide) Above(r, w *big.Int) bool {
	det := new(big.Int).Mul(r, three)

	return det.Cmp(new(big.Int).Lsh(w, 1)) > 0
}

func encode128(v *big.Int, budget int) (csd string, err error) {
	if v == nil {
		return "", fault.NewInvalidFormat("nil int128 value")
	}

	if v.Sign() == 0 {
		return digit.Zero.String(), nil
	}

	x := new(big.Int).Abs(v)
	x.Mul(x, three)
	if x.Cmp(maxInt128) > 0 {
		return "", fault.NewOverflow("3*%s exceeds int128", v)
	}

	// 1 << (BitLen-1) is the highest power of two in x/2, so the seed
	// weight 2^exp is twice that.
	x.Rsh(x, 1)
	exp := x.BitLen()

	buf := recode.Acquire()
	defer recode.Release(buf)

	r := recode.New[*big.Int](wide{}, buf, new(big.Int).Set(v), new(big.Int).Lsh(one, uint(exp)), exp, budget)
	r.Integral()

	return buf.String(), nil
}

func fold128(s string) (v *big.Int, err error) {
	v = new(big.Int)

	sc := digit.NewScanner(s)
	for sc.Next() {
		d := sc.Digit()

		if sc.Fractional() {
			if d.NonZero() {
				return nil, fault.NewPrecisionLoss("fractional digit at position %d of %q", sc.Position(), s)
			}

			continue
		}

		v.Lsh(v, 1)
		v.Add(v, big.NewInt(int64(d.Value)))

		if !InRange(v) {
			return nil, fault.NewOverflow("%q exceeds int128", s)
		}
	}

	err = sc.Err()
	if err != nil {
		return nil, err
	}

	return v, nil
}

// EncodeInt128 returns the CSD form of v. Values with 3·|v| beyond 2^127-1
// are rejected with an Overflow fault.
func EncodeInt128(v *big.Int) (string, error) {
	return encode128(v, recode.Unlimited)
}

// EncodeInt128Bounded is EncodeInt32Bounded for int128.
func EncodeInt128Bounded(v *big.Int, nnz uint) (string, error) {
	if nnz == 0 && v != nil && v.Sign() != 0 {
		return "", fault.NewInvalidFormat("no non-zero digits allowed for non-zero value %s", v)
	}

	return encode128(v, budgetOf(nnz))
}

// DecodeInt128 returns the value of the canonical CSD string s.
func DecodeInt128(s string) (*big.Int, error) {
	err := digit.Validate(s)
	if err != nil {
		return nil, err
	}

	return fold128(s)
}

// MustEncodeInt128 is EncodeInt128 for trusted input.
func MustEncodeInt128(v *big.Int) string {
	csd, err := EncodeInt128(v)
	must(err)

	return csd
}

// MustEncodeInt128Bounded is EncodeInt128Bounded for trusted input.
func MustEncodeInt128Bounded(v *big.Int, nnz uint) string {
	csd, err := EncodeInt128Bounded(v, nnz)
	must(err)

	return csd
}

// MustDecodeInt128 is MustDecodeInt32 for int128.
func MustDecodeInt128(s string) *big.Int {
	v, err := fold128(s)
	must(err)

	return v
}
