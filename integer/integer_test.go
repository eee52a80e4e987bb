package integer_test

import (
	"fmt"
	"math"
	"math/big"
	"math/rand"
	"strings"
	"testing"
	"testing/quick"

	"github.com/calebcase/oops"
	"github.com/stretchr/testify/require"

	"github.com/calebcase/csd/digit"
	"github.com/calebcase/csd/fault"
	"github.com/calebcase/csd/integer"
)

func TestEncodeInt32(t *testing.T) {
	type TC struct {
		Value  int32
		Output string
		Mark   error
	}

	tcs := []TC{
		{Value: 28, Output: "+00-00", Mark: oops.New("unexpected")},
		{Value: -28, Output: "-00+00", Mark: oops.New("unexpected")},
		{Value: 0, Output: "0", Mark: oops.New("unexpected")},
		{Value: 1, Output: "+", Mark: oops.New("unexpected")},
		{Value: -1, Output: "-", Mark: oops.New("unexpected")},
		{Value: 3, Output: "+0-", Mark: oops.New("unexpected")},
		{Value: 7, Output: "+00-", Mark: oops.New("unexpected")},
		{Value: 158, Output: "+0+000-0", Mark: oops.New("unexpected")},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("%02d/%d", i, tc.Value), func(t *testing.T) {
			output, err := integer.EncodeInt32(tc.Value)
			require.NoError(t, err, tc.Mark)
			require.Equal(t, tc.Output, output, tc.Mark)
			require.Equal(t, tc.Output, integer.MustEncodeInt32(tc.Value), tc.Mark)

			output, err = integer.EncodeInt64(int64(tc.Value))
			require.NoError(t, err, tc.Mark)
			require.Equal(t, tc.Output, output, tc.Mark)

			output, err = integer.EncodeInt128(big.NewInt(int64(tc.Value)))
			require.NoError(t, err, tc.Mark)
			require.Equal(t, tc.Output, output, tc.Mark)
		})
	}
}

func TestEncodeBounded(t *testing.T) {
	type TC struct {
		Value  int32
		Nnz    uint
		Output string
	}

	tcs := []TC{
		{Value: 158, Nnz: 2, Output: "+0+00000"},
		{Value: 158, Nnz: 3, Output: "+0+000-0"},
		{Value: 28, Nnz: 1, Output: "+00000"},
		{Value: 0, Nnz: 0, Output: "0"},
		{Value: -28, Nnz: 8, Output: "-00+00"},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("%02d/%d/%d", i, tc.Value, tc.Nnz), func(t *testing.T) {
			output, err := integer.EncodeInt32Bounded(tc.Value, tc.Nnz)
			require.NoError(t, err)
			require.Equal(t, tc.Output, output)
			require.Equal(t, tc.Output, integer.MustEncodeInt32Bounded(tc.Value, tc.Nnz))

			output, err = integer.EncodeInt64Bounded(int64(tc.Value), tc.Nnz)
			require.NoError(t, err)
			require.Equal(t, tc.Output, output)

			output, err = integer.EncodeInt128Bounded(big.NewInt(int64(tc.Value)), tc.Nnz)
			require.NoError(t, err)
			require.Equal(t, tc.Output, output)
		})
	}

	t.Run("zero budget", func(t *testing.T) {
		_, err := integer.EncodeInt32Bounded(28, 0)
		require.Equal(t, fault.InvalidFormat, fault.KindOf(err))

		_, err = integer.EncodeInt64Bounded(28, 0)
		require.Equal(t, fault.InvalidFormat, fault.KindOf(err))

		_, err = integer.EncodeInt128Bounded(big.NewInt(28), 0)
		require.Equal(t, fault.InvalidFormat, fault.KindOf(err))

		require.Panics(t, func() { integer.MustEncodeInt32Bounded(28, 0) })
		require.Panics(t, func() { integer.MustEncodeInt64Bounded(28, 0) })
		require.Panics(t, func() { integer.MustEncodeInt128Bounded(big.NewInt(28), 0) })
	})
}

func TestEncodeOverflow(t *testing.T) {
	_, err := integer.EncodeInt32(math.MaxInt32/3 + 1)
	require.Equal(t, fault.Overflow, fault.KindOf(err))

	_, err = integer.EncodeInt32(math.MinInt32)
	require.Equal(t, fault.Overflow, fault.KindOf(err))

	_, err = integer.EncodeInt64(math.MaxInt64)
	require.Equal(t, fault.Overflow, fault.KindOf(err))

	_, err = integer.EncodeInt128(integer.MaxInt128())
	require.Equal(t, fault.Overflow, fault.KindOf(err))

	_, err = integer.EncodeInt128(nil)
	require.Equal(t, fault.InvalidFormat, fault.KindOf(err))

	require.Panics(t, func() { integer.MustEncodeInt32(math.MaxInt32) })
	require.Panics(t, func() { integer.MustEncodeInt64(math.MinInt64) })
	require.Panics(t, func() { integer.MustEncodeInt128(integer.MinInt128()) })

	// The largest accepted magnitudes.
	for _, v := range []int32{math.MaxInt32 / 3, -(math.MaxInt32 / 3)} {
		csd, err := integer.EncodeInt32(v)
		require.NoError(t, err)
		require.Equal(t, v, integer.MustDecodeInt32(csd))
	}

	for _, v := range []int64{math.MaxInt64 / 3, -(math.MaxInt64 / 3)} {
		csd, err := integer.EncodeInt64(v)
		require.NoError(t, err)
		require.Equal(t, v, integer.MustDecodeInt64(csd))
	}
}

func TestDecodeInt32(t *testing.T) {
	type TC struct {
		Input  string
		Output int32
	}

	tcs := []TC{
		{Input: "+00-00", Output: 28},
		{Input: "-00+00", Output: -28},
		{Input: "0", Output: 0},
		{Input: "+00-00.00", Output: 28},
		{Input: "+00-00.", Output: 28},
		{Input: "-" + strings.Repeat("0", 31), Output: math.MinInt32},
		{Input: "+" + strings.Repeat("0", 30) + "-", Output: math.MaxInt32},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("%02d/%s", i, tc.Input), func(t *testing.T) {
			output, err := integer.DecodeInt32(tc.Input)
			require.NoError(t, err)
			require.Equal(t, tc.Output, output)
			require.Equal(t, tc.Output, integer.MustDecodeInt32(tc.Input))

			wide, err := integer.DecodeInt64(tc.Input)
			require.NoError(t, err)
			require.Equal(t, int64(tc.Output), wide)
		})
	}
}

func TestDecodeErrors(t *testing.T) {
	type TC struct {
		Input string
		Kind  fault.Kind
	}

	tcs := []TC{
		{Input: "", Kind: fault.EmptyString},
		{Input: "+00X-00", Kind: fault.InvalidCharacter},
		{Input: "+0.0.0", Kind: fault.InvalidFormat},
		{Input: "++", Kind: fault.ConsecutiveNonZero},
		{Input: "+0.+", Kind: fault.PrecisionLoss},
		{Input: "+" + strings.Repeat("0", 31), Kind: fault.Overflow},
		{Input: "-" + strings.Repeat("0", 31) + "-", Kind: fault.Overflow},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("%02d/%s", i, tc.Input), func(t *testing.T) {
			_, err := integer.DecodeInt32(tc.Input)
			require.Error(t, err)
			require.Equal(t, tc.Kind, fault.KindOf(err), err.Error())
		})
	}

	t.Run("int64", func(t *testing.T) {
		_, err := integer.DecodeInt64("+" + strings.Repeat("0", 63))
		require.Equal(t, fault.Overflow, fault.KindOf(err))

		v, err := integer.DecodeInt64("-" + strings.Repeat("0", 63))
		require.NoError(t, err)
		require.Equal(t, int64(math.MinInt64), v)
	})

	t.Run("strict", func(t *testing.T) {
		require.Panics(t, func() { integer.MustDecodeInt32("+00X") })
		require.Panics(t, func() { integer.MustDecodeInt32("+0.0.") })
		require.Panics(t, func() { integer.MustDecodeInt32("+0.+") })
		require.Panics(t, func() { integer.MustDecodeInt64("+" + strings.Repeat("0", 63)) })

		require.Equal(t, int32(3), integer.MustDecodeInt32("++"))
		require.Equal(t, int32(0), integer.MustDecodeInt32(""))
	})
}

func TestInt128(t *testing.T) {
	p100 := new(big.Int).Lsh(big.NewInt(1), 100)

	csd, err := integer.EncodeInt128(p100)
	require.NoError(t, err)
	require.Equal(t, "+"+strings.Repeat("0", 100), csd)

	v, err := integer.DecodeInt128(csd)
	require.NoError(t, err)
	require.Equal(t, 0, p100.Cmp(v))

	neg := new(big.Int).Neg(p100)
	require.Equal(t, "-"+strings.Repeat("0", 100), integer.MustEncodeInt128(neg))

	v, err = integer.DecodeInt128("-" + strings.Repeat("0", 127))
	require.NoError(t, err)
	require.Equal(t, 0, integer.MinInt128().Cmp(v))

	_, err = integer.DecodeInt128("+" + strings.Repeat("0", 127))
	require.Equal(t, fault.Overflow, fault.KindOf(err))

	_, err = integer.DecodeInt128("+0.+")
	require.Equal(t, fault.PrecisionLoss, fault.KindOf(err))

	require.True(t, integer.InRange(integer.MaxInt128()))
	require.False(t, integer.InRange(new(big.Int).Add(integer.MaxInt128(), big.NewInt(1))))

	require.Panics(t, func() { integer.MustDecodeInt128("+" + strings.Repeat("0", 127)) })
	require.Equal(t, 0, big.NewInt(3).Cmp(integer.MustDecodeInt128("++")))
}

func TestRoundtripInt32(t *testing.T) {
	for v := int32(-5000); v <= 5000; v++ {
		csd, err := integer.EncodeInt32(v)
		require.NoError(t, err)
		require.NoError(t, digit.Validate(csd), "value %d: %s", v, csd)

		output, err := integer.DecodeInt32(csd)
		require.NoError(t, err)
		require.Equal(t, v, output, csd)
	}

	law := func(d int32) bool {
		v := d / 3

		csd, err := integer.EncodeInt32(v)
		if err != nil {
			return false
		}

		output, err := integer.DecodeInt32(csd)

		return err == nil && output == v
	}
	require.NoError(t, quick.Check(law, nil))
}

func TestRoundtripInt64(t *testing.T) {
	law := func(d int64) bool {
		v := d / 3

		csd, err := integer.EncodeInt64(v)
		if err != nil || digit.Adjacent(csd) != nil {
			return false
		}

		output, err := integer.DecodeInt64(csd)

		return err == nil && output == v
	}
	require.NoError(t, quick.Check(law, nil))
}

func TestRoundtripInt128(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	for i := 0; i < 2000; i++ {
		v := new(big.Int).SetInt64(rng.Int63())
		v.Lsh(v, 62)
		v.Add(v, big.NewInt(rng.Int63()))
		v.Rsh(v, uint(rng.Intn(100)))
		if rng.Intn(2) == 0 {
			v.Neg(v)
		}

		csd, err := integer.EncodeInt128(v)
		require.NoError(t, err, v.String())
		require.NoError(t, digit.Validate(csd), csd)

		output, err := integer.DecodeInt128(csd)
		require.NoError(t, err)
		require.Equal(t, 0, v.Cmp(output), "%s %s %s", v, csd, output)
	}
}

func TestBoundedNonZeros(t *testing.T) {
	rng := rand.New(rand.NewSource(2))

	for i := 0; i < 5000; i++ {
		v := int64(rng.Int31()) - math.MaxInt32/2
		nnz := uint(rng.Intn(6)) + 1

		csd, err := integer.EncodeInt64Bounded(v, nnz)
		require.NoError(t, err)
		require.NoError(t, digit.Validate(csd), csd)
		require.LessOrEqual(t, digit.CountNonZero(csd), int(nnz), csd)
	}
}

func BenchmarkEncodeInt32(b *testing.B) {
	b.ReportAllocs()

	for n := 0; n < b.N; n++ {
		_, err := integer.EncodeInt32(28)
		if err != nil {
			b.Fatalf("%+v", err)
		}
	}
}

func BenchmarkEncodeInt64(b *testing.B) {
	b.ReportAllocs()

	for n := 0; n < b.N; n++ {
		_, err := integer.EncodeInt64(math.MaxInt64 / 3)
		if err != nil {
			b.Fatalf("%+v", err)
		}
	}
}

func BenchmarkEncodeInt128(b *testing.B) {
	b.ReportAllocs()

	v := new(big.Int).Lsh(big.NewInt(28), 100)

	for n := 0; n < b.N; n++ {
		_, err := integer.EncodeInt128(v)
		if err != nil {
			b.Fatalf("%+v", err)
		}
	}
}

func BenchmarkDecodeInt32(b *testing.B) {
	b.ReportAllocs()

	for n := 0; n < b.N; n++ {
		_, err := integer.DecodeInt32("+00-00")
		if err != nil {
			b.Fatalf("%+v", err)
		}
	}
}
