package digit_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/calebcase/csd/digit"
	"github.com/calebcase/csd/fault"
)

func TestScanner(t *testing.T) {
	t.Run("digits", func(t *testing.T) {
		sc := digit.NewScanner("+0-.0+")

		var (
			sb         strings.Builder
			positions  []int
			fractional []bool
		)

		for sc.Next() {
			sb.WriteString(sc.Digit().String())
			positions = append(positions, sc.Position())
			fractional = append(fractional, sc.Fractional())
		}

		require.NoError(t, sc.Err())
		require.Equal(t, "+0-0+", sb.String())
		require.Equal(t, []int{0, 1, 2, 4, 5}, positions)
		require.Equal(t, []bool{false, false, false, true, true}, fractional)
		require.Equal(t, 3, sc.Point())
		require.Equal(t, digit.Unknown, sc.Digit())
	})

	t.Run("empty", func(t *testing.T) {
		sc := digit.NewScanner("")
		require.False(t, sc.Next())
		require.NoError(t, sc.Err())
		require.Equal(t, -1, sc.Point())
	})

	t.Run("adjacent is not checked", func(t *testing.T) {
		sc := digit.NewScanner("++")
		require.True(t, sc.Next())
		require.True(t, sc.Next())
		require.False(t, sc.Next())
		require.NoError(t, sc.Err())
	})

	t.Run("invalid character", func(t *testing.T) {
		sc := digit.NewScanner("+0X")
		require.True(t, sc.Next())
		require.True(t, sc.Next())
		require.False(t, sc.Next())
		require.Equal(t, fault.InvalidCharacter, fault.KindOf(sc.Err()))

		// Sticky.
		require.False(t, sc.Next())
	})

	t.Run("second point", func(t *testing.T) {
		sc := digit.NewScanner("0.0.0")
		for sc.Next() {
		}
		require.Equal(t, fault.InvalidFormat, fault.KindOf(sc.Err()))
	})
}
