package zeckendorf_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/calebcase/zeck/zeckendorf"
)

func TestBitwise(t *testing.T) {
	type TC struct {
		a, b string
		and  string
		or   string
		xor  string
	}

	tcs := []TC{
		// 1100 normalizes to 10000.
		{"1001", "1100", "0", "100001", "100001"},
		// 11 normalizes to 100.
		{"1100", "11", "0", "10100", "10100"},
		{"1001", "1010", "1000", "10000", "100"},
		{"0", "0", "0", "0", "0"},
		{"101", "0", "0", "101", "101"},
		{"10101", "10101", "10101", "10101", "0"},
		{"1", "10", "0", "100", "100"},
		{"1010", "101", "0", "10100", "10100"},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%s,%s", i, tc.a, tc.b), func(t *testing.T) {
			a := zeckendorf.MustParse(tc.a)
			b := zeckendorf.MustParse(tc.b)

			and := new(zeckendorf.Number).And(a, b)
			require.Equal(t, tc.and, and.String())
			requireNormalized(t, and)

			or := new(zeckendorf.Number).Or(a, b)
			require.Equal(t, tc.or, or.String())
			requireNormalized(t, or)

			xor := new(zeckendorf.Number).Xor(a, b)
			require.Equal(t, tc.xor, xor.String())
			requireNormalized(t, xor)

			// In place forms agree with the value forms.
			x := a.Clone()
			x.And(x, b)
			require.True(t, x.Equal(and))

			x = a.Clone()
			x.Or(x, b)
			require.True(t, x.Equal(or))

			x = b.Clone()
			x.Xor(a, x)
			require.True(t, x.Equal(xor))
		})
	}
}

func TestBitwiseSelf(t *testing.T) {
	x := zeckendorf.NewUint64(100)

	x.And(x, x)
	require.Equal(t, "1000010100", x.String())

	x.Or(x, x)
	require.Equal(t, "1000010100", x.String())

	x.Xor(x, x)
	require.True(t, x.IsZero())
	require.Equal(t, 1, x.Len())
}

func TestBitwiseRandom(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	for i := 0; i < 2000; i++ {
		a := zeckendorf.NewUint64(rng.Uint64() >> uint(rng.Intn(64)))
		b := zeckendorf.NewUint64(rng.Uint64() >> uint(rng.Intn(64)))

		and := new(zeckendorf.Number).And(a, b)
		requireNormalized(t, and)

		// The terms of the intersection are a subset of both sides.
		for _, term := range and.Terms() {
			require.Equal(t, uint(1), a.Bit(term))
			require.Equal(t, uint(1), b.Bit(term))
		}

		require.False(t, a.Less(and))
		require.False(t, b.Less(and))

		or := new(zeckendorf.Number).Or(a, b)
		requireNormalized(t, or)
		require.False(t, or.Less(a))
		require.False(t, or.Less(b))

		xor := new(zeckendorf.Number).Xor(a, b)
		requireNormalized(t, xor)

		// Disjoint terms: or == xor == a + b.
		if and.IsZero() {
			sum := new(zeckendorf.Number).Add(a, b)
			require.True(t, or.Equal(sum), "%s | %s", a, b)
			require.True(t, xor.Equal(sum), "%s ^ %s", a, b)
		}
	}
}
