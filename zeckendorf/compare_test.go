package zeckendorf_test

import (
	"fmt"
	"math"
	"sort"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/calebcase/zeck/zeckendorf"
)

func TestLsh(t *testing.T) {
	type TC struct {
		in    string
		shift uint
		out   string
	}

	tcs := []TC{
		{"101", 3, "101000"},
		{"1", 3, "1000"},
		{"101", 0, "101"},
		{"0", 0, "0"},
		{"0", 10, "0"},
		{"1001", 1, "10010"},
		{"1", 64, "1" + fmt.Sprintf("%064d", 0)},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%s<<%d", i, tc.in, tc.shift), func(t *testing.T) {
			x := zeckendorf.MustParse(tc.in)

			z := new(zeckendorf.Number).Lsh(x, tc.shift)
			require.Equal(t, tc.out, z.String())
			requireNormalized(t, z)
			require.Equal(t, tc.in, x.String())

			x.Lsh(x, tc.shift)
			require.True(t, x.Equal(z))
		})
	}

	// A representation shift, not a power of two: 4 << 3 is 18.
	v, ok := new(zeckendorf.Number).Lsh(zeckendorf.NewUint64(4), 3).Uint64()
	require.True(t, ok)
	require.Equal(t, uint64(18), v)
}

func TestLshOverflow(t *testing.T) {
	shifts := []uint{^uint(0), uint(math.MaxInt), uint(math.MaxInt) - 2}

	for i, shift := range shifts {
		t.Run(fmt.Sprintf("[%d]%d", i, shift), func(t *testing.T) {
			x := zeckendorf.MustParse("101")

			var r interface{}
			func() {
				defer func() { r = recover() }()
				x.Lsh(x, shift)
			}()

			err, ok := r.(error)
			require.True(t, ok, r)
			require.True(t, zeckendorf.Error.Has(err), err)
			require.Equal(t, "101", x.String())
		})
	}
}

func TestCmp(t *testing.T) {
	type TC struct {
		a, b string
		cmp  int
	}

	tcs := []TC{
		{"0", "0", 0},
		{"0", "1", -1},
		{"11", "100", 0},
		{"1000", "101", 1},
		{"1010", "1001", 1},
		{"10000", "1010", 1},
		{"10101", "100000", -1},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%s,%s", i, tc.a, tc.b), func(t *testing.T) {
			a := zeckendorf.MustParse(tc.a)
			b := zeckendorf.MustParse(tc.b)

			require.Equal(t, tc.cmp, a.Cmp(b))
			require.Equal(t, -tc.cmp, b.Cmp(a))
			require.Equal(t, tc.cmp == 0, a.Equal(b))
			require.Equal(t, tc.cmp < 0, a.Less(b))
		})
	}

	require.Equal(t, 3, zeckendorf.MustParse("11").Len())
}

func TestCmpOrder(t *testing.T) {
	ns := make([]*zeckendorf.Number, 0, 1000)
	for v := uint64(0); v < 1000; v++ {
		ns = append(ns, zeckendorf.NewUint64((v*7919)%1000))
	}

	sort.Slice(ns, func(i, j int) bool {
		return ns[i].Less(ns[j])
	})

	for i, n := range ns {
		v, ok := n.Uint64()
		require.True(t, ok)
		require.Equal(t, uint64(i), v)
	}
}
