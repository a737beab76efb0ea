package bitset_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/require"

	"github.com/calebcase/zeck/internal/bitset"
)

// fromString builds a buffer from a most significant first 0/1 string.
func fromString(s string) bitset.Bits {
	b := bitset.New(len(s))
	for i, c := range s {
		if c == '1' {
			b.Set(len(s) - 1 - i)
		}
	}

	return b
}

func toString(b *bitset.Bits) string {
	sb := &strings.Builder{}
	for i := b.Len() - 1; i >= 0; i-- {
		if b.Test(i) {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}

	return sb.String()
}

func TestSetClear(t *testing.T) {
	b := bitset.New(130)
	require.Equal(t, 130, b.Len())
	require.Equal(t, -1, b.Highest())

	for _, i := range []int{0, 63, 64, 127, 129} {
		b.Set(i)
		require.True(t, b.Test(i), i)
	}

	require.Equal(t, 5, b.OnesCount())
	require.Equal(t, 129, b.Highest())

	b.Clear(129)
	require.False(t, b.Test(129))
	require.Equal(t, 127, b.Highest())

	b.SetTo(1, true)
	b.SetTo(0, false)
	require.True(t, b.Test(1))
	require.False(t, b.Test(0))

	require.False(t, b.Test(-1))
	require.False(t, b.Test(1000))

	require.Panics(t, func() { b.Set(130) })
	require.Panics(t, func() { b.Clear(-1) })
}

func TestAppendResize(t *testing.T) {
	b := bitset.Bits{}
	require.Equal(t, 0, b.Len())

	for i := 0; i < 200; i++ {
		b.Append(i%3 == 0)
	}

	require.Equal(t, 200, b.Len())
	for i := 0; i < 200; i++ {
		require.Equal(t, i%3 == 0, b.Test(i), i)
	}

	b.Resize(65)
	require.Equal(t, 65, b.Len())
	require.Equal(t, 63, b.Highest())

	// Growing again must not resurrect truncated bits.
	b.Resize(200)
	require.Equal(t, 63, b.Highest(), spew.Sdump(b))

	b.Resize(0)
	require.Equal(t, 0, b.Len())
	require.Equal(t, -1, b.Highest())
}

func TestShiftUp(t *testing.T) {
	type TC struct {
		in    string
		shift int
		out   string
	}

	tcs := []TC{
		{"101", 0, "101"},
		{"101", 3, "101000"},
		{"1", 63, "1" + strings.Repeat("0", 63)},
		{"1", 64, "1" + strings.Repeat("0", 64)},
		{"11" + strings.Repeat("0", 62), 1, "11" + strings.Repeat("0", 63)},
		{"1001", 130, "1001" + strings.Repeat("0", 130)},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%s<<%d", i, tc.in, tc.shift), func(t *testing.T) {
			b := fromString(tc.in)
			b.ShiftUp(tc.shift)
			require.Equal(t, tc.out, toString(&b))
		})
	}
}

func TestCombine(t *testing.T) {
	type TC struct {
		a, b string
		and  string
		or   string
		xor  string
	}

	tcs := []TC{
		{"1001", "10000", "0000", "11001", "11001"},
		{"1010", "1001", "1000", "1011", "0011"},
		{"1", "101", "1", "101", "100"},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%s,%s", i, tc.a, tc.b), func(t *testing.T) {
			a, b := fromString(tc.a), fromString(tc.b)

			and := a.Clone()
			and.And(&b)
			require.Equal(t, tc.and, toString(&and))

			or := a.Clone()
			or.Or(&b)
			require.Equal(t, tc.or, toString(&or))

			xor := a.Clone()
			xor.Xor(&b)
			require.Equal(t, tc.xor, toString(&xor))
		})
	}
}

func TestCompare(t *testing.T) {
	type TC struct {
		a, b string
		cmp  int
	}

	tcs := []TC{
		{"0", "0", 0},
		{"1", "10", -1},
		{"1000", "101", 1},
		{"1010", "1001", 1},
		{"1001", "1010", -1},
		{"1" + strings.Repeat("0", 100), "1" + strings.Repeat("0", 100), 0},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]", i), func(t *testing.T) {
			a, b := fromString(tc.a), fromString(tc.b)
			require.Equal(t, tc.cmp, a.Compare(&b))
			require.Equal(t, -tc.cmp, b.Compare(&a))
			require.Equal(t, tc.cmp == 0, a.Equal(&b))
		})
	}
}

func TestNextSet(t *testing.T) {
	b := bitset.New(300)
	want := []int{2, 64, 65, 190, 299}
	for _, i := range want {
		b.Set(i)
	}

	got := []int{}
	for i := b.NextSet(0); i >= 0; i = b.NextSet(i + 1) {
		got = append(got, i)
	}

	require.Equal(t, want, got)
	require.Equal(t, -1, b.NextSet(300))
}

func TestCloneCopyFrom(t *testing.T) {
	a := fromString("10101")

	c := a.Clone()
	c.Set(1)
	require.Equal(t, "10101", toString(&a))
	require.Equal(t, "10111", toString(&c))

	d := bitset.Bits{}
	d.CopyFrom(&c)
	require.True(t, d.Equal(&c))

	d.Clear(0)
	require.Equal(t, "10111", toString(&c))
}
