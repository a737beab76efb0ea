package zeckendorf

import (
	"math"
)

// Lsh sets z to x with every term moved up n positions and returns z.
//
// This is a shift of the representation: term F(i+2) becomes F(i+n+2). The
// value is not multiplied by a fixed factor. Shifting by 0 or shifting 0
// leaves the value unchanged.
//
// Lsh panics with an Error if the shifted length does not fit in an int.
func (z *Number) Lsh(x *Number, n uint) *Number {
	z.Set(x)
	bs := z.buf()

	if n == 0 || bs.Highest() < 0 {
		return z
	}

	if n > uint(math.MaxInt-bs.Len()) {
		panic(Error.New("shift by %d overflows length %d", n, bs.Len()))
	}

	// A shift keeps relative positions, so no new adjacency can appear.
	bs.ShiftUp(int(n))

	return z
}
