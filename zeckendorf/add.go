package zeckendorf

import (
	"github.com/calebcase/zeck/internal/bitset"
)

// addSingleTerm adds F(p+2) to the normalized b, leaving b normalized.
func addSingleTerm(b *bitset.Bits, p int) {
	if debug {
		assert(p >= 0, "negative position %d", p)
		assert(valid(b), "not normalized: %s", bitString(b))
	}

	if b.Len() <= p {
		b.Resize(p + 1)
	}

	if !b.Test(p) {
		b.Set(p)

		// A normalized start has at most one new neighbor to resolve
		// toward the top; p+1 is tried first so p-1 survives.
		if b.Test(p + 1) {
			normalizeOnPosition(b, p+1)
		} else if p > 0 && b.Test(p-1) {
			normalizeOnPosition(b, p)
		}

		return
	}

	// Bit p now holds 2. Move one copy up: ...020x... becomes ...100(x+1)...
	// using 2F(k) = F(k+1) + F(k-2).
	b.Clear(p)
	if p+1 == b.Len() {
		b.Append(true)
	} else {
		b.Set(p + 1)
		if b.Test(p + 2) {
			normalizeOnPosition(b, p+2)
		}
	}

	// Add the remaining F(k-2) two positions down. Landing on another set
	// bit repeats the split.
	for p >= 2 {
		p -= 2

		if !b.Test(p) {
			b.Set(p)
			if p > 0 && b.Test(p-1) {
				normalizeOnPosition(b, p)
			}

			return
		}

		b.Set(p + 1)
		b.Clear(p)
	}

	// The split ran off the bottom. Position -2 is F(0) = 0 and position
	// -1 is F(1) = 1; bit 1 is known to be clear here.
	if p == 0 {
		return
	}

	if !b.Test(0) {
		b.Set(0)
	} else {
		normalizeOnPosition(b, 0)
	}
}

// double sets b to twice its value. Every term k splits into k+1 and k-2
// (2F(k) = F(k+1) + F(k-2)): the k+1 halves are a plain shift of the
// normalized bits, the k-2 halves are added term by term from a snapshot.
func double(b *bitset.Bits) {
	low := b.Clone()
	b.ShiftUp(1)

	for i := low.NextSet(0); i >= 0; i = low.NextSet(i + 1) {
		switch {
		case i >= 2:
			addSingleTerm(b, i-2)
		case i == 1:
			// 2F(3) = 4 = F(4) + F(2).
			addSingleTerm(b, 0)
		}
	}

	eraseLeadingZeros(b)
}

// Add sets z to the sum x+y and returns z.
func (z *Number) Add(x, y *Number) *Number {
	if x == y {
		z.Set(x)
		double(z.buf())

		return z
	}

	if z == y {
		x, y = y, x
	}

	z.Set(x)
	bs := z.buf()

	yb := y.view()
	for i := yb.NextSet(0); i >= 0; i = yb.NextSet(i + 1) {
		addSingleTerm(bs, i)
	}

	eraseLeadingZeros(bs)

	return z
}

// Inc sets z to x+1 and returns z.
func (z *Number) Inc(x *Number) *Number {
	z.Set(x)
	addSingleTerm(z.buf(), 0)

	return z
}

// Dec sets z to x-1 and returns z. Decrementing 0 fails with ErrInvalidSign
// and leaves z unchanged.
func (z *Number) Dec(x *Number) (_ *Number, err error) {
	defer Error.WrapP(&err)

	k := x.view().NextSet(0)
	if k < 0 {
		return nil, ErrInvalidSign.New("decrement of zero")
	}

	z.Set(x)
	bs := z.buf()

	// F(k+2) - 1 = F(k+1) + F(k-1) + F(k-3) + ... down to position 0 or 1.
	bs.Clear(k)
	for j := k - 1; j >= 0; j -= 2 {
		bs.Set(j)
	}

	eraseLeadingZeros(bs)

	return z, nil
}
