package zeckendorf

// And sets z to the terms present in both x and y and returns z.
//
// Two normalized term sets cannot produce adjacent terms when intersected,
// so only the leading zeros need trimming.
func (z *Number) And(x, y *Number) *Number {
	if z == y {
		x, y = y, x
	}

	z.Set(x)
	bs := z.buf()
	bs.And(y.view())
	eraseLeadingZeros(bs)

	return z
}

// Or sets z to the union of the terms of x and y, normalized, and returns z.
func (z *Number) Or(x, y *Number) *Number {
	if z == y {
		x, y = y, x
	}

	z.Set(x)
	bs := z.buf()
	bs.Or(y.view())
	normalize(bs)

	return z
}

// Xor sets z to the terms present in exactly one of x and y, normalized, and
// returns z.
func (z *Number) Xor(x, y *Number) *Number {
	if z == y {
		x, y = y, x
	}

	z.Set(x)
	bs := z.buf()
	bs.Xor(y.view())
	normalize(bs)

	return z
}
