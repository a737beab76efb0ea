package zeckendorf

import (
	"github.com/calebcase/zeck/internal/bitset"
)

// eraseLeadingZeros truncates b to its highest set bit, or to a single bit
// if no bit is set.
func eraseLeadingZeros(b *bitset.Bits) {
	h := b.Highest()
	if h < 0 {
		h = 0
	}

	if h+1 != b.Len() {
		b.Resize(h + 1)
	}
}

// normalizeOnPosition removes the adjacent pair at p and p-1 by replacing it
// with the next term up, carrying through any set bits above.
//
// Requires b to be normalized above p, bit p+1 clear, bit p set and bit p-1
// set. For p == 0 the missing bit -1 is taken as set (F(1) = 1), which is how
// a lone +1 is added on top of an existing bit 0.
func normalizeOnPosition(b *bitset.Bits, p int) {
	if debug {
		assert(p < b.Len(), "position %d outside %d bits", p, b.Len())
		assert(b.Test(p), "position %d clear: %s", p, bitString(b))
		assert(!b.Test(p+1), "position %d+1 set: %s", p, bitString(b))
		assert(p == 0 || b.Test(p-1), "position %d-1 clear: %s", p, bitString(b))
	}

	b.Clear(p)
	if p > 0 {
		b.Clear(p - 1)
	}

	// F(q+1) + F(q+2) = F(q+3): a carry landing next to a set bit absorbs it
	// and moves two positions up.
	q := p + 1
	for q < b.Len() {
		if !b.Test(q + 1) {
			b.Set(q)

			return
		}

		b.Clear(q + 1)
		q += 2
	}

	b.Append(true)
}

// normalize rewrites b into the unique form without adjacent set bits.
func normalize(b *bitset.Bits) {
	for i := b.Len() - 1; i > 0; i-- {
		if b.Test(i) && b.Test(i-1) {
			normalizeOnPosition(b, i)
		}
	}

	eraseLeadingZeros(b)
}

// valid reports whether b satisfies the normalized form invariants.
func valid(b *bitset.Bits) bool {
	if b.Len() == 0 {
		return false
	}

	if b.Len() > 1 && !b.Test(b.Len()-1) {
		return false
	}

	for i := b.NextSet(0); i >= 0; i = b.NextSet(i + 1) {
		if b.Test(i + 1) {
			return false
		}
	}

	return true
}
