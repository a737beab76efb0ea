// Package bitset provides a growable bit buffer addressed from the least
// significant position upward.
package bitset

import (
	"math/bits"
)

const wordSize = 64

// Bits is a dynamically sized sequence of bits packed into 64 bit words.
//
// Bit i lives in words[i/64] at position i%64. Bits at indices >= Len() are
// always zero so words can be compared and combined directly.
type Bits struct {
	words []uint64
	n     int
}

func wordsFor(n int) int {
	return (n + wordSize - 1) / wordSize
}

// New returns a buffer of n zero bits.
func New(n int) Bits {
	return Bits{
		words: make([]uint64, wordsFor(n)),
		n:     n,
	}
}

// Len returns the number of bits in the buffer.
func (b *Bits) Len() int {
	return b.n
}

// Test reports whether bit i is set. Indices outside the buffer read as
// zero.
func (b *Bits) Test(i int) bool {
	if i < 0 || i >= b.n {
		return false
	}

	return b.words[i/wordSize]&(1<<(uint(i)%wordSize)) != 0
}

func (b *Bits) check(i int) {
	if i < 0 || i >= b.n {
		panic("bitset: index out of range")
	}
}

// Set sets bit i.
func (b *Bits) Set(i int) {
	b.check(i)
	b.words[i/wordSize] |= 1 << (uint(i) % wordSize)
}

// Clear clears bit i.
func (b *Bits) Clear(i int) {
	b.check(i)
	b.words[i/wordSize] &^= 1 << (uint(i) % wordSize)
}

// SetTo sets bit i to v.
func (b *Bits) SetTo(i int, v bool) {
	if v {
		b.Set(i)
	} else {
		b.Clear(i)
	}
}

// Append adds a new most significant bit.
func (b *Bits) Append(v bool) {
	if b.n%wordSize == 0 {
		b.words = append(b.words, 0)
	}

	b.n++

	if v {
		b.Set(b.n - 1)
	}
}

// Resize grows the buffer with zero bits or truncates it to n bits.
func (b *Bits) Resize(n int) {
	if n < 0 {
		panic("bitset: negative length")
	}

	w := wordsFor(n)
	switch {
	case w > len(b.words):
		if w <= cap(b.words) {
			tail := b.words[len(b.words):w]
			for i := range tail {
				tail[i] = 0
			}

			b.words = b.words[:w]
		} else {
			words := make([]uint64, w, w+w/4)
			copy(words, b.words)
			b.words = words
		}
	case w < len(b.words):
		b.words = b.words[:w]
	}

	b.n = n
	b.mask()
}

// mask zeroes the unused high bits of the last word.
func (b *Bits) mask() {
	if r := uint(b.n) % wordSize; r != 0 {
		b.words[len(b.words)-1] &= 1<<r - 1
	}
}

// Clone returns a deep copy.
func (b *Bits) Clone() Bits {
	c := Bits{
		words: make([]uint64, len(b.words)),
		n:     b.n,
	}
	copy(c.words, b.words)

	return c
}

// CopyFrom makes b a deep copy of o, reusing b's storage when possible.
func (b *Bits) CopyFrom(o *Bits) {
	if b == o {
		return
	}

	if cap(b.words) >= len(o.words) {
		b.words = b.words[:len(o.words)]
	} else {
		b.words = make([]uint64, len(o.words))
	}

	copy(b.words, o.words)
	b.n = o.n
}

// ShiftUp moves every bit up by k positions and fills the low k positions
// with zeros. The length grows by k.
func (b *Bits) ShiftUp(k int) {
	if k < 0 {
		panic("bitset: negative shift")
	}

	if k == 0 {
		return
	}

	n := b.n + k
	words := make([]uint64, wordsFor(n))

	ws := k / wordSize
	bs := uint(k) % wordSize

	for i, w := range b.words {
		words[i+ws] |= w << bs
		if bs != 0 && i+ws+1 < len(words) {
			words[i+ws+1] |= w >> (wordSize - bs)
		}
	}

	b.words = words
	b.n = n
}

// And keeps only the bits set in both b and o. The result is truncated to
// the shorter of the two lengths.
func (b *Bits) And(o *Bits) {
	if o.n < b.n {
		b.Resize(o.n)
	}

	for i := range b.words {
		b.words[i] &= o.words[i]
	}
}

// Or sets every bit that is set in o. The result has the longer of the two
// lengths.
func (b *Bits) Or(o *Bits) {
	if o.n > b.n {
		b.Resize(o.n)
	}

	for i, w := range o.words {
		b.words[i] |= w
	}
}

// Xor flips every bit that is set in o. The result has the longer of the two
// lengths.
func (b *Bits) Xor(o *Bits) {
	if o.n > b.n {
		b.Resize(o.n)
	}

	for i, w := range o.words {
		b.words[i] ^= w
	}
}

// Equal reports whether b and o have the same length and bits.
func (b *Bits) Equal(o *Bits) bool {
	if b.n != o.n {
		return false
	}

	for i, w := range b.words {
		if w != o.words[i] {
			return false
		}
	}

	return true
}

// Compare orders buffers by length and then by their most significant
// differing bit. It returns -1, 0 or +1.
func (b *Bits) Compare(o *Bits) int {
	switch {
	case b.n < o.n:
		return -1
	case b.n > o.n:
		return 1
	}

	for i := len(b.words) - 1; i >= 0; i-- {
		switch {
		case b.words[i] < o.words[i]:
			return -1
		case b.words[i] > o.words[i]:
			return 1
		}
	}

	return 0
}

// Highest returns the index of the highest set bit or -1 if no bit is set.
func (b *Bits) Highest() int {
	for i := len(b.words) - 1; i >= 0; i-- {
		if w := b.words[i]; w != 0 {
			return i*wordSize + wordSize - 1 - bits.LeadingZeros64(w)
		}
	}

	return -1
}

// NextSet returns the index of the first set bit at or after i, or -1.
func (b *Bits) NextSet(i int) int {
	if i < 0 {
		i = 0
	}

	if i >= b.n {
		return -1
	}

	wi := i / wordSize
	w := b.words[wi] >> (uint(i) % wordSize)
	if w != 0 {
		return i + bits.TrailingZeros64(w)
	}

	for wi++; wi < len(b.words); wi++ {
		if b.words[wi] != 0 {
			return wi*wordSize + bits.TrailingZeros64(b.words[wi])
		}
	}

	return -1
}

// OnesCount returns the number of set bits.
func (b *Bits) OnesCount() int {
	c := 0
	for _, w := range b.words {
		c += bits.OnesCount64(w)
	}

	return c
}
