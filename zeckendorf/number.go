package zeckendorf

import (
	"strings"
	"sync"

	"github.com/calebcase/zeck/internal/bitset"
)

// Number is a natural number in normalized Zeckendorf form. The zero value is
// the number 0.
type Number struct {
	bits bitset.Bits
}

// zeroBits is the read-only view of a zero value Number.
var zeroBits = bitset.New(1)

// view returns the bits for reading. It never modifies x.
func (x *Number) view() *bitset.Bits {
	if x.bits.Len() == 0 {
		return &zeroBits
	}

	return &x.bits
}

// buf returns the bits for writing, materializing the zero value.
func (z *Number) buf() *bitset.Bits {
	if z.bits.Len() == 0 {
		z.bits.Append(false)
	}

	return &z.bits
}

// New returns the number 0.
func New() *Number {
	return &Number{
		bits: bitset.New(1),
	}
}

// Parse returns the number for a string of 0 and 1 digits, most significant
// digit first. The digits need not be normalized.
func Parse(s string) (*Number, error) {
	return new(Number).SetString(s)
}

// MustParse is like Parse but panics on error.
func MustParse(s string) *Number {
	n, err := Parse(s)
	if err != nil {
		panic(err)
	}

	return n
}

// SetString sets z to the number for a string of 0 and 1 digits, most
// significant digit first, and returns z. Leading zeros and adjacent set
// digits are accepted.
func (z *Number) SetString(s string) (_ *Number, err error) {
	defer Error.WrapP(&err)

	if len(s) == 0 {
		return nil, ErrInvalidFormat.New("empty string")
	}

	b := bitset.New(len(s))
	for i, c := range s {
		switch c {
		case '0':
		case '1':
			b.Set(len(s) - 1 - i)
		default:
			return nil, ErrInvalidFormat.New("invalid digit %q at offset %d", c, i)
		}
	}

	normalize(&b)
	z.bits = b

	return z, nil
}

// Set sets z to x and returns z.
func (z *Number) Set(x *Number) *Number {
	if z != x {
		z.bits.CopyFrom(x.view())
	}

	return z
}

// Clone returns a copy of x.
func (x *Number) Clone() *Number {
	return &Number{
		bits: x.view().Clone(),
	}
}

// Len returns the number of bits in x. Zero has length 1.
func (x *Number) Len() int {
	return x.view().Len()
}

// IsZero reports whether x is 0.
func (x *Number) IsZero() bool {
	return x.view().Highest() < 0
}

// Bit returns the value of bit i of x (1 when F(i+2) is one of its terms).
func (x *Number) Bit(i int) uint {
	if i < 0 {
		panic("zeckendorf: negative bit index")
	}

	if x.view().Test(i) {
		return 1
	}

	return 0
}

// SetBit sets z to x with term i set (b == 1) or cleared (b == 0) and returns
// z. Setting a term adds F(i+2) to the value; the result is normalized.
func (z *Number) SetBit(x *Number, i int, b uint) *Number {
	if i < 0 {
		panic("zeckendorf: negative bit index")
	}

	z.Set(x)
	bs := z.buf()

	switch b {
	case 0:
		if bs.Test(i) {
			bs.Clear(i)
			eraseLeadingZeros(bs)
		}
	case 1:
		if !bs.Test(i) {
			addSingleTerm(bs, i)
		}
	default:
		panic("zeckendorf: bit value must be 0 or 1")
	}

	return z
}

// Terms returns the positions of the set bits of x in increasing order.
func (x *Number) Terms() []int {
	b := x.view()

	terms := make([]int, 0, b.OnesCount())
	for i := b.NextSet(0); i >= 0; i = b.NextSet(i + 1) {
		terms = append(terms, i)
	}

	return terms
}

// String returns the bits of x, most significant first.
func (x *Number) String() string {
	if x == nil {
		return "<nil>"
	}

	return bitString(x.view())
}

func bitString(b *bitset.Bits) string {
	sb := &strings.Builder{}
	sb.Grow(b.Len())

	for i := b.Len() - 1; i >= 0; i-- {
		if b.Test(i) {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}

	return sb.String()
}

var (
	constants sync.Once
	zero      *Number
	one       *Number
)

func initConstants() {
	constants.Do(func() {
		zero = New()
		one = NewUint64(1)
	})
}

// Zero returns a copy of the constant 0.
func Zero() *Number {
	initConstants()

	return zero.Clone()
}

// One returns a copy of the constant 1.
func One() *Number {
	initConstants()

	return one.Clone()
}
