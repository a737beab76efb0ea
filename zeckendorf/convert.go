package zeckendorf

import (
	"math/big"
	"math/bits"

	"github.com/calebcase/zeck/internal/bitset"
)

// Unsigned is the set of native unsigned integer types.
type Unsigned interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Signed is the set of native signed integer types.
type Signed interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

// fibs[i] is F(i+2), the weight of bit i, for every weight that fits in a
// uint64.
var fibs = func() []uint64 {
	f := []uint64{1, 2}
	for {
		s, carry := bits.Add64(f[len(f)-2], f[len(f)-1], 0)
		if carry != 0 {
			return f
		}

		f = append(f, s)
	}
}()

// NewUint64 returns the number v.
func NewUint64(v uint64) *Number {
	return new(Number).SetUint64(v)
}

// FromUnsigned returns the number v for any native unsigned integer type.
func FromUnsigned[T Unsigned](v T) *Number {
	return new(Number).SetUint64(uint64(v))
}

// FromSigned returns the number v for any native signed integer type. A
// negative v fails with ErrInvalidSign.
func FromSigned[T Signed](v T) (_ *Number, err error) {
	defer Error.WrapP(&err)

	if v < 0 {
		return nil, ErrInvalidSign.New("negative value %d", v)
	}

	return new(Number).SetUint64(uint64(v)), nil
}

// SetUint64 sets z to v and returns z.
//
// The greedy choice of the largest Fibonacci number not above the remainder
// never picks two adjacent terms, so the result is normalized as built.
func (z *Number) SetUint64(v uint64) *Number {
	if v == 0 {
		z.bits = bitset.New(1)

		return z
	}

	k := 0
	for k+1 < len(fibs) && fibs[k+1] <= v {
		k++
	}

	b := bitset.New(k + 1)
	for i := k; i >= 0 && v > 0; i-- {
		if fibs[i] <= v {
			b.Set(i)
			v -= fibs[i]
		}
	}

	z.bits = b

	return z
}

// SetInt64 sets z to v and returns z. A negative v fails with ErrInvalidSign
// and leaves z unchanged.
func (z *Number) SetInt64(v int64) (_ *Number, err error) {
	defer Error.WrapP(&err)

	if v < 0 {
		return nil, ErrInvalidSign.New("negative value %d", v)
	}

	return z.SetUint64(uint64(v)), nil
}

// Uint64 returns the value of x and whether it fits in a uint64.
func (x *Number) Uint64() (uint64, bool) {
	b := x.view()
	if b.Len() > len(fibs) {
		return 0, false
	}

	var v, carry uint64
	for i := b.NextSet(0); i >= 0; i = b.NextSet(i + 1) {
		v, carry = bits.Add64(v, fibs[i], 0)
		if carry != 0 {
			return 0, false
		}
	}

	return v, true
}

// BigInt returns the value of x as a big.Int. It is meant for display and
// interoperability; no arithmetic in this package goes through it.
func (x *Number) BigInt() *big.Int {
	b := x.view()

	sum := new(big.Int)
	prev, cur := big.NewInt(1), big.NewInt(1) // F(1), F(2)

	for i := 0; i < b.Len(); i++ {
		if b.Test(i) {
			sum.Add(sum, cur)
		}

		prev.Add(prev, cur)
		prev, cur = cur, prev
	}

	return sum
}

// ParseDecimal returns the number for a string of decimal digits.
func ParseDecimal(s string) (*Number, error) {
	return new(Number).SetDecimal(s)
}

// SetDecimal sets z to the number for a string of decimal digits and returns
// z. Digits are folded in with acc = 10*acc + d using only additions, so any
// length is accepted.
func (z *Number) SetDecimal(s string) (_ *Number, err error) {
	defer Error.WrapP(&err)

	if len(s) == 0 {
		return nil, ErrInvalidFormat.New("empty string")
	}

	acc := New()
	five := New()

	for i, c := range s {
		if c < '0' || c > '9' {
			return nil, ErrInvalidFormat.New("invalid decimal digit %q at offset %d", c, i)
		}

		five.Add(acc, acc)
		five.Add(five, five)
		five.Add(five, acc)
		acc.Add(five, five)

		if c != '0' {
			acc.Add(acc, NewUint64(uint64(c-'0')))
		}
	}

	z.bits = acc.bits

	return z, nil
}
