package zeckendorf

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/icza/bitio"

	"github.com/calebcase/zeck/internal/bitset"
)

// Format implements fmt.Formatter.
//
//	%s %v %b  the bits, most significant first
//	%q        the bits, double quoted
//	%d        the decimal value
//	%x %X     the hexadecimal value; '#' adds a 0x or 0X prefix
//
// Width pads the result with spaces, on the right with the '-' flag. For %d,
// %x and %X the '0' flag pads with zeros after any prefix instead.
func (x *Number) Format(s fmt.State, ch rune) {
	var prefix, text string
	numeric := false

	switch {
	case x == nil:
		text = "<nil>"
	case ch == 's' || ch == 'v' || ch == 'b':
		text = x.String()
	case ch == 'q':
		text = strconv.Quote(x.String())
	case ch == 'd':
		text = x.BigInt().String()
		numeric = true
	case ch == 'x':
		text = x.BigInt().Text(16)
		numeric = true
		if s.Flag('#') {
			prefix = "0x"
		}
	case ch == 'X':
		text = strings.ToUpper(x.BigInt().Text(16))
		numeric = true
		if s.Flag('#') {
			prefix = "0X"
		}
	default:
		fmt.Fprintf(s, "%%!%c(zeckendorf.Number=%s)", ch, x.String())

		return
	}

	if w, ok := s.Width(); ok && w > len(prefix)+len(text) {
		n := w - len(prefix) - len(text)

		switch {
		case s.Flag('-'):
			text += strings.Repeat(" ", n)
		case s.Flag('0') && numeric:
			text = strings.Repeat("0", n) + text
		default:
			prefix = strings.Repeat(" ", n) + prefix
		}
	}

	fmt.Fprint(s, prefix+text)
}

// MarshalText implements encoding.TextMarshaler.
func (x *Number) MarshalText() (text []byte, err error) {
	if x == nil {
		return []byte("<nil>"), nil
	}

	return []byte(x.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (z *Number) UnmarshalText(text []byte) error {
	_, err := z.SetString(string(text))

	return err
}

// MarshalBinary implements encoding.BinaryMarshaler.
//
// The bits are packed most significant first into whole bytes with zero
// padding at the front of the first byte.
func (x *Number) MarshalBinary() (data []byte, err error) {
	defer Error.WrapP(&err)

	b := x.view()
	n := b.Len()

	buf := &bytes.Buffer{}
	buf.Grow((n + 7) / 8)

	w := bitio.NewWriter(buf)

	// Note: zero is still written as one whole zero byte, never as an
	// empty slice.
	if pad := (8 - n%8) % 8; pad > 0 {
		err = w.WriteBits(0, uint8(pad))
		if err != nil {
			return nil, err
		}
	}

	for i := n - 1; i >= 0; i-- {
		err = w.WriteBool(b.Test(i))
		if err != nil {
			return nil, err
		}
	}

	err = w.Close()
	if err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler. Bit patterns that
// are not normalized are accepted and normalized.
func (z *Number) UnmarshalBinary(data []byte) (err error) {
	defer Error.WrapP(&err)

	if len(data) == 0 {
		return ErrInvalidFormat.New("empty data")
	}

	n := len(data) * 8
	b := bitset.New(n)

	r := bitio.NewReader(bytes.NewReader(data))
	for i := n - 1; i >= 0; i-- {
		v, err := r.ReadBool()
		if err != nil {
			return err
		}

		if v {
			b.Set(i)
		}
	}

	normalize(&b)
	z.bits = b

	return nil
}
