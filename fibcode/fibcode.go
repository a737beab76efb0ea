package fibcode

import (
	"bytes"
	"errors"
	"io"

	"github.com/calebcase/oops"
	"github.com/icza/bitio"
	"github.com/zeebo/errs"

	"github.com/calebcase/zeck/zeckendorf"
)

// Error is the class of errors returned by this package.
var Error = errs.Class("fibcode")

// Encoder writes Fibonacci codewords to a stream.
type Encoder struct {
	bw    *bitio.Writer
	count uint64
}

// NewEncoder returns a new encoder.
func NewEncoder(w io.Writer) *Encoder {
	return &Encoder{
		bw: bitio.NewWriter(w),
	}
}

// Encode writes the codeword for n.
func (e *Encoder) Encode(n *zeckendorf.Number) (err error) {
	defer Error.WrapP(&err)

	v := new(zeckendorf.Number).Inc(n)

	for i := 0; i < v.Len(); i++ {
		err = e.bw.WriteBool(v.Bit(i) == 1)
		if err != nil {
			return oops.Trace(err)
		}
	}

	err = e.bw.WriteBool(true)
	if err != nil {
		return oops.Trace(err)
	}

	e.count++

	return nil
}

// Count returns the number of values encoded so far.
func (e *Encoder) Count() uint64 {
	return e.count
}

// Close pads the last byte with zero bits and flushes it. It does not close
// the underlying writer.
func (e *Encoder) Close() (err error) {
	defer Error.WrapP(&err)

	return e.bw.Close()
}

// Decoder reads Fibonacci codewords from a stream.
type Decoder struct {
	br    *bitio.Reader
	count uint64

	digits []byte
}

// NewDecoder returns a new decoder.
func NewDecoder(r io.Reader) *Decoder {
	return &Decoder{
		br: bitio.NewReader(r),
	}
}

// Decode reads the next codeword into n. It returns io.EOF when the stream
// ends cleanly between codewords (only zero padding left).
func (d *Decoder) Decode(n *zeckendorf.Number) error {
	// Digits arrive least significant first.
	d.digits = d.digits[:0]
	prev := false
	ones := 0

	for {
		bit, err := d.br.ReadBool()
		if errors.Is(err, io.EOF) {
			if ones == 0 {
				return io.EOF
			}

			return Error.Wrap(io.ErrUnexpectedEOF)
		}

		if err != nil {
			return Error.Wrap(oops.Trace(err))
		}

		if bit && prev {
			break
		}

		if bit {
			d.digits = append(d.digits, '1')
			ones++
		} else {
			d.digits = append(d.digits, '0')
		}

		prev = bit
	}

	for i, j := 0, len(d.digits)-1; i < j; i, j = i+1, j-1 {
		d.digits[i], d.digits[j] = d.digits[j], d.digits[i]
	}

	v, err := zeckendorf.Parse(string(d.digits))
	if err != nil {
		return Error.Wrap(err)
	}

	_, err = n.Dec(v)
	if err != nil {
		return Error.Wrap(err)
	}

	d.count++

	return nil
}

// Count returns the number of values decoded so far.
func (d *Decoder) Count() uint64 {
	return d.count
}

// Marshal encodes ns into a byte slice.
func Marshal(ns ...*zeckendorf.Number) (data []byte, err error) {
	defer Error.WrapP(&err)

	buf := &bytes.Buffer{}
	e := NewEncoder(buf)

	for _, n := range ns {
		err = e.Encode(n)
		if err != nil {
			return nil, err
		}
	}

	err = e.Close()
	if err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// Unmarshal decodes every value in data.
func Unmarshal(data []byte) (ns []*zeckendorf.Number, err error) {
	d := NewDecoder(bytes.NewReader(data))

	for {
		n := &zeckendorf.Number{}

		err = d.Decode(n)
		if err == io.EOF {
			return ns, nil
		}

		if err != nil {
			return nil, err
		}

		ns = append(ns, n)
	}
}
