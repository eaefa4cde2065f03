package packed

import (
	"io"

	"github.com/calebcase/oops"
)

// MarshalBinary implements encoding.BinaryMarshaler. The layout is the
// header, the exponent byte if present, then the coefficient bytes in
// big-endian order.
func (n Num) MarshalBinary() (data []byte, err error) {
	data = make([]byte, 0, 1+1+len(n.coefficients))

	data = append(data, byte(n.header))
	if n.hasExponent {
		data = append(data, byte(n.exponent))
	}
	data = append(data, n.coefficients...)

	return data, nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler. The header's
// encoded counts must match the data exactly; a negative zero exponent is
// rejected.
func (n *Num) UnmarshalBinary(data []byte) (err error) {
	defer Error.WrapP(&err)

	if len(data) == 0 {
		return oops.New("empty data")
	}

	header := Header(data[0])
	rest := data[1:]

	if len(rest) != header.FollowupCount() {
		return oops.New(
			"header expects %d follow-up bytes, have %d",
			header.FollowupCount(),
			len(rest),
		)
	}

	v := Num{header: header}

	if header.HasExponent() {
		exp, err := NewExponent(rest[0])
		if err != nil {
			return err
		}

		v.exponent = exp
		v.hasExponent = true
		rest = rest[1:]
	}

	v.coefficients = append([]byte(nil), rest...)

	*n = v

	return nil
}

// Encoder writes numbers to a byte stream. The header byte carries the
// follow-up count, so the stream is self-delimiting.
type Encoder struct {
	w io.Writer
}

// NewEncoder returns a new encoder.
func NewEncoder(w io.Writer) *Encoder {
	return &Encoder{
		w: w,
	}
}

// Encode writes one number.
func (e *Encoder) Encode(n Num) (err error) {
	defer Error.WrapP(&err)

	data, err := n.MarshalBinary()
	if err != nil {
		return err
	}

	_, err = e.w.Write(data)
	if err != nil {
		return err
	}

	return nil
}

// Decoder reads numbers from a byte stream.
type Decoder struct {
	r io.Reader
}

// NewDecoder returns a new decoder.
func NewDecoder(r io.Reader) *Decoder {
	return &Decoder{
		r: r,
	}
}

// Decode reads one number: the header byte first, then exactly the
// follow-up bytes it announces. io.EOF is returned untouched when the
// stream ends on a value boundary.
func (d *Decoder) Decode(n *Num) (err error) {
	var header [1]byte

	_, err = io.ReadFull(d.r, header[:])
	if err != nil {
		if err == io.EOF {
			return io.EOF
		}

		return Error.Wrap(err)
	}

	data := make([]byte, 1+Header(header[0]).FollowupCount())
	data[0] = header[0]

	_, err = io.ReadFull(d.r, data[1:])
	if err != nil {
		if err == io.EOF {
			return Error.Wrap(oops.Trace(io.ErrUnexpectedEOF))
		}

		return Error.Wrap(err)
	}

	return n.UnmarshalBinary(data)
}
