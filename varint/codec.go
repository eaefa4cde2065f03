package varint

import (
	"io"

	"github.com/calebcase/oops"
)

// Encoder writes numbers to a byte stream. The continuation bits make the
// stream self-delimiting: no length prefix or separator is needed.
type Encoder struct {
	w io.Writer
}

// NewEncoder returns a new encoder.
func NewEncoder(w io.Writer) *Encoder {
	return &Encoder{
		w: w,
	}
}

// Encode writes one number. Zero, being the empty sequence, is framed as a
// single zero endpoint digit so that it occupies a position in the stream.
func (e *Encoder) Encode(u Uint) (err error) {
	defer Error.WrapP(&err)

	data := u.Bytes()
	if len(data) == 0 {
		data = []byte{byte(ZeroEnd)}
	}

	_, err = e.w.Write(data)
	if err != nil {
		return err
	}

	return nil
}

// Decoder reads numbers from a byte stream.
type Decoder struct {
	r   io.Reader
	buf [1]byte
}

// NewDecoder returns a new decoder.
func NewDecoder(r io.Reader) *Decoder {
	return &Decoder{
		r: r,
	}
}

// Decode reads one number: digits are consumed until the first endpoint.
// io.EOF is returned untouched when the stream ends on a value boundary.
func (d *Decoder) Decode(u *Uint) (err error) {
	var s Sequence

	for {
		_, err = io.ReadFull(d.r, d.buf[:])
		if err != nil {
			if err == io.EOF && len(s) == 0 {
				return io.EOF
			}
			if err == io.EOF {
				return Error.Wrap(oops.Trace(io.ErrUnexpectedEOF))
			}

			return Error.Wrap(err)
		}

		digit := Digit(d.buf[0])
		s = append(s, digit)

		if digit.IsEnd() {
			break
		}
	}

	v, err := NewUint(s)
	if err != nil {
		return Error.Wrap(err)
	}

	*u = v

	return nil
}
