package varstring

import (
	"strings"
	"unicode/utf8"

	"github.com/zeebo/errs"

	"github.com/calebcase/bigbit/varint"
)

// Error is the class of varstring errors.
var Error = errs.Class("varstring")

// String is a sequence of Unicode codepoints stored as varint digit runs.
// Codepoints are decoded lazily; construction is the only place where
// their validity is checked.
//
// The zero value is the empty string.
type String struct {
	digits varint.Sequence
}

// FromString encodes a Go string.
func FromString(s string) (v String) {
	var scratch varint.Uint

	for _, r := range s {
		scratch.SetUint64(uint64(r))
		v.digits = appendRun(v.digits, scratch)
	}

	return v
}

// FromRunes encodes a slice of codepoints. Values that are not valid
// Unicode scalar values (negatives, surrogates, anything past U+10FFFF)
// are replaced with U+FFFD, the same substitution ranging over a string
// performs. Decoding relies on every stored run being a valid codepoint.
func FromRunes(rs []rune) (v String) {
	var scratch varint.Uint

	for _, r := range rs {
		if !utf8.ValidRune(r) {
			r = utf8.RuneError
		}

		scratch.SetUint64(uint64(r))
		v.digits = appendRun(v.digits, scratch)
	}

	return v
}

// appendRun appends the canonical digit run of one codepoint value. Zero
// (U+0000) is a run of one zero endpoint digit.
func appendRun(dst varint.Sequence, u varint.Uint) varint.Sequence {
	run := u.Digits()
	if len(run) == 0 {
		return append(dst, varint.ZeroEnd)
	}

	return append(dst, run...)
}

// Chars returns a lazy iterator over the codepoints.
func (v String) Chars() *Chars {
	return &Chars{digits: v.digits}
}

// Len counts the codepoints stored. This walks the whole buffer.
func (v String) Len() (n int) {
	for c := v.Chars(); ; n++ {
		if _, ok := c.Next(); !ok {
			return n
		}
	}
}

// Empty returns true if no codepoints are stored.
func (v String) Empty() bool {
	return len(v.digits) == 0
}

// String implements fmt.Stringer, decoding the stored text.
func (v String) String() string {
	var b strings.Builder

	for c := v.Chars(); ; {
		r, ok := c.Next()
		if !ok {
			return b.String()
		}

		b.WriteRune(r)
	}
}

// Cmp compares two strings codepoint-lexicographically, returning -1, 0,
// or +1. A strict prefix sorts before its extension.
func (v String) Cmp(rhs String) int {
	l, r := v.Chars(), rhs.Chars()

	for {
		lr, lok := l.Next()
		rr, rok := r.Next()

		switch {
		case !lok && !rok:
			return 0
		case !lok:
			return -1
		case !rok:
			return 1
		case lr < rr:
			return -1
		case lr > rr:
			return 1
		}
	}
}

// Equal returns true if both strings hold the same codepoints.
func (v String) Equal(rhs String) bool {
	return v.Cmp(rhs) == 0
}

// Digits returns the underlying digit sequence. It must not be modified.
func (v String) Digits() varint.Sequence {
	return v.digits
}

// Bytes returns the wire form of the string.
func (v String) Bytes() []byte {
	return v.digits.Bytes()
}

// MarshalBinary implements encoding.BinaryMarshaler.
func (v String) MarshalBinary() (data []byte, err error) {
	return v.Bytes(), nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler. Only the run
// structure is validated: the buffer must terminate on an endpoint digit.
// Codepoint validity is an encode-time invariant and is not re-checked.
func (v *String) UnmarshalBinary(data []byte) (err error) {
	if len(data) > 0 && varint.Digit(data[len(data)-1]).IsLinked() {
		return Error.New("buffer ends inside a codepoint run")
	}

	v.digits = varint.ParseSequence(data)

	return nil
}

// Chars is a lazy iterator over the codepoints of a String.
//
// Values are not validated while resolving: the digit runs are assumed to
// originate from a valid encode. A buffer tampered with outside the API
// has no defined decode outcome.
type Chars struct {
	digits varint.Sequence
	index  int
}

// Next returns the next codepoint. ok is false once the string is
// exhausted.
func (c *Chars) Next() (r rune, ok bool) {
	if c.index >= len(c.digits) {
		return 0, false
	}

	var v uint32
	var shift uint

	for c.index < len(c.digits) {
		d := c.digits[c.index]
		c.index++

		v |= uint32(d.Value()) << shift
		shift += 7

		if d.IsEnd() {
			return rune(v), true
		}
	}

	// A trailing unterminated run: only reachable on a corrupted
	// buffer.
	return rune(v), true
}
