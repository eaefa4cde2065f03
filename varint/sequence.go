package varint

import "strings"

// Sequence is a raw, unchecked buffer of digits, least significant first.
// It may hold any bit pattern; see IsValid for the canonical shape that
// Uint maintains.
type Sequence []Digit

// IsValid returns true if the sequence is empty, or if every digit but the
// last is linked and the last is an endpoint.
func (s Sequence) IsValid() bool {
	for i, d := range s {
		if i == len(s)-1 {
			if d.IsLinked() {
				return false
			}
		} else if d.IsEnd() {
			return false
		}
	}

	return true
}

// Repair forces the sequence into the valid shape: all digits linked
// except the last, which becomes an endpoint. Magnitudes are untouched.
func (s Sequence) Repair() {
	for i := range s {
		if i == len(s)-1 {
			s[i] = s[i].End()
		} else {
			s[i] = s[i].Linked()
		}
	}
}

// Bytes returns the wire form of the sequence.
func (s Sequence) Bytes() []byte {
	data := make([]byte, len(s))
	for i, d := range s {
		data[i] = byte(d)
	}

	return data
}

// ParseSequence reinterprets wire bytes as a digit sequence.
func ParseSequence(data []byte) Sequence {
	s := make(Sequence, len(data))
	for i, b := range data {
		s[i] = Digit(b)
	}

	return s
}

// String implements fmt.Stringer.
func (s Sequence) String() string {
	parts := make([]string, len(s))
	for i, d := range s {
		parts[i] = d.String()
	}

	return "[" + strings.Join(parts, " ") + "]"
}
