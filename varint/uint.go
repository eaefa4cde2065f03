package varint

import "math"

// Uint is an arbitrarily large non-negative integer stored as a canonical
// digit sequence. The zero value is the number zero and is ready to use.
//
// Uint has value semantics: it owns its digit buffer exclusively and
// arithmetic methods mutate the receiver in place. Use Clone before
// sharing a value across mutations.
type Uint struct {
	digits Sequence
}

// NewUint validates a digit sequence and wraps it into a number. An error
// is returned if the continuation bits are inconsistent with canonical
// form. Redundant most significant zero digits are trimmed so that the
// result is fully canonical.
func NewUint(s Sequence) (u Uint, err error) {
	if !s.IsValid() {
		return Uint{}, Error.New("sequence is not canonical: %s", s)
	}

	u.digits = append(Sequence(nil), s...)
	u.trim()

	return u, nil
}

// FoldUint forces a digit sequence into canonical form and wraps it into a
// number. Magnitudes are kept as-is; only the continuation bits are
// repaired and redundant zero digits trimmed.
func FoldUint(s Sequence) (u Uint) {
	u.digits = append(Sequence(nil), s...)
	u.digits.Repair()
	u.trim()

	return u
}

// FromUint64 converts a machine integer.
func FromUint64(n uint64) (u Uint) {
	u.SetUint64(n)
	return u
}

// SetUint64 resets the number to n, reusing the digit buffer.
func (u *Uint) SetUint64(n uint64) {
	u.digits = u.digits[:0]
	u.addAt(0, n)
}

// IsZero returns true if the number is zero.
func (u Uint) IsZero() bool {
	return len(u.digits) == 0
}

// NumDigits returns the number of digits (bytes) used.
func (u Uint) NumDigits() int {
	return len(u.digits)
}

// Digits returns the underlying digit sequence, least significant first.
// The sequence must not be modified.
func (u Uint) Digits() Sequence {
	return u.digits
}

// Clone returns a deep copy.
func (u Uint) Clone() (c Uint) {
	c.digits = append(Sequence(nil), u.digits...)
	return c
}

// Increment adds one.
func (u *Uint) Increment() {
	u.incrementAt(0)
}

// Decrement subtracts one. It reports failure if the number is zero, in
// which case the value is untouched.
func (u *Uint) Decrement() (ok bool) {
	if u.IsZero() {
		return false
	}

	u.decrementAt(0)
	u.trim()

	return true
}

// incrementAt ripples a carry of one upward from the digit at index.
// Incrementing past the last digit appends a new endpoint digit and
// promotes the former last digit to linked. index must not exceed the
// digit count.
func (u *Uint) incrementAt(index int) {
	if len(u.digits) == 0 {
		u.digits = append(u.digits, Digit(1))
		return
	}

	for i := index; ; i++ {
		if i == len(u.digits) {
			u.digits[i-1] = u.digits[i-1].Linked()
			u.digits = append(u.digits, Digit(1))
			return
		}

		val, carry := u.digits[i].AddWithCarry(Digit(1))
		u.digits[i] = val
		if !carry {
			return
		}
	}
}

// decrementAt ripples a borrow of one upward from the digit at index. It
// reports failure if the borrow runs past the most significant digit, in
// which case the magnitudes are left wrapped.
func (u *Uint) decrementAt(index int) (ok bool) {
	for i := index; i < len(u.digits); i++ {
		val, borrow := u.digits[i].SubWithBorrow(Digit(1))
		u.digits[i] = val
		if !borrow {
			return true
		}
	}

	return false
}

// trim removes redundant most significant zero digits and restores the
// continuation bits. The empty sequence remains the unique zero.
func (u *Uint) trim() {
	for len(u.digits) > 0 && u.digits[len(u.digits)-1].Value() == 0 {
		u.digits = u.digits[:len(u.digits)-1]
	}

	u.normalize()
}

// normalize restores the continuation bits: all digits linked except the
// last, which becomes an endpoint.
func (u *Uint) normalize() {
	u.digits.Repair()
}

// Cmp compares u and rhs, returning -1, 0, or +1. Because the form is
// canonical, a longer sequence is always the larger value; equal lengths
// compare digit magnitudes from most to least significant.
func (u Uint) Cmp(rhs Uint) int {
	switch {
	case len(u.digits) > len(rhs.digits):
		return 1
	case len(u.digits) < len(rhs.digits):
		return -1
	}

	for i := len(u.digits) - 1; i >= 0; i-- {
		switch {
		case u.digits[i].Value() > rhs.digits[i].Value():
			return 1
		case u.digits[i].Value() < rhs.digits[i].Value():
			return -1
		}
	}

	return 0
}

// Equal returns true if u and rhs hold the same value.
func (u Uint) Equal(rhs Uint) bool {
	return u.Cmp(rhs) == 0
}

// Uint64 converts the number to a machine integer. An error is returned
// if the value does not fit.
func (u Uint) Uint64() (n uint64, err error) {
	for i := len(u.digits) - 1; i >= 0; i-- {
		if n > (math.MaxUint64-uint64(MaxValue))/128 {
			return 0, Error.New("value overflows uint64: %s", u.digits)
		}

		n = n*128 + uint64(u.digits[i].Value())
	}

	return n, nil
}

// Bytes returns the wire form of the number: its canonical digit sequence,
// least significant digit first. Zero is the empty slice.
func (u Uint) Bytes() []byte {
	return u.digits.Bytes()
}

// MarshalBinary implements encoding.BinaryMarshaler.
func (u Uint) MarshalBinary() (data []byte, err error) {
	return u.Bytes(), nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler. The data must be
// a canonical digit sequence.
func (u *Uint) UnmarshalBinary(data []byte) (err error) {
	v, err := NewUint(ParseSequence(data))
	if err != nil {
		return err
	}

	*u = v

	return nil
}
