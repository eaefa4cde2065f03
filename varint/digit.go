package varint

import "fmt"

// Digit is a single element in a series of linked bytes: a 7 bit magnitude
// plus a continuation bit marking whether more digits follow.
type Digit byte

// Digit Masks
const (
	// LinkMask is the continuation bit mask.
	LinkMask Digit = 0b_1000_0000

	// ValueMask is the magnitude bit mask.
	ValueMask Digit = ^LinkMask
)

// Digit Values
const (
	// ZeroEnd is the zero digit as an endpoint (no follow-up digits).
	ZeroEnd Digit = 0

	// ZeroLink is the zero digit as a linked digit (follow-ups expected).
	ZeroLink Digit = LinkMask

	// MaxValue is the largest magnitude a single digit can hold.
	MaxValue byte = 127
)

// Value returns the magnitude of the digit, 0 to 127 inclusive.
func (d Digit) Value() byte {
	return byte(d & ValueMask)
}

// IsLinked returns true if the digit is linked to a following digit.
func (d Digit) IsLinked() bool {
	return d&LinkMask != 0
}

// IsEnd returns true if the digit is an endpoint.
func (d Digit) IsEnd() bool {
	return !d.IsLinked()
}

// Linked returns the digit with the continuation bit set.
func (d Digit) Linked() Digit {
	return d | LinkMask
}

// End returns the digit with the continuation bit cleared.
func (d Digit) End() Digit {
	return d & ValueMask
}

// CheckedAdd adds the magnitudes of both digits, carrying over the left
// operand's continuation bit. It reports failure if the sum exceeds 127.
func (d Digit) CheckedAdd(rhs Digit) (_ Digit, ok bool) {
	sum := Digit(d.Value() + rhs.Value())
	if sum.IsLinked() {
		return 0, false
	}

	if d.IsLinked() {
		sum = sum.Linked()
	}

	return sum, true
}

// AddWithCarry adds the magnitudes of both digits. On overflow past 127
// the result wraps over the whole byte and the carry flag is set; the
// continuation bit of a wrapped result is unspecified and must be repaired
// by normalization.
func (d Digit) AddWithCarry(rhs Digit) (_ Digit, carry bool) {
	if sum, ok := d.CheckedAdd(rhs); ok {
		return sum, false
	}

	return Digit(byte(d) + byte(rhs)), true
}

// CheckedSub subtracts the magnitude of rhs from the magnitude of d,
// carrying over the left operand's continuation bit. It reports failure if
// the difference underflows 0.
func (d Digit) CheckedSub(rhs Digit) (_ Digit, ok bool) {
	if d.Value() < rhs.Value() {
		return 0, false
	}

	diff := Digit(d.Value() - rhs.Value())
	if d.IsLinked() {
		diff = diff.Linked()
	}

	return diff, true
}

// SubWithBorrow subtracts the magnitude of rhs from the magnitude of d. On
// underflow below 0 the result wraps over the whole byte and the borrow
// flag is set; the continuation bit of a wrapped result is unspecified and
// must be repaired by normalization.
func (d Digit) SubWithBorrow(rhs Digit) (_ Digit, borrow bool) {
	if diff, ok := d.CheckedSub(rhs); ok {
		return diff, false
	}

	return Digit(byte(d) - byte(rhs)), true
}

// String implements fmt.Stringer.
func (d Digit) String() string {
	if d.IsLinked() {
		return fmt.Sprintf("%d|link", d.Value())
	}

	return fmt.Sprintf("%d|end", d.Value())
}
