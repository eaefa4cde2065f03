package packed

import (
	"fmt"

	"github.com/calebcase/bigbit"
)

// Exponent is the base 10 exponent byte of a packed number. It is a sign
// and magnitude pair, not a two's complement integer: the range is -127 to
// +127 and the bit pattern 0b_1000_0000 (negative zero) is illegal.
type Exponent byte

// Exponent Masks
const (
	// ExponentSignMask is the sign bit mask.
	ExponentSignMask Exponent = 0b_1000_0000

	// ExponentAbsMask is the magnitude bit mask.
	ExponentAbsMask Exponent = ^ExponentSignMask
)

// negativeZero is the one illegal bit pattern.
const negativeZero Exponent = 0b_1000_0000

// NewExponent wraps a byte into an exponent. An error is returned for the
// illegal negative zero pattern 0b_1000_0000.
func NewExponent(b byte) (Exponent, error) {
	if Exponent(b) == negativeZero {
		return 0, Error.New("negative zero exponent: %08b", b)
	}

	return Exponent(b), nil
}

// TrustedExponent wraps a byte into an exponent without validation. The
// caller guarantees the byte is never 0b_1000_0000; passing it anyway
// breaks the invariants every other exponent operation relies on.
func TrustedExponent(b byte) Exponent {
	return Exponent(b)
}

// Sign returns the sign bit. Negative means the coefficient is multiplied
// by 10^-m, where m is the magnitude.
func (e Exponent) Sign() bigbit.Sign {
	return bigbit.Sign(e&ExponentSignMask != 0)
}

// Abs returns the exponent with the sign bit cleared.
func (e Exponent) Abs() Exponent {
	return e & ExponentAbsMask
}

// Magnitude returns the magnitude, 0 to 127 inclusive.
func (e Exponent) Magnitude() int {
	return int(e & ExponentAbsMask)
}

// Value returns the signed value, -127 to +127 inclusive.
func (e Exponent) Value() int {
	if e.Sign() == bigbit.Negative {
		return -e.Magnitude()
	}

	return e.Magnitude()
}

// Invert returns the exponent with the sign flipped: 10^2 becomes 10^-2.
// Inverting a zero exponent would produce the illegal negative zero and
// panics.
func (e Exponent) Invert() Exponent {
	if e == 0 {
		panic("bigbit: inverting a zero exponent")
	}

	return e ^ ExponentSignMask
}

// CheckedMul resolves the exponent of a product: same-sign exponents add
// their magnitudes, opposite signs subtract instead. The result keeps e's
// sign. It reports failure if the magnitude leaves the 7 bit range rather
// than wrapping or flipping the sign.
func (e Exponent) CheckedMul(rhs Exponent) (_ Exponent, ok bool) {
	if rhs.Sign() == e.Sign() {
		return e.withMagnitude(e.Magnitude() + rhs.Magnitude())
	}

	return e.withMagnitude(e.Magnitude() - rhs.Magnitude())
}

// CheckedDiv resolves the exponent of a quotient: same-sign exponents
// subtract their magnitudes, opposite signs add instead. The result keeps
// e's sign. It reports failure if the magnitude leaves the 7 bit range
// rather than wrapping or flipping the sign.
func (e Exponent) CheckedDiv(rhs Exponent) (_ Exponent, ok bool) {
	if rhs.Sign() == e.Sign() {
		return e.withMagnitude(e.Magnitude() - rhs.Magnitude())
	}

	return e.withMagnitude(e.Magnitude() + rhs.Magnitude())
}

// withMagnitude keeps e's sign and replaces the magnitude, reporting
// failure when m is outside the 7 bit range. A zero magnitude always comes
// out positive: negative zero is unrepresentable.
func (e Exponent) withMagnitude(m int) (_ Exponent, ok bool) {
	if m < 0 || m > int(ExponentAbsMask) {
		return 0, false
	}

	if m == 0 {
		return 0, true
	}

	return e&ExponentSignMask | Exponent(m), true
}

// String implements fmt.Stringer.
func (e Exponent) String() string {
	return fmt.Sprintf("10^%d", e.Value())
}
