package packed

import (
	"fmt"

	"github.com/calebcase/bigbit"
)

// Header is the single byte heading a packed number, carrying the sign,
// the exponent presence bit, and the count of follow-up bytes.
type Header byte

// Header Masks
const (
	// SignMask is the sign bit mask.
	SignMask Header = 0b_1000_0000

	// AbsMask clears the sign bit.
	AbsMask Header = ^SignMask

	// ExponentMask is the exponent presence bit mask.
	ExponentMask Header = 0b_0100_0000

	// CountMask is the follow-up byte count mask.
	CountMask Header = 0b_0011_1111
)

// Reserved Headers
const (
	// Zero is the zero value. There is no negative zero.
	Zero Header = 0b_0000_0000

	// NaN is the Not-a-Number value. NaN is always negative.
	NaN Header = 0b_1000_0000

	// Infinity is the positive infinity value. No exponent byte
	// follows, despite the exponent bit being set.
	Infinity Header = 0b_0100_0000

	// NegInfinity is the negative infinity value.
	NegInfinity Header = 0b_1100_0000
)

// MaxFollowup is the largest follow-up byte count the header can encode.
const MaxFollowup = 63

// Sign returns the sign bit.
func (h Header) Sign() bigbit.Sign {
	return bigbit.Sign(h&SignMask != 0)
}

// Abs returns the header with the sign bit cleared.
func (h Header) Abs() Header {
	return h & AbsMask
}

// ExponentBitSet returns true if the exponent bit is set, meaning either
// an exponent byte follows or the value is an infinity.
func (h Header) ExponentBitSet() bool {
	return h&ExponentMask != 0
}

// IsInfinite returns true if the header is either infinity.
func (h Header) IsInfinite() bool {
	return h.Abs() == Infinity
}

// IsNaN returns true if the header is the NaN value.
func (h Header) IsNaN() bool {
	return h&SignMask != 0 && h.Abs() == 0
}

// HasExponent returns true if an exponent byte follows the header. The
// infinities set the exponent bit but are never followed by one.
func (h Header) HasExponent() bool {
	return h.ExponentBitSet() && !h.IsInfinite()
}

// FollowupCount returns the stored count of bytes following the header.
func (h Header) FollowupCount() int {
	return int(h & CountMask)
}

// CoefficientCount returns the count of coefficient bytes following the
// header: the follow-up count minus the exponent byte, if present.
func (h Header) CoefficientCount() int {
	n := h.FollowupCount()
	if h.HasExponent() {
		n--
	}

	return n
}

// Neg returns the header with the sign flipped. NaN and zero have no
// opposite sign and are returned unchanged.
func (h Header) Neg() Header {
	if h.IsNaN() || h == Zero {
		return h
	}

	return h ^ SignMask
}

// WithSign returns the header with the sign set to s.
func (h Header) WithSign(s bigbit.Sign) Header {
	if s == bigbit.Negative {
		return h | SignMask
	}

	return h & AbsMask
}

// WithCount returns the header with the follow-up byte count replaced.
// A count that does not fit the 6 bit field is a contract violation and
// panics.
func (h Header) WithCount(n int) Header {
	if n < 0 || n > MaxFollowup {
		panic("bigbit: follow-up count does not fit the header")
	}

	return h&^CountMask | Header(n)
}

// WithExponentBit returns the header with the exponent presence bit set
// or cleared.
func (h Header) WithExponentBit(present bool) Header {
	if present {
		return h | ExponentMask
	}

	return h &^ ExponentMask
}

// String implements fmt.Stringer.
func (h Header) String() string {
	switch {
	case h.IsNaN():
		return "NaN"
	case h == Infinity:
		return "Infinity"
	case h == NegInfinity:
		return "-Infinity"
	case h == Zero:
		return "0"
	}

	return fmt.Sprintf(
		"{sign=%s has_exponent=%t coefficients=%d}",
		h.Sign(),
		h.HasExponent(),
		h.CoefficientCount(),
	)
}
