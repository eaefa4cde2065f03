package packed

import (
	"math/big"
	"strings"

	"github.com/calebcase/bigbit"
)

// Num is a signed decimal bignum: a header, an optional exponent, and
// coefficient bytes in big-endian order. The logical value is
//
//	sign × coefficient × 10^exponent
//
// Num is an immutable value; no in-place arithmetic is defined for it.
type Num struct {
	header       Header
	exponent     Exponent
	hasExponent  bool
	coefficients []byte
}

// New builds a finite number from its parts. The header's follow-up count
// and exponent bit are derived from the supplied exponent and
// coefficients, never trusted from the caller.
//
// A nil exp means no exponent byte (an integer). Coefficients beyond the
// header's capacity (63 bytes, or 62 alongside an exponent) are a
// contract violation and panic.
func New(sign bigbit.Sign, exp *Exponent, coefficients []byte) Num {
	limit := MaxFollowup
	if exp != nil {
		limit--
	}
	if len(coefficients) > limit {
		panic("bigbit: coefficient count does not fit the header")
	}

	// Zero is always positive; a negative sign with no follow-up bytes
	// would collide with the reserved NaN header.
	if exp == nil && len(coefficients) == 0 {
		return NewZero()
	}

	followup := len(coefficients)
	if exp != nil {
		followup++
	}

	n := Num{
		header: Header(0).
			WithSign(sign).
			WithExponentBit(exp != nil).
			WithCount(followup),
		coefficients: append([]byte(nil), coefficients...),
	}

	if exp != nil {
		n.exponent = *exp
		n.hasExponent = true
	}

	return n
}

// NewZero returns the zero value.
func NewZero() Num {
	return Num{header: Zero}
}

// NewNaN returns the NaN value.
func NewNaN() Num {
	return Num{header: NaN}
}

// NewInfinity returns the infinity of the given sign.
func NewInfinity(sign bigbit.Sign) Num {
	return Num{header: Infinity.WithSign(sign)}
}

// Header returns the header byte. Its counts always match the stored
// data.
func (n Num) Header() Header {
	return n.header
}

// Exponent returns the exponent byte and whether one is present.
func (n Num) Exponent() (_ Exponent, ok bool) {
	return n.exponent, n.hasExponent
}

// Sign returns the sign bit.
func (n Num) Sign() bigbit.Sign {
	return n.header.Sign()
}

// IsZero returns true if the number is zero, either via the reserved
// header or an all-zero coefficient.
func (n Num) IsZero() bool {
	if n.header.IsNaN() || n.header.IsInfinite() {
		return false
	}

	for _, b := range n.coefficients {
		if b != 0 {
			return false
		}
	}

	return true
}

// IsNaN returns true for the NaN value.
func (n Num) IsNaN() bool {
	return n.header.IsNaN()
}

// IsInfinite returns true for either infinity.
func (n Num) IsInfinite() bool {
	return n.header.IsInfinite()
}

// CoefficientCount returns the number of coefficient bytes.
func (n Num) CoefficientCount() int {
	return len(n.coefficients)
}

// Coefficients returns the coefficient bytes in big-endian order. The
// slice must not be modified.
func (n Num) Coefficients() []byte {
	return n.coefficients
}

// CoefficientBE returns the i-th coefficient byte in big-endian order.
func (n Num) CoefficientBE(i int) byte {
	return n.coefficients[i]
}

// CoefficientLE returns the i-th coefficient byte in little-endian order.
func (n Num) CoefficientLE(i int) byte {
	return n.coefficients[len(n.coefficients)-1-i]
}

// Rat returns the logical value as a rational number, or nil for NaN and
// the infinities.
func (n Num) Rat() *big.Rat {
	if n.header.IsNaN() || n.header.IsInfinite() {
		return nil
	}

	coeff := new(big.Int).SetBytes(n.coefficients)
	if n.Sign() == bigbit.Negative {
		coeff.Neg(coeff)
	}

	r := new(big.Rat).SetInt(coeff)

	if n.hasExponent {
		pow := new(big.Int).Exp(
			big.NewInt(10),
			big.NewInt(int64(n.exponent.Magnitude())),
			nil,
		)

		if n.exponent.Sign() == bigbit.Negative {
			r.Quo(r, new(big.Rat).SetInt(pow))
		} else {
			r.Mul(r, new(big.Rat).SetInt(pow))
		}
	}

	return r
}

// String implements fmt.Stringer, rendering the logical value in decimal
// notation.
func (n Num) String() string {
	switch {
	case n.header.IsNaN():
		return "NaN"
	case n.header == Infinity:
		return "Infinity"
	case n.header == NegInfinity:
		return "-Infinity"
	}

	r := n.Rat()
	if r.IsInt() {
		return r.Num().String()
	}

	// Exact decimal expansion: the denominator is always a power of
	// ten.
	s := r.FloatString(n.exponent.Magnitude())

	s = strings.TrimRight(s, "0")
	s = strings.TrimSuffix(s, ".")

	return s
}
