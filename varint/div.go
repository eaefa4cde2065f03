package varint

// DivRem divides u by rhs in place, leaving the quotient in u and
// returning the remainder. Both results come out of a single pass: long
// division a digit at a time, with each digit's quotient accumulated by
// repeated subtraction of the divisor (at most 127 rounds per digit).
//
// Dividing by zero is a contract violation and panics.
func (u *Uint) DivRem(rhs Uint) (rem Uint) {
	if rhs.IsZero() {
		panic("bigbit: division by zero")
	}

	if u.aliases(rhs) {
		rhs = rhs.Clone()
	}

	var quot Uint
	for i := len(u.digits) - 1; i >= 0; i-- {
		rem.shiftUp()
		rem.addAt(0, uint64(u.digits[i].Value()))

		var q uint64
		for rem.Cmp(rhs) >= 0 {
			rem.CheckedSub(rhs)
			q++
		}

		if q > 0 {
			quot.addAt(i, q)
		}
	}

	*u = quot

	return rem
}

// Div returns u / rhs. Dividing by zero panics.
func (u Uint) Div(rhs Uint) Uint {
	q := u.Clone()
	q.DivRem(rhs)

	return q
}

// Mod returns u % rhs. Dividing by zero panics.
func (u Uint) Mod(rhs Uint) Uint {
	q := u.Clone()
	return q.DivRem(rhs)
}

// shiftUp multiplies the number by 128 by sliding a zero digit in at the
// least significant position. Zero stays zero.
func (u *Uint) shiftUp() {
	if u.IsZero() {
		return
	}

	u.digits = append(u.digits, 0)
	copy(u.digits[1:], u.digits)
	u.digits[0] = ZeroLink
}
