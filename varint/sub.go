package varint

// Sub subtracts rhs from u in place.
//
// Underflow is undefined for the format, since it only specifies
// non-negative integers: subtracting a larger number panics.
func (u *Uint) Sub(rhs Uint) {
	if !u.CheckedSub(rhs) {
		panic("bigbit: integer underflow")
	}
}

// SubUint64 subtracts a machine integer from u in place. Underflow panics,
// as for Sub.
func (u *Uint) SubUint64(n uint64) {
	if !u.CheckedSubUint64(n) {
		panic("bigbit: integer underflow")
	}
}

// CheckedSub subtracts rhs from u in place. It reports failure if the
// result would underflow zero, in which case u is untouched.
func (u *Uint) CheckedSub(rhs Uint) (ok bool) {
	if rhs.IsZero() {
		return true
	}
	if u.Cmp(rhs) < 0 {
		return false
	}

	if u.aliases(rhs) {
		rhs = rhs.Clone()
	}

	for i := 0; i < len(rhs.digits); i++ {
		val, borrow := u.digits[i].SubWithBorrow(rhs.digits[i])
		u.digits[i] = val

		if borrow {
			// u >= rhs, so the borrow always resolves within
			// the remaining digits.
			u.decrementAt(i + 1)
		}
	}

	u.trim()

	return true
}

// CheckedSubUint64 subtracts a machine integer from u in place. It reports
// failure if the result would underflow zero, in which case u is
// untouched.
func (u *Uint) CheckedSubUint64(n uint64) (ok bool) {
	return u.CheckedSub(FromUint64(n))
}
