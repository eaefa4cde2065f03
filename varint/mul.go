package varint

// Mul multiplies u by rhs in place.
//
// This is the schoolbook algorithm: every digit of one operand is
// multiplied against every digit of the other and each partial product is
// immediately folded into the accumulator at the combined digit offset,
// avoiding a dense partial product table.
func (u *Uint) Mul(rhs Uint) {
	var result Uint

	for i := range u.digits {
		for j := range rhs.digits {
			p := uint64(u.digits[i].Value()) * uint64(rhs.digits[j].Value())
			if p > 0 {
				result.addAt(i+j, p)
			}
		}
	}

	*u = result
}

// MulUint64 multiplies u by a machine integer in place. This is the same
// algorithm with the scalar decomposed into digits first.
func (u *Uint) MulUint64(n uint64) {
	u.Mul(FromUint64(n))
}
