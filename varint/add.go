package varint

// Add adds rhs to u in place.
func (u *Uint) Add(rhs Uint) {
	if rhs.IsZero() {
		return
	}

	if u.aliases(rhs) {
		rhs = rhs.Clone()
	}

	for len(u.digits) < len(rhs.digits) {
		u.digits = append(u.digits, ZeroLink)
	}

	for i := 0; i < len(rhs.digits); i++ {
		val, carry := u.digits[i].AddWithCarry(rhs.digits[i])
		u.digits[i] = val

		if carry {
			if i == len(u.digits)-1 {
				u.digits = append(u.digits, Digit(1))
			} else {
				u.incrementAt(i + 1)
			}
		}
	}

	u.normalize()
}

// AddUint64 adds a machine integer to u in place.
func (u *Uint) AddUint64(n uint64) {
	u.AddAt(0, n)
}

// AddAt folds n into the number at the given digit offset, i.e. adds
// n × 128^index. This is the shift-add primitive behind multiplication:
// the shift happens by tweaking indices rather than by moving digits.
func (u *Uint) AddAt(index int, n uint64) {
	u.addAt(index, n)
}

func (u *Uint) addAt(index int, n uint64) {
	for i := index; n > 0; i++ {
		d := Digit(n & 0b_0111_1111)
		n >>= 7

		for len(u.digits) <= i {
			u.digits = append(u.digits, ZeroEnd)
		}

		val, carry := u.digits[i].AddWithCarry(d)
		u.digits[i] = val
		if carry {
			u.incrementAt(i + 1)
		}
	}

	u.normalize()
}

// aliases returns true if u and rhs share the same digit buffer.
func (u *Uint) aliases(rhs Uint) bool {
	return len(u.digits) > 0 && len(rhs.digits) > 0 && &u.digits[0] == &rhs.digits[0]
}
