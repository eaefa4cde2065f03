package varint

// alphabet holds the digit symbols for bases up to 36.
const alphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// Text returns the number as a string in the given base, 2 to 36
// inclusive. Alphabetic symbols are uppercase.
//
// A base outside that range is a contract violation and panics, even for
// the value zero.
func (u Uint) Text(base int) string {
	if base < 2 || base > 36 {
		panic("bigbit: base not in range from 2 to 36")
	}

	if u.IsZero() {
		return "0"
	}

	div := FromUint64(uint64(base))
	n := u.Clone()

	var buf []byte
	for !n.IsZero() {
		rem := n.DivRem(div)

		r, err := rem.Uint64()
		if err != nil {
			// The remainder is smaller than the base.
			panic(err)
		}

		buf = append(buf, alphabet[r])
	}

	for i, j := 0, len(buf)-1; i < j; i, j = i+1, j-1 {
		buf[i], buf[j] = buf[j], buf[i]
	}

	return string(buf)
}

// String implements fmt.Stringer, rendering the number in base 10.
func (u Uint) String() string {
	return u.Text(10)
}

// ParseUint converts a string in the given base, 2 to 36 inclusive, into a
// number. Alphabetic symbols may be either case. An error is returned for
// a symbol outside the base's range.
//
// A base outside 2 to 36 is a contract violation and panics.
func ParseUint(s string, base int) (u Uint, err error) {
	if base < 2 || base > 36 {
		panic("bigbit: base not in range from 2 to 36")
	}

	if s == "" {
		return Uint{}, Error.New("empty string")
	}

	for _, c := range []byte(s) {
		var v int
		switch {
		case c >= '0' && c <= '9':
			v = int(c - '0')
		case c >= 'A' && c <= 'Z':
			v = int(c-'A') + 10
		case c >= 'a' && c <= 'z':
			v = int(c-'a') + 10
		default:
			return Uint{}, Error.New("invalid symbol %q in base %d", c, base)
		}

		if v >= base {
			return Uint{}, Error.New("invalid symbol %q in base %d", c, base)
		}

		u.MulUint64(uint64(base))
		u.AddUint64(uint64(v))
	}

	return u, nil
}
