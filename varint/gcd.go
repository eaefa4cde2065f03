package varint

// Gcd returns the greatest common divisor of a and b, using the
// subtraction variant of the Euclidean algorithm: the smaller operand is
// repeatedly subtracted from the larger until they meet. The GCD of a
// number and zero is the number itself.
func Gcd(a, b Uint) Uint {
	if a.IsZero() {
		return b.Clone()
	}
	if b.IsZero() {
		return a.Clone()
	}

	a, b = a.Clone(), b.Clone()
	for {
		switch a.Cmp(b) {
		case 1:
			a.Sub(b)
		case -1:
			b.Sub(a)
		default:
			return a
		}
	}
}
