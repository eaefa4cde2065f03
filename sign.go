package bigbit

// Sign is the sign of a number.
//
// Zero values in BigBit formats are always positive and NaN values are
// always negative.
type Sign bool

// Signs
const (
	Positive Sign = false
	Negative Sign = true
)

// String returns "Positive" or "Negative".
func (s Sign) String() string {
	if s == Negative {
		return "Negative"
	}

	return "Positive"
}
