package varint

import (
	"fmt"
	"math"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/require"
)

// requireCanonical asserts the full canonical form invariant: valid
// continuation bits and no redundant most significant zero digit.
func requireCanonical(t *testing.T, u Uint) {
	t.Helper()

	s := u.Digits()
	require.True(t, s.IsValid(), "digits: %s", spew.Sdump(s))

	if len(s) > 0 {
		require.NotEqual(t, byte(0), s[len(s)-1].Value(),
			"redundant zero digit: %s", spew.Sdump(s))
	}
}

func TestUintRoundtripUint64(t *testing.T) {
	values := []uint64{
		0, 1, 2, 41, 87, 127, 128, 129, 255, 16297, 16384,
		math.MaxUint32, math.MaxUint64 - 1, math.MaxUint64,
	}
	for shift := uint(0); shift < 64; shift++ {
		values = append(values, uint64(1)<<shift, uint64(1)<<shift-1)
	}

	for _, v := range values {
		t.Run(fmt.Sprintf("%d", v), func(t *testing.T) {
			u := FromUint64(v)
			requireCanonical(t, u)

			got, err := u.Uint64()
			require.NoError(t, err)
			require.Equal(t, v, got)
		})
	}
}

func TestUintZero(t *testing.T) {
	var zero Uint

	require.True(t, zero.IsZero())
	require.Equal(t, 0, zero.NumDigits())
	require.True(t, zero.Equal(FromUint64(0)))

	// Zero is uniquely the empty sequence.
	require.Len(t, FromUint64(0).Digits(), 0)
}

func TestUintUint64Overflow(t *testing.T) {
	u := FromUint64(math.MaxUint64)
	u.Increment()
	requireCanonical(t, u)

	_, err := u.Uint64()
	require.Error(t, err)
	require.True(t, Error.Has(err))
}

func TestNewUint(t *testing.T) {
	t.Run("canonical", func(t *testing.T) {
		u, err := NewUint(Sequence{Digit(41).Linked(), Digit(127)})
		require.NoError(t, err)

		n, err := u.Uint64()
		require.NoError(t, err)
		require.Equal(t, uint64(41+127*128), n)
	})

	t.Run("trims redundant zeros", func(t *testing.T) {
		u, err := NewUint(Sequence{Digit(5).Linked(), Digit(0)})
		require.NoError(t, err)
		requireCanonical(t, u)
		require.True(t, u.Equal(FromUint64(5)))
	})

	t.Run("rejects trailing link", func(t *testing.T) {
		_, err := NewUint(Sequence{Digit(41).Linked(), Digit(127).Linked()})
		require.Error(t, err)
		require.True(t, Error.Has(err))
	})

	t.Run("rejects interior endpoint", func(t *testing.T) {
		_, err := NewUint(Sequence{Digit(41), Digit(127)})
		require.Error(t, err)
	})
}

func TestFoldUint(t *testing.T) {
	u := FoldUint(Sequence{Digit(41), Digit(127).Linked()})
	requireCanonical(t, u)
	require.True(t, u.Equal(FromUint64(41+127*128)))

	require.True(t, FoldUint(Sequence{Digit(0), Digit(0)}).IsZero())
}

func TestUintIncrementDecrement(t *testing.T) {
	u := FromUint64(127)

	u.Increment()
	requireCanonical(t, u)
	require.True(t, u.Equal(FromUint64(128)))

	require.True(t, u.Decrement())
	requireCanonical(t, u)
	require.True(t, u.Equal(FromUint64(127)))

	var zero Uint
	require.False(t, zero.Decrement())
	require.True(t, zero.IsZero())
}

func TestUintCmp(t *testing.T) {
	type TC struct {
		lhs uint64
		rhs uint64
		cmp int
	}

	tcs := []TC{
		{lhs: 0, rhs: 0, cmp: 0},
		{lhs: 0, rhs: 1, cmp: -1},
		{lhs: 1, rhs: 0, cmp: 1},
		{lhs: 127, rhs: 128, cmp: -1},
		{lhs: 128, rhs: 128, cmp: 0},
		{lhs: 16297, rhs: 16384, cmp: -1},
		{lhs: math.MaxUint64, rhs: 1, cmp: 1},
	}

	for _, tc := range tcs {
		t.Run(fmt.Sprintf("%d<>%d", tc.lhs, tc.rhs), func(t *testing.T) {
			require.Equal(t, tc.cmp, FromUint64(tc.lhs).Cmp(FromUint64(tc.rhs)))
			require.Equal(t, -tc.cmp, FromUint64(tc.rhs).Cmp(FromUint64(tc.lhs)))
		})
	}

	// Equal lengths compare most significant digit first.
	a := FoldUint(Sequence{Digit(127), Digit(1)})
	b := FoldUint(Sequence{Digit(0), Digit(2)})
	require.Equal(t, -1, a.Cmp(b))
}

func TestUintSetUint64(t *testing.T) {
	u := FromUint64(math.MaxUint64)

	u.SetUint64(42)
	requireCanonical(t, u)
	require.True(t, u.Equal(FromUint64(42)))

	u.SetUint64(0)
	require.True(t, u.IsZero())
}

func TestUintClone(t *testing.T) {
	a := FromUint64(1000)
	b := a.Clone()

	b.Increment()

	require.True(t, a.Equal(FromUint64(1000)))
	require.True(t, b.Equal(FromUint64(1001)))
}

func TestUintMarshalBinary(t *testing.T) {
	type TC struct {
		value uint64
		data  []byte
	}

	tcs := []TC{
		{
			value: 0,
			data:  []byte{},
		},
		{
			value: 1,
			data:  []byte{0b_0000_0001},
		},
		{
			value: 127,
			data:  []byte{0b_0111_1111},
		},
		{
			value: 128,
			data:  []byte{0b_1000_0000, 0b_0000_0001},
		},
		{
			value: 16297,
			data:  []byte{0b_1010_1001, 0b_0111_1111},
		},
	}

	for _, tc := range tcs {
		t.Run(fmt.Sprintf("%d", tc.value), func(t *testing.T) {
			data, err := FromUint64(tc.value).MarshalBinary()
			require.NoError(t, err)
			require.Equal(t, tc.data, data)

			var u Uint
			require.NoError(t, u.UnmarshalBinary(data))
			require.True(t, u.Equal(FromUint64(tc.value)))
		})
	}

	t.Run("rejects malformed", func(t *testing.T) {
		var u Uint
		err := u.UnmarshalBinary([]byte{0b_1000_0001})
		require.Error(t, err)
	})
}
