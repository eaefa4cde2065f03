package packed_test

import (
	"bytes"
	"io"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/require"

	"github.com/calebcase/bigbit"
	"github.com/calebcase/bigbit/packed"
)

func TestNumMarshal(t *testing.T) {
	type TC struct {
		name string
		n    packed.Num
		data []byte
	}

	negTwo := packed.TrustedExponent(0b_1000_0010)
	posTwo := packed.TrustedExponent(0b_0000_0010)

	tcs := []TC{
		{
			name: "zero",
			n:    packed.NewZero(),
			data: []byte{0b_0000_0000},
		},
		{
			name: "nan",
			n:    packed.NewNaN(),
			data: []byte{0b_1000_0000},
		},
		{
			name: "positive infinity",
			n:    packed.NewInfinity(bigbit.Positive),
			data: []byte{0b_0100_0000},
		},
		{
			name: "negative infinity",
			n:    packed.NewInfinity(bigbit.Negative),
			data: []byte{0b_1100_0000},
		},
		{
			name: "integer",
			n:    packed.New(bigbit.Positive, nil, []byte{0x04, 0x00}),
			data: []byte{0b_0000_0010, 0x04, 0x00},
		},
		{
			name: "five hundred",
			n:    packed.New(bigbit.Positive, &posTwo, []byte{5}),
			data: []byte{0b_0100_0010, 0b_0000_0010, 0x05},
		},
		{
			name: "negative fraction",
			n:    packed.New(bigbit.Negative, &negTwo, []byte{123}),
			data: []byte{0b_1100_0010, 0b_1000_0010, 123},
		},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			data, err := tc.n.MarshalBinary()
			require.NoError(t, err)
			require.Equal(t, tc.data, data)

			var n packed.Num
			require.NoError(t, n.UnmarshalBinary(tc.data))
			require.Equal(t, tc.n.String(), n.String())
			require.Equal(t, tc.n.Header(), n.Header())
		})
	}
}

func TestNumUnmarshalInvalid(t *testing.T) {
	type TC struct {
		name string
		data []byte
	}

	tcs := []TC{
		{
			name: "empty",
			data: []byte{},
		},
		{
			name: "truncated coefficients",
			data: []byte{0b_0000_0011, 0x01},
		},
		{
			name: "trailing bytes",
			data: []byte{0b_0000_0001, 0x01, 0x02},
		},
		{
			name: "missing exponent",
			data: []byte{0b_0100_0001},
		},
		{
			name: "negative zero exponent",
			data: []byte{0b_0100_0010, 0b_1000_0000, 0x05},
		},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			var n packed.Num
			err := n.UnmarshalBinary(tc.data)
			require.Error(t, err)
			require.True(t, packed.Error.Has(err))
		})
	}
}

func TestCodecRoundTrip(t *testing.T) {
	negOne := packed.TrustedExponent(0b_1000_0001)

	nums := []packed.Num{
		packed.NewZero(),
		packed.New(bigbit.Positive, nil, []byte{0x01, 0x00}),
		packed.New(bigbit.Negative, &negOne, []byte{25}),
		packed.NewNaN(),
		packed.NewInfinity(bigbit.Negative),
	}

	buf := &bytes.Buffer{}
	enc := packed.NewEncoder(buf)

	for _, n := range nums {
		require.NoError(t, enc.Encode(n))
	}

	t.Log("Stream:", spew.Sdump(buf.Bytes()))

	dec := packed.NewDecoder(buf)

	for _, want := range nums {
		var got packed.Num
		require.NoError(t, dec.Decode(&got))
		require.Equal(t, want.Header(), got.Header())
		require.Equal(t, want.String(), got.String())
	}

	var n packed.Num
	require.Equal(t, io.EOF, dec.Decode(&n))
}

func TestDecodeTruncated(t *testing.T) {
	dec := packed.NewDecoder(bytes.NewReader([]byte{0b_0000_0010, 0x01}))

	var n packed.Num
	err := dec.Decode(&n)
	require.Error(t, err)
	require.NotEqual(t, io.EOF, err)
	require.True(t, packed.Error.Has(err))
}
