package bigbit

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSign(t *testing.T) {
	require.Equal(t, "Positive", Positive.String())
	require.Equal(t, "Negative", Negative.String())
}
