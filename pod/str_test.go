package pod

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStr(t *testing.T) {
	region := make([]byte, 16)
	s := Str(region)
	require.True(t, s.IsEmpty())

	s.Set([]byte("stevia"))
	got, err := s.Value()
	require.NoError(t, err)
	require.Equal(t, "stevia", got)
	require.False(t, s.IsEmpty())

	// Shorter value zero-fills the tail.
	s.Set([]byte("pod"))
	got, err = s.Value()
	require.NoError(t, err)
	require.Equal(t, "pod", got)
	require.Equal(t, byte(0), region[3])

	// Over-capacity value truncates.
	s.Set([]byte("0123456789abcdef-overflow"))
	require.Equal(t, []byte("0123456789abcdef"), s.Bytes())
}

func TestStrInvalidUTF8(t *testing.T) {
	s := Str([]byte{0xFF, 0xFE, 0, 0})
	_, err := s.Value()
	require.ErrorIs(t, err, ErrInvalidValue)
}

func TestBool(t *testing.T) {
	require.False(t, Bool(0).Value())
	require.True(t, Bool(1).Value())
	require.True(t, Bool(5).Value())
	require.Equal(t, Bool(1), BoolFrom(true))
	require.Equal(t, Bool(0), BoolFrom(false))
}
