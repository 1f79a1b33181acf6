package xof

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestScheme runs a test suite on s, which all xof.Schemes must pass.
func TestScheme[S any](t *testing.T, s Scheme[S]) {
	t.Run("NewReset", func(t *testing.T) {
		x := s.New()
		unused := s.New()

		s.Absorb(&x, []byte("input string"))
		s.Reset(&x)

		var expected, actual [64]byte
		s.Expand(&unused, expected[:])
		s.Expand(&x, actual[:])
		require.Equal(t, expected, actual)
	})
	t.Run("Deterministic", func(t *testing.T) {
		var a, b [64]byte
		Sum(s, a[:], []byte("input string"))
		Sum(s, b[:], []byte("input string"))
		require.Equal(t, a, b)
	})
	t.Run("Rand256", func(t *testing.T) {
		var seed [32]byte
		var a, b [64]byte
		r1 := NewRand256(s, &seed)
		r2 := NewRand256(s, &seed)
		_, err := r1.Read(a[:])
		require.NoError(t, err)
		_, err = r2.Read(b[:])
		require.NoError(t, err)
		require.Equal(t, a, b)
	})
}
