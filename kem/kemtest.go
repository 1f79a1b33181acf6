package kem

import (
	mrand "math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

// TestScheme256 runs a test suite on scheme, which all Scheme256s must pass.
// Key generation can be expensive, so one pair is generated up front and
// shared by the subtests.
func TestScheme256[Priv, Pub any](t *testing.T, scheme Scheme256[Priv, Pub]) {
	rng := mrand.New(mrand.NewSource(0))
	pub, priv, err := scheme.Generate(rng)
	require.NoError(t, err)

	t.Run("DerivePublic", func(t *testing.T) {
		pub2 := scheme.DerivePublic(&priv)
		require.Equal(t, pub, pub2)
	})
	t.Run("MarshalParsePublic", func(t *testing.T) {
		data := make([]byte, scheme.PublicKeySize())
		scheme.MarshalPublic(data, &pub)
		pub2, err := scheme.ParsePublic(data)
		require.NoError(t, err)
		require.Equal(t, pub, pub2)
	})
	t.Run("MarshalParsePrivate", func(t *testing.T) {
		data := make([]byte, scheme.PrivateKeySize())
		scheme.MarshalPrivate(data, &priv)
		priv2, err := scheme.ParsePrivate(data)
		require.NoError(t, err)
		require.Equal(t, priv, priv2)
	})
	t.Run("EncapDecap", func(t *testing.T) {
		var seed Seed
		var shared1, shared2 Secret256
		ctext := make([]byte, scheme.CiphertextSize())
		err := scheme.Encapsulate(&shared1, ctext, &pub, &seed)
		require.NoError(t, err)

		err = scheme.Decapsulate(&shared2, &priv, ctext)
		require.NoError(t, err)

		require.NotZero(t, shared1)
		require.NotZero(t, shared2)
		require.Equal(t, shared1, shared2)
	})
	t.Run("EncapDeterministic", func(t *testing.T) {
		var seed Seed
		seed[0] = 1
		var shared1, shared2 Secret256
		ct1 := make([]byte, scheme.CiphertextSize())
		ct2 := make([]byte, scheme.CiphertextSize())
		require.NoError(t, scheme.Encapsulate(&shared1, ct1, &pub, &seed))
		require.NoError(t, scheme.Encapsulate(&shared2, ct2, &pub, &seed))
		require.Equal(t, ct1, ct2)
		require.Equal(t, shared1, shared2)
	})
}
