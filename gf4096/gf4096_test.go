package gf4096

import (
	mrand "math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMulIdentity(t *testing.T) {
	for a := 0; a < Order; a++ {
		require.Equal(t, Elem(a), Mul(Elem(a), 1))
		require.Equal(t, Elem(0), Mul(Elem(a), 0))
	}
}

func TestMulCommutes(t *testing.T) {
	rng := mrand.New(mrand.NewSource(0))
	for i := 0; i < 10000; i++ {
		a, b := Elem(rng.Intn(Order)), Elem(rng.Intn(Order))
		require.Equal(t, Mul(a, b), Mul(b, a))
	}
}

func TestMulDistributes(t *testing.T) {
	rng := mrand.New(mrand.NewSource(0))
	for i := 0; i < 10000; i++ {
		a := Elem(rng.Intn(Order))
		b := Elem(rng.Intn(Order))
		c := Elem(rng.Intn(Order))
		require.Equal(t, Mul(a, Add(b, c)), Add(Mul(a, b), Mul(a, c)))
	}
}

func TestMulAssociates(t *testing.T) {
	rng := mrand.New(mrand.NewSource(0))
	for i := 0; i < 10000; i++ {
		a := Elem(rng.Intn(Order))
		b := Elem(rng.Intn(Order))
		c := Elem(rng.Intn(Order))
		require.Equal(t, Mul(a, Mul(b, c)), Mul(Mul(a, b), c))
	}
}

func TestInv(t *testing.T) {
	// exhaustive: a * a^-1 = 1 for every nonzero a
	for a := 1; a < Order; a++ {
		require.Equal(t, Elem(1), Mul(Elem(a), Inv(Elem(a))))
	}
	require.Equal(t, Elem(0), Inv(0))
}

func TestIsZeroMask(t *testing.T) {
	require.Equal(t, Elem(Mask), IsZeroMask(0))
	for a := 1; a < Order; a++ {
		require.Equal(t, Elem(0), IsZeroMask(Elem(a)))
	}
}

func TestNonZeroMask(t *testing.T) {
	require.Equal(t, uint16(0), NonZeroMask(0))
	for a := 1; a < Order; a++ {
		require.Equal(t, uint16(0xffff), NonZeroMask(Elem(a)))
	}
}
