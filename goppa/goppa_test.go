package goppa

import (
	mrand "math/rand"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/brendoncarroll/go-mceliece/gf4096"
)

var (
	keyOnce  sync.Once
	testPub  *PublicKey
	testPriv *PrivateKey
)

// testKeyPair generates one key pair for the whole package; key
// generation is by far the most expensive operation here.
func testKeyPair(t *testing.T) (*PublicKey, *PrivateKey) {
	keyOnce.Do(func() {
		rng := mrand.New(mrand.NewSource(0))
		pub, priv, err := GenerateKey(rng)
		if err != nil {
			t.Fatal(err)
		}
		testPub, testPriv = pub, priv
	})
	return testPub, testPriv
}

// randomError returns a packed bit vector of Hamming weight exactly T.
func randomError(rng *mrand.Rand) *[NBytes]byte {
	var e [NBytes]byte
	count := 0
	for count < T {
		pos := rng.Intn(N)
		if e[pos>>3]>>(pos&7)&1 == 1 {
			continue
		}
		e[pos>>3] |= 1 << (pos & 7)
		count++
	}
	return &e
}

func TestGenerateKey(t *testing.T) {
	pub, priv := testKeyPair(t)
	require.NotNil(t, pub)
	require.NotNil(t, priv)

	require.True(t, irreducible(&priv.Poly))
	seen := map[gf4096.Elem]struct{}{}
	for _, alpha := range priv.Support {
		_, ok := seen[alpha]
		require.False(t, ok, "support elements must be distinct")
		seen[alpha] = struct{}{}
	}
}

func TestDerivePublic(t *testing.T) {
	pub, priv := testKeyPair(t)
	pub2, err := DerivePublic(priv)
	require.NoError(t, err)
	require.Equal(t, pub, pub2)
}

func TestEncodeDecode(t *testing.T) {
	pub, priv := testKeyPair(t)
	rng := mrand.New(mrand.NewSource(1))
	for i := 0; i < 4; i++ {
		e := randomError(rng)
		var ct [SyndromeBytes]byte
		Encode(&ct, pub, e)

		var got [NBytes]byte
		ok := Decode(&got, priv, &ct)
		require.Equal(t, byte(0xff), ok)
		require.Equal(t, *e, got)
	}
}

func TestDecodeGarbage(t *testing.T) {
	_, priv := testKeyPair(t)
	rng := mrand.New(mrand.NewSource(2))
	var ct [SyndromeBytes]byte
	for i := range ct {
		ct[i] = byte(rng.Intn(256))
	}
	var got [NBytes]byte
	ok := Decode(&got, priv, &ct)
	require.Equal(t, byte(0x00), ok)
}

func TestDecodeFlippedBit(t *testing.T) {
	pub, priv := testKeyPair(t)
	rng := mrand.New(mrand.NewSource(3))
	e := randomError(rng)
	var ct [SyndromeBytes]byte
	Encode(&ct, pub, e)
	ct[17] ^= 0x10

	var got [NBytes]byte
	ok := Decode(&got, priv, &ct)
	require.Equal(t, byte(0x00), ok)
}

func TestGCD(t *testing.T) {
	_, priv := testKeyPair(t)

	// g is irreducible, so any nonzero residue is coprime to it; the
	// Euclid loop must run all the way down to a zero remainder.
	var a residue
	a[0], a[1] = 1, 1 // x + 1
	require.True(t, gcdWithGIsOne(&a, &priv.Poly))

	// the zero Poly is x^T (leading coefficient implied), which shares
	// the factor x with the residue x
	var g Poly
	var b residue
	b[1] = 1
	require.False(t, gcdWithGIsOne(&b, &g))

	// gcd(g, 0) = g, which is not a constant
	var zero residue
	require.False(t, gcdWithGIsOne(&zero, &priv.Poly))
}

func TestIrreducible(t *testing.T) {
	_, priv := testKeyPair(t)

	// any polynomial with zero constant term is divisible by x
	g := priv.Poly
	g[0] = 0
	require.False(t, irreducible(&g))
}

func TestEval(t *testing.T) {
	_, priv := testKeyPair(t)
	require.Equal(t, priv.Poly[0], Eval(&priv.Poly, 0))

	// g is irreducible of degree > 1, so it has no roots in the field
	for _, alpha := range priv.Support[:64] {
		require.NotEqual(t, gf4096.Elem(0), Eval(&priv.Poly, alpha))
	}
}
