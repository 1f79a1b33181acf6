package mceliece

import (
	"crypto/rand"
	"io"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"github.com/brendoncarroll/go-mceliece/goppa"
	"github.com/brendoncarroll/go-mceliece/xof"
	"github.com/brendoncarroll/go-mceliece/xof/xof_sha3"
)

// seededRNG returns a deterministic entropy stream.
func seededRNG(seed byte) io.Reader {
	var s [32]byte
	s[0] = seed
	return xof.NewRand256[xof_sha3.SHAKE256State](xof_sha3.SHAKE256{}, &s)
}

var (
	keyOnce  sync.Once
	testPub  *PublicKey
	testPriv *PrivateKey
)

func testKeyPair(t *testing.T) (*PublicKey, *PrivateKey) {
	keyOnce.Do(func() {
		pub, priv, err := Generate(seededRNG(1))
		if err != nil {
			t.Fatal(err)
		}
		testPub, testPriv = pub, priv
	})
	return testPub, testPriv
}

func TestScenario(t *testing.T) {
	pub, priv := testKeyPair(t)

	var x, y SharedSecret
	ct := make([]byte, CiphertextSize)
	require.NoError(t, Encapsulate(&x, ct, pub, seededRNG(2)))
	require.NoError(t, Decapsulate(&y, priv, ct))
	require.Equal(t, x, y)

	ct[10] ^= 0x04
	require.NoError(t, Decapsulate(&y, priv, ct))
	require.NotEqual(t, x, y)
}

func TestRoundTrip(t *testing.T) {
	pub, priv := testKeyPair(t)
	ct := make([]byte, CiphertextSize)
	for i := 0; i < 4; i++ {
		var x, y SharedSecret
		require.NoError(t, Encapsulate(&x, ct, pub, rand.Reader))
		require.NoError(t, Decapsulate(&y, priv, ct))
		require.Equal(t, x, y)
		require.NotZero(t, x)
	}
}

func TestGenerateDeterministic(t *testing.T) {
	pub, priv := testKeyPair(t)
	pub2, priv2, err := Generate(seededRNG(1))
	require.NoError(t, err)
	require.Equal(t, pub, pub2)
	require.Equal(t, priv, priv2)
}

func TestBitFlips(t *testing.T) {
	pub, priv := testKeyPair(t)
	var x SharedSecret
	ct := make([]byte, CiphertextSize)
	require.NoError(t, Encapsulate(&x, ct, pub, seededRNG(3)))

	for _, pos := range []int{0, 1, 100, CiphertextSize*8 - 1} {
		flipped := make([]byte, CiphertextSize)
		copy(flipped, ct)
		flipped[pos/8] ^= 1 << (pos % 8)
		var y SharedSecret
		require.NoError(t, Decapsulate(&y, priv, flipped))
		require.NotEqual(t, x, y)
	}
}

func TestWrongKey(t *testing.T) {
	pub, _ := testKeyPair(t)
	_, priv2, err := Generate(seededRNG(4))
	require.NoError(t, err)

	var x, y SharedSecret
	ct := make([]byte, CiphertextSize)
	require.NoError(t, Encapsulate(&x, ct, pub, seededRNG(5)))
	require.NoError(t, Decapsulate(&y, priv2, ct))
	require.NotEqual(t, x, y)
}

func TestErrorVectorWeight(t *testing.T) {
	rng := seededRNG(6)
	for i := 0; i < 32; i++ {
		var e [goppa.NBytes]byte
		require.NoError(t, sampleError(&e, rng))
		weight := 0
		for _, b := range e {
			for k := 0; k < 8; k++ {
				weight += int(b >> k & 1)
			}
		}
		require.Equal(t, goppa.T, weight)
	}
}

func TestMarshalParse(t *testing.T) {
	pub, priv := testKeyPair(t)

	pubData := make([]byte, PublicKeySize)
	MarshalPublic(pubData, pub)
	pub2, err := ParsePublic(pubData)
	require.NoError(t, err)
	require.Equal(t, pub, pub2)

	privData := make([]byte, PrivateKeySize)
	MarshalPrivate(privData, priv)
	priv2, err := ParsePrivate(privData)
	require.NoError(t, err)
	require.Equal(t, priv, priv2)

	_, err = ParsePublic(pubData[:len(pubData)-1])
	require.Error(t, err)
	_, err = ParsePrivate(privData[1:])
	require.Error(t, err)
}

func TestSizes(t *testing.T) {
	require.Equal(t, 261120, PublicKeySize)
	require.Equal(t, 96, CiphertextSize)
	require.Equal(t, 32, SharedSecretSize)
	require.Equal(t, 5764, PrivateKeySize)
}

type failReader struct{}

func (failReader) Read([]byte) (int, error) {
	return 0, io.ErrUnexpectedEOF
}

func TestEntropyFailure(t *testing.T) {
	_, _, err := Generate(failReader{})
	require.Error(t, err)
	require.True(t, IsErrEntropy(err))

	pub, _ := testKeyPair(t)
	var ss SharedSecret
	ct := make([]byte, CiphertextSize)
	err = Encapsulate(&ss, ct, pub, failReader{})
	require.Error(t, err)
	require.True(t, IsErrEntropy(err))
}

// stuckReader never errors but always yields the same byte, so rejection
// sampling can accept at most one position from it.
type stuckReader struct{}

func (stuckReader) Read(p []byte) (int, error) {
	for i := range p {
		p[i] = 0x42
	}
	return len(p), nil
}

func TestEncapsulateStuckEntropy(t *testing.T) {
	pub, _ := testKeyPair(t)
	var ss SharedSecret
	ct := make([]byte, CiphertextSize)
	err := Encapsulate(&ss, ct, pub, stuckReader{})
	require.Error(t, err)
	require.True(t, IsErrEntropy(err))
}

func TestDecapsulateWrongSize(t *testing.T) {
	_, priv := testKeyPair(t)
	var ss SharedSecret
	require.Error(t, Decapsulate(&ss, priv, make([]byte, CiphertextSize-1)))
	require.Error(t, Decapsulate(&ss, priv, make([]byte, CiphertextSize+1)))
}

func TestEncapsulateShortBuffer(t *testing.T) {
	pub, _ := testKeyPair(t)
	var ss SharedSecret
	require.Panics(t, func() {
		_ = Encapsulate(&ss, make([]byte, CiphertextSize-1), pub, seededRNG(7))
	})
}

// Public keys are read-shared by concurrent encapsulators, and private
// keys by concurrent decapsulators, with no synchronization.
func TestConcurrent(t *testing.T) {
	pub, priv := testKeyPair(t)
	var eg errgroup.Group
	for i := 0; i < 8; i++ {
		eg.Go(func() error {
			var x, y SharedSecret
			ct := make([]byte, CiphertextSize)
			if err := Encapsulate(&x, ct, pub, rand.Reader); err != nil {
				return err
			}
			if err := Decapsulate(&y, priv, ct); err != nil {
				return err
			}
			require.Equal(t, x, y)
			return nil
		})
	}
	require.NoError(t, eg.Wait())
}
