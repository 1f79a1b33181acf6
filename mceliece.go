package mceliece

import (
	"fmt"
	"io"

	"github.com/brendoncarroll/go-mceliece/goppa"
	"github.com/brendoncarroll/go-mceliece/xof/xof_sha3"
)

const (
	// SharedSecretSize is the length of a shared secret.
	SharedSecretSize = 32
	// CiphertextSize is the length of a ciphertext.
	CiphertextSize = goppa.SyndromeBytes
	// RejectSize is the length of the implicit-rejection secret held in
	// a private key. It equals the packed error vector length so that
	// both decapsulation paths hash equally many bytes.
	RejectSize = goppa.NBytes
)

// Domain separation tags for shared secret derivation.
const (
	tagDecode = 1 // secret derived from a decoded error vector
	tagReject = 0 // secret derived from the rejection value
)

// Rejection sampling accepts most position draws (a draw lands in range
// and on a fresh position with probability above 4/5). The cap exists so
// that a non-uniform entropy source surfaces as an error instead of a
// spin, matching the key generation loops.
const maxErrorAttempts = 4096

// SharedSecret is a 256 bit shared secret.
type SharedSecret = [SharedSecretSize]byte

// PublicKey is the systematic part of a parity-check matrix.
// It is safe to share, and safe for concurrent use.
type PublicKey = goppa.PublicKey

// PrivateKey must not leave the holder. After generation it is never
// mutated, so concurrent Decapsulate calls may share it.
type PrivateKey struct {
	Goppa  goppa.PrivateKey
	Reject [RejectSize]byte
}

// Generate creates a key pair using entropy from rng.
// The only failure mode is a faulty entropy source; internal sampling
// retries are not observable.
func Generate(rng io.Reader) (*PublicKey, *PrivateKey, error) {
	pub, gpriv, err := goppa.GenerateKey(rng)
	if err != nil {
		return nil, nil, fmt.Errorf("mceliece: generating key pair: %w: %v", ErrEntropy, err)
	}
	priv := &PrivateKey{Goppa: *gpriv}
	if _, err := io.ReadFull(rng, priv.Reject[:]); err != nil {
		return nil, nil, fmt.Errorf("mceliece: generating rejection secret: %w: %v", ErrEntropy, err)
	}
	log.Debug("generated key pair")
	return pub, priv, nil
}

// DerivePublic recomputes the public key held by priv.
func DerivePublic(priv *PrivateKey) (*PublicKey, error) {
	return goppa.DerivePublic(&priv.Goppa)
}

// Encapsulate samples a fresh error vector from rng, writes the
// resulting ciphertext to ct, and the shared secret to ss.
// If ct is not >= CiphertextSize, Encapsulate panics.
func Encapsulate(ss *SharedSecret, ct []byte, pub *PublicKey, rng io.Reader) error {
	if len(ct) < CiphertextSize {
		panic(fmt.Sprintf("len(ct) < %d", CiphertextSize))
	}
	var e [goppa.NBytes]byte
	if err := sampleError(&e, rng); err != nil {
		return fmt.Errorf("mceliece: encapsulating: %w: %v", ErrEntropy, err)
	}
	var syn [CiphertextSize]byte
	goppa.Encode(&syn, pub, &e)
	copy(ct, syn[:])
	deriveSecret(ss, tagDecode, e[:], syn[:])
	return nil
}

// Decapsulate recovers the shared secret from ct and writes it to ss.
// It is total for inputs of the correct length: a ciphertext that does
// not decode yields a secret derived from the private rejection value,
// through the same amount of work as the success path.
func Decapsulate(ss *SharedSecret, priv *PrivateKey, ct []byte) error {
	if len(ct) != CiphertextSize {
		return fmt.Errorf("mceliece: wrong size for ciphertext: %d", len(ct))
	}
	var syn [CiphertextSize]byte
	copy(syn[:], ct)
	var e [goppa.NBytes]byte
	ok := goppa.Decode(&e, &priv.Goppa, &syn)

	// select the hash preimage and tag by mask; the rejection path does
	// exactly as much work as the success path
	var pre [goppa.NBytes]byte
	for i := range pre {
		pre[i] = e[i]&ok | priv.Reject[i]&^ok
	}
	tag := byte(tagDecode)&ok | byte(tagReject)&^ok
	deriveSecret(ss, tag, pre[:], syn[:])
	return nil
}

// deriveSecret computes ss = SHAKE256(tag || pre || ct).
func deriveSecret(ss *SharedSecret, tag byte, pre, ct []byte) {
	sch := xof_sha3.SHAKE256{}
	x := sch.New()
	sch.Absorb(&x, []byte{tag})
	sch.Absorb(&x, pre)
	sch.Absorb(&x, ct)
	sch.Expand(&x, ss[:])
}

// sampleError fills e with a uniform bit vector of Hamming weight
// exactly goppa.T, by rejection sampling positions from rng.
func sampleError(e *[goppa.NBytes]byte, rng io.Reader) error {
	for i := range e {
		e[i] = 0
	}
	var buf [2]byte
	count := 0
	for i := 0; i < maxErrorAttempts; i++ {
		if _, err := io.ReadFull(rng, buf[:]); err != nil {
			return err
		}
		pos := int(buf[0]) | int(buf[1])<<8&0xf00
		if pos >= goppa.N {
			continue
		}
		if e[pos>>3]>>(pos&7)&1 == 1 {
			continue
		}
		e[pos>>3] |= 1 << (pos & 7)
		count++
		if count == goppa.T {
			return nil
		}
	}
	return fmt.Errorf("no weight-%d vector found, entropy source is not uniform", goppa.T)
}
