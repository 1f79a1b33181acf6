// Package goppa implements binary Goppa codes over GF(2^12) with the
// parameters n=3488, t=64: key generation to systematic form, syndrome
// encoding, and bounded-distance decoding of up to t errors.
//
// The decoder is branchless: its running time does not depend on the
// syndrome, the support, or whether decoding succeeds.
package goppa

import (
	"github.com/brendoncarroll/go-mceliece/gf4096"
)

const (
	// M is the field extension degree.
	M = gf4096.Bits
	// N is the code length in bits.
	N = 3488
	// T is the number of correctable errors, and the degree of the
	// Goppa polynomial.
	T = 64
	// K is the code dimension in bits.
	K = N - M*T

	// SyndromeBits is the length of a syndrome, n-k.
	SyndromeBits = M * T
	// SyndromeBytes is the length of a packed syndrome.
	SyndromeBytes = SyndromeBits / 8
	// NBytes is the length of a packed length-n bit vector.
	NBytes = N / 8

	// rowWords is the width in 64-bit words of a full parity-check row.
	rowWords = (N + 63) / 64
	// pkWords is the width in 64-bit words of a public key row (the
	// non-identity columns of the systematic parity-check matrix).
	pkWords = (K + 63) / 64
)

// Poly is a monic polynomial of degree T over GF(2^12).
// The leading coefficient is implied and not stored.
type Poly [T]gf4096.Elem

// Support is a sequence of N distinct field elements; the code locations.
type Support [N]gf4096.Elem

// PrivateKey is a Goppa polynomial together with a support sequence.
// Both are secret. The systematic form is reached by row operations
// only, so no column permutation needs to be stored.
type PrivateKey struct {
	Poly    Poly
	Support Support
}

// PublicKey is the non-identity part T of a systematic parity-check
// matrix H = [I | T]. Rows are packed into little-endian 64-bit words;
// bits beyond K in the last word of each row are zero.
type PublicKey struct {
	Rows [SyndromeBits][pkWords]uint64
}
