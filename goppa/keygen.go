package goppa

import (
	"encoding/binary"
	"io"

	"github.com/pkg/errors"
	"golang.org/x/exp/slices"

	"github.com/brendoncarroll/go-mceliece/gf4096"
)

// Sampling retries are expected (irreducibility holds for roughly 1 in T
// candidates, systematic form for roughly 1 in 3.4 supports). The caps
// exist so that a non-uniform entropy source surfaces as an error
// instead of a spin.
const (
	maxPolyAttempts    = 4096
	maxSupportAttempts = 512
)

// GenerateKey produces a key pair for the code. The only error condition
// is a failing or non-uniform entropy source; internal retries are not
// observable by the caller.
func GenerateKey(rng io.Reader) (*PublicKey, *PrivateKey, error) {
	priv := &PrivateKey{}
	if err := samplePoly(&priv.Poly, rng); err != nil {
		return nil, nil, err
	}
	for i := 0; i < maxSupportAttempts; i++ {
		if err := sampleSupport(&priv.Support, rng); err != nil {
			return nil, nil, err
		}
		if pub, ok := systematize(priv); ok {
			return pub, priv, nil
		}
	}
	return nil, nil, errors.New("goppa: no systematic form found, entropy source is not uniform")
}

// DerivePublic recomputes the public key from a private key. It fails
// only if the private key did not come from GenerateKey (its support
// does not yield a systematic matrix).
func DerivePublic(priv *PrivateKey) (*PublicKey, error) {
	pub, ok := systematize(priv)
	if !ok {
		return nil, errors.New("goppa: private key has no systematic form")
	}
	return pub, nil
}

// samplePoly draws random monic degree-T polynomials until one passes
// the irreducibility test.
func samplePoly(g *Poly, rng io.Reader) error {
	var buf [2 * T]byte
	for i := 0; i < maxPolyAttempts; i++ {
		if _, err := io.ReadFull(rng, buf[:]); err != nil {
			return errors.Wrap(err, "goppa: sampling polynomial")
		}
		for j := 0; j < T; j++ {
			g[j] = gf4096.Elem(binary.LittleEndian.Uint16(buf[2*j:])) & gf4096.Mask
		}
		if irreducible(g) {
			return nil
		}
	}
	return errors.New("goppa: no irreducible polynomial found, entropy source is not uniform")
}

// sampleSupport fills s with the first N elements of a uniform random
// permutation of the field, obtained by sorting all field elements by
// random keys. A key collision would bias the order, so those draws
// are rejected.
func sampleSupport(s *Support, rng io.Reader) error {
	type keyed struct {
		key  uint32
		elem gf4096.Elem
	}
	pairs := make([]keyed, gf4096.Order)
	buf := make([]byte, 4*gf4096.Order)
	for i := 0; i < maxSupportAttempts; i++ {
		if _, err := io.ReadFull(rng, buf); err != nil {
			return errors.Wrap(err, "goppa: sampling support")
		}
		for j := range pairs {
			pairs[j] = keyed{key: binary.LittleEndian.Uint32(buf[4*j:]), elem: gf4096.Elem(j)}
		}
		slices.SortFunc(pairs, func(a, b keyed) bool { return a.key < b.key })
		collision := false
		for j := 1; j < len(pairs); j++ {
			if pairs[j].key == pairs[j-1].key {
				collision = true
				break
			}
		}
		if collision {
			continue
		}
		for j := 0; j < N; j++ {
			s[j] = pairs[j].elem
		}
		return nil
	}
	return errors.New("goppa: no collision-free support found, entropy source is not uniform")
}

// systematize builds the parity-check matrix H(i,j) = alpha_j^i / g(alpha_j)
// expanded over GF(2), and reduces it to [I | T] by row operations only.
// Row selection uses masked XOR rather than swaps, so the reduction does
// not branch on matrix contents. Returns ok=false on pivot failure, in
// which case the caller resamples the support.
func systematize(priv *PrivateKey) (*PublicKey, bool) {
	mat := make([][rowWords]uint64, SyndromeBits)

	for j := 0; j < N; j++ {
		alpha := priv.Support[j]
		val := gf4096.Inv(Eval(&priv.Poly, alpha))
		w, b := j>>6, uint(j&63)
		for i := 0; i < T; i++ {
			for k := 0; k < M; k++ {
				mat[i*M+k][w] |= uint64(val>>k&1) << b
			}
			val = gf4096.Mul(val, alpha)
		}
	}

	for i := 0; i < SyndromeBits; i++ {
		w, b := i>>6, uint(i&63)
		// force a 1 into the pivot position by folding in lower rows
		for k := i + 1; k < SyndromeBits; k++ {
			m := (mat[i][w] ^ mat[k][w]) >> b & 1
			m = -m
			for c := w; c < rowWords; c++ {
				mat[i][c] ^= mat[k][c] & m
			}
		}
		if mat[i][w]>>b&1 == 0 {
			return nil, false
		}
		for k := 0; k < SyndromeBits; k++ {
			if k == i {
				continue
			}
			m := mat[k][w] >> b & 1
			m = -m
			for c := w; c < rowWords; c++ {
				mat[k][c] ^= mat[i][c] & m
			}
		}
	}

	pub := &PublicKey{}
	for i := 0; i < SyndromeBits; i++ {
		copy(pub.Rows[i][:], mat[i][SyndromeBits/64:])
	}
	return pub, true
}
