package mceliece

import (
	"encoding/binary"
	"fmt"

	"github.com/brendoncarroll/go-mceliece/gf4096"
	"github.com/brendoncarroll/go-mceliece/goppa"
)

const (
	// PublicKeySize is the marshaled length of a public key:
	// (n-k) rows of k bits.
	PublicKeySize = goppa.SyndromeBits * goppa.K / 8
	// PrivateKeySize is the marshaled length of a private key:
	// the Goppa polynomial and the support packed 12 bits per element,
	// followed by the rejection secret.
	PrivateKeySize = goppa.T*goppa.M/8 + goppa.N*goppa.M/8 + RejectSize

	pkRowBytes   = goppa.K / 8
	polyBytes    = goppa.T * goppa.M / 8
	supportBytes = goppa.N * goppa.M / 8
)

// MarshalPublic writes pub to dst, row by row in little-endian bit
// order. If dst is not >= PublicKeySize, MarshalPublic panics.
func MarshalPublic(dst []byte, pub *PublicKey) {
	if len(dst) < PublicKeySize {
		panic(fmt.Sprintf("len(dst) < %d", PublicKeySize))
	}
	for r := 0; r < goppa.SyndromeBits; r++ {
		packWords(dst[r*pkRowBytes:(r+1)*pkRowBytes], pub.Rows[r][:])
	}
}

// ParsePublic reads a public key written by MarshalPublic.
func ParsePublic(x []byte) (*PublicKey, error) {
	if len(x) != PublicKeySize {
		return nil, fmt.Errorf("mceliece: wrong size for public key: %d", len(x))
	}
	pub := &PublicKey{}
	for r := 0; r < goppa.SyndromeBits; r++ {
		unpackWordsInto(pub.Rows[r][:], x[r*pkRowBytes:(r+1)*pkRowBytes])
	}
	return pub, nil
}

// MarshalPrivate writes priv to dst. If dst is not >= PrivateKeySize,
// MarshalPrivate panics.
func MarshalPrivate(dst []byte, priv *PrivateKey) {
	if len(dst) < PrivateKeySize {
		panic(fmt.Sprintf("len(dst) < %d", PrivateKeySize))
	}
	pack12(dst[:polyBytes], priv.Goppa.Poly[:])
	pack12(dst[polyBytes:polyBytes+supportBytes], priv.Goppa.Support[:])
	copy(dst[polyBytes+supportBytes:], priv.Reject[:])
}

// ParsePrivate reads a private key written by MarshalPrivate.
func ParsePrivate(x []byte) (*PrivateKey, error) {
	if len(x) != PrivateKeySize {
		return nil, fmt.Errorf("mceliece: wrong size for private key: %d", len(x))
	}
	priv := &PrivateKey{}
	unpack12(priv.Goppa.Poly[:], x[:polyBytes])
	unpack12(priv.Goppa.Support[:], x[polyBytes:polyBytes+supportBytes])
	copy(priv.Reject[:], x[polyBytes+supportBytes:])
	return priv, nil
}

// pack12 packs field elements 12 bits apiece, two elements per 3 bytes.
// len(src) must be even.
func pack12(dst []byte, src []gf4096.Elem) {
	for i := 0; i < len(src); i += 2 {
		a, b := src[i], src[i+1]
		dst[i/2*3] = byte(a)
		dst[i/2*3+1] = byte(a>>8) | byte(b&0xf)<<4
		dst[i/2*3+2] = byte(b >> 4)
	}
}

func unpack12(dst []gf4096.Elem, src []byte) {
	for i := 0; i < len(dst); i += 2 {
		b0, b1, b2 := src[i/2*3], src[i/2*3+1], src[i/2*3+2]
		dst[i] = gf4096.Elem(b0) | gf4096.Elem(b1&0xf)<<8
		dst[i+1] = gf4096.Elem(b1>>4) | gf4096.Elem(b2)<<4
	}
}

// packWords writes the low len(dst) bytes of words in little-endian order.
func packWords(dst []byte, words []uint64) {
	i := 0
	for ; i < len(dst)/8; i++ {
		binary.LittleEndian.PutUint64(dst[8*i:], words[i])
	}
	if rem := dst[8*i:]; len(rem) > 0 {
		var tail [8]byte
		binary.LittleEndian.PutUint64(tail[:], words[i])
		copy(rem, tail[:])
	}
}

func unpackWordsInto(dst []uint64, src []byte) {
	i := 0
	for ; i < len(src)/8; i++ {
		dst[i] = binary.LittleEndian.Uint64(src[8*i:])
	}
	if rem := src[8*i:]; len(rem) > 0 {
		var tail [8]byte
		copy(tail[:], rem)
		dst[i] = binary.LittleEndian.Uint64(tail[:])
	}
}
