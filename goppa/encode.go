package goppa

import (
	"encoding/binary"
	"math/bits"
)

// Encode computes the syndrome ct = H·e for the systematic parity-check
// matrix H = [I | T]: the first n-k bits of e, plus the product of T with
// the remaining k bits. e is a packed length-n bit vector.
func Encode(ct *[SyndromeBytes]byte, pub *PublicKey, e *[NBytes]byte) {
	var ew [pkWords]uint64
	unpackWords(ew[:], e[SyndromeBytes:])

	copy(ct[:], e[:SyndromeBytes])
	for r := 0; r < SyndromeBits; r++ {
		var acc uint64
		for w := 0; w < pkWords; w++ {
			acc ^= pub.Rows[r][w] & ew[w]
		}
		bit := byte(bits.OnesCount64(acc) & 1)
		ct[r>>3] ^= bit << (r & 7)
	}
}

// unpackWords loads packed little-endian bits into 64-bit words.
// len(src) need not be a multiple of 8; the tail is zero-extended.
func unpackWords(dst []uint64, src []byte) {
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
