package goppa

import (
	"github.com/brendoncarroll/go-mceliece/gf4096"
)

// Decode recovers from ct the unique error vector e of weight T with
// H·e = ct, if one exists. It returns 0xFF on success and 0x00 on
// failure; e always holds the result of the root scan, which the caller
// must mask by the return value. Every loop below runs for a fixed
// number of iterations regardless of the input, so success and failure
// are not distinguishable by timing.
func Decode(e *[NBytes]byte, priv *PrivateKey, ct *[SyndromeBytes]byte) byte {
	// received word v = ct || 0; e differs from v by a codeword
	var v [NBytes]byte
	copy(v[:], ct[:])

	var s [2 * T]gf4096.Elem
	syndrome(&s, priv, &v)

	sigma := solveKeyEquation(&s)

	// error positions are the support points where the locator vanishes
	for i := range e {
		e[i] = 0
	}
	var weight uint16
	for i := 0; i < N; i++ {
		val := evalAt(sigma[:], priv.Support[i])
		m := gf4096.IsZeroMask(val) & 1
		e[i>>3] |= byte(m) << (i & 7)
		weight += uint16(m)
	}

	// decoding succeeded iff e has weight T and the same syndrome as v,
	// i.e. e+v is a codeword and H·e = ct
	var s2 [2 * T]gf4096.Elem
	syndrome(&s2, priv, e)
	diff := weight ^ T
	for j := 0; j < 2*T; j++ {
		diff |= uint16(s[j] ^ s2[j])
	}
	return eqZeroMask8(diff)
}

// syndrome computes the 2T-coefficient syndrome of the packed bit
// vector v with respect to g^2:
//
//	s_j = sum over set bits i of alpha_i^j / g(alpha_i)^2
//
// A Goppa code with squarefree g equals the code of g^2, which is what
// lets a 2T-coefficient key equation correct T errors.
func syndrome(out *[2 * T]gf4096.Elem, priv *PrivateKey, v *[NBytes]byte) {
	for j := range out {
		out[j] = 0
	}
	for i := 0; i < N; i++ {
		bit := uint16(v[i>>3]>>(i&7)) & 1
		cmask := gf4096.Elem(-bit)
		alpha := priv.Support[i]
		ge := Eval(&priv.Poly, alpha)
		r := gf4096.Inv(gf4096.Mul(ge, ge))
		for j := 0; j < 2*T; j++ {
			out[j] ^= r & cmask
			r = gf4096.Mul(r, alpha)
		}
	}
}

// solveKeyEquation runs Berlekamp-Massey over the syndrome for a fixed
// 2T iterations, selecting state updates by mask instead of branching,
// and returns the error-locator polynomial (degree <= T, leading
// coefficient at index T).
func solveKeyEquation(s *[2 * T]gf4096.Elem) [T + 1]gf4096.Elem {
	var c, b, tmp [T + 1]gf4096.Elem
	c[0] = 1
	b[1] = 1
	bc := gf4096.Elem(1)
	var l uint16

	for n := uint16(0); n < 2*T; n++ {
		var d gf4096.Elem
		top := int(n)
		if top > T {
			top = T
		}
		for i := 0; i <= top; i++ {
			d ^= gf4096.Mul(c[i], s[int(n)-i])
		}

		mne := gf4096.NonZeroMask(d) // all ones iff d != 0
		mle := n - 2*l
		mle >>= 15
		mle -= 1 // all ones iff n >= 2l
		mle &= mne

		copy(tmp[:], c[:])
		f := gf4096.Div(d, bc)
		for i := 0; i <= T; i++ {
			c[i] ^= gf4096.Mul(f, b[i]) & gf4096.Elem(mne)
		}
		l = l&^mle | (n+1-l)&mle
		for i := 0; i <= T; i++ {
			b[i] = b[i]&gf4096.Elem(^mle) | tmp[i]&gf4096.Elem(mle)
		}
		bc = bc&gf4096.Elem(^mle) | d&gf4096.Elem(mle)
		copy(b[1:], b[:T])
		b[0] = 0
	}

	// reverse so that roots land on the support points themselves
	var sigma [T + 1]gf4096.Elem
	for i := 0; i <= T; i++ {
		sigma[i] = c[T-i]
	}
	return sigma
}

// eqZeroMask8 returns 0xFF if x == 0 and 0x00 otherwise, without
// branching.
func eqZeroMask8(x uint16) byte {
	t := uint32(x)
	t -= 1
	t >>= 31
	return byte(-t)
}
