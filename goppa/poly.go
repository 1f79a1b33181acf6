package goppa

import (
	"github.com/brendoncarroll/go-mceliece/gf4096"
)

// Eval evaluates the monic polynomial g at x by Horner's rule,
// starting from the implied leading coefficient.
func Eval(g *Poly, x gf4096.Elem) gf4096.Elem {
	acc := gf4096.Elem(1)
	for i := T - 1; i >= 0; i-- {
		acc = gf4096.Add(gf4096.Mul(acc, x), g[i])
	}
	return acc
}

// evalAt evaluates the polynomial with explicit coefficients c
// (c[len(c)-1] is the leading coefficient) at x.
func evalAt(c []gf4096.Elem, x gf4096.Elem) gf4096.Elem {
	acc := c[len(c)-1]
	for i := len(c) - 2; i >= 0; i-- {
		acc = gf4096.Add(gf4096.Mul(acc, x), c[i])
	}
	return acc
}

// residue is an element of GF(2^12)[x]/(g), i.e. a polynomial of
// degree < T.
type residue [T]gf4096.Elem

// sqrMod squares a modulo g. In characteristic 2 the square of a
// polynomial has no cross terms, so the coefficients square and
// spread to even positions before reduction.
func sqrMod(a *residue, g *Poly) residue {
	var full [2*T - 1]gf4096.Elem
	for i := 0; i < T; i++ {
		full[2*i] = gf4096.Sqr(a[i])
	}
	// reduce by x^T = g[T-1] x^(T-1) + ... + g[0]
	for k := 2*T - 2; k >= T; k-- {
		c := full[k]
		full[k] = 0
		for i := 0; i < T; i++ {
			full[k-T+i] ^= gf4096.Mul(c, g[i])
		}
	}
	var out residue
	copy(out[:], full[:T])
	return out
}

// gcdWithGIsOne reports whether gcd(a, g) is a nonzero constant,
// where a has degree < T. Variable-time Euclid; only used during key
// generation on candidate polynomials.
func gcdWithGIsOne(a *residue, g *Poly) bool {
	u := make([]gf4096.Elem, T+1)
	copy(u, g[:])
	u[T] = 1
	v := make([]gf4096.Elem, T+1)
	copy(v, a[:])

	for {
		du, dv := polyDeg(u), polyDeg(v)
		if du < dv {
			u, v = v, u
			du, dv = dv, du
		}
		// only u is reduced, so the loop ends with v, not u, at zero
		if dv < 0 {
			return du == 0
		}
		f := gf4096.Div(u[du], v[dv])
		for i := 0; i <= dv; i++ {
			u[du-dv+i] ^= gf4096.Mul(f, v[i])
		}
	}
}

func polyDeg(p []gf4096.Elem) int {
	for i := len(p) - 1; i >= 0; i-- {
		if p[i] != 0 {
			return i
		}
	}
	return -1
}

// irreducible reports whether the monic degree-T polynomial g is
// irreducible over GF(2^12), by Rabin's test. With q = 2^12 and
// T = 64 = 2^6, g is irreducible iff
//
//	x^(q^T) = x (mod g)  and  gcd(x^(q^(T/2)) - x, g) = 1.
//
// The powers are reached by repeated squaring: q^(T/2) = 2^(M*T/2).
func irreducible(g *Poly) bool {
	var u residue
	u[1] = 1 // u = x
	for i := 0; i < M*T/2; i++ {
		u = sqrMod(&u, g)
	}
	half := u
	half[1] ^= 1 // x^(q^(T/2)) - x
	if !gcdWithGIsOne(&half, g) {
		return false
	}
	for i := 0; i < M*T/2; i++ {
		u = sqrMod(&u, g)
	}
	u[1] ^= 1
	for i := 0; i < T; i++ {
		if u[i] != 0 {
			return false
		}
	}
	return true
}
