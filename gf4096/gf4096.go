// Package gf4096 implements arithmetic in GF(2^12) with modulus z^12 + z^3 + 1.
//
// Field elements are derived from secret key material, so every operation
// here is branchless and free of secret-dependent table lookups.
package gf4096

// Bits is the degree of the field extension.
const Bits = 12

// Order is the number of elements in the field.
const Order = 1 << Bits

// Mask selects the low 12 bits of a word.
const Mask = Order - 1

// Elem is an element of GF(2^12), stored in the low 12 bits.
type Elem uint16

// Add returns a + b.  Addition in characteristic 2 is XOR.
func Add(a, b Elem) Elem {
	return a ^ b
}

// Mul returns a * b.
// Carryless multiplication by shift-and-add, then reduction by
// z^12 = z^3 + 1.  The product fits in 23 bits.
func Mul(a, b Elem) Elem {
	var acc uint64
	x, y := uint64(a), uint64(b)
	for i := 0; i < Bits; i++ {
		acc ^= x * (y & (1 << i))
	}

	t := acc & 0x7fc000
	acc ^= t >> 9
	acc ^= t >> 12
	t = acc & 0x3000
	acc ^= t >> 9
	acc ^= t >> 12

	return Elem(acc & Mask)
}

// Sqr returns a * a.
func Sqr(a Elem) Elem {
	return Mul(a, a)
}

// Inv returns the multiplicative inverse of a, or 0 if a is 0.
// Computed as a^(2^12 - 2) via a fixed addition chain, so the
// running time does not depend on a.
func Inv(a Elem) Elem {
	out := Sqr(a)            // a^2
	t11 := Mul(out, a)       // a^3      = a^(11b)
	out = Sqr(Sqr(t11))      // a^12
	t1111 := Mul(out, t11)   // a^15     = a^(1111b)
	out = Sqr(Sqr(Sqr(Sqr(t1111)))) // a^240
	out = Mul(out, t1111)    // a^255
	out = Sqr(Sqr(out))      // a^1020
	out = Mul(out, t11)      // a^1023
	out = Sqr(out)           // a^2046
	out = Mul(out, a)        // a^2047
	return Sqr(out)          // a^4094 = a^-1
}

// Div returns num / den.
func Div(num, den Elem) Elem {
	return Mul(num, Inv(den))
}

// IsZeroMask returns an all-ones 12-bit mask if a == 0, and 0 otherwise,
// without branching.
func IsZeroMask(a Elem) Elem {
	t := uint32(a)
	t -= 1
	t >>= 19
	return Elem(t) & Mask
}

// NonZeroMask returns an all-ones 16-bit mask if a != 0, and 0 otherwise,
// without branching.
func NonZeroMask(a Elem) uint16 {
	t := uint16(a)
	t -= 1
	t >>= 15
	return t - 1
}
