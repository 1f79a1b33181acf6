// Package mceliece implements a code-based Key Encapsulation Mechanism
// over binary Goppa codes, with the parameter set m=12, n=3488, t=64
// (public key 261120 bytes, ciphertext 96 bytes, shared secret 32 bytes).
//
// Decapsulation uses implicit rejection: it never reports failure for a
// malformed ciphertext, and instead derives a secret from a per-key
// rejection value, so an attacker cannot build a decryption oracle out
// of the success/failure signal. Both paths hash the same number of
// bytes and the decoder itself is branchless.
package mceliece
