// Package kem provides a generic interface for Key Encapsulation Mechanisms.
package kem

import (
	"io"
)

const (
	SecretSize = 32
	SeedSize   = 32
)

type (
	// Seed is used to deterministically derive ephemeral state during encapsulation.
	Seed = [SeedSize]byte
	// Secret256 is a 256 bit shared secret.
	Secret256 = [SecretSize]byte
)

type Scheme256[Private, Public any] interface {
	// Generate creates a new private/public key pair using entropy from rng.
	Generate(rng io.Reader) (Public, Private, error)
	// DerivePublic returns the public key corresponding to the private key
	DerivePublic(*Private) Public

	// Encapsulate writes a shared secret to ss, and a ciphertext to ct.
	// The ciphertext will be decryptable by pub.
	//
	// The shared secret written to ss will be uniformly random.
	// If ct is not >= CiphertextSize(), then Encapsulate will panic.
	Encapsulate(ss *Secret256, ct []byte, pub *Public, seed *Seed) error
	// Decapsulate uses priv to decrypt a ciphertext from ct, and writes the resulting shared secret to ss.
	// The shared secret written to ss will be uniformly random.
	// If ct is not == CiphertextSize(), then Decapsulate should return an error.
	Decapsulate(ss *Secret256, priv *Private, ct []byte) error

	MarshalPublic(dst []byte, x *Public)
	ParsePublic([]byte) (Public, error)
	MarshalPrivate(dst []byte, x *Private)
	ParsePrivate([]byte) (Private, error)

	PublicKeySize() int
	PrivateKeySize() int
	CiphertextSize() int
}
