// Package kem_mceliece exposes the McEliece KEM through kem.Scheme256.
package kem_mceliece

import (
	"io"

	"github.com/pkg/errors"

	mceliece "github.com/brendoncarroll/go-mceliece"
	"github.com/brendoncarroll/go-mceliece/kem"
	"github.com/brendoncarroll/go-mceliece/xof"
	"github.com/brendoncarroll/go-mceliece/xof/xof_sha3"
)

type (
	PrivateKey348864 = mceliece.PrivateKey
	PublicKey348864  = mceliece.PublicKey
)

const (
	PrivateKey348864Size = mceliece.PrivateKeySize
	PublicKey348864Size  = mceliece.PublicKeySize
	Ciphertext348864Size = mceliece.CiphertextSize
)

var _ kem.Scheme256[PrivateKey348864, PublicKey348864] = Scheme348864{}

type Scheme348864 struct{}

func New348864() Scheme348864 {
	return Scheme348864{}
}

func (s Scheme348864) Generate(rng io.Reader) (PublicKey348864, PrivateKey348864, error) {
	pub, priv, err := mceliece.Generate(rng)
	if err != nil {
		return PublicKey348864{}, PrivateKey348864{}, err
	}
	return *pub, *priv, nil
}

// DerivePublic rebuilds the systematic matrix from the polynomial and
// support. It panics if priv did not come from Generate.
func (s Scheme348864) DerivePublic(priv *PrivateKey348864) PublicKey348864 {
	pub, err := mceliece.DerivePublic(priv)
	if err != nil {
		panic(err)
	}
	return *pub
}

func (s Scheme348864) Encapsulate(ss *kem.Secret256, ctext []byte, pk *PublicKey348864, seed *kem.Seed) error {
	rng := xof.NewRand256[xof_sha3.SHAKE256State](xof_sha3.SHAKE256{}, seed)
	return mceliece.Encapsulate(ss, ctext, pk, rng)
}

func (s Scheme348864) Decapsulate(ss *kem.Secret256, priv *PrivateKey348864, ctext []byte) error {
	return mceliece.Decapsulate(ss, priv, ctext)
}

func (s Scheme348864) MarshalPublic(dst []byte, x *PublicKey348864) {
	mceliece.MarshalPublic(dst, x)
}

func (s Scheme348864) ParsePublic(x []byte) (PublicKey348864, error) {
	pub, err := mceliece.ParsePublic(x)
	if err != nil {
		return PublicKey348864{}, errors.Wrap(err, "kem_mceliece")
	}
	return *pub, nil
}

func (s Scheme348864) MarshalPrivate(dst []byte, priv *PrivateKey348864) {
	mceliece.MarshalPrivate(dst, priv)
}

func (s Scheme348864) ParsePrivate(x []byte) (PrivateKey348864, error) {
	priv, err := mceliece.ParsePrivate(x)
	if err != nil {
		return PrivateKey348864{}, errors.Wrap(err, "kem_mceliece")
	}
	return *priv, nil
}

func (s Scheme348864) PublicKeySize() int {
	return PublicKey348864Size
}

func (s Scheme348864) PrivateKeySize() int {
	return PrivateKey348864Size
}

func (s Scheme348864) CiphertextSize() int {
	return Ciphertext348864Size
}
