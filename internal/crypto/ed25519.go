package crypto

import (
	"crypto/ed25519"
	"io"

	"peerdid/internal/domain"
)

// GenerateEd25519 returns a new Ed25519 key as its seed and public key.
// The seed is read from rand directly so every byte of key material comes
// from the caller's source.
func GenerateEd25519(rand io.Reader) (seed domain.Ed25519Seed, pub domain.Ed25519Public, err error) {
	if _, err = io.ReadFull(rand, seed[:]); err != nil {
		return seed, pub, err
	}
	return seed, Ed25519PublicFromSeed(seed), nil
}

// Ed25519PublicFromSeed recomputes the public key for seed.
func Ed25519PublicFromSeed(seed domain.Ed25519Seed) (pub domain.Ed25519Public) {
	sk := ed25519.NewKeyFromSeed(seed[:])
	copy(pub[:], sk.Public().(ed25519.PublicKey))
	return pub
}
