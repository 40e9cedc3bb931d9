package crypto

import (
	"io"

	"golang.org/x/crypto/curve25519"

	"peerdid/internal/domain"
)

// GenerateX25519 returns a fresh Curve25519 key pair.
// The private key is clamped per RFC 7748.
func GenerateX25519(rand io.Reader) (priv domain.X25519Private, pub domain.X25519Public, err error) {
	if _, err = io.ReadFull(rand, priv[:]); err != nil {
		return
	}
	clamp(&priv)
	pub, err = X25519PublicFromPrivate(priv)
	return
}

// X25519PublicFromPrivate computes the public key for priv.
func X25519PublicFromPrivate(priv domain.X25519Private) (pub domain.X25519Public, err error) {
	pb, err := curve25519.X25519(priv.Slice(), curve25519.Basepoint)
	if err != nil {
		return pub, err
	}
	copy(pub[:], pb)
	return pub, nil
}

func clamp(k *domain.X25519Private) {
	kb := k[:]
	kb[0] &= 248
	kb[31] &= 127
	kb[31] |= 64
}
