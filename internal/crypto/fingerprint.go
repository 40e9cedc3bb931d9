package crypto

import (
	"crypto/sha256"
	"encoding/hex"

	"peerdid/internal/domain"
)

// Fingerprint returns a short hex fingerprint of a public key.
//
// The curve name is hashed ahead of the key so an Ed25519 and an X25519 key
// with equal bytes still differ. The digest is truncated to 10 bytes.
func Fingerprint(purpose domain.Purpose, pub [32]byte) domain.Fingerprint {
	h := sha256.New()
	h.Write([]byte(purpose.Curve()))
	h.Write(pub[:])
	return domain.Fingerprint(hex.EncodeToString(h.Sum(nil)[:10]))
}
