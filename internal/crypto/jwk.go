package crypto

import (
	"crypto/ed25519"
	"errors"
	"fmt"

	"github.com/lestrrat-go/jwx/v2/jwk"
	"github.com/lestrrat-go/jwx/v2/x25519"

	"peerdid/internal/domain"
)

// ErrInvalidJWK is returned for JWKs that are not Ed25519 or X25519 OKP keys.
var ErrInvalidJWK = errors.New("invalid OKP JWK")

// PublicJWK returns the public OKP JWK of a key of the given purpose.
func PublicJWK(purpose domain.Purpose, pub [32]byte) (jwk.Key, error) {
	raw := make([]byte, len(pub))
	copy(raw, pub[:])
	switch purpose {
	case domain.Authentication:
		return jwk.FromRaw(ed25519.PublicKey(raw))
	case domain.Agreement:
		return jwk.FromRaw(x25519.PublicKey(raw))
	default:
		return nil, fmt.Errorf("%w: %s", ErrInvalidJWK, purpose)
	}
}

// PrivateJWK returns kp as a private OKP JWK carrying kid.
func PrivateJWK(kid domain.KeyID, kp domain.KeyPair) (jwk.Key, error) {
	var raw any
	switch kp.Purpose {
	case domain.Authentication:
		raw = ed25519.NewKeyFromSeed(kp.Private[:])
	case domain.Agreement:
		priv, err := x25519.NewKeyFromSeed(kp.Private[:])
		if err != nil {
			return nil, err
		}
		raw = priv
	default:
		return nil, fmt.Errorf("%w: %s", ErrInvalidJWK, kp.Purpose)
	}

	key, err := jwk.FromRaw(raw)
	if err != nil {
		return nil, err
	}
	if err := key.Set(jwk.KeyIDKey, kid.String()); err != nil {
		return nil, err
	}
	return key, nil
}

// ParseJWK parses a single JWK.
func ParseJWK(b []byte) (jwk.Key, error) {
	key, err := jwk.ParseKey(b)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidJWK, err)
	}
	return key, nil
}

// KeyPairFromJWK decodes a private OKP JWK back into a key pair.
func KeyPairFromJWK(key jwk.Key) (domain.KeyPair, error) {
	var kp domain.KeyPair
	var raw any
	if err := key.Raw(&raw); err != nil {
		return kp, fmt.Errorf("%w: %v", ErrInvalidJWK, err)
	}
	switch k := raw.(type) {
	case ed25519.PrivateKey:
		kp.Purpose = domain.Authentication
		copy(kp.Private[:], k.Seed())
		copy(kp.Public[:], k.Public().(ed25519.PublicKey))
	case x25519.PrivateKey:
		kp.Purpose = domain.Agreement
		copy(kp.Private[:], k.Seed())
		copy(kp.Public[:], k.Public().(x25519.PublicKey))
	default:
		return kp, fmt.Errorf("%w: not a private Ed25519 or X25519 key (%T)", ErrInvalidJWK, raw)
	}
	return kp, nil
}

// PublicFromJWK returns the purpose and public key of an OKP JWK, private
// or public.
func PublicFromJWK(key jwk.Key) (domain.Purpose, [32]byte, error) {
	var out [32]byte
	pk, err := key.PublicKey()
	if err != nil {
		return 0, out, fmt.Errorf("%w: %v", ErrInvalidJWK, err)
	}
	var raw any
	if err := pk.Raw(&raw); err != nil {
		return 0, out, fmt.Errorf("%w: %v", ErrInvalidJWK, err)
	}
	switch k := raw.(type) {
	case ed25519.PublicKey:
		copy(out[:], k)
		return domain.Authentication, out, nil
	case x25519.PublicKey:
		copy(out[:], k)
		return domain.Agreement, out, nil
	default:
		return 0, out, fmt.Errorf("%w: not an Ed25519 or X25519 key (%T)", ErrInvalidJWK, raw)
	}
}
