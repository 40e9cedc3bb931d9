package store

import (
	"encoding/json"
	"fmt"

	"github.com/lestrrat-go/jwx/v2/jwk"

	"peerdid/internal/crypto"
	"peerdid/internal/domain"
)

// toRecord validates s and returns the key kept for it. Only JsonWebKey2020
// secrets holding a private OKP JWK whose own kid equals s.KID are accepted,
// so nothing about the secret is invented on the way in.
func toRecord(s domain.Secret) (jwk.Key, error) {
	if s.KID == "" {
		return nil, ErrMissingKID
	}
	if s.Type != domain.JSONWebKey2020 || s.Material.Format != domain.FormatJWK {
		return nil, fmt.Errorf("%w: %s: %s/%s", ErrUnsupportedFormat, s.KID, s.Type, s.Material.Format)
	}
	key, err := crypto.ParseJWK([]byte(s.Material.Value))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", s.KID, err)
	}
	if err := checkRecord(key); err != nil {
		return nil, fmt.Errorf("%s: %w", s.KID, err)
	}
	if kid := key.KeyID(); kid != s.KID.String() {
		return nil, fmt.Errorf("%w: secret %q, value %q", ErrKIDMismatch, s.KID, kid)
	}
	return key, nil
}

// checkRecord reports whether key is a usable private key with a kid.
func checkRecord(key jwk.Key) error {
	if key.KeyID() == "" {
		return ErrMissingKID
	}
	_, err := crypto.KeyPairFromJWK(key)
	return err
}

// fromRecord renders a stored key as a JsonWebKey2020 secret. The value is
// the canonical JSON encoding of the key, so a value inserted with other
// member order or spacing comes back normalised.
func fromRecord(key jwk.Key) (domain.Secret, error) {
	raw, err := json.Marshal(key)
	if err != nil {
		return domain.Secret{}, err
	}
	return domain.Secret{
		KID:  domain.KeyID(key.KeyID()),
		Type: domain.JSONWebKey2020,
		Material: domain.VerificationMaterial{
			Format: domain.FormatJWK,
			Value:  string(raw),
		},
	}, nil
}
