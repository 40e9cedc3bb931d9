package crypto

import (
	"crypto/rand"
	"errors"
	"fmt"
	"io"

	"peerdid/internal/domain"
)

// ErrNegativeCount is returned when a key count is below zero.
var ErrNegativeCount = errors.New("key count must not be negative")

// KeyGenerator produces the key lists for one peer DID.
type KeyGenerator struct {
	rand io.Reader
}

// NewKeyGenerator returns a generator reading from r, or crypto/rand when r is nil.
func NewKeyGenerator(r io.Reader) *KeyGenerator {
	if r == nil {
		r = rand.Reader
	}
	return &KeyGenerator{rand: r}
}

// Generate returns exactly authCount Ed25519 authentication keys followed by
// exactly agreementCount X25519 agreement keys, each list in generation order.
// Authentication keys are always drawn first.
func (g *KeyGenerator) Generate(authCount, agreementCount int) (auth, agreement domain.KeyList, err error) {
	if authCount < 0 || agreementCount < 0 {
		return nil, nil, fmt.Errorf("%w: auth=%d agreement=%d", ErrNegativeCount, authCount, agreementCount)
	}

	// Lists are not pre-sized; counts are not bounded here.
	for i := 0; i < authCount; i++ {
		seed, pub, err := GenerateEd25519(g.rand)
		if err != nil {
			return nil, nil, fmt.Errorf("authentication key %d: %w", i, err)
		}
		auth = append(auth, domain.KeyPair{Purpose: domain.Authentication, Public: pub, Private: seed})
	}

	for i := 0; i < agreementCount; i++ {
		priv, pub, err := GenerateX25519(g.rand)
		if err != nil {
			return nil, nil, fmt.Errorf("agreement key %d: %w", i, err)
		}
		agreement = append(agreement, domain.KeyPair{Purpose: domain.Agreement, Public: pub, Private: priv})
	}
	return auth, agreement, nil
}

// Compile-time assertion that KeyGenerator implements domain.KeyGenerator.
var _ domain.KeyGenerator = (*KeyGenerator)(nil)
