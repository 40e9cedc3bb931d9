package peerdid

import (
	"fmt"
	"strings"

	"peerdid/internal/domain"
)

const (
	prefix         = "did:peer:"
	purposeAgree   = 'E'
	purposeVerify  = 'V'
	purposeService = 'S'
)

// Creator builds peer DIDs from public keys.
type Creator struct{}

// NewCreator returns a peer DID creator.
func NewCreator() *Creator { return &Creator{} }

// CreateNumalgo0 returns did:peer:0 for a single inception key.
func (c *Creator) CreateNumalgo0(inception domain.Ed25519Public) (domain.DID, error) {
	return domain.DID(prefix + "0" + encodeKey(codecEd25519Pub, inception)), nil
}

// CreateNumalgo2 returns did:peer:2 embedding every agreement key, then every
// authentication key, then the service.
func (c *Creator) CreateNumalgo2(
	authentication []domain.Ed25519Public,
	agreement []domain.X25519Public,
	service *domain.Service,
) (domain.DID, error) {
	if len(authentication)+len(agreement) == 0 {
		return "", ErrNoKeys
	}

	var b strings.Builder
	b.WriteString(prefix)
	b.WriteByte('2')
	for _, k := range agreement {
		b.WriteByte('.')
		b.WriteByte(purposeAgree)
		b.WriteString(encodeKey(codecX25519Pub, k))
	}
	for _, k := range authentication {
		b.WriteByte('.')
		b.WriteByte(purposeVerify)
		b.WriteString(encodeKey(codecEd25519Pub, k))
	}
	if service != nil {
		enc, err := encodeService(*service)
		if err != nil {
			return "", fmt.Errorf("encode service: %w", err)
		}
		b.WriteByte('.')
		b.WriteByte(purposeService)
		b.WriteString(enc)
	}
	return domain.DID(b.String()), nil
}

// Compile-time assertion that Creator implements domain.IdentifierConstructor.
var _ domain.IdentifierConstructor = (*Creator)(nil)
