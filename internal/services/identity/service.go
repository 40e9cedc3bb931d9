package identity

import (
	"encoding/json"
	"fmt"

	"peerdid/internal/crypto"
	"peerdid/internal/domain"
)

// MaxKeys caps the total number of keys in one peer DID.
const MaxKeys = 256

// Service creates peer DIDs and stores the matching secrets.
type Service struct {
	keys     domain.KeyGenerator
	ctor     domain.IdentifierConstructor
	resolver domain.DocumentResolver
	store    domain.SecretStore
}

// New returns an identity service. The store is written to only after a DID
// has been built, resolved and fully bound.
func New(
	keys domain.KeyGenerator,
	ctor domain.IdentifierConstructor,
	resolver domain.DocumentResolver,
	store domain.SecretStore,
) *Service {
	return &Service{keys: keys, ctor: ctor, resolver: resolver, store: store}
}

// CreatePeerDID mints a peer DID for req and persists one secret per key.
//
// The short numalgo 0 form is used iff req asks for exactly one
// authentication key, no agreement keys and no service; anything else is
// encoded with numalgo 2.
func (s *Service) CreatePeerDID(req domain.CreateRequest) (domain.DID, error) {
	if req.AuthKeys < 0 || req.AgreementKeys < 0 {
		return "", fmt.Errorf("%w: counts must be non-negative (auth=%d, agreement=%d)",
			ErrInvalidKeyCount, req.AuthKeys, req.AgreementKeys)
	}
	if req.AuthKeys > MaxKeys || req.AgreementKeys > MaxKeys || req.AuthKeys+req.AgreementKeys > MaxKeys {
		return "", fmt.Errorf("%w: at most %d keys per DID (auth=%d, agreement=%d)",
			ErrInvalidKeyCount, MaxKeys, req.AuthKeys, req.AgreementKeys)
	}
	if req.AuthKeys+req.AgreementKeys == 0 {
		return "", fmt.Errorf("%w: at least one key is required", ErrInvalidKeyCount)
	}

	auth, agreement, err := s.keys.Generate(req.AuthKeys, req.AgreementKeys)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrKeyGeneration, err)
	}

	did, err := s.construct(auth, agreement, req.Service)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrIdentifierConstruction, err)
	}

	doc, err := s.resolver.Resolve(did, domain.FormatJWK)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %v", ErrResolution, did, err)
	}

	authBindings, err := Bind(auth, doc.AuthenticationKIDs())
	if err != nil {
		return "", fmt.Errorf("authentication: %w", err)
	}
	agreementBindings, err := Bind(agreement, doc.AgreementKIDs())
	if err != nil {
		return "", fmt.Errorf("agreement: %w", err)
	}

	// Encode everything first so a marshal failure cannot leave a partial set.
	bindings := append(authBindings, agreementBindings...)
	secrets := make([]domain.Secret, 0, len(bindings))
	for _, b := range bindings {
		sec, err := secretFrom(b)
		if err != nil {
			return "", fmt.Errorf("%w: %s: %v", ErrStorage, b.KID, err)
		}
		secrets = append(secrets, sec)
	}
	for _, sec := range secrets {
		if err := s.store.AddSecret(sec); err != nil {
			return "", fmt.Errorf("%w: %s: %v", ErrStorage, sec.KID, err)
		}
	}
	return did, nil
}

func (s *Service) construct(auth, agreement domain.KeyList, svc *domain.Service) (domain.DID, error) {
	if len(auth) == 1 && len(agreement) == 0 && svc == nil {
		return s.ctor.CreateNumalgo0(auth.Ed25519Publics()[0])
	}
	return s.ctor.CreateNumalgo2(auth.Ed25519Publics(), agreement.X25519Publics(), svc)
}

// secretFrom renders a binding as a JsonWebKey2020 secret holding a private
// OKP JWK.
func secretFrom(b domain.KeyBinding) (domain.Secret, error) {
	key, err := crypto.PrivateJWK(b.KID, b.Key)
	if err != nil {
		return domain.Secret{}, err
	}
	raw, err := json.Marshal(key)
	if err != nil {
		return domain.Secret{}, err
	}
	return domain.Secret{
		KID:  b.KID,
		Type: domain.JSONWebKey2020,
		Material: domain.VerificationMaterial{
			Format: domain.FormatJWK,
			Value:  string(raw),
		},
	}, nil
}

// Compile-time assertion that Service implements domain.IdentityService.
var _ domain.IdentityService = (*Service)(nil)
