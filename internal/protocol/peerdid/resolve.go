package peerdid

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"github.com/mr-tron/base58/base58"

	"peerdid/internal/crypto"
	"peerdid/internal/domain"
)

var peerDIDPattern = regexp.MustCompile(
	`^did:peer:(([01](z)([1-9a-km-zA-HJ-NP-Z]{46,47}))` +
		`|(2((\.[AEVID](z)([1-9a-km-zA-HJ-NP-Z]{46,47}))+(\.(S)[0-9a-zA-Z_=-]+)*)))$`,
)

// IsPeerDID reports whether s matches the peer DID grammar for numalgo 0-2.
func IsPeerDID(s string) bool { return peerDIDPattern.MatchString(s) }

// Resolver derives DID documents from peer DIDs. It never performs I/O.
type Resolver struct{}

// NewResolver returns a peer DID resolver.
func NewResolver() *Resolver { return &Resolver{} }

// Resolve decodes did and renders its keys in format.
func (r *Resolver) Resolve(did domain.DID, format domain.MaterialFormat) (domain.Document, error) {
	if _, err := domain.ParseMaterialFormat(string(format)); err != nil {
		return domain.Document{}, err
	}
	s := did.String()
	if !IsPeerDID(s) {
		return domain.Document{}, fmt.Errorf("%w: %q", ErrMalformedPeerDID, s)
	}

	switch s[len(prefix)] {
	case '0':
		return resolveNumalgo0(did, format)
	case '2':
		return resolveNumalgo2(did, format)
	default:
		return domain.Document{}, fmt.Errorf("%w: numalgo %c", ErrUnsupportedNumalgo, s[len(prefix)])
	}
}

func resolveNumalgo0(did domain.DID, format domain.MaterialFormat) (domain.Document, error) {
	encoded := did.String()[len(prefix)+1:]
	key, err := decodeKey(encoded, codecEd25519Pub)
	if err != nil {
		return domain.Document{}, fmt.Errorf("%w: %v", ErrMalformedPeerDID, err)
	}
	vm, err := verificationMethod(did, encoded, domain.Authentication, key, format)
	if err != nil {
		return domain.Document{}, err
	}
	return domain.Document{
		ID:             did,
		Authentication: []domain.VerificationMethod{vm},
	}, nil
}

func resolveNumalgo2(did domain.DID, format domain.MaterialFormat) (domain.Document, error) {
	doc := domain.Document{ID: did}
	// Element 0 is "did:peer:2"; the rest are purpose-prefixed.
	for _, element := range strings.Split(did.String(), ".")[1:] {
		purpose, value := element[0], element[1:]
		switch purpose {
		case purposeAgree, purposeVerify:
			p := domain.Authentication
			if purpose == purposeAgree {
				p = domain.Agreement
			}
			key, err := decodeKey(value, codecFor(p))
			if err != nil {
				return domain.Document{}, fmt.Errorf("%w: element %c: %v", ErrMalformedPeerDID, purpose, err)
			}
			vm, err := verificationMethod(did, value, p, key, format)
			if err != nil {
				return domain.Document{}, err
			}
			if p == domain.Agreement {
				doc.KeyAgreement = append(doc.KeyAgreement, vm)
			} else {
				doc.Authentication = append(doc.Authentication, vm)
			}
		case purposeService:
			services, err := decodeServices(did, value, len(doc.Services))
			if err != nil {
				return domain.Document{}, fmt.Errorf("%w: %v", ErrMalformedPeerDID, err)
			}
			doc.Services = append(doc.Services, services...)
		default:
			return domain.Document{}, fmt.Errorf("%w: %c", ErrUnsupportedPurpose, purpose)
		}
	}
	return doc, nil
}

func verificationMethod(
	did domain.DID,
	encoded string,
	purpose domain.Purpose,
	key [32]byte,
	format domain.MaterialFormat,
) (domain.VerificationMethod, error) {
	vm := domain.VerificationMethod{
		ID:         domain.KeyID(did.String() + "#" + strings.TrimPrefix(encoded, multibaseBase58BTC)),
		Controller: did,
		Material:   domain.VerificationMaterial{Format: format},
	}
	switch format {
	case domain.FormatJWK:
		pub, err := crypto.PublicJWK(purpose, key)
		if err != nil {
			return vm, err
		}
		raw, err := json.Marshal(pub)
		if err != nil {
			return vm, err
		}
		vm.Type = domain.JSONWebKey2020
		vm.Material.Value = string(raw)
	case domain.FormatBase58:
		vm.Type = domain.Ed25519VerificationKey2018
		if purpose == domain.Agreement {
			vm.Type = domain.X25519KeyAgreementKey2019
		}
		vm.Material.Value = base58.Encode(key[:])
	case domain.FormatMultibase:
		vm.Type = domain.Ed25519VerificationKey2020
		if purpose == domain.Agreement {
			vm.Type = domain.X25519KeyAgreementKey2020
		}
		vm.Material.Value = encodeKey(codecFor(purpose), key)
	}
	return vm, nil
}

// Compile-time assertion that Resolver implements domain.DocumentResolver.
var _ domain.DocumentResolver = (*Resolver)(nil)
