package types

import (
	"encoding/json"
	"fmt"
	"strings"
)

// MaterialFormat selects how key material is encoded in documents and secrets.
type MaterialFormat string

const (
	FormatJWK       MaterialFormat = "jwk"
	FormatBase58    MaterialFormat = "base58"
	FormatMultibase MaterialFormat = "multibase"
)

// ParseMaterialFormat accepts a case-insensitive format name.
func ParseMaterialFormat(s string) (MaterialFormat, error) {
	switch f := MaterialFormat(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatJWK, FormatBase58, FormatMultibase:
		return f, nil
	default:
		return "", fmt.Errorf("unknown material format %q (want jwk, base58 or multibase)", s)
	}
}

// VerificationMethodType is the "type" of a verification method or secret.
type VerificationMethodType string

const (
	JSONWebKey2020             VerificationMethodType = "JsonWebKey2020"
	Ed25519VerificationKey2018 VerificationMethodType = "Ed25519VerificationKey2018"
	X25519KeyAgreementKey2019  VerificationMethodType = "X25519KeyAgreementKey2019"
	Ed25519VerificationKey2020 VerificationMethodType = "Ed25519VerificationKey2020"
	X25519KeyAgreementKey2020  VerificationMethodType = "X25519KeyAgreementKey2020"
)

// VerificationMaterial is encoded key material. For FormatJWK, Value holds
// the JWK as JSON text.
type VerificationMaterial struct {
	Format MaterialFormat `json:"format"`
	Value  string         `json:"value"`
}

// VerificationMethod is one public key listed in a DID document.
type VerificationMethod struct {
	ID         KeyID
	Type       VerificationMethodType
	Controller DID
	Material   VerificationMaterial
}

// MarshalJSON renders the method with the field name its format calls for.
func (m VerificationMethod) MarshalJSON() ([]byte, error) {
	aux := struct {
		ID                 KeyID                  `json:"id"`
		Type               VerificationMethodType `json:"type"`
		Controller         DID                    `json:"controller"`
		PublicKeyJwk       json.RawMessage        `json:"publicKeyJwk,omitempty"`
		PublicKeyBase58    string                 `json:"publicKeyBase58,omitempty"`
		PublicKeyMultibase string                 `json:"publicKeyMultibase,omitempty"`
	}{
		ID:         m.ID,
		Type:       m.Type,
		Controller: m.Controller,
	}
	switch m.Material.Format {
	case FormatJWK:
		aux.PublicKeyJwk = json.RawMessage(m.Material.Value)
	case FormatBase58:
		aux.PublicKeyBase58 = m.Material.Value
	case FormatMultibase:
		aux.PublicKeyMultibase = m.Material.Value
	default:
		return nil, fmt.Errorf("verification method %s: unknown material format %q", m.ID, m.Material.Format)
	}
	return json.Marshal(aux)
}

// Service is a DID document service entry. As a creation input ID is empty.
type Service struct {
	ID              string   `json:"id,omitempty"`
	Type            string   `json:"type"`
	ServiceEndpoint string   `json:"serviceEndpoint"`
	RoutingKeys     []string `json:"routingKeys,omitempty"`
	Accept          []string `json:"accept,omitempty"`
}

// Document is a resolved DID document. Both key lists keep the order in
// which the keys are embedded in the DID.
type Document struct {
	ID             DID
	Authentication []VerificationMethod
	KeyAgreement   []VerificationMethod
	Services       []Service
}

// AuthenticationKIDs returns the authentication key ids in document order.
func (d Document) AuthenticationKIDs() []KeyID { return kids(d.Authentication) }

// AgreementKIDs returns the key agreement key ids in document order.
func (d Document) AgreementKIDs() []KeyID { return kids(d.KeyAgreement) }

// MarshalJSON emits both key arrays even when empty; "service" only when set.
func (d Document) MarshalJSON() ([]byte, error) {
	aux := struct {
		ID             DID                  `json:"id"`
		Authentication []VerificationMethod `json:"authentication"`
		KeyAgreement   []VerificationMethod `json:"keyAgreement"`
		Service        []Service            `json:"service,omitempty"`
	}{
		ID:             d.ID,
		Authentication: d.Authentication,
		KeyAgreement:   d.KeyAgreement,
		Service:        d.Services,
	}
	if aux.Authentication == nil {
		aux.Authentication = []VerificationMethod{}
	}
	if aux.KeyAgreement == nil {
		aux.KeyAgreement = []VerificationMethod{}
	}
	return json.Marshal(aux)
}

func kids(methods []VerificationMethod) []KeyID {
	out := make([]KeyID, len(methods))
	for i, m := range methods {
		out[i] = m.ID
	}
	return out
}
