package types

// DID is a decentralized identifier string, e.g. did:peer:2.Ez6LS...
type DID string

// String returns the string form of the DID.
func (d DID) String() string { return string(d) }

// KeyID is the canonical id of one key inside a resolved DID document.
type KeyID string

// String returns the string form of the key id.
func (id KeyID) String() string { return string(id) }

// Fingerprint is a short identifier for public keys presented to users.
type Fingerprint string

// String returns the string form of the fingerprint.
func (f Fingerprint) String() string { return string(f) }

// CreateRequest describes the peer DID a caller wants minted.
type CreateRequest struct {
	AuthKeys      int
	AgreementKeys int
	// Service is optional; nil means the DID carries no service.
	Service *Service
}
