package interfaces

import domaintypes "peerdid/internal/domain/types"

// KeyGenerator produces fresh authentication and agreement keys.
type KeyGenerator interface {
	Generate(authCount, agreementCount int) (auth, agreement domaintypes.KeyList, err error)
}

// IdentifierConstructor encodes public keys into a peer DID.
type IdentifierConstructor interface {
	// CreateNumalgo0 builds the single-key form from one inception key.
	CreateNumalgo0(inception domaintypes.Ed25519Public) (domaintypes.DID, error)
	// CreateNumalgo2 builds the multi-key form, embedding every key in order
	// and the service when non-nil.
	CreateNumalgo2(
		authentication []domaintypes.Ed25519Public,
		agreement []domaintypes.X25519Public,
		service *domaintypes.Service,
	) (domaintypes.DID, error)
}

// DocumentResolver derives a DID document from the DID string alone.
type DocumentResolver interface {
	Resolve(did domaintypes.DID, format domaintypes.MaterialFormat) (domaintypes.Document, error)
}

// IdentityService mints peer DIDs and stores their private keys.
type IdentityService interface {
	CreatePeerDID(req domaintypes.CreateRequest) (domaintypes.DID, error)
}
