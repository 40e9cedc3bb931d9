package interfaces

import domaintypes "peerdid/internal/domain/types"

// SecretResolver locates private key material by kid. It is the read side
// a messaging layer consumes.
type SecretResolver interface {
	// FindSecret returns the secret stored under kid, if any.
	FindSecret(kid domaintypes.KeyID) (domaintypes.Secret, bool)
	// FindSecrets returns the subset of kids that are present in the store.
	FindSecrets(kids []domaintypes.KeyID) []domaintypes.KeyID
}

// SecretStore is a SecretResolver that can also be written to.
type SecretStore interface {
	SecretResolver

	// AddSecret inserts or overwrites the secret under its kid and returns
	// once the change is durable.
	AddSecret(secret domaintypes.Secret) error
	// ListKIDs returns every stored kid.
	ListKIDs() []domaintypes.KeyID
}
