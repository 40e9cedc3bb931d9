package app

import (
	"peerdid/internal/crypto"
	"peerdid/internal/domain"
	"peerdid/internal/protocol/peerdid"
	identitysvc "peerdid/internal/services/identity"
	"peerdid/internal/store"
)

// Wire bundles the secret store and the services that write to it.
type Wire struct {
	SecretsPath string
	Secrets     domain.SecretStore
	Identity    domain.IdentityService
}

// NewWire opens the secrets file named by cfg and builds the identity
// service on top of it.
func NewWire(cfg Config, resolver domain.DocumentResolver) (*Wire, error) {
	secrets, err := store.Open(cfg.Secrets.File, store.WithPassphrase(cfg.Secrets.Passphrase))
	if err != nil {
		return nil, err
	}

	ids := identitysvc.New(
		crypto.NewKeyGenerator(nil),
		peerdid.NewCreator(),
		resolver,
		secrets,
	)

	return &Wire{
		SecretsPath: secrets.Path(),
		Secrets:     secrets,
		Identity:    ids,
	}, nil
}
