package identity

import "errors"

// Every error returned by Service.CreatePeerDID wraps exactly one of these.
var (
	ErrInvalidKeyCount        = errors.New("invalid key count")
	ErrKeyGeneration          = errors.New("key generation failed")
	ErrIdentifierConstruction = errors.New("peer DID construction failed")
	ErrResolution             = errors.New("peer DID resolution failed")
	// ErrCardinalityMismatch means the resolved document does not list one id
	// per generated key. It indicates a protocol mismatch, never bad input.
	ErrCardinalityMismatch = errors.New("resolved key ids do not match generated keys")
	ErrStorage             = errors.New("secret storage failed")
)
