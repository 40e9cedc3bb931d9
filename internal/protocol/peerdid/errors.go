package peerdid

import "errors"

var (
	// ErrMalformedPeerDID is returned for strings that are not valid peer DIDs.
	ErrMalformedPeerDID = errors.New("malformed peer DID")
	// ErrUnsupportedNumalgo is returned for peer DIDs other than numalgo 0 and 2.
	ErrUnsupportedNumalgo = errors.New("unsupported peer DID numalgo")
	// ErrUnsupportedPurpose is returned for numalgo 2 elements other than E, V and S.
	ErrUnsupportedPurpose = errors.New("unsupported peer DID purpose code")
	// ErrInvalidKey is returned when an encoded key has the wrong codec or length.
	ErrInvalidKey = errors.New("invalid peer DID key")
	// ErrInvalidService is returned when a service element cannot be decoded.
	ErrInvalidService = errors.New("invalid peer DID service")
	// ErrNoKeys is returned when a numalgo 2 DID would carry no key.
	ErrNoKeys = errors.New("peer DID needs at least one key")
)
