// Package identity mints peer DIDs and binds their private keys.
//
// CreatePeerDID generates the requested keys, encodes them into a peer DID,
// resolves that DID back into its document to learn the canonical key ids,
// binds each private key to its id by position and only then writes the
// secrets to the configured store. A failure before the last step leaves the
// store untouched.
package identity
