// Package store provides SecretStore implementations.
//
// SecretFileStore keeps private JWKs in one JSON file, optionally sealed
// with a passphrase (scrypt + ChaCha20-Poly1305). MemoryStore holds the same
// records in memory only. Both key secrets by their canonical kid and treat
// a second insert under the same kid as an overwrite.
package store
