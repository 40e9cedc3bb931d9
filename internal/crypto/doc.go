// Package crypto exposes the key primitives used to mint peer DIDs.
//
// Contents
//
//   - Ed25519 and X25519 key generation (GenerateEd25519, GenerateX25519)
//   - KeyGenerator, which produces ordered authentication and agreement
//     key lists for one DID
//   - OKP JSON Web Key encoding of public and private key material (JWK)
//   - Short public-key fingerprints for display (Fingerprint)
//
// # Notes
//
// Keys are fixed-size array types defined in internal/domain. Every generator
// reads from an explicit io.Reader so a failing randomness source surfaces as
// an error instead of a panic; callers must not retry on such errors.
package crypto
