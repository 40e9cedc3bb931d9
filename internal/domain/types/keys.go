package types

import "fmt"

// X25519Public is a Curve25519 public key.
type X25519Public [32]byte

// X25519Private is a clamped Curve25519 private scalar.
type X25519Private [32]byte

// Slice returns the key as a []byte.
func (k X25519Private) Slice() []byte { return k[:] }

// Ed25519Public is an Ed25519 signing public key.
type Ed25519Public [32]byte

// Ed25519Seed is the RFC 8032 private seed of an Ed25519 key.
type Ed25519Seed [32]byte

// Purpose says which section of a peer DID a key populates.
type Purpose int

const (
	// Authentication keys are Ed25519 keys listed under "authentication".
	Authentication Purpose = iota + 1
	// Agreement keys are X25519 keys listed under "keyAgreement".
	Agreement
)

// String returns the DID document section name for the purpose.
func (p Purpose) String() string {
	switch p {
	case Authentication:
		return "authentication"
	case Agreement:
		return "keyAgreement"
	default:
		return fmt.Sprintf("purpose(%d)", int(p))
	}
}

// Curve returns the JWK curve name used by keys of this purpose.
func (p Purpose) Curve() string {
	switch p {
	case Authentication:
		return "Ed25519"
	case Agreement:
		return "X25519"
	default:
		return ""
	}
}

// KeyPair is one generated key. Private holds the Ed25519 seed for
// authentication keys and the X25519 scalar for agreement keys.
type KeyPair struct {
	Purpose Purpose
	Public  [32]byte
	Private [32]byte
}

// KeyList is an ordered run of key pairs sharing one purpose. The order is the
// generation order and must never be re-sorted.
type KeyList []KeyPair

// Ed25519Publics returns the public halves as Ed25519 keys, in order.
func (l KeyList) Ed25519Publics() []Ed25519Public {
	out := make([]Ed25519Public, len(l))
	for i, kp := range l {
		out[i] = Ed25519Public(kp.Public)
	}
	return out
}

// X25519Publics returns the public halves as X25519 keys, in order.
func (l KeyList) X25519Publics() []X25519Public {
	out := make([]X25519Public, len(l))
	for i, kp := range l {
		out[i] = X25519Public(kp.Public)
	}
	return out
}

// KeyBinding ties a generated key to the kid its resolved document assigned.
type KeyBinding struct {
	KID KeyID
	Key KeyPair
}
