package types

// Secret is the private counterpart of a DID document key, stored under the
// key's canonical kid.
type Secret struct {
	KID      KeyID                  `json:"kid"`
	Type     VerificationMethodType `json:"type"`
	Material VerificationMaterial   `json:"verificationMaterial"`
}
