// Package peerdid implements the did:peer method for numalgo 0 and 2.
//
// # Creation
//
//	numalgo 0: did:peer:0 + multibase(base58btc, varint(0xed) || ed25519 key)
//	numalgo 2: did:peer:2 then, in order,
//	           .E<key> per agreement key (X25519, codec 0xec)
//	           .V<key> per authentication key (Ed25519, codec 0xed)
//	           .S<service> when a service is present
//
// A service is encoded as compact JSON with abbreviated member names
// (type→t, serviceEndpoint→s, routingKeys→r, accept→a, DIDCommMessaging→dm)
// and then base64url without padding.
//
// # Resolution
//
// Resolution is a pure function of the DID string. Key ids are the DID
// followed by "#" and the key's multibase value without its leading "z";
// service ids are "#didcommmessaging-<n>". Keys are listed in exactly the
// order they appear in the DID, so a caller that embedded keys in a known
// order can zip them against the resolved ids.
//
// Verification material can be rendered as JWK (JsonWebKey2020), base58
// (Ed25519VerificationKey2018 / X25519KeyAgreementKey2019) or multibase
// (Ed25519VerificationKey2020 / X25519KeyAgreementKey2020).
package peerdid
