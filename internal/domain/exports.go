package domain

import (
	interfaces "peerdid/internal/domain/interfaces"
	types "peerdid/internal/domain/types"
)

// Type aliases expose domain types from the types subpackage for compact imports.
type (
	DID                    = types.DID
	KeyID                  = types.KeyID
	Fingerprint            = types.Fingerprint
	Purpose                = types.Purpose
	KeyPair                = types.KeyPair
	KeyList                = types.KeyList
	KeyBinding             = types.KeyBinding
	CreateRequest          = types.CreateRequest
	Secret                 = types.Secret
	MaterialFormat         = types.MaterialFormat
	VerificationMethodType = types.VerificationMethodType
	VerificationMaterial   = types.VerificationMaterial
	VerificationMethod     = types.VerificationMethod
	Service                = types.Service
	Document               = types.Document
	X25519Public           = types.X25519Public
	X25519Private          = types.X25519Private
	Ed25519Public          = types.Ed25519Public
	Ed25519Seed            = types.Ed25519Seed
)

// Interface aliases expose domain interfaces from the interfaces subpackage.
type (
	KeyGenerator          = interfaces.KeyGenerator
	IdentifierConstructor = interfaces.IdentifierConstructor
	DocumentResolver      = interfaces.DocumentResolver
	IdentityService       = interfaces.IdentityService
	SecretResolver        = interfaces.SecretResolver
	SecretStore           = interfaces.SecretStore
)

// Purposes.
const (
	Authentication = types.Authentication
	Agreement      = types.Agreement
)

// Material formats.
const (
	FormatJWK       = types.FormatJWK
	FormatBase58    = types.FormatBase58
	FormatMultibase = types.FormatMultibase
)

// Verification method types.
const (
	JSONWebKey2020             = types.JSONWebKey2020
	Ed25519VerificationKey2018 = types.Ed25519VerificationKey2018
	X25519KeyAgreementKey2019  = types.X25519KeyAgreementKey2019
	Ed25519VerificationKey2020 = types.Ed25519VerificationKey2020
	X25519KeyAgreementKey2020  = types.X25519KeyAgreementKey2020
)

// ParseMaterialFormat accepts jwk, base58 or multibase in any case.
func ParseMaterialFormat(s string) (MaterialFormat, error) { return types.ParseMaterialFormat(s) }
