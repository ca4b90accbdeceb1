package domain

import (
	interfaces "textseal/internal/domain/interfaces"
	types "textseal/internal/domain/types"
)

// Type aliases expose domain types from the types subpackage for compact imports.
type (
	Key                = types.Key
	Signature          = types.Signature
	EncryptedPayload   = types.EncryptedPayload
	SignatureAlgorithm = types.SignatureAlgorithm
	CipherAlgorithm    = types.CipherAlgorithm
	PasswordOptions    = types.PasswordOptions
)

// Interface aliases expose domain interfaces from the interfaces subpackage.
type (
	SignatureService = interfaces.SignatureService
	CipherService    = interfaces.CipherService
	KeyGenerator     = interfaces.KeyGenerator
	InputSource      = interfaces.InputSource
	KeyStore         = interfaces.KeyStore
)

const (
	KeySize                   = types.KeySize
	AlgorithmBlake3           = types.AlgorithmBlake3
	AlgorithmEd25519          = types.AlgorithmEd25519
	AlgorithmChaCha20Poly1305 = types.AlgorithmChaCha20Poly1305
)

var (
	ErrUnknownAlgorithm = types.ErrUnknownAlgorithm
	ErrNotImplemented   = types.ErrNotImplemented

	ParseSignatureAlgorithm = types.ParseSignatureAlgorithm
	ParseCipherAlgorithm    = types.ParseCipherAlgorithm
	DefaultPasswordOptions  = types.DefaultPasswordOptions
	SignatureAlgorithms     = types.SignatureAlgorithms
)
